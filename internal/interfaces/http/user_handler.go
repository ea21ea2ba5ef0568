package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bdas-dva/retail-api/internal/application/dto"
	"github.com/bdas-dva/retail-api/internal/application/usecase"
)

// UserHandler serves /api/users (admin only).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler builds the handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Vytvořit uživatele
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserRequest  true  "Uživatel"
// @Success      201   {object}  dto.MessageResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.UserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Create(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Uživatel byl vytvořen."})
}

// Update PUT /api/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Uživatel byl upraven."})
}

// Delete DELETE /api/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Uživatel byl smazán."})
}

// GetByID GET /api/users/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/users?startingId=1&limit=50
func (h *UserHandler) List(c *fiber.Ctx) error {
	start, err := queryInt64(c, "startingId", 0)
	if err != nil {
		return writeError(c, err)
	}
	limit, err := queryInt32(c, "limit", 0)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), start, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Search GET /api/users/search?id&email&roleId&limit
func (h *UserHandler) Search(c *fiber.Ctx) error {
	var q dto.UserSearchQuery
	if err := c.QueryParser(&q); err != nil {
		return fail(c, fiber.StatusBadRequest, CodeValidation, "neplatné parametry dotazu")
	}
	out, err := h.uc.Search(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// View GET /api/users/view
func (h *UserHandler) View(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RoleByEmail GET /api/users/role/:email
func (h *UserHandler) RoleByEmail(c *fiber.Ctx) error {
	out, err := h.uc.GetWithRoleByEmail(c.UserContext(), c.Params("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
