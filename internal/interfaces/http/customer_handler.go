package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bdas-dva/retail-api/internal/application/dto"
	"github.com/bdas-dva/retail-api/internal/application/usecase"
)

// CustomerHandler serves /api/zakaznici.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Vytvořit zákazníka
// @Tags         zakaznici
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerRequest  true  "Zákazník"
// @Success      201   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/zakaznici [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id, Message: "Zákazník byl vytvořen."})
}

// Update PUT /api/zakaznici/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Zákazník byl upraven."})
}

// Delete DELETE /api/zakaznici/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Zákazník byl smazán."})
}

// GetByID GET /api/zakaznici/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
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

// GetByPhone GET /api/zakaznici/telefon/:telefon
func (h *CustomerHandler) GetByPhone(c *fiber.Ctx) error {
	phone, err := pathInt64(c, "telefon")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByPhone(c.UserContext(), phone)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/zakaznici?limit=100
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	limit, err := queryInt32(c, "limit", 0)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddressID GET /api/zakaznici/:id/adresa
func (h *CustomerHandler) AddressID(c *fiber.Ctx) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.AddressID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
