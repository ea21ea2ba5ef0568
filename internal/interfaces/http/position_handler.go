package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bdas-dva/retail-api/internal/application/dto"
	"github.com/bdas-dva/retail-api/internal/application/usecase"
)

// PositionHandler serves /api/zamestnanci/pozice.
type PositionHandler struct {
	uc *usecase.PositionUseCase
}

// NewPositionHandler builds the handler.
func NewPositionHandler(uc *usecase.PositionUseCase) *PositionHandler {
	return &PositionHandler{uc: uc}
}

// List GET /api/zamestnanci/pozice
func (h *PositionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create POST /api/zamestnanci/pozice
func (h *PositionHandler) Create(c *fiber.Ctx) error {
	var in dto.PositionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Create(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Pozice byla vytvořena."})
}

// Update PUT /api/zamestnanci/pozice/:id
func (h *PositionHandler) Update(c *fiber.Ctx) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.PositionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Pozice byla upravena."})
}

// Delete DELETE /api/zamestnanci/pozice/:id
func (h *PositionHandler) Delete(c *fiber.Ctx) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Pozice byla smazána."})
}
