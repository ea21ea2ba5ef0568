package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bdas-dva/retail-api/internal/application/usecase"
)

// StoreHandler serves the supermarket and warehouse lookups.
type StoreHandler struct {
	uc *usecase.StoreUseCase
}

// NewStoreHandler builds the handler.
func NewStoreHandler(uc *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// Supermarkets GET /api/supermarkets
func (h *StoreHandler) Supermarkets(c *fiber.Ctx) error {
	out, err := h.uc.ListSupermarkets(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Warehouses GET /api/sklads
func (h *StoreHandler) Warehouses(c *fiber.Ctx) error {
	out, err := h.uc.ListWarehouses(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
