package handler

import (
	"go-pos-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SaleHandler struct {
	service service.SaleService
}

func NewSaleHandler(s service.SaleService) *SaleHandler {
	return &SaleHandler{service: s}
}

// CreateSale runs the atomic sale workflow.
// POST /api/v1/sales
func (h *SaleHandler) CreateSale(c *fiber.Ctx) error {
	var req service.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}

	sale, err := h.service.CreateSale(&req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 201, sale)
}

// CreateSaleItems bulk-appends pre-addressed items to existing sales.
// POST /api/v1/sales/items
func (h *SaleHandler) CreateSaleItems(c *fiber.Ctx) error {
	var reqs []service.AppendSaleItemRequest
	if err := c.BodyParser(&reqs); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	if len(reqs) == 0 {
		return respondBadRequest(c, "No sale items provided")
	}

	items, err := h.service.AppendItems(reqs, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 201, items)
}

func (h *SaleHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.service.GetAllSales()
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, sales)
}

func (h *SaleHandler) GetSale(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid sale ID")
	}

	sale, err := h.service.GetSaleByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, sale)
}

func (h *SaleHandler) UpdateSale(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid sale ID")
	}

	var req service.UpdateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}

	sale, err := h.service.UpdateSale(id, &req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, sale)
}

func (h *SaleHandler) DeleteSale(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid sale ID")
	}

	if err := h.service.DeleteSale(id); err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, fiber.Map{"success": true})
}
