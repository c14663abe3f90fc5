package handler

import (
	"go-pos-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ShopHandler struct {
	service service.ShopService
}

func NewShopHandler(s service.ShopService) *ShopHandler {
	return &ShopHandler{service: s}
}

func (h *ShopHandler) CreateShop(c *fiber.Ctx) error {
	var req service.ShopRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	shop, err := h.service.CreateShop(&req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 201, shop)
}

func (h *ShopHandler) GetShops(c *fiber.Ctx) error {
	shops, err := h.service.GetAllShops()
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, shops)
}

func (h *ShopHandler) GetShop(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid shop ID")
	}
	shop, err := h.service.GetShopByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, shop)
}

func (h *ShopHandler) UpdateShop(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid shop ID")
	}
	var req service.ShopRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	shop, err := h.service.UpdateShop(id, &req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, shop)
}

func (h *ShopHandler) DeleteShop(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid shop ID")
	}
	if err := h.service.DeleteShop(id); err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, fiber.Map{"success": true})
}
