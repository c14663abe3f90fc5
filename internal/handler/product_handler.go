package handler

import (
	"go-pos-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	product, err := h.service.CreateProduct(&req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 201, product)
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, products)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid product ID")
	}
	product, err := h.service.GetProductByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, product)
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid product ID")
	}
	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	product, err := h.service.UpdateProduct(id, &req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, product)
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid product ID")
	}
	if err := h.service.DeleteProduct(id); err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, fiber.Map{"success": true})
}
