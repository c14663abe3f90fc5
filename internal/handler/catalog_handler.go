package handler

import (
	"go-pos-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CatalogHandler serves the slug-keyed master data: brands, categories,
// and units.
type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	var req service.BrandRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	brand, err := h.service.CreateBrand(&req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 201, brand)
}

func (h *CatalogHandler) GetBrands(c *fiber.Ctx) error {
	brands, err := h.service.GetAllBrands()
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, brands)
}

func (h *CatalogHandler) GetBrand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid brand ID")
	}
	brand, err := h.service.GetBrandByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, brand)
}

func (h *CatalogHandler) UpdateBrand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid brand ID")
	}
	var req service.BrandRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	brand, err := h.service.UpdateBrand(id, &req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, brand)
}

func (h *CatalogHandler) DeleteBrand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid brand ID")
	}
	if err := h.service.DeleteBrand(id); err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, fiber.Map{"success": true})
}

func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req service.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	category, err := h.service.CreateCategory(&req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 201, category)
}

func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, categories)
}

func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid category ID")
	}
	category, err := h.service.GetCategoryByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, category)
}

func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid category ID")
	}
	var req service.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	category, err := h.service.UpdateCategory(id, &req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, category)
}

func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid category ID")
	}
	if err := h.service.DeleteCategory(id); err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, fiber.Map{"success": true})
}

func (h *CatalogHandler) CreateUnit(c *fiber.Ctx) error {
	var req service.UnitRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	unit, err := h.service.CreateUnit(&req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 201, unit)
}

func (h *CatalogHandler) GetUnits(c *fiber.Ctx) error {
	units, err := h.service.GetAllUnits()
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, units)
}

func (h *CatalogHandler) GetUnit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid unit ID")
	}
	unit, err := h.service.GetUnitByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, unit)
}

func (h *CatalogHandler) UpdateUnit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid unit ID")
	}
	var req service.UnitRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	unit, err := h.service.UpdateUnit(id, &req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, unit)
}

func (h *CatalogHandler) DeleteUnit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid unit ID")
	}
	if err := h.service.DeleteUnit(id); err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, fiber.Map{"success": true})
}
