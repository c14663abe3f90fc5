package handler

import (
	"go-pos-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PartnerHandler serves customers and suppliers.
type PartnerHandler struct {
	service service.PartnerService
}

func NewPartnerHandler(s service.PartnerService) *PartnerHandler {
	return &PartnerHandler{service: s}
}

func (h *PartnerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req service.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	customer, err := h.service.CreateCustomer(&req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 201, customer)
}

func (h *PartnerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAllCustomers()
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, customers)
}

func (h *PartnerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid customer ID")
	}
	customer, err := h.service.GetCustomerByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, customer)
}

func (h *PartnerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid customer ID")
	}
	var req service.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	customer, err := h.service.UpdateCustomer(id, &req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, customer)
}

func (h *PartnerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid customer ID")
	}
	if err := h.service.DeleteCustomer(id); err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, fiber.Map{"success": true})
}

func (h *PartnerHandler) CreateSupplier(c *fiber.Ctx) error {
	var req service.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	supplier, err := h.service.CreateSupplier(&req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 201, supplier)
}

func (h *PartnerHandler) GetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.service.GetAllSuppliers()
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, suppliers)
}

func (h *PartnerHandler) GetSupplier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid supplier ID")
	}
	supplier, err := h.service.GetSupplierByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, supplier)
}

func (h *PartnerHandler) UpdateSupplier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid supplier ID")
	}
	var req service.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	supplier, err := h.service.UpdateSupplier(id, &req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, supplier)
}

func (h *PartnerHandler) DeleteSupplier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid supplier ID")
	}
	if err := h.service.DeleteSupplier(id); err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, fiber.Map{"success": true})
}
