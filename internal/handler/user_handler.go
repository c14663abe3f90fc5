package handler

import (
	"go-pos-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	user, err := h.service.CreateUser(&req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 201, user)
}

func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, users)
}

// GetAttendants lists only users with the ATTENDANT role.
// GET /api/v1/users/attendants
func (h *UserHandler) GetAttendants(c *fiber.Ctx) error {
	users, err := h.service.GetAttendants()
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, users)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid user ID")
	}
	user, err := h.service.GetUserByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, user)
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid user ID")
	}
	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}
	user, err := h.service.UpdateUser(id, &req, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, user)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid user ID")
	}
	if err := h.service.DeleteUser(id); err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, fiber.Map{"success": true})
}
