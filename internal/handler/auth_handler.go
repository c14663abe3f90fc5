package handler

import (
	"go-pos-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest accepts either email or username plus a password.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Login handles user authentication
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}

	if req.Password == "" || (req.Email == "" && req.Username == "") {
		return respondBadRequest(c, "Email or username and password are required")
	}

	response, err := h.authService.Login(req.Email, req.Username, req.Password)
	if err != nil {
		return c.Status(401).JSON(Envelope{Data: nil, Error: err.Error()})
	}

	return respondData(c, 200, response)
}

// ResetPassword handles password change
// POST /api/v1/auth/reset-password
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}

	if req.Email == "" || req.OldPassword == "" || req.NewPassword == "" {
		return respondBadRequest(c, "Email, old_password, and new_password are required")
	}

	if len(req.NewPassword) < 8 {
		return respondBadRequest(c, "New password must be at least 8 characters")
	}

	if err := h.authService.ResetPassword(req.Email, req.OldPassword, req.NewPassword); err != nil {
		return c.Status(400).JSON(Envelope{Data: nil, Error: err.Error()})
	}

	return respondData(c, 200, fiber.Map{"message": "Password updated successfully"})
}
