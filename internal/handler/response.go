package handler

import (
	"errors"
	"log"

	"go-pos-api/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform response shape: data carries the payload on
// success, error carries a message or a list of validation messages.
type Envelope struct {
	Data  interface{} `json:"data"`
	Error interface{} `json:"error"`
}

func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(Envelope{Data: data, Error: nil})
}

// respondError maps the error taxonomy onto status codes. Unexpected errors
// are logged server-side and surfaced as a generic message.
func respondError(c *fiber.Ctx, err error) error {
	status := apperror.StatusCode(err)

	var verr *apperror.ValidationError
	if errors.As(err, &verr) {
		return c.Status(status).JSON(Envelope{Data: nil, Error: verr.Messages()})
	}

	if !apperror.Public(err) {
		log.Printf("unexpected error: %v", err)
		return c.Status(status).JSON(Envelope{Data: nil, Error: "Internal Server Error"})
	}

	return c.Status(status).JSON(Envelope{Data: nil, Error: err.Error()})
}

func respondBadRequest(c *fiber.Ctx, message string) error {
	return c.Status(400).JSON(Envelope{Data: nil, Error: message})
}

// getActor returns the authenticated user's id for audit fields.
func getActor(c *fiber.Ctx) string {
	if userID, ok := c.Locals("user_id").(string); ok {
		return userID
	}
	return "system"
}
