package presenters

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// ErrorDetail mirrors the error body shape the frontend already parses.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// SuccessResponse writes the record or list as the raw response body. The API
// contract has no envelope; clients consume the rows directly.
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse writes a sanitized detail message. The underlying error is
// logged for server-side failures, never echoed to the client.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil && status >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
	}
	return c.Status(status).JSON(ErrorDetail{Detail: message})
}
