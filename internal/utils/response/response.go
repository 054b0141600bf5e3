package response

import (
	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

func ValidationError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// GatewayError reports a failure from an external boundary (payment
// provider, notifier). The request can be retried by the client.
func GatewayError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadGateway, message)
}

// TimeoutError reports an outbound call that exceeded its deadline.
func TimeoutError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusGatewayTimeout, message)
}
