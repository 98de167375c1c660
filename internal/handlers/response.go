package handlers

import "github.com/gofiber/fiber/v2"

// respondData wraps a payload in the {success, data} envelope the client
// expects on every endpoint.
func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// respondError reports a failure with the {success:false, message} envelope.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
