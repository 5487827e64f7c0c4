package main

import "github.com/gofiber/fiber/v2"

// JsonSuccess sends a success envelope with extra payload fields merged in.
func JsonSuccess(c *fiber.Ctx, payload fiber.Map) error {
	body := fiber.Map{"success": true}
	for key, value := range payload {
		body[key] = value
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonError sends a failure envelope; the error text is surfaced verbatim
// in the frontend toast.
func JsonError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
