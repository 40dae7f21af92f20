package handlers

import "github.com/gofiber/fiber/v2"

// HealthHandler handles health check requests
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check returns a plain OK for liveness probes
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.SendString("OK")
}
