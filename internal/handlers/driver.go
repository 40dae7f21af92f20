package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/yardline/driver-admin-backend/internal/services"
	"github.com/yardline/driver-admin-backend/internal/storage"
)

// DriverHandler handles the admin driver endpoints
type DriverHandler struct {
	roster     *services.RosterService
	aggregator *services.AggregatorService
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(roster *services.RosterService, aggregator *services.AggregatorService) *DriverHandler {
	return &DriverHandler{
		roster:     roster,
		aggregator: aggregator,
	}
}

// ListDrivers returns every driver account as a flat list
func (h *DriverHandler) ListDrivers(c *fiber.Ctx) error {
	drivers, err := h.roster.ListDrivers(c.Context())
	if err != nil {
		log.Printf("Failed to list drivers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"users": drivers,
	})
}

// DeleteDriver removes a driver's identity record. Ticket and rating
// partitions are intentionally left untouched.
func (h *DriverHandler) DeleteDriver(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.roster.DeleteDriver(c.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Driver not found",
			})
		}
		log.Printf("Failed to delete driver %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"ok": true,
	})
}

// GetDriverDetails returns the aggregated summary for one driver
func (h *DriverHandler) GetDriverDetails(c *fiber.Ctx) error {
	uid := c.Query("uid")
	if uid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing uid parameter",
		})
	}

	summary, err := h.aggregator.DriverDetails(c.Context(), uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Driver not found",
			})
		}
		log.Printf("Failed to aggregate driver %s: %v", uid, err)
		// Internal admin tool: surfacing the underlying message to the
		// caller is accepted.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}
