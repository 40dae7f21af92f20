package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yardline/driver-admin-backend/internal/config"
	"github.com/yardline/driver-admin-backend/internal/handlers"
	"github.com/yardline/driver-admin-backend/internal/middleware"
	"github.com/yardline/driver-admin-backend/internal/services"
	"github.com/yardline/driver-admin-backend/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, cfg *config.Config, identities storage.IdentityStore, records storage.RecordStore) {
	roster := services.NewRosterService(identities)
	aggregator := services.NewAggregatorService(identities, records)

	healthHandler := handlers.NewHealthHandler()
	driverHandler := handlers.NewDriverHandler(roster, aggregator)

	// Root health check, no auth
	app.Get("/", healthHandler.Check)

	// Admin endpoints, all behind the shared key
	adminKey := middleware.RequireAdminKey(cfg.AdminKey)
	app.Get("/drivers", adminKey, driverHandler.ListDrivers)
	app.Delete("/drivers/:id", adminKey, driverHandler.DeleteDriver)
	app.Get("/driver-details", adminKey, driverHandler.GetDriverDetails)
}
