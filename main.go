package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/yardline/driver-admin-backend/database"
	"github.com/yardline/driver-admin-backend/internal/config"
	"github.com/yardline/driver-admin-backend/internal/routes"
	"github.com/yardline/driver-admin-backend/internal/storage"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found - using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize storage
	var identities storage.IdentityStore
	var records storage.RecordStore

	// Check if we should use memory stores (for testing)
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		log.Println("⚠️  Using in-memory stores (not for production!)")
		identities = storage.NewMemoryIdentityStore()
		records = storage.NewMemoryRecordStore()
	} else {
		log.Println("🔥 Connecting to Firebase...")
		clients, err := database.Connect(context.Background(), cfg)
		if err != nil {
			log.Fatal("Failed to connect to Firebase: ", err)
		}
		identities = storage.NewFirebaseIdentityStore(clients.Auth)
		records = storage.NewFirebaseRecordStore(clients.Database)
		log.Println("✅ Firebase clients initialized")
	}

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "Driver Admin Backend v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Admin-Key, X-Api-Key",
		AllowMethods: "GET, DELETE, OPTIONS",
	}))

	routes.SetupRoutes(app, cfg, identities, records)

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("🛑 Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Println("========================================")
	log.Printf("🚀 Driver Admin Backend starting on port %s", cfg.Port)
	log.Printf("📊 Project: %s", cfg.ProjectID)
	log.Println("========================================")

	log.Fatal(app.Listen(":" + cfg.Port))
}
