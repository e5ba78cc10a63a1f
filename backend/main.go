package main

import (
	"context"
	"log"

	"coursehub/backend/config"
	"coursehub/backend/media"
	"coursehub/backend/middleware"
	"coursehub/backend/payment"
	"coursehub/backend/routes"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()
	defer logger.Sync()

	// Media store and payment gateway
	store, err := media.NewS3Store(context.Background(), cfg)
	if err != nil {
		logger.Fatalf("Error initializing media store: %v", err)
	}
	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpaySecret)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: utils.ErrorHandler,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
		AllowHeaders: "Origin, Content-Type, Accept, token",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg, store, gateway)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
