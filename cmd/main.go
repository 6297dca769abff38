package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"rentmart/internal/common"
	"rentmart/internal/handlers"
	"rentmart/internal/jobs/background"
	"rentmart/internal/middleware"
	"rentmart/internal/repositories"
	"rentmart/internal/services"
	"rentmart/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}
	schema := os.Getenv("DB_SCHEMA")
	if schema == "" {
		schema = "public"
	}

	pool, err := database.NewPool(databaseURL, schema)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// MinIO configuration
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	if minioEndpoint == "" {
		minioEndpoint = "localhost:9000" // Default MinIO endpoint
	}
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	if minioAccessKey == "" {
		minioAccessKey = "minioadmin" // Default for development
	}
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	if minioSecretKey == "" {
		minioSecretKey = "minioadmin" // Default for development
	}
	minioBucket := os.Getenv("MINIO_BUCKET")
	if minioBucket == "" {
		minioBucket = "listing-images"
	}
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	imageSvc, err := services.NewImageService(minioEndpoint, minioAccessKey, minioSecretKey, minioBucket, useSSL)
	if err != nil {
		log.Fatalf("Failed to initialize image service: %v", err)
	}
	if err := imageSvc.EnsureBucket(context.Background()); err != nil {
		log.Printf("WARNING: could not ensure image bucket: %v", err)
	}

	// Create repositories
	userRepo := repositories.NewUserRepo(pool)
	sessionRepo := repositories.NewSessionRepo(pool)
	itemRepo := repositories.NewItemRepo(pool)
	bookingRepo := repositories.NewBookingRepo(pool)

	// Create services
	authSvc := services.NewAuthService(pool, userRepo, sessionRepo)
	bookingSvc := services.NewBookingService(bookingRepo, itemRepo)

	// Create handlers
	authHandlers := handlers.NewAuthHandlers(authSvc)
	itemHandlers := handlers.NewItemHandlers(itemRepo, imageSvc)
	bookingHandlers := handlers.NewBookingHandlers(bookingSvc)

	// Background session sweep
	scheduler, err := background.NewJobScheduler(sessionRepo)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create Echo instance
	e := echo.New()
	e.HTTPErrorHandler = common.HTTPErrorHandler

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.CORSPreflight())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.AuthHeader},
		MaxAge:       86400,
	}))
	e.Use(echoMiddleware.RemoveTrailingSlash())

	sessionAuth := middleware.SessionAuth(sessionRepo)

	e.GET("/health", handlers.HealthCheck(pool))

	e.POST("/auth", authHandlers.Handle)

	e.GET("/items", itemHandlers.ListItems)
	e.POST("/items", itemHandlers.CreateItem, sessionAuth)
	e.POST("/items/image", itemHandlers.UploadImage, sessionAuth)

	e.POST("/bookings", bookingHandlers.CreateBooking, sessionAuth)
	e.GET("/bookings", bookingHandlers.ListBookings, sessionAuth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("rentmart API starting on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
