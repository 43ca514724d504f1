package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fotokarte/internal/config"
	"fotokarte/internal/database"
	"fotokarte/internal/middleware"
	"fotokarte/internal/modules/auth"
	"fotokarte/internal/modules/events"
	"fotokarte/internal/modules/image"
	"fotokarte/internal/modules/location"
	"fotokarte/internal/modules/stats"
	"fotokarte/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	locationRepo := repository.NewLocationRepository(db)

	sessionStore := auth.NewStore(cfg.SessionTTL)
	defer sessionStore.Close()

	authService := auth.NewService(sessionStore, cfg.AccessCode, cfg.AccessCodeHash)
	authHandler := auth.NewHandler(authService, cfg.SessionTTL)

	hub := events.NewHub()
	defer hub.Close()
	eventsHandler := events.NewHandler(hub)

	processor := image.NewProcessor(image.ProcessorConfig{
		MaxWidth:       cfg.MaxImageWidth,
		ThumbSize:      cfg.ThumbSize,
		JPEGQuality:    cfg.JPEGQuality,
		PNGCompression: cfg.PNGCompression,
		WebPQuality:    cfg.WebPQuality,
	})
	imageService := image.NewService(locationRepo, processor, cfg.MaxImageSize)
	imageHandler := image.NewHandler(imageService, hub, cfg.MaxImageSize)

	locationService := location.NewService(locationRepo)
	locationHandler := location.NewHandler(locationService, hub)

	statsService := stats.NewService(locationRepo)
	statsHandler := stats.NewHandler(statsService)

	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.CORS())

	api := r.Group("/api")
	authHandler.RegisterRoutes(r, api)

	protected := api.Group("/")
	protected.Use(middleware.RequireSession(sessionStore))
	{
		locationHandler.RegisterRoutes(protected)
		imageHandler.RegisterRoutes(protected)
		statsHandler.RegisterRoutes(protected)
		eventsHandler.RegisterRoutes(protected)
	}

	log.Printf("Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
