package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/auth"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/config"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/db"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/handler"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/middleware"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/repository"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/router"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/service"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "pesona-api")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	cache := service.NewCacheService(cfg.RedisURL)

	countryRepo := repository.NewCountryRepo(pool)
	attractionRepo := repository.NewAttractionRepo(pool)
	favoriteRepo := repository.NewFavoriteRepo(pool)
	ratingRepo := repository.NewRatingRepo(pool)
	commentRepo := repository.NewCommentRepo(pool, cfg.EditWindow)

	hub := service.NewCommentHub(cache.Client(), commentRepo)
	go hub.Start(ctx)

	catalogSvc := service.NewCatalogService(countryRepo, attractionRepo, cache)
	favoriteSvc := service.NewFavoriteService(favoriteRepo)
	ratingSvc := service.NewRatingService(ratingRepo, cache)
	commentSvc := service.NewCommentService(commentRepo, hub)

	handler.InitMetrics(pool)

	verifier := auth.NewVerifier(cfg.AuthSecret, cfg.AuthIssuer)

	h := &router.Handlers{
		Country:    handler.NewCountryHandler(catalogSvc),
		Attraction: handler.NewAttractionHandler(catalogSvc),
		Favorite:   handler.NewFavoriteHandler(favoriteSvc),
		Rating:     handler.NewRatingHandler(ratingSvc),
		Comment:    handler.NewCommentHandler(commentSvc, hub),
		Stats:      handler.NewStatsHandler(countryRepo),
		Health:     handler.NewHealthHandler(pool, cache.Client()),
	}

	app := fiber.New(fiber.Config{
		AppName:      "Pesona API",
		ServerHeader: "Pesona",
	})

	router.Setup(app, h, middleware.NewAuth(verifier), cfg.CORSOrigins)

	log.Printf("Pesona Go backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
