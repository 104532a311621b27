package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/handler"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Country    *handler.CountryHandler
	Attraction *handler.AttractionHandler
	Favorite   *handler.FavoriteHandler
	Rating     *handler.RatingHandler
	Comment    *handler.CommentHandler
	Stats      *handler.StatsHandler
	Health     *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given
// Fiber app.
func Setup(app *fiber.App, h *Handlers, authMW fiber.Handler, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(authMW)

	// Probes and metrics (outside the API group, no rate limits)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	browseLimit := middleware.NewBrowseRateLimiter().Handler()
	searchLimit := middleware.NewSearchRateLimiter().Handler()
	toggleLimit := middleware.NewToggleRateLimiter().Handler()
	commentLimit := middleware.NewCommentRateLimiter().Handler()
	requireUser := middleware.RequireUser()

	api := app.Group("/api")

	// Catalogue (public)
	api.Get("/countries", h.Country.List, browseLimit)
	api.Get("/countries/:countryId/attractions", h.Attraction.ListByCountry, browseLimit)
	api.Get("/countries/:countryId/attractions/:attractionId", h.Attraction.GetByID, browseLimit)
	api.Get("/attractions/top", h.Attraction.TopRated, browseLimit)
	api.Get("/attractions/search", h.Attraction.Search, searchLimit)

	// Favorites (signed-in only)
	api.Get("/favorites", h.Favorite.GetSet, requireUser)
	api.Put("/favorites/:attractionId", h.Favorite.Put, requireUser, toggleLimit)

	// Ratings
	api.Put("/countries/:countryId/attractions/:attractionId/rating", h.Rating.Put, requireUser, toggleLimit)
	api.Get("/attractions/:attractionId/rating", h.Rating.GetMine, requireUser)

	// Comments (read public, write signed-in)
	api.Get("/attractions/:attractionId/comments", h.Comment.List, browseLimit)
	api.Get("/attractions/:attractionId/comments/wait", h.Comment.Wait)
	api.Post("/attractions/:attractionId/comments", h.Comment.Post, requireUser, commentLimit)
	api.Put("/comments/:commentId", h.Comment.Update, requireUser, commentLimit)

	// Stats
	api.Get("/stats", h.Stats.GetStats, browseLimit)
}
