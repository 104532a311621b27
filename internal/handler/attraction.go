package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/middleware"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/service"
)

const (
	defaultTopLimit = 6
	maxTopLimit     = 24
)

type AttractionHandler struct {
	svc *service.CatalogService
}

func NewAttractionHandler(svc *service.CatalogService) *AttractionHandler {
	return &AttractionHandler{svc: svc}
}

// ListByCountry handles GET /api/countries/:countryId/attractions
func (h *AttractionHandler) ListByCountry(c fiber.Ctx) error {
	countryID, errMsg := middleware.ValidateCountryID(c.Params("countryId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	attractions, err := h.svc.ListAttractions(c.Context(), countryID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch attractions")
	}
	return c.JSON(attractions)
}

// GetByID handles GET /api/countries/:countryId/attractions/:attractionId
func (h *AttractionHandler) GetByID(c fiber.Ctx) error {
	countryID, errMsg := middleware.ValidateCountryID(c.Params("countryId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	attractionID, errMsg := middleware.ValidateAttractionID(c.Params("attractionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	attraction, err := h.svc.GetAttraction(c.Context(), countryID, attractionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Absent destinations are an empty view state, never a crash.
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Destination not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch attraction")
	}
	return c.JSON(attraction)
}

// TopRated handles GET /api/attractions/top?limit=N
func (h *AttractionHandler) TopRated(c fiber.Ctx) error {
	limit := defaultTopLimit
	if raw := fiber.Query[string](c, "limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxTopLimit {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM",
				"limit must be an integer between 1 and 24")
		}
		limit = n
	}

	attractions, err := h.svc.TopRated(c.Context(), limit)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch top attractions")
	}
	return c.JSON(attractions)
}

// Search handles GET /api/attractions/search?q=
func (h *AttractionHandler) Search(c fiber.Ctx) error {
	query := middleware.ValidateSearchQuery(fiber.Query[string](c, "q"))

	results, err := h.svc.Search(c.Context(), query)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Search failed")
	}
	return c.JSON(results)
}
