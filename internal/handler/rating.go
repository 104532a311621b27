package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/middleware"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/service"
)

type RatingHandler struct {
	svc *service.RatingService
}

func NewRatingHandler(svc *service.RatingService) *RatingHandler {
	return &RatingHandler{svc: svc}
}

// Put handles PUT /api/countries/:countryId/attractions/:attractionId/rating
func (h *RatingHandler) Put(c fiber.Ctx) error {
	user, _ := middleware.UserFromCtx(c)

	countryID, errMsg := middleware.ValidateCountryID(c.Params("countryId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	attractionID, errMsg := middleware.ValidateAttractionID(c.Params("attractionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.RatingRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_RATING",
			"rating must be an integer between 1 and 5")
	}

	resp, err := h.svc.Submit(c.Context(), user.ID, countryID, attractionID, req.Rating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Destination not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit rating")
	}

	Metrics.RatingsTotal.WithLabelValues(ratingLabel(req.Rating)).Inc()
	return c.JSON(resp)
}

// GetMine handles GET /api/attractions/:attractionId/rating
func (h *RatingHandler) GetMine(c fiber.Ctx) error {
	user, _ := middleware.UserFromCtx(c)

	attractionID, errMsg := middleware.ValidateAttractionID(c.Params("attractionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, err := h.svc.FetchUserRating(c.Context(), user.ID, attractionID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch rating")
	}
	return c.JSON(resp)
}

func ratingLabel(rating int) string {
	return [...]string{"1", "2", "3", "4", "5"}[rating-1]
}
