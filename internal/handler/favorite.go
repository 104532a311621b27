package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/middleware"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/service"
)

type FavoriteHandler struct {
	svc *service.FavoriteService
}

func NewFavoriteHandler(svc *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

// GetSet handles GET /api/favorites
func (h *FavoriteHandler) GetSet(c fiber.Ctx) error {
	user, _ := middleware.UserFromCtx(c)

	resp, err := h.svc.FetchSet(c.Context(), user.ID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch favorites")
	}
	return c.JSON(resp)
}

// Put handles PUT /api/favorites/:attractionId
func (h *FavoriteHandler) Put(c fiber.Ctx) error {
	user, _ := middleware.UserFromCtx(c)

	attractionID, errMsg := middleware.ValidateAttractionID(c.Params("attractionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.FavoriteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	resp, err := h.svc.Mutate(c.Context(), user.ID, attractionID, req.Favorite)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update favorite")
	}

	Metrics.FavoriteToggles.WithLabelValues(toggleAction(req.Favorite)).Inc()
	return c.JSON(resp)
}

func toggleAction(present bool) string {
	if present {
		return "add"
	}
	return "remove"
}
