package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/repository"
)

type StatsHandler struct {
	repo *repository.CountryRepo
}

func NewStatsHandler(repo *repository.CountryRepo) *StatsHandler {
	return &StatsHandler{repo: repo}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	stats, err := h.repo.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_ERROR",
				"message": "Failed to fetch statistics",
			},
		})
	}
	return c.JSON(stats)
}
