package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/service"
)

type CountryHandler struct {
	svc *service.CatalogService
}

func NewCountryHandler(svc *service.CatalogService) *CountryHandler {
	return &CountryHandler{svc: svc}
}

// List handles GET /api/countries
func (h *CountryHandler) List(c fiber.Ctx) error {
	countries, err := h.svc.ListCountries(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_ERROR",
				"message": "Failed to fetch countries",
			},
		})
	}
	return c.JSON(countries)
}
