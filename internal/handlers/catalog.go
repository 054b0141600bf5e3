package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hexadigitall/internal/services/catalog"
	"hexadigitall/internal/services/currency"
	"hexadigitall/internal/utils/response"
)

type CatalogHandler struct {
	catalog  catalog.Service
	currency currency.Service
}

func NewCatalogHandler(cat catalog.Service, cur currency.Service) *CatalogHandler {
	return &CatalogHandler{catalog: cat, currency: cur}
}

// GetCatalog returns the full custom-build catalog. Prices stay in
// USD; the client converts via the quoted rates or requests a quote.
func (h *CatalogHandler) GetCatalog(c *fiber.Ctx) error {
	return response.Success(c, "catalog", fiber.Map{
		"platforms": h.catalog.PlatformBases(),
		"features":  h.catalog.TechFeatures(),
		"addons":    h.catalog.ServiceAddons(),
	})
}

// GetCurrencies returns the supported display currencies and whether
// the launch special is currently running.
func (h *CatalogHandler) GetCurrencies(c *fiber.Ctx) error {
	return response.Success(c, "currencies", fiber.Map{
		"currencies":          h.currency.Supported(),
		"launchSpecialActive": h.currency.LaunchSpecialActive(),
	})
}
