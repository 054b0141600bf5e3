package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hexadigitall/internal/config"
	"hexadigitall/internal/services/currency"
)

// localRegion is the region code whose shoppers qualify as local for
// promotional pricing.
const localRegion = "NG"

// currencyContext derives the request's currency context from the
// `currency` query parameter and the edge-provided region header.
// Unknown codes are a client bug: they fail the request in development
// and degrade to USD in production.
func currencyContext(c *fiber.Ctx, cur currency.Service) (currency.Context, error) {
	code := strings.ToUpper(c.Query("currency", currency.BaseCurrency))
	if _, err := cur.Lookup(code); err != nil {
		if !config.IsProduction() {
			return currency.Context{}, currency.ErrUnsupportedCurrency
		}
		code = currency.BaseCurrency
	}

	local := strings.EqualFold(c.Get("X-Region"), localRegion)
	return currency.Context{Code: code, Local: local}, nil
}
