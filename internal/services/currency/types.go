package currency

import (
	"time"
)

// Currency describes a supported display currency.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Flag   string `json:"flag"`
}

// Context carries the shopper-facing currency state for one request:
// the chosen display currency and whether the shopper's detected
// region matches that currency's home region.
type Context struct {
	Code  string `json:"code"`
	Local bool   `json:"local"`
}

// Config holds the currency service configuration. Rates map a
// currency code to its per-USD multiplier. Now is injectable so tests
// can pin the launch window without touching the clock.
type Config struct {
	Rates       map[string]float64
	Currencies  []Currency
	LaunchStart time.Time
	LaunchEnd   time.Time
	Now         func() time.Time
}
