// Package currency converts canonical USD amounts into display
// currencies and owns the launch-special discount policy. Every
// consumer goes through ApplyDiscountIfEligible; the eligibility
// predicate is evaluated nowhere else.
package currency

import (
	"math"
	"time"

	"hexadigitall/internal/services/pricing"
)

const (
	// BaseCurrency is the canonical authoring currency.
	BaseCurrency = "USD"

	// PromoCurrency is the only currency eligible for the launch
	// special.
	PromoCurrency = "NGN"

	// LaunchSpecialMultiplier is the promotional price multiplier
	// (50% off) applied when the eligibility predicate holds.
	LaunchSpecialMultiplier = 0.5
)

// Service converts USD amounts and applies the launch-special policy.
type Service interface {
	// Convert converts a USD amount into the target currency without
	// rounding. Mid-calculation amounts stay unrounded.
	Convert(amountUSD float64, code string) (float64, error)

	// ConvertForDisplay converts and rounds to the nearest whole
	// display unit. Use only at display/payload time.
	ConvertForDisplay(amountUSD float64, code string) (float64, error)

	// ApplyDiscountIfEligible returns the USD amount halved when the
	// shopper is local, the currency is NGN, and the launch window is
	// active; otherwise the amount is returned unchanged.
	ApplyDiscountIfEligible(amountUSD float64, cctx Context) float64

	// DiscountEligible reports whether the three-part predicate holds.
	DiscountEligible(cctx Context) bool

	// LaunchSpecialActive reports whether the promotional window is
	// currently open.
	LaunchSpecialActive() bool

	Supported() []Currency
	Lookup(code string) (*Currency, error)
}

type service struct {
	rates       map[string]float64
	currencies  []Currency
	launchStart time.Time
	launchEnd   time.Time
	now         func() time.Time
}

// NewService creates a currency service. Zero-value config fields fall
// back to the built-in rate table and a closed launch window.
func NewService(cfg Config) Service {
	if cfg.Rates == nil {
		cfg.Rates = map[string]float64{
			"USD": 1,
			"NGN": pricing.NGNRate(),
			"EUR": 0.92,
			"GBP": 0.79,
			"CAD": 1.36,
		}
	}
	if cfg.Currencies == nil {
		cfg.Currencies = []Currency{
			{Code: "USD", Symbol: "$", Flag: "🇺🇸"},
			{Code: "NGN", Symbol: "₦", Flag: "🇳🇬"},
			{Code: "EUR", Symbol: "€", Flag: "🇪🇺"},
			{Code: "GBP", Symbol: "£", Flag: "🇬🇧"},
			{Code: "CAD", Symbol: "C$", Flag: "🇨🇦"},
		}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &service{
		rates:       cfg.Rates,
		currencies:  cfg.Currencies,
		launchStart: cfg.LaunchStart,
		launchEnd:   cfg.LaunchEnd,
		now:         cfg.Now,
	}
}

func (s *service) Convert(amountUSD float64, code string) (float64, error) {
	rate, ok := s.rates[code]
	if !ok {
		return 0, ErrUnsupportedCurrency
	}
	return amountUSD * rate, nil
}

func (s *service) ConvertForDisplay(amountUSD float64, code string) (float64, error) {
	converted, err := s.Convert(amountUSD, code)
	if err != nil {
		return 0, err
	}
	return math.Round(converted), nil
}

func (s *service) ApplyDiscountIfEligible(amountUSD float64, cctx Context) float64 {
	if s.DiscountEligible(cctx) {
		return amountUSD * LaunchSpecialMultiplier
	}
	return amountUSD
}

func (s *service) DiscountEligible(cctx Context) bool {
	return cctx.Local && cctx.Code == PromoCurrency && s.LaunchSpecialActive()
}

func (s *service) LaunchSpecialActive() bool {
	if s.launchStart.IsZero() || s.launchEnd.IsZero() {
		return false
	}
	now := s.now()
	return !now.Before(s.launchStart) && now.Before(s.launchEnd)
}

func (s *service) Supported() []Currency {
	out := make([]Currency, len(s.currencies))
	copy(out, s.currencies)
	return out
}

func (s *service) Lookup(code string) (*Currency, error) {
	for _, c := range s.currencies {
		if c.Code == code {
			cur := c
			return &cur, nil
		}
	}
	return nil, ErrUnsupportedCurrency
}
