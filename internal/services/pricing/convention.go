package pricing

import "hexadigitall/internal/config"

// Pricing conventions shared by the seed tooling and the runtime
// display layer. Both sides must derive figures the same way, so the
// arithmetic lives here and nowhere else.
const (
	// HourlyDivisor converts a monthly rate into an hourly one
	// (four billable weeks per month).
	HourlyDivisor = 4

	// DefaultNGNRate is the fallback USD->NGN rate used when no
	// configured rate is available.
	DefaultNGNRate = 1500
)

// HourlyFromMonthly derives an hourly rate from a monthly rate.
func HourlyFromMonthly(monthly float64) float64 {
	return monthly / HourlyDivisor
}

// NGNRate returns the configured USD->NGN conversion rate.
func NGNRate() float64 {
	return config.GetFloatEnv("NGN_RATE", DefaultNGNRate)
}

// NGNFromUSD derives the NGN figure for a USD price using the
// configured rate.
func NGNFromUSD(usd float64) float64 {
	return usd * NGNRate()
}
