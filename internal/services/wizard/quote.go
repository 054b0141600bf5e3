package wizard

import (
	"fmt"
	"strings"

	"hexadigitall/internal/services/catalog"
	"hexadigitall/internal/services/currency"
	"hexadigitall/internal/services/pricing"
)

// QuoteLine is one displayable line of an itemized quote. Amount is in
// the display currency, discounted and rounded.
type QuoteLine struct {
	Kind      catalog.ItemKind `json:"kind"`
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	AmountUSD float64          `json:"amountUSD"`
	Amount    float64          `json:"amount"`
}

// Quote is the derived, display-ready view of a priced selection. It
// is recomputed on every read and never persisted.
type Quote struct {
	Breakdown       pricing.Breakdown `json:"breakdown"`
	Lines           []QuoteLine       `json:"lines"`
	Currency        string            `json:"currency"`
	Symbol          string            `json:"symbol"`
	TotalUSD        float64           `json:"totalUSD"`
	Total           float64           `json:"total"`
	DiscountApplied bool              `json:"discountApplied"`
}

// buildQuote derives the display quote for a breakdown. Each line is
// discounted, converted, and rounded; the grand total is the sum of
// the rounded lines, so the itemized quote always adds up to the
// amount submitted.
func buildQuote(b pricing.Breakdown, cctx currency.Context, cur currency.Service) (*Quote, error) {
	if _, err := cur.Convert(b.Total, cctx.Code); err != nil {
		return nil, err
	}

	symbol := "$"
	if c, err := cur.Lookup(cctx.Code); err == nil {
		symbol = c.Symbol
	}

	q := &Quote{
		Breakdown:       b,
		Lines:           []QuoteLine{},
		Currency:        cctx.Code,
		Symbol:          symbol,
		TotalUSD:        b.Total,
		DiscountApplied: cur.DiscountEligible(cctx),
	}

	display := func(amountUSD float64) (float64, error) {
		return cur.ConvertForDisplay(cur.ApplyDiscountIfEligible(amountUSD, cctx), cctx.Code)
	}

	var total float64
	if b.Platform != nil {
		amount, err := display(b.Platform.PriceUSD)
		if err != nil {
			return nil, err
		}
		total += amount
		q.Lines = append(q.Lines, QuoteLine{
			Kind: catalog.KindPlatform, ID: b.Platform.ID, Name: b.Platform.Name,
			AmountUSD: b.Platform.PriceUSD, Amount: amount,
		})
	}
	for _, f := range b.Features {
		amount, err := display(f.PriceUSD)
		if err != nil {
			return nil, err
		}
		total += amount
		q.Lines = append(q.Lines, QuoteLine{
			Kind: catalog.KindFeature, ID: f.ID, Name: f.Name,
			AmountUSD: f.PriceUSD, Amount: amount,
		})
	}
	for _, a := range b.Addons {
		amount, err := display(a.PriceUSD)
		if err != nil {
			return nil, err
		}
		total += amount
		q.Lines = append(q.Lines, QuoteLine{
			Kind: catalog.KindAddon, ID: a.ID, Name: a.Name,
			AmountUSD: a.PriceUSD, Amount: amount,
		})
	}

	q.Total = total
	return q, nil
}

// summary renders a one-line description of the selection for checkout
// payloads and notification subjects.
func summary(b pricing.Breakdown) string {
	parts := []string{}
	if b.Platform != nil {
		parts = append(parts, b.Platform.Name)
	}
	if n := len(b.Features); n == 1 {
		parts = append(parts, "1 feature")
	} else if n > 1 {
		parts = append(parts, fmt.Sprintf("%d features", n))
	}
	if n := len(b.Addons); n == 1 {
		parts = append(parts, "1 add-on")
	} else if n > 1 {
		parts = append(parts, fmt.Sprintf("%d add-ons", n))
	}
	if len(parts) == 0 {
		return "Custom build"
	}
	return "Custom build: " + strings.Join(parts, " + ")
}
