// Package pricing computes itemized USD price breakdowns for
// custom-build selections. The calculator is a pure total function:
// no I/O, no clock, identical output for identical input.
package pricing

import (
	"hexadigitall/internal/services/catalog"
)

// Calculator prices selections against a catalog.
type Calculator interface {
	Calculate(sel Selection) Breakdown
}

type calculator struct {
	catalog catalog.Service
}

// NewCalculator creates a calculator over the given catalog.
func NewCalculator(cat catalog.Service) Calculator {
	if cat == nil {
		panic("catalog is required")
	}
	return &calculator{catalog: cat}
}

// Calculate prices a selection. A missing platform contributes zero;
// ids not present in the catalog are excluded from the sum. Itemized
// features and add-ons come back in selection order.
func (c *calculator) Calculate(sel Selection) Breakdown {
	b := Breakdown{
		Features: []catalog.TechFeature{},
		Addons:   []catalog.ServiceAddon{},
	}

	if sel.PlatformID != "" {
		if p, err := c.catalog.PlatformBase(sel.PlatformID); err == nil {
			b.Platform = p
			b.PlatformCost = p.PriceUSD
		}
	}

	for _, id := range sel.FeatureIDs {
		f, err := c.catalog.TechFeature(id)
		if err != nil {
			continue
		}
		b.Features = append(b.Features, *f)
		b.FeaturesCost += f.PriceUSD
	}

	for _, id := range sel.AddonIDs {
		a, err := c.catalog.ServiceAddon(id)
		if err != nil {
			continue
		}
		b.Addons = append(b.Addons, *a)
		b.AddonsCost += a.PriceUSD
	}

	b.Total = b.PlatformCost + b.FeaturesCost + b.AddonsCost
	return b
}
