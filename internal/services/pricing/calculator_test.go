package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexadigitall/internal/services/catalog"
)

func TestCalculator_Calculate(t *testing.T) {
	calc := NewCalculator(catalog.NewService())

	t.Run("empty selection prices to zero", func(t *testing.T) {
		b := calc.Calculate(NewSelection())

		assert.Nil(t, b.Platform)
		assert.Zero(t, b.PlatformCost)
		assert.Zero(t, b.FeaturesCost)
		assert.Zero(t, b.AddonsCost)
		assert.Zero(t, b.Total)
	})

	t.Run("full custom build", func(t *testing.T) {
		sel := Selection{
			PlatformID: "web",
			FeatureIDs: []string{"auth", "cms"},
			AddonIDs:   []string{"maintenance"},
		}
		b := calc.Calculate(sel)

		require.NotNil(t, b.Platform)
		assert.Equal(t, "web", b.Platform.ID)
		assert.Equal(t, float64(1999), b.PlatformCost)
		assert.Equal(t, float64(550), b.FeaturesCost)
		assert.Equal(t, float64(150), b.AddonsCost)
		assert.Equal(t, float64(2699), b.Total)
	})

	t.Run("total is the exact sum of subtotals", func(t *testing.T) {
		sel := Selection{
			PlatformID: "web_mobile",
			FeatureIDs: []string{"auth", "payments", "chat", "analytics"},
			AddonIDs:   []string{"training", "seo"},
		}
		b := calc.Calculate(sel)

		assert.Equal(t, b.PlatformCost+b.FeaturesCost+b.AddonsCost, b.Total)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		sel := Selection{
			PlatformID: "mobile",
			FeatureIDs: []string{"payments", "booking"},
			AddonIDs:   []string{"branding"},
		}

		assert.Equal(t, calc.Calculate(sel), calc.Calculate(sel))
	})

	t.Run("unknown ids are excluded from the sum", func(t *testing.T) {
		sel := Selection{
			PlatformID: "web",
			FeatureIDs: []string{"auth", "does-not-exist"},
			AddonIDs:   []string{"also-missing", "maintenance"},
		}
		b := calc.Calculate(sel)

		assert.Equal(t, float64(300), b.FeaturesCost)
		assert.Equal(t, float64(150), b.AddonsCost)
		assert.Len(t, b.Features, 1)
		assert.Len(t, b.Addons, 1)
	})

	t.Run("unknown platform contributes zero", func(t *testing.T) {
		b := calc.Calculate(Selection{PlatformID: "mainframe"})

		assert.Nil(t, b.Platform)
		assert.Zero(t, b.Total)
	})

	t.Run("itemized order matches selection order", func(t *testing.T) {
		sel := Selection{
			PlatformID: "web",
			FeatureIDs: []string{"chat", "auth", "analytics"},
		}
		b := calc.Calculate(sel)

		require.Len(t, b.Features, 3)
		assert.Equal(t, "chat", b.Features[0].ID)
		assert.Equal(t, "auth", b.Features[1].ID)
		assert.Equal(t, "analytics", b.Features[2].ID)
	})
}
