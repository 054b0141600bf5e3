package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookups(t *testing.T) {
	svc := NewService()

	t.Run("platform base by id", func(t *testing.T) {
		platform, err := svc.PlatformBase("web")
		require.NoError(t, err)
		assert.Equal(t, "Web Application", platform.Name)
		assert.Equal(t, float64(1999), platform.PriceUSD)

		_, err = svc.PlatformBase("desktop")
		assert.ErrorIs(t, err, ErrPlatformNotFound)
	})

	t.Run("tech feature by id", func(t *testing.T) {
		feature, err := svc.TechFeature("payments")
		require.NoError(t, err)
		assert.Equal(t, float64(400), feature.PriceUSD)

		_, err = svc.TechFeature("blockchain")
		assert.ErrorIs(t, err, ErrFeatureNotFound)
	})

	t.Run("service addon by id", func(t *testing.T) {
		addon, err := svc.ServiceAddon("maintenance")
		require.NoError(t, err)
		assert.Equal(t, float64(150), addon.PriceUSD)

		_, err = svc.ServiceAddon("espresso")
		assert.ErrorIs(t, err, ErrAddonNotFound)
	})
}

func TestCatalogListings(t *testing.T) {
	svc := NewService()

	platforms := svc.PlatformBases()
	features := svc.TechFeatures()
	addons := svc.ServiceAddons()

	assert.Len(t, platforms, 3)
	assert.Len(t, features, 8)
	assert.Len(t, addons, 5)

	// Listings keep the authored order.
	assert.Equal(t, "web", platforms[0].ID)
	assert.Equal(t, "mobile", platforms[1].ID)
	assert.Equal(t, "web_mobile", platforms[2].ID)

	// Every listed entry resolves through the by-id lookup.
	for _, f := range features {
		got, err := svc.TechFeature(f.ID)
		require.NoError(t, err)
		assert.Equal(t, f, *got)
	}
}

func TestCatalogListingsAreCopies(t *testing.T) {
	svc := NewService()

	platforms := svc.PlatformBases()
	platforms[0].PriceUSD = 1

	again, err := svc.PlatformBase(platforms[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, float64(1), again.PriceUSD)
}
