package packages

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hexadigitall/internal/models"
	"hexadigitall/internal/services/checkout"
	"hexadigitall/internal/services/currency"
)

type fakeSource struct {
	groups      []models.ServicePackageGroup
	individuals []models.IndividualService
}

func (f *fakeSource) Groups(ctx context.Context) ([]models.ServicePackageGroup, error) {
	return f.groups, nil
}

func (f *fakeSource) GroupBySlug(ctx context.Context, slug string) (*models.ServicePackageGroup, error) {
	for i := range f.groups {
		if f.groups[i].Slug == slug {
			group := f.groups[i]
			return &group, nil
		}
	}
	return nil, ErrGroupNotFound
}

func (f *fakeSource) IndividualServices(ctx context.Context) ([]models.IndividualService, error) {
	return f.individuals, nil
}

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) CreateSession(ctx context.Context, payload checkout.Payload) (*checkout.Session, error) {
	args := m.Called(ctx, payload)
	if s := args.Get(0); s != nil {
		return s.(*checkout.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func testCurrency(windowActive bool) currency.Service {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	cfg := currency.Config{
		Rates: map[string]float64{"USD": 1, "NGN": 1500},
		Now:   func() time.Time { return now },
	}
	if windowActive {
		cfg.LaunchStart = now.Add(-time.Hour)
		cfg.LaunchEnd = now.Add(time.Hour)
	}
	return currency.NewService(cfg)
}

func testSource() *fakeSource {
	return &fakeSource{
		groups: []models.ServicePackageGroup{
			{
				Slug:        "business-plan-and-logo",
				Name:        "Business Plan & Logo",
				Description: "Plan, brand, launch.",
				Tiers: []models.ServicePackageTier{
					{ID: 1, Name: "Starter", Tier: models.TierBasic, PriceUSD: 150, Billing: models.BillingOneTime, Features: models.StringList{"Business plan", "Logo"}},
					{ID: 2, Name: "Growth", Tier: models.TierStandard, PriceUSD: 300, Billing: models.BillingOneTime, Popular: true},
					{ID: 3, Name: "Scale", Tier: models.TierPremium, PriceUSD: 500, Billing: models.BillingOneTime},
				},
			},
			{
				Slug: "social-media-marketing",
				Name: "Social Media Marketing",
				Tiers: []models.ServicePackageTier{
					{ID: 4, Name: "Essentials", Tier: models.TierBasic, PriceUSD: 100, Billing: models.BillingMonthly},
				},
			},
		},
		individuals: []models.IndividualService{
			{Slug: "cv-revamp", Name: "CV Revamp", PriceUSD: 50, Billing: models.BillingOneTime},
			{Slug: "website-audit", Name: "Website Audit", PriceUSD: 120, Billing: models.BillingOneTime},
		},
	}
}

func TestDeriveGroupView(t *testing.T) {
	cur := testCurrency(false)

	t.Run("USD view keeps catalog prices", func(t *testing.T) {
		view, err := DeriveGroupView(testSource().groups[0], currency.Context{Code: "USD"}, cur)
		require.NoError(t, err)

		assert.Equal(t, "business-plan-and-logo", view.Slug)
		require.Len(t, view.Tiers, 3)
		assert.Equal(t, float64(150), view.Tiers[0].Price)
		assert.Equal(t, float64(300), view.Tiers[1].Price)
		assert.Equal(t, float64(500), view.Tiers[2].Price)
		assert.True(t, view.Tiers[1].Popular)
		assert.Equal(t, "$", view.Tiers[0].Symbol)
		assert.False(t, view.Tiers[0].DiscountApplied)
	})

	t.Run("NGN launch special halves every tier", func(t *testing.T) {
		active := testCurrency(true)
		view, err := DeriveGroupView(testSource().groups[0], currency.Context{Code: "NGN", Local: true}, active)
		require.NoError(t, err)

		assert.Equal(t, float64(112500), view.Tiers[0].Price)
		assert.Equal(t, float64(225000), view.Tiers[1].Price)
		assert.Equal(t, float64(375000), view.Tiers[2].Price)
		for _, tier := range view.Tiers {
			assert.True(t, tier.DiscountApplied)
			assert.Equal(t, "NGN", tier.Currency)
		}
	})

	t.Run("NGN outside the window converts without discount", func(t *testing.T) {
		view, err := DeriveGroupView(testSource().groups[0], currency.Context{Code: "NGN", Local: true}, cur)
		require.NoError(t, err)

		assert.Equal(t, float64(225000), view.Tiers[0].Price)
		assert.False(t, view.Tiers[0].DiscountApplied)
	})
}

func TestDeriveServiceView(t *testing.T) {
	view, err := DeriveServiceView(testSource().individuals[0], currency.Context{Code: "USD"}, testCurrency(false))
	require.NoError(t, err)

	assert.Equal(t, "cv-revamp", view.Slug)
	assert.Equal(t, float64(50), view.Price)
	assert.Equal(t, float64(50), view.PriceUSD)
	assert.Equal(t, models.BillingOneTime, view.Billing)
}

func TestGroups(t *testing.T) {
	svc := NewService(testSource(), testCurrency(false), nil, zap.NewNop())
	ctx := context.Background()

	views, err := svc.Groups(ctx, currency.Context{Code: "USD"})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "business-plan-and-logo", views[0].Slug)

	view, err := svc.GroupBySlug(ctx, "social-media-marketing", currency.Context{Code: "USD"})
	require.NoError(t, err)
	assert.Equal(t, models.BillingMonthly, view.Tiers[0].Billing)

	_, err = svc.GroupBySlug(ctx, "nope", currency.Context{Code: "USD"})
	assert.ErrorIs(t, err, ErrGroupNotFound)

	individuals, err := svc.IndividualServices(ctx, currency.Context{Code: "USD"})
	require.NoError(t, err)
	assert.Len(t, individuals, 2)
}

func TestCheckoutTier(t *testing.T) {
	ctx := context.Background()

	t.Run("submitted amount equals displayed amount", func(t *testing.T) {
		provider := new(mockProvider)
		provider.On("CreateSession", mock.Anything, mock.MatchedBy(func(p checkout.Payload) bool {
			return p.Amount == 300 && p.Currency == "USD"
		})).Return(&checkout.Session{ID: "cs_1", RedirectURL: "https://pay.example/cs_1"}, nil)

		svc := NewService(testSource(), testCurrency(false), provider, zap.NewNop())
		result, err := svc.CheckoutTier(ctx, CheckoutInput{
			GroupSlug:  "business-plan-and-logo",
			TierID:     2,
			Email:      "buyer@example.com",
			SuccessURL: "https://ok",
			CancelURL:  "https://no",
		}, currency.Context{Code: "USD"})
		require.NoError(t, err)

		assert.Equal(t, float64(300), result.Amount)
		assert.Equal(t, "https://pay.example/cs_1", result.RedirectURL)
		provider.AssertExpectations(t)
	})

	t.Run("rejects a bad email", func(t *testing.T) {
		svc := NewService(testSource(), testCurrency(false), nil, zap.NewNop())
		_, err := svc.CheckoutTier(ctx, CheckoutInput{
			GroupSlug: "business-plan-and-logo",
			TierID:    2,
			Email:     "nope",
		}, currency.Context{Code: "USD"})
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("rejects an unknown tier", func(t *testing.T) {
		svc := NewService(testSource(), testCurrency(false), nil, zap.NewNop())
		_, err := svc.CheckoutTier(ctx, CheckoutInput{
			GroupSlug: "business-plan-and-logo",
			TierID:    99,
			Email:     "buyer@example.com",
		}, currency.Context{Code: "USD"})
		assert.ErrorIs(t, err, ErrTierNotFound)
	})
}
