// Package packages derives display view-models for tiered service
// offerings and individual services. Tiers carry fixed prices, so
// there is no calculator here; amounts still pass through the single
// discount gate and converter before anyone sees them.
package packages

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hexadigitall/internal/models"
	"hexadigitall/internal/services/checkout"
	"hexadigitall/internal/services/currency"
	"hexadigitall/internal/validation"
)

// Service exposes service packages in display form.
type Service interface {
	Groups(ctx context.Context, cctx currency.Context) ([]GroupView, error)
	GroupBySlug(ctx context.Context, slug string, cctx currency.Context) (*GroupView, error)
	IndividualServices(ctx context.Context, cctx currency.Context) ([]ServiceView, error)
	CheckoutTier(ctx context.Context, input CheckoutInput, cctx currency.Context) (*CheckoutResult, error)
}

type service struct {
	source   Source
	currency currency.Service
	provider checkout.Provider
	logger   *zap.Logger
}

// NewService creates the packages service.
func NewService(source Source, cur currency.Service, provider checkout.Provider, logger *zap.Logger) Service {
	if source == nil {
		panic("source is required")
	}
	if cur == nil {
		panic("currency service is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{source: source, currency: cur, provider: provider, logger: logger}
}

func (s *service) Groups(ctx context.Context, cctx currency.Context) ([]GroupView, error) {
	groups, err := s.source.Groups(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		view, err := DeriveGroupView(g, cctx, s.currency)
		if err != nil {
			return nil, err
		}
		out = append(out, *view)
	}
	return out, nil
}

func (s *service) GroupBySlug(ctx context.Context, slug string, cctx currency.Context) (*GroupView, error) {
	group, err := s.source.GroupBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return DeriveGroupView(*group, cctx, s.currency)
}

func (s *service) IndividualServices(ctx context.Context, cctx currency.Context) ([]ServiceView, error) {
	services, err := s.source.IndividualServices(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ServiceView, 0, len(services))
	for _, svc := range services {
		view, err := DeriveServiceView(svc, cctx, s.currency)
		if err != nil {
			return nil, err
		}
		out = append(out, *view)
	}
	return out, nil
}

func (s *service) CheckoutTier(ctx context.Context, input CheckoutInput, cctx currency.Context) (*CheckoutResult, error) {
	if !validation.ValidEmail(input.Email) {
		return nil, ErrInvalidEmail
	}

	group, err := s.source.GroupBySlug(ctx, input.GroupSlug)
	if err != nil {
		return nil, err
	}

	var tier *models.ServicePackageTier
	for i := range group.Tiers {
		if group.Tiers[i].ID == input.TierID {
			tier = &group.Tiers[i]
			break
		}
	}
	if tier == nil {
		return nil, ErrTierNotFound
	}

	amount, err := displayAmount(tier.PriceUSD, cctx, s.currency)
	if err != nil {
		return nil, err
	}

	payload := checkout.Payload{
		Amount:        amount,
		Currency:      cctx.Code,
		Description:   fmt.Sprintf("%s — %s", group.Name, tier.Name),
		CustomerEmail: input.Email,
		Reference:     "SVC-" + uuid.New().String()[:8],
		SuccessURL:    input.SuccessURL,
		CancelURL:     input.CancelURL,
		Metadata: map[string]string{
			"group_slug": group.Slug,
			"tier":       tier.Tier,
		},
	}

	session, err := s.provider.CreateSession(ctx, payload)
	if err != nil {
		return nil, err
	}

	return &CheckoutResult{
		RedirectURL: session.RedirectURL,
		Amount:      amount,
		Currency:    cctx.Code,
	}, nil
}

// DeriveGroupView converts a stored package group into its display
// form for a currency context. Pure: content in, view-model out.
func DeriveGroupView(g models.ServicePackageGroup, cctx currency.Context, cur currency.Service) (*GroupView, error) {
	view := &GroupView{
		Slug:        g.Slug,
		Name:        g.Name,
		Description: g.Description,
		Tiers:       make([]TierView, 0, len(g.Tiers)),
	}

	symbol := lookupSymbol(cctx.Code, cur)
	discounted := cur.DiscountEligible(cctx)

	for _, t := range g.Tiers {
		price, err := displayAmount(t.PriceUSD, cctx, cur)
		if err != nil {
			return nil, err
		}
		view.Tiers = append(view.Tiers, TierView{
			ID:              t.ID,
			Name:            t.Name,
			Tier:            t.Tier,
			Price:           price,
			PriceUSD:        t.PriceUSD,
			Currency:        cctx.Code,
			Symbol:          symbol,
			Billing:         t.Billing,
			DeliveryTime:    t.DeliveryTime,
			Features:        t.Features,
			Popular:         t.Popular,
			DiscountApplied: discounted,
		})
	}
	return view, nil
}

// DeriveServiceView converts an individual service into display form.
func DeriveServiceView(svc models.IndividualService, cctx currency.Context, cur currency.Service) (*ServiceView, error) {
	price, err := displayAmount(svc.PriceUSD, cctx, cur)
	if err != nil {
		return nil, err
	}
	return &ServiceView{
		Slug:            svc.Slug,
		Name:            svc.Name,
		Description:     svc.Description,
		Price:           price,
		PriceUSD:        svc.PriceUSD,
		Currency:        cctx.Code,
		Symbol:          lookupSymbol(cctx.Code, cur),
		Billing:         svc.Billing,
		DeliveryTime:    svc.DeliveryTime,
		Features:        svc.Features,
		DiscountApplied: cur.DiscountEligible(cctx),
	}, nil
}

func displayAmount(amountUSD float64, cctx currency.Context, cur currency.Service) (float64, error) {
	return cur.ConvertForDisplay(cur.ApplyDiscountIfEligible(amountUSD, cctx), cctx.Code)
}

func lookupSymbol(code string, cur currency.Service) string {
	if c, err := cur.Lookup(code); err == nil {
		return c.Symbol
	}
	return "$"
}
