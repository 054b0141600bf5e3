package packages

import (
	"context"

	"hexadigitall/internal/models"
)

// TierView is the display-ready form of a package tier: its fixed USD
// price pushed through the same conversion and discount gate as every
// other amount in the system.
type TierView struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	Tier            string   `json:"tier"`
	Price           float64  `json:"price"`
	PriceUSD        float64  `json:"priceUSD"`
	Currency        string   `json:"currency"`
	Symbol          string   `json:"symbol"`
	Billing         string   `json:"billing"`
	DeliveryTime    string   `json:"deliveryTime"`
	Features        []string `json:"features"`
	Popular         bool     `json:"popular"`
	DiscountApplied bool     `json:"discountApplied"`
}

// GroupView is the display-ready form of a package group.
type GroupView struct {
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Tiers       []TierView `json:"tiers"`
}

// ServiceView is the display-ready form of an individual service.
type ServiceView struct {
	Slug            string   `json:"slug"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	PriceUSD        float64  `json:"priceUSD"`
	Currency        string   `json:"currency"`
	Symbol          string   `json:"symbol"`
	Billing         string   `json:"billing"`
	DeliveryTime    string   `json:"deliveryTime"`
	Features        []string `json:"features"`
	DiscountApplied bool     `json:"discountApplied"`
}

// CheckoutInput is a tier purchase submission.
type CheckoutInput struct {
	GroupSlug  string `json:"groupSlug"`
	TierID     uint   `json:"tierId"`
	Email      string `json:"email"`
	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
}

// CheckoutResult reports a created payment session.
type CheckoutResult struct {
	RedirectURL string  `json:"redirectUrl"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

// Source reads service package documents from the content store.
type Source interface {
	Groups(ctx context.Context) ([]models.ServicePackageGroup, error)
	GroupBySlug(ctx context.Context, slug string) (*models.ServicePackageGroup, error)
	IndividualServices(ctx context.Context) ([]models.IndividualService, error)
}
