package models

import (
	"time"
)

// Service package tiers.
const (
	TierBasic      = "basic"
	TierStandard   = "standard"
	TierPremium    = "premium"
	TierEnterprise = "enterprise"
)

// Billing cycles shared by tiers and catalog add-ons.
const (
	BillingOneTime = "one_time"
	BillingMonthly = "monthly"
)

// ServicePackageGroup is a named family of tiered service offerings
// (e.g. "Web & Mobile Development") sourced from the content store.
type ServicePackageGroup struct {
	ID          uint                 `gorm:"primarykey" json:"id"`
	Slug        string               `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string               `gorm:"not null" json:"name"`
	Description string               `json:"description"`
	Tiers       []ServicePackageTier `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"tiers"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ServicePackageTier is one fixed-price option within a group. Position
// preserves the authored ordering (basic before premium).
type ServicePackageTier struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	GroupID      uint       `gorm:"index;not null" json:"groupId"`
	Name         string     `gorm:"not null" json:"name"`
	Tier         string     `gorm:"not null" json:"tier"`
	PriceUSD     float64    `gorm:"not null" json:"priceUSD"`
	Billing      string     `gorm:"default:'one_time'" json:"billing"`
	DeliveryTime string     `json:"deliveryTime"`
	Features     StringList `gorm:"type:jsonb" json:"features"`
	Popular      bool       `gorm:"default:false" json:"popular"`
	Position     int        `gorm:"default:0" json:"position"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IndividualService is a standalone purchasable unit with the same
// pricing shape as a tier but no group.
type IndividualService struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Slug         string     `gorm:"uniqueIndex;not null" json:"slug"`
	Name         string     `gorm:"not null" json:"name"`
	Description  string     `json:"description"`
	PriceUSD     float64    `gorm:"not null" json:"priceUSD"`
	Billing      string     `gorm:"default:'one_time'" json:"billing"`
	DeliveryTime string     `json:"deliveryTime"`
	Features     StringList `gorm:"type:jsonb" json:"features"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
