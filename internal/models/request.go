package models

import (
	"time"
)

// Request statuses.
const (
	RequestStatusSubmitted = "submitted"
	RequestStatusPaid      = "payment_initiated"
)

// QuoteRequest is the persisted record of a submitted custom-build
// quote. The wizard session itself lives in Redis; this row is the
// durable trail behind the notification email.
type QuoteRequest struct {
	ID              uint       `gorm:"primarykey" json:"id"`
	Reference       string     `gorm:"uniqueIndex;not null" json:"reference"`
	Email           string     `gorm:"not null" json:"email"`
	Company         string     `json:"company"`
	Phone           string     `json:"phone"`
	PlatformID      string     `json:"platformId"`
	FeatureIDs      StringList `gorm:"type:jsonb" json:"featureIds"`
	AddonIDs        StringList `gorm:"type:jsonb" json:"addonIds"`
	Currency        string     `gorm:"default:'USD'" json:"currency"`
	TotalUSD        float64    `json:"totalUSD"`
	TotalDisplay    float64    `json:"totalDisplay"`
	DiscountApplied bool       `json:"discountApplied"`
	Metadata        JSON       `gorm:"type:jsonb" json:"metadata"`
	Status          string     `gorm:"default:'submitted'" json:"status"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EnrollmentRecord is the persisted record of a course enrollment
// submission and its checkout handoff.
type EnrollmentRecord struct {
	ID                uint    `gorm:"primarykey" json:"id"`
	CourseID          uint    `gorm:"index;not null" json:"courseId"`
	FullName          string  `gorm:"not null" json:"fullName"`
	Email             string  `gorm:"not null" json:"email"`
	Phone             string  `gorm:"not null" json:"phone"`
	Experience        string  `json:"experience"`
	Goals             string  `json:"goals"`
	PlanID            string  `gorm:"not null" json:"planId"`
	Currency          string  `gorm:"default:'USD'" json:"currency"`
	AmountDueToday    float64 `json:"amountDueToday"`
	DiscountApplied   bool    `json:"discountApplied"`
	CheckoutSessionID string  `json:"checkoutSessionId"`
	Status            string  `gorm:"default:'payment_initiated'" json:"status"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
