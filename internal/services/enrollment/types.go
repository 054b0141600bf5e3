package enrollment

import (
	"context"

	"hexadigitall/internal/models"
)

// SpotsWarningThreshold is the remaining-capacity level at which the
// preview starts warning that a course is nearly full.
const SpotsWarningThreshold = 5

// StudentDetails is the buyer block collected before payment.
// Experience and goals are optional.
type StudentDetails struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Experience string `json:"experience,omitempty"`
	Goals      string `json:"goals,omitempty"`
}

// PlanQuote is one payment plan with its derived amounts in the
// display currency, discounted and rounded.
type PlanQuote struct {
	Plan                    PaymentPlan `json:"plan"`
	AmountDueToday          float64     `json:"amountDueToday"`
	PerRemainingInstallment float64     `json:"perRemainingInstallment"`
	RemainingInstallments   int         `json:"remainingInstallments"`
	Currency                string      `json:"currency"`
	DiscountApplied         bool        `json:"discountApplied"`
}

// Preview is the course view shown before enrollment: availability,
// display price, and the offered payment plans.
type Preview struct {
	Course       *models.Course `json:"course"`
	Price        float64        `json:"price"`
	Currency     string         `json:"currency"`
	Full         bool           `json:"full"`
	SpotsLeft    int            `json:"spotsLeft"`
	SpotsWarning bool           `json:"spotsWarning"`
	Discounted   bool           `json:"discounted"`
	Plans        []PlanQuote    `json:"plans"`
}

// EnrollInput is a complete enrollment submission.
type EnrollInput struct {
	CourseSlug string         `json:"courseSlug"`
	Details    StudentDetails `json:"details"`
	PlanID     string         `json:"planId"`
	SuccessURL string         `json:"successUrl"`
	CancelURL  string         `json:"cancelUrl"`
}

// EnrollResult reports a created payment session.
type EnrollResult struct {
	RedirectURL    string  `json:"redirectUrl"`
	AmountDueToday float64 `json:"amountDueToday"`
	Currency       string  `json:"currency"`
}

// CourseSource reads course documents from the content store.
type CourseSource interface {
	Courses(ctx context.Context) ([]models.Course, error)
	CourseBySlug(ctx context.Context, slug string) (*models.Course, error)
}

// Recorder persists enrollment submissions.
type Recorder interface {
	RecordEnrollment(ctx context.Context, record *models.EnrollmentRecord) error
}
