package wizard

import (
	"context"
	"time"

	"hexadigitall/internal/services/pricing"
)

// Step identifies one state of the linear wizard flow.
type Step string

const (
	StepPlatform  Step = "platform"
	StepFeatures  Step = "features"
	StepAddons    Step = "addons"
	StepContact   Step = "contact"
	StepReview    Step = "review"
	StepSubmitted Step = "submitted"
)

// stepOrder is the forward path through the wizard. StepSubmitted is
// terminal and reached only through Submit.
var stepOrder = []Step{StepPlatform, StepFeatures, StepAddons, StepContact, StepReview}

// Session is one shopper's wizard state. It lives in the session store
// and is mutated step by step; pricing never mutates it.
type Session struct {
	ID        string            `json:"id"`
	Step      Step              `json:"step"`
	Selection pricing.Selection `json:"selection"`
	Submitted bool              `json:"submitted"`
	InFlight  bool              `json:"inFlight"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// StepComplete reports whether the current step's completion predicate
// holds: a platform is required, features and add-ons are optional,
// contact needs a valid email.
func (s *Session) StepComplete() bool {
	switch s.Step {
	case StepPlatform:
		return s.Selection.HasPlatform()
	case StepContact:
		return validEmail(s.Selection.Contact.Email)
	default:
		return true
	}
}

// Store persists wizard sessions.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
}

// QuoteRecorder persists the durable trail of submitted quotes. The
// gorm-backed implementation lives in the repositories package.
type QuoteRecorder interface {
	RecordQuote(ctx context.Context, record QuoteRecord) error
}

// QuoteRecord is the persistence-facing snapshot of a terminal action.
// Metadata mirrors what the checkout payload carries so the durable
// trail can be joined back to the payment session.
type QuoteRecord struct {
	Reference       string
	Selection       pricing.Selection
	Currency        string
	TotalUSD        float64
	TotalDisplay    float64
	DiscountApplied bool
	PaymentStarted  bool
	Metadata        map[string]string
}

// SubmitResult reports a successful quote-request submission.
type SubmitResult struct {
	Reference string   `json:"reference"`
	Session   *Session `json:"session"`
}
