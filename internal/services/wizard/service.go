// Package wizard drives the multi-step custom-build flow: a linear
// state machine that accumulates a selection, reprices it on every
// change, and hands off to the notifier or the checkout boundary.
package wizard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hexadigitall/internal/services/catalog"
	"hexadigitall/internal/services/checkout"
	"hexadigitall/internal/services/currency"
	"hexadigitall/internal/services/notifier"
	"hexadigitall/internal/services/pricing"
	"hexadigitall/internal/validation"
)

func validEmail(email string) bool {
	return validation.ValidEmail(email)
}

// Service drives wizard sessions.
type Service interface {
	Start(ctx context.Context) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)

	SetPlatform(ctx context.Context, id, platformID string) (*Session, error)
	SetFeatures(ctx context.Context, id string, featureIDs []string) (*Session, error)
	SetAddons(ctx context.Context, id string, addonIDs []string) (*Session, error)
	SetContact(ctx context.Context, id string, contact pricing.Contact) (*Session, error)

	Next(ctx context.Context, id string) (*Session, error)
	Back(ctx context.Context, id string) (*Session, error)
	Reset(ctx context.Context, id string) (*Session, error)

	Quote(ctx context.Context, id string, cctx currency.Context) (*Quote, error)

	Submit(ctx context.Context, id string, cctx currency.Context) (*SubmitResult, error)
	Checkout(ctx context.Context, id string, cctx currency.Context, successURL, cancelURL string) (*checkout.Session, error)
}

type service struct {
	store      Store
	catalog    catalog.Service
	calculator pricing.Calculator
	currency   currency.Service
	notifier   notifier.Service
	provider   checkout.Provider
	recorder   QuoteRecorder
	logger     *zap.Logger
}

// NewService creates the wizard service.
func NewService(
	store Store,
	cat catalog.Service,
	calc pricing.Calculator,
	cur currency.Service,
	notify notifier.Service,
	provider checkout.Provider,
	recorder QuoteRecorder,
	logger *zap.Logger,
) Service {
	if store == nil {
		panic("store is required")
	}
	if cat == nil {
		panic("catalog is required")
	}
	if calc == nil {
		panic("calculator is required")
	}
	if cur == nil {
		panic("currency service is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		store:      store,
		catalog:    cat,
		calculator: calc,
		currency:   cur,
		notifier:   notify,
		provider:   provider,
		recorder:   recorder,
		logger:     logger,
	}
}

func (s *service) Start(ctx context.Context) (*Session, error) {
	now := time.Now()
	session := &Session{
		ID:        uuid.New().String(),
		Step:      StepPlatform,
		Selection: pricing.NewSelection(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *service) Get(ctx context.Context, id string) (*Session, error) {
	return s.store.Get(ctx, id)
}

func (s *service) SetPlatform(ctx context.Context, id, platformID string) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		if _, err := s.catalog.PlatformBase(platformID); err != nil {
			return err
		}
		session.Selection.PlatformID = platformID
		return nil
	})
}

func (s *service) SetFeatures(ctx context.Context, id string, featureIDs []string) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		session.Selection.FeatureIDs = s.knownFeatures(featureIDs)
		return nil
	})
}

func (s *service) SetAddons(ctx context.Context, id string, addonIDs []string) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		session.Selection.AddonIDs = s.knownAddons(addonIDs)
		return nil
	})
}

func (s *service) SetContact(ctx context.Context, id string, contact pricing.Contact) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		session.Selection.Contact = contact
		return nil
	})
}

// knownFeatures deduplicates the ids, keeps insertion order, and drops
// ids the catalog does not know. Unknown ids should not occur from the
// UI; they are logged rather than failed so a stale client cannot
// wedge the flow.
func (s *service) knownFeatures(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, err := s.catalog.TechFeature(id); err != nil {
			s.logger.Warn("dropping unknown feature id", zap.String("id", id))
			continue
		}
		out = append(out, id)
	}
	return out
}

func (s *service) knownAddons(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, err := s.catalog.ServiceAddon(id); err != nil {
			s.logger.Warn("dropping unknown addon id", zap.String("id", id))
			continue
		}
		out = append(out, id)
	}
	return out
}

// mutate loads, applies, stamps, and saves a session. Mutations are
// rejected once the session reached the terminal state.
func (s *service) mutate(ctx context.Context, id string, apply func(*Session) error) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, ErrAlreadySubmitted
	}
	if err := apply(session); err != nil {
		return nil, err
	}
	session.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *service) Next(ctx context.Context, id string) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		if !session.StepComplete() {
			return ErrStepIncomplete
		}
		for i, step := range stepOrder {
			if step == session.Step {
				if i == len(stepOrder)-1 {
					return ErrWrongStep
				}
				session.Step = stepOrder[i+1]
				return nil
			}
		}
		return ErrWrongStep
	})
}

func (s *service) Back(ctx context.Context, id string) (*Session, error) {
	return s.mutate(ctx, id, func(session *Session) error {
		for i, step := range stepOrder {
			if step == session.Step {
				if i == 0 {
					return ErrAtFirstStep
				}
				session.Step = stepOrder[i-1]
				return nil
			}
		}
		return ErrWrongStep
	})
}

// Reset discards the selection and returns the wizard to the first
// step. Unlike other mutations it is allowed after submission: that is
// how "start over" works.
func (s *service) Reset(ctx context.Context, id string) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Selection = pricing.NewSelection()
	session.Step = StepPlatform
	session.Submitted = false
	session.InFlight = false
	session.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *service) Quote(ctx context.Context, id string, cctx currency.Context) (*Quote, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	breakdown := s.calculator.Calculate(session.Selection)
	return buildQuote(breakdown, cctx, s.currency)
}

// Submit packages the priced selection into a quote-request
// notification. On failure the session is preserved untouched so the
// shopper can retry without re-entering anything.
func (s *service) Submit(ctx context.Context, id string, cctx currency.Context) (*SubmitResult, error) {
	session, quote, err := s.beginTerminal(ctx, id, cctx)
	if err != nil {
		return nil, err
	}
	defer s.endTerminal(ctx, session)

	reference := newReference()
	payload := notifier.QuotePayload{
		Reference:       reference,
		Email:           session.Selection.Contact.Email,
		Company:         session.Selection.Contact.Company,
		Phone:           session.Selection.Contact.Phone,
		Currency:        quote.Currency,
		CurrencySymbol:  quote.Symbol,
		Total:           quote.Total,
		DiscountApplied: quote.DiscountApplied,
	}
	for _, line := range quote.Lines {
		payload.Lines = append(payload.Lines, notifier.QuoteLine{Name: line.Name, Amount: line.Amount})
	}

	if err := s.notifier.SubmitQuoteRequest(ctx, payload); err != nil {
		return nil, err
	}

	s.record(ctx, session, quote, reference, false)

	session.Step = StepSubmitted
	session.Submitted = true
	session.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	return &SubmitResult{Reference: reference, Session: session}, nil
}

// Checkout creates a payment session for the priced selection. The
// submitted amount is the quote total exactly as displayed.
func (s *service) Checkout(ctx context.Context, id string, cctx currency.Context, successURL, cancelURL string) (*checkout.Session, error) {
	session, quote, err := s.beginTerminal(ctx, id, cctx)
	if err != nil {
		return nil, err
	}
	defer s.endTerminal(ctx, session)

	reference := newReference()
	payload := checkout.Payload{
		Amount:        quote.Total,
		Currency:      quote.Currency,
		Description:   summary(quote.Breakdown),
		CustomerEmail: session.Selection.Contact.Email,
		Reference:     reference,
		SuccessURL:    successURL,
		CancelURL:     cancelURL,
		Metadata: map[string]string{
			"wizard_session": session.ID,
		},
	}

	checkoutSession, err := s.provider.CreateSession(ctx, payload)
	if err != nil {
		return nil, err
	}

	s.record(ctx, session, quote, reference, true)
	return checkoutSession, nil
}

// beginTerminal validates and locks a session for a terminal action.
// The in-flight flag is persisted so a second request arriving while
// the first is still talking to the boundary is rejected.
func (s *service) beginTerminal(ctx context.Context, id string, cctx currency.Context) (*Session, *Quote, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if session.Submitted {
		return nil, nil, ErrAlreadySubmitted
	}
	if session.InFlight {
		return nil, nil, ErrSubmitInFlight
	}
	if session.Step != StepReview {
		return nil, nil, ErrWrongStep
	}
	if !session.Selection.HasPlatform() {
		return nil, nil, ErrStepIncomplete
	}
	if !validEmail(session.Selection.Contact.Email) {
		return nil, nil, ErrInvalidContact
	}

	breakdown := s.calculator.Calculate(session.Selection)
	quote, err := buildQuote(breakdown, cctx, s.currency)
	if err != nil {
		return nil, nil, err
	}

	session.InFlight = true
	if err := s.store.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, quote, nil
}

func (s *service) endTerminal(ctx context.Context, session *Session) {
	session.InFlight = false
	if err := s.store.Save(ctx, session); err != nil {
		s.logger.Warn("failed to clear in-flight flag",
			zap.Error(err),
			zap.String("session_id", session.ID))
	}
}

// record writes the durable quote trail. Recording is best effort: the
// notification or payment already succeeded, so a storage hiccup must
// not fail the shopper's action.
func (s *service) record(ctx context.Context, session *Session, quote *Quote, reference string, paymentStarted bool) {
	if s.recorder == nil {
		return
	}
	record := QuoteRecord{
		Reference:       reference,
		Selection:       session.Selection,
		Currency:        quote.Currency,
		TotalUSD:        quote.TotalUSD,
		TotalDisplay:    quote.Total,
		DiscountApplied: quote.DiscountApplied,
		PaymentStarted:  paymentStarted,
		Metadata: map[string]string{
			"wizard_session": session.ID,
		},
	}
	if err := s.recorder.RecordQuote(ctx, record); err != nil {
		s.logger.Error("failed to record quote request",
			zap.Error(err),
			zap.String("reference", reference))
	}
}

func newReference() string {
	return "HDG-" + uuid.New().String()[:8]
}
