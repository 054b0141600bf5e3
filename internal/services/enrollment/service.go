// Package enrollment implements the course checkout flow: preview with
// availability, student details, payment-plan choice, and the handoff
// to the payment boundary. The amount submitted to the boundary is
// always the amount the plan quote displayed.
package enrollment

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

// Service drives course enrollment.
type Service interface {
	Courses(ctx context.Context) ([]models.Course, error)
	Preview(ctx context.Context, slug string, cctx currency.Context) (*Preview, error)
	Enroll(ctx context.Context, input EnrollInput, cctx currency.Context) (*EnrollResult, error)
}

type service struct {
	courses  CourseSource
	currency currency.Service
	provider checkout.Provider
	recorder Recorder
	logger   *zap.Logger
}

// NewService creates the enrollment service.
func NewService(
	courses CourseSource,
	cur currency.Service,
	provider checkout.Provider,
	recorder Recorder,
	logger *zap.Logger,
) Service {
	if courses == nil {
		panic("course source is required")
	}
	if cur == nil {
		panic("currency service is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		courses:  courses,
		currency: cur,
		provider: provider,
		recorder: recorder,
		logger:   logger,
	}
}

func (s *service) Courses(ctx context.Context) ([]models.Course, error) {
	return s.courses.Courses(ctx)
}

func (s *service) Preview(ctx context.Context, slug string, cctx currency.Context) (*Preview, error) {
	course, err := s.courses.CourseBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	price, err := s.displayAmount(course.PriceUSD, cctx)
	if err != nil {
		return nil, err
	}

	preview := &Preview{
		Course:       course,
		Price:        price,
		Currency:     cctx.Code,
		Full:         course.IsFull(),
		SpotsLeft:    course.SpotsLeft(),
		SpotsWarning: course.SpotsLeft() > 0 && course.SpotsLeft() <= SpotsWarningThreshold,
		Discounted:   s.currency.DiscountEligible(cctx),
	}

	for _, plan := range EligiblePlans(course.PriceUSD) {
		quote, err := s.planQuote(plan, course.PriceUSD, cctx)
		if err != nil {
			return nil, err
		}
		preview.Plans = append(preview.Plans, *quote)
	}
	return preview, nil
}

// planQuote derives a plan's display amounts. The discount applies to
// the principal only; the processing fee rides on top undiscounted.
// Conversion and rounding happen once, at the end.
func (s *service) planQuote(plan PaymentPlan, principalUSD float64, cctx currency.Context) (*PlanQuote, error) {
	discounted := s.currency.ApplyDiscountIfEligible(principalUSD, cctx)

	dueToday, err := s.currency.ConvertForDisplay(plan.AmountDueTodayUSD(discounted), cctx.Code)
	if err != nil {
		return nil, err
	}
	perInstallment, err := s.currency.ConvertForDisplay(plan.PerRemainingInstallmentUSD(discounted), cctx.Code)
	if err != nil {
		return nil, err
	}

	return &PlanQuote{
		Plan:                    plan,
		AmountDueToday:          dueToday,
		PerRemainingInstallment: perInstallment,
		RemainingInstallments:   plan.Installments - 1,
		Currency:                cctx.Code,
		DiscountApplied:         s.currency.DiscountEligible(cctx),
	}, nil
}

func (s *service) Enroll(ctx context.Context, input EnrollInput, cctx currency.Context) (*EnrollResult, error) {
	v := validation.New()
	v.Required("fullName", input.Details.FullName)
	v.Required("phone", input.Details.Phone)
	v.Email("email", input.Details.Email)
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDetails, v.Errors)
	}

	course, err := s.courses.CourseBySlug(ctx, input.CourseSlug)
	if err != nil {
		return nil, err
	}
	if course.IsFull() {
		return nil, ErrCourseFull
	}

	plan, err := PlanByID(input.PlanID, course.PriceUSD)
	if err != nil {
		return nil, err
	}

	quote, err := s.planQuote(*plan, course.PriceUSD, cctx)
	if err != nil {
		return nil, err
	}

	reference := "ENR-" + uuid.New().String()[:8]
	payload := checkout.Payload{
		Amount:        quote.AmountDueToday,
		Currency:      cctx.Code,
		Description:   fmt.Sprintf("%s — %s", course.Title, plan.Name),
		CustomerEmail: input.Details.Email,
		Reference:     reference,
		SuccessURL:    input.SuccessURL,
		CancelURL:     input.CancelURL,
		Metadata: map[string]string{
			"course_slug": course.Slug,
			"plan_id":     plan.ID,
		},
	}

	checkoutSession, err := s.provider.CreateSession(ctx, payload)
	if err != nil {
		return nil, err
	}

	if s.recorder != nil {
		record := &models.EnrollmentRecord{
			CourseID:          course.ID,
			FullName:          input.Details.FullName,
			Email:             input.Details.Email,
			Phone:             input.Details.Phone,
			Experience:        input.Details.Experience,
			Goals:             input.Details.Goals,
			PlanID:            plan.ID,
			Currency:          cctx.Code,
			AmountDueToday:    quote.AmountDueToday,
			DiscountApplied:   quote.DiscountApplied,
			CheckoutSessionID: checkoutSession.ID,
			Status:            models.RequestStatusPaid,
		}
		if err := s.recorder.RecordEnrollment(ctx, record); err != nil {
			s.logger.Error("failed to record enrollment",
				zap.Error(err),
				zap.String("reference", reference))
		}
	}

	return &EnrollResult{
		RedirectURL:    checkoutSession.RedirectURL,
		AmountDueToday: quote.AmountDueToday,
		Currency:       cctx.Code,
	}, nil
}

func (s *service) displayAmount(amountUSD float64, cctx currency.Context) (float64, error) {
	return s.currency.ConvertForDisplay(s.currency.ApplyDiscountIfEligible(amountUSD, cctx), cctx.Code)
}
