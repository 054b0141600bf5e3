package enrollment

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

type fakeCourseSource struct {
	courses []models.Course
}

func (f *fakeCourseSource) Courses(ctx context.Context) ([]models.Course, error) {
	return f.courses, nil
}

func (f *fakeCourseSource) CourseBySlug(ctx context.Context, slug string) (*models.Course, error) {
	for i := range f.courses {
		if f.courses[i].Slug == slug {
			course := f.courses[i]
			return &course, nil
		}
	}
	return nil, ErrCourseNotFound
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

func testCourses() *fakeCourseSource {
	return &fakeCourseSource{courses: []models.Course{
		{Slug: "bootcamp", Title: "Web Development Bootcamp", PriceUSD: 1000, MaxStudents: 20, CurrentEnrollments: 3},
		{Slug: "intro", Title: "Intro Workshop", PriceUSD: 199, MaxStudents: 30},
		{Slug: "threshold", Title: "Threshold Course", PriceUSD: 200, MaxStudents: 30},
		{Slug: "packed", Title: "Packed Course", PriceUSD: 400, MaxStudents: 10, CurrentEnrollments: 10},
		{Slug: "closing", Title: "Nearly Full Course", PriceUSD: 400, MaxStudents: 10, CurrentEnrollments: 7},
	}}
}

func validDetails() StudentDetails {
	return StudentDetails{
		FullName: "Ada Obi",
		Email:    "ada@example.com",
		Phone:    "+2348012345678",
	}
}

func TestPaymentPlans(t *testing.T) {
	t.Run("split in two on a $1000 course", func(t *testing.T) {
		// 50% down plus the $10 fee, one remaining payment of $500.
		assert.Equal(t, float64(510), PlanSplit2.AmountDueTodayUSD(1000))
		assert.Equal(t, float64(500), PlanSplit2.PerRemainingInstallmentUSD(1000))
	})

	t.Run("three monthly payments on a $1000 course", func(t *testing.T) {
		// 35% down plus the $20 fee, then two payments of $325.
		assert.Equal(t, float64(370), PlanMonthly3.AmountDueTodayUSD(1000))
		assert.Equal(t, float64(325), PlanMonthly3.PerRemainingInstallmentUSD(1000))
	})

	t.Run("full payment carries no fee", func(t *testing.T) {
		assert.Equal(t, float64(1000), PlanFull.AmountDueTodayUSD(1000))
		assert.Equal(t, float64(0), PlanFull.PerRemainingInstallmentUSD(1000))
	})

	t.Run("installments sum to principal plus fee", func(t *testing.T) {
		for _, plan := range []PaymentPlan{PlanFull, PlanSplit2, PlanMonthly3} {
			total := plan.AmountDueTodayUSD(1000) +
				plan.PerRemainingInstallmentUSD(1000)*float64(plan.Installments-1)
			assert.Equal(t, 1000+plan.ProcessingFeeUSD, total, plan.ID)
		}
	})

	t.Run("threshold gates installment plans", func(t *testing.T) {
		assert.Len(t, EligiblePlans(199), 1)
		assert.Equal(t, PlanFull.ID, EligiblePlans(199)[0].ID)
		assert.Len(t, EligiblePlans(200), 3)
	})

	t.Run("plan lookup honors eligibility", func(t *testing.T) {
		plan, err := PlanByID("split_2", 1000)
		require.NoError(t, err)
		assert.Equal(t, "split_2", plan.ID)

		_, err = PlanByID("split_2", 199)
		assert.ErrorIs(t, err, ErrPlanNotAvailable)

		_, err = PlanByID("lifetime", 1000)
		assert.ErrorIs(t, err, ErrPlanNotAvailable)
	})
}

func TestPreview(t *testing.T) {
	svc := NewService(testCourses(), testCurrency(false), nil, nil, zap.NewNop())
	ctx := context.Background()

	t.Run("offers all plans above the threshold", func(t *testing.T) {
		preview, err := svc.Preview(ctx, "bootcamp", currency.Context{Code: "USD"})
		require.NoError(t, err)

		assert.Equal(t, float64(1000), preview.Price)
		assert.False(t, preview.Full)
		assert.False(t, preview.SpotsWarning)
		require.Len(t, preview.Plans, 3)

		byID := map[string]PlanQuote{}
		for _, q := range preview.Plans {
			byID[q.Plan.ID] = q
		}
		assert.Equal(t, float64(510), byID["split_2"].AmountDueToday)
		assert.Equal(t, float64(500), byID["split_2"].PerRemainingInstallment)
		assert.Equal(t, 1, byID["split_2"].RemainingInstallments)
		assert.Equal(t, float64(370), byID["monthly_3"].AmountDueToday)
		assert.Equal(t, float64(325), byID["monthly_3"].PerRemainingInstallment)
		assert.Equal(t, 2, byID["monthly_3"].RemainingInstallments)
	})

	t.Run("offers only full payment below the threshold", func(t *testing.T) {
		preview, err := svc.Preview(ctx, "intro", currency.Context{Code: "USD"})
		require.NoError(t, err)
		require.Len(t, preview.Plans, 1)
		assert.Equal(t, PlanFull.ID, preview.Plans[0].Plan.ID)
	})

	t.Run("flags full and nearly full courses", func(t *testing.T) {
		preview, err := svc.Preview(ctx, "packed", currency.Context{Code: "USD"})
		require.NoError(t, err)
		assert.True(t, preview.Full)
		assert.Equal(t, 0, preview.SpotsLeft)

		preview, err = svc.Preview(ctx, "closing", currency.Context{Code: "USD"})
		require.NoError(t, err)
		assert.False(t, preview.Full)
		assert.Equal(t, 3, preview.SpotsLeft)
		assert.True(t, preview.SpotsWarning)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := svc.Preview(ctx, "nope", currency.Context{Code: "USD"})
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})

	t.Run("discount applies to principal only", func(t *testing.T) {
		discounted := NewService(testCourses(), testCurrency(true), nil, nil, zap.NewNop())
		preview, err := discounted.Preview(ctx, "bootcamp", currency.Context{Code: "NGN", Local: true})
		require.NoError(t, err)

		assert.True(t, preview.Discounted)
		// 1000 halved, then at 1500 NGN/USD.
		assert.Equal(t, float64(750000), preview.Price)

		byID := map[string]PlanQuote{}
		for _, q := range preview.Plans {
			byID[q.Plan.ID] = q
		}
		// (500 * 50% + $10 fee) * 1500: the fee is not halved.
		assert.Equal(t, float64(390000), byID["split_2"].AmountDueToday)
		assert.Equal(t, float64(375000), byID["split_2"].PerRemainingInstallment)

		// Plan eligibility still keys off the undiscounted USD price:
		// a $1000 course keeps its installment plans mid-promotion.
		assert.Len(t, preview.Plans, 3)
	})
}

func TestEnroll(t *testing.T) {
	ctx := context.Background()

	t.Run("submitted amount equals displayed amount", func(t *testing.T) {
		provider := new(mockProvider)
		provider.On("CreateSession", mock.Anything, mock.MatchedBy(func(p checkout.Payload) bool {
			return p.Amount == 510 && p.Currency == "USD" && p.CustomerEmail == "ada@example.com"
		})).Return(&checkout.Session{ID: "cs_1", RedirectURL: "https://pay.example/cs_1"}, nil)

		svc := NewService(testCourses(), testCurrency(false), provider, nil, zap.NewNop())
		result, err := svc.Enroll(ctx, EnrollInput{
			CourseSlug: "bootcamp",
			Details:    validDetails(),
			PlanID:     "split_2",
			SuccessURL: "https://ok",
			CancelURL:  "https://no",
		}, currency.Context{Code: "USD"})
		require.NoError(t, err)

		assert.Equal(t, "https://pay.example/cs_1", result.RedirectURL)
		assert.Equal(t, float64(510), result.AmountDueToday)
		provider.AssertExpectations(t)
	})

	t.Run("rejects a full course", func(t *testing.T) {
		svc := NewService(testCourses(), testCurrency(false), nil, nil, zap.NewNop())
		_, err := svc.Enroll(ctx, EnrollInput{
			CourseSlug: "packed",
			Details:    validDetails(),
			PlanID:     "full",
		}, currency.Context{Code: "USD"})
		assert.ErrorIs(t, err, ErrCourseFull)
	})

	t.Run("rejects an ineligible plan", func(t *testing.T) {
		svc := NewService(testCourses(), testCurrency(false), nil, nil, zap.NewNop())
		_, err := svc.Enroll(ctx, EnrollInput{
			CourseSlug: "intro",
			Details:    validDetails(),
			PlanID:     "monthly_3",
		}, currency.Context{Code: "USD"})
		assert.ErrorIs(t, err, ErrPlanNotAvailable)
	})

	t.Run("validates student details", func(t *testing.T) {
		svc := NewService(testCourses(), testCurrency(false), nil, nil, zap.NewNop())

		cases := []struct {
			name    string
			details StudentDetails
		}{
			{"missing name", StudentDetails{Email: "ada@example.com", Phone: "0800"}},
			{"missing phone", StudentDetails{FullName: "Ada Obi", Email: "ada@example.com"}},
			{"bad email", StudentDetails{FullName: "Ada Obi", Email: "ada", Phone: "0800"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.Enroll(ctx, EnrollInput{
					CourseSlug: "bootcamp",
					Details:    tc.details,
					PlanID:     "full",
				}, currency.Context{Code: "USD"})
				assert.ErrorIs(t, err, ErrInvalidDetails)
			})
		}
	})

	t.Run("NGN launch special charges the discounted down payment", func(t *testing.T) {
		provider := new(mockProvider)
		provider.On("CreateSession", mock.Anything, mock.MatchedBy(func(p checkout.Payload) bool {
			return p.Amount == 390000 && p.Currency == "NGN"
		})).Return(&checkout.Session{ID: "cs_2", RedirectURL: "https://pay.example/cs_2"}, nil)

		svc := NewService(testCourses(), testCurrency(true), provider, nil, zap.NewNop())
		result, err := svc.Enroll(ctx, EnrollInput{
			CourseSlug: "bootcamp",
			Details:    validDetails(),
			PlanID:     "split_2",
			SuccessURL: "https://ok",
			CancelURL:  "https://no",
		}, currency.Context{Code: "NGN", Local: true})
		require.NoError(t, err)

		assert.Equal(t, float64(390000), result.AmountDueToday)
		provider.AssertExpectations(t)
	})
}
