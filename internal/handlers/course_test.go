package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexadigitall/internal/models"
	"hexadigitall/internal/services/checkout"
	"hexadigitall/internal/services/currency"
	"hexadigitall/internal/services/enrollment"
)

// stubEnrollment fails every operation with a fixed error so the
// handler's status mapping can be exercised without the full stack.
type stubEnrollment struct {
	err error
}

func (s *stubEnrollment) Courses(ctx context.Context) ([]models.Course, error) {
	return nil, s.err
}

func (s *stubEnrollment) Preview(ctx context.Context, slug string, cctx currency.Context) (*enrollment.Preview, error) {
	return nil, s.err
}

func (s *stubEnrollment) Enroll(ctx context.Context, input enrollment.EnrollInput, cctx currency.Context) (*enrollment.EnrollResult, error) {
	return nil, s.err
}

func TestEnrollStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown course", enrollment.ErrCourseNotFound, fiber.StatusNotFound},
		{"invalid details", enrollment.ErrInvalidDetails, fiber.StatusBadRequest},
		{"course full", enrollment.ErrCourseFull, fiber.StatusBadRequest},
		{"ineligible plan", enrollment.ErrPlanNotAvailable, fiber.StatusBadRequest},
		{"provider failure", checkout.ErrPaymentInit, fiber.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			h := NewCourseHandler(&stubEnrollment{err: tc.err}, currency.NewService(currency.Config{}))
			app.Post("/api/courses/:slug/enroll", h.Enroll)

			body := `{"details":{"fullName":"Ada Obi","email":"ada@example.com","phone":"0800"},"planId":"full"}`
			req := httptest.NewRequest("POST", "/api/courses/bootcamp/enroll", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
