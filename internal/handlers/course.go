package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"hexadigitall/internal/config"
	"hexadigitall/internal/services/checkout"
	"hexadigitall/internal/services/currency"
	"hexadigitall/internal/services/enrollment"
	"hexadigitall/internal/utils/response"
)

type CourseHandler struct {
	enrollment enrollment.Service
	currency   currency.Service
}

func NewCourseHandler(enr enrollment.Service, cur currency.Service) *CourseHandler {
	return &CourseHandler{enrollment: enr, currency: cur}
}

// ListCourses returns all courses. The content fetch carries the
// outbound timeout so a slow store surfaces as a failure, not a hang.
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), config.OutboundTimeout())
	defer cancel()

	courses, err := h.enrollment.Courses(ctx)
	if err != nil {
		return h.courseError(c, err)
	}
	return response.Success(c, "courses", courses)
}

// GetCourse returns the enrollment preview for one course:
// availability, display price, and offered payment plans.
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	cctx, err := currencyContext(c, h.currency)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Context(), config.OutboundTimeout())
	defer cancel()

	preview, err := h.enrollment.Preview(ctx, c.Params("slug"), cctx)
	if err != nil {
		return h.courseError(c, err)
	}
	return response.Success(c, "course", preview)
}

// Enroll submits an enrollment and returns the payment redirect.
func (h *CourseHandler) Enroll(c *fiber.Ctx) error {
	var input enrollment.EnrollInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	input.CourseSlug = c.Params("slug", input.CourseSlug)

	cctx, err := currencyContext(c, h.currency)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Context(), config.OutboundTimeout())
	defer cancel()

	result, err := h.enrollment.Enroll(ctx, input, cctx)
	if err != nil {
		return h.courseError(c, err)
	}
	return response.Success(c, "enrollment submitted", result)
}

func (h *CourseHandler) courseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, enrollment.ErrCourseNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, enrollment.ErrInvalidDetails):
		return response.ValidationError(c, err.Error())
	case errors.Is(err, enrollment.ErrCourseFull),
		errors.Is(err, enrollment.ErrPlanNotAvailable),
		errors.Is(err, currency.ErrUnsupportedCurrency):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, checkout.ErrPaymentInit):
		return response.GatewayError(c, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return response.TimeoutError(c, "the request timed out, please try again")
	default:
		return response.ServerError(c, "something went wrong")
	}
}
