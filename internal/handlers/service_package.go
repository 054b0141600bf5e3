package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"hexadigitall/internal/config"
	"hexadigitall/internal/services/checkout"
	"hexadigitall/internal/services/currency"
	"hexadigitall/internal/services/packages"
	"hexadigitall/internal/utils/response"
)

type ServicePackageHandler struct {
	packages packages.Service
	currency currency.Service
}

func NewServicePackageHandler(pkg packages.Service, cur currency.Service) *ServicePackageHandler {
	return &ServicePackageHandler{packages: pkg, currency: cur}
}

// ListGroups returns all service package groups with display pricing.
func (h *ServicePackageHandler) ListGroups(c *fiber.Ctx) error {
	cctx, err := currencyContext(c, h.currency)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Context(), config.OutboundTimeout())
	defer cancel()

	groups, err := h.packages.Groups(ctx, cctx)
	if err != nil {
		return h.packageError(c, err)
	}
	return response.Success(c, "service packages", groups)
}

// GetGroup returns one group with display pricing.
func (h *ServicePackageHandler) GetGroup(c *fiber.Ctx) error {
	cctx, err := currencyContext(c, h.currency)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Context(), config.OutboundTimeout())
	defer cancel()

	group, err := h.packages.GroupBySlug(ctx, c.Params("slug"), cctx)
	if err != nil {
		return h.packageError(c, err)
	}
	return response.Success(c, "service package", group)
}

// ListIndividualServices returns the standalone services.
func (h *ServicePackageHandler) ListIndividualServices(c *fiber.Ctx) error {
	cctx, err := currencyContext(c, h.currency)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Context(), config.OutboundTimeout())
	defer cancel()

	services, err := h.packages.IndividualServices(ctx, cctx)
	if err != nil {
		return h.packageError(c, err)
	}
	return response.Success(c, "individual services", services)
}

// CheckoutTier creates a payment session for a package tier.
func (h *ServicePackageHandler) CheckoutTier(c *fiber.Ctx) error {
	var input packages.CheckoutInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}

	cctx, err := currencyContext(c, h.currency)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Context(), config.OutboundTimeout())
	defer cancel()

	result, err := h.packages.CheckoutTier(ctx, input, cctx)
	if err != nil {
		return h.packageError(c, err)
	}
	return response.Success(c, "checkout session created", result)
}

func (h *ServicePackageHandler) packageError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, packages.ErrGroupNotFound),
		errors.Is(err, packages.ErrTierNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, packages.ErrInvalidEmail):
		return response.ValidationError(c, err.Error())
	case errors.Is(err, currency.ErrUnsupportedCurrency):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, checkout.ErrPaymentInit):
		return response.GatewayError(c, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return response.TimeoutError(c, "the request timed out, please try again")
	default:
		return response.ServerError(c, "something went wrong")
	}
}
