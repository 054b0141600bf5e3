package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"hexadigitall/internal/config"
	"hexadigitall/internal/services/catalog"
	"hexadigitall/internal/services/checkout"
	"hexadigitall/internal/services/currency"
	"hexadigitall/internal/services/notifier"
	"hexadigitall/internal/services/pricing"
	"hexadigitall/internal/services/wizard"
	"hexadigitall/internal/utils/response"
)

type WizardHandler struct {
	wizard   wizard.Service
	currency currency.Service
}

func NewWizardHandler(wiz wizard.Service, cur currency.Service) *WizardHandler {
	return &WizardHandler{wizard: wiz, currency: cur}
}

// sessionView pairs a session with its recomputed quote so every
// response shows a price consistent with the selection it carries.
func (h *WizardHandler) sessionView(c *fiber.Ctx, session *wizard.Session) error {
	cctx, err := currencyContext(c, h.currency)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	quote, err := h.wizard.Quote(c.Context(), session.ID, cctx)
	if err != nil {
		return h.wizardError(c, err)
	}
	return response.Success(c, "wizard session", fiber.Map{
		"session": session,
		"quote":   quote,
	})
}

// Start creates a fresh wizard session.
func (h *WizardHandler) Start(c *fiber.Ctx) error {
	session, err := h.wizard.Start(c.Context())
	if err != nil {
		return response.ServerError(c, "failed to start wizard")
	}
	return h.sessionView(c, session)
}

// Get returns a session with its current quote.
func (h *WizardHandler) Get(c *fiber.Ctx) error {
	session, err := h.wizard.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.wizardError(c, err)
	}
	return h.sessionView(c, session)
}

// SetPlatform records the chosen platform base.
func (h *WizardHandler) SetPlatform(c *fiber.Ctx) error {
	var input struct {
		PlatformID string `json:"platformId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	session, err := h.wizard.SetPlatform(c.Context(), c.Params("id"), input.PlatformID)
	if err != nil {
		return h.wizardError(c, err)
	}
	return h.sessionView(c, session)
}

// SetFeatures replaces the selected technical features.
func (h *WizardHandler) SetFeatures(c *fiber.Ctx) error {
	var input struct {
		FeatureIDs []string `json:"featureIds"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	session, err := h.wizard.SetFeatures(c.Context(), c.Params("id"), input.FeatureIDs)
	if err != nil {
		return h.wizardError(c, err)
	}
	return h.sessionView(c, session)
}

// SetAddons replaces the selected service add-ons.
func (h *WizardHandler) SetAddons(c *fiber.Ctx) error {
	var input struct {
		AddonIDs []string `json:"addonIds"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	session, err := h.wizard.SetAddons(c.Context(), c.Params("id"), input.AddonIDs)
	if err != nil {
		return h.wizardError(c, err)
	}
	return h.sessionView(c, session)
}

// SetContact records the buyer contact block.
func (h *WizardHandler) SetContact(c *fiber.Ctx) error {
	var input pricing.Contact
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	session, err := h.wizard.SetContact(c.Context(), c.Params("id"), input)
	if err != nil {
		return h.wizardError(c, err)
	}
	return h.sessionView(c, session)
}

// Next advances the wizard one step if the current step is complete.
func (h *WizardHandler) Next(c *fiber.Ctx) error {
	session, err := h.wizard.Next(c.Context(), c.Params("id"))
	if err != nil {
		return h.wizardError(c, err)
	}
	return h.sessionView(c, session)
}

// Back returns the wizard one step.
func (h *WizardHandler) Back(c *fiber.Ctx) error {
	session, err := h.wizard.Back(c.Context(), c.Params("id"))
	if err != nil {
		return h.wizardError(c, err)
	}
	return h.sessionView(c, session)
}

// Reset starts the session over with an empty selection.
func (h *WizardHandler) Reset(c *fiber.Ctx) error {
	session, err := h.wizard.Reset(c.Context(), c.Params("id"))
	if err != nil {
		return h.wizardError(c, err)
	}
	return h.sessionView(c, session)
}

// Submit sends the quote request to the intake notifier.
func (h *WizardHandler) Submit(c *fiber.Ctx) error {
	cctx, err := currencyContext(c, h.currency)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Context(), config.OutboundTimeout())
	defer cancel()

	result, err := h.wizard.Submit(ctx, c.Params("id"), cctx)
	if err != nil {
		return h.wizardError(c, err)
	}
	return response.Success(c, "quote request submitted", result)
}

// Checkout creates a payment session and returns the redirect URL.
func (h *WizardHandler) Checkout(c *fiber.Ctx) error {
	var input struct {
		SuccessURL string `json:"successUrl"`
		CancelURL  string `json:"cancelUrl"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}

	cctx, err := currencyContext(c, h.currency)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Context(), config.OutboundTimeout())
	defer cancel()

	session, err := h.wizard.Checkout(ctx, c.Params("id"), cctx, input.SuccessURL, input.CancelURL)
	if err != nil {
		return h.wizardError(c, err)
	}
	return response.Success(c, "checkout session created", session)
}

func (h *WizardHandler) wizardError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, wizard.ErrInvalidContact):
		return response.ValidationError(c, err.Error())
	case errors.Is(err, wizard.ErrStepIncomplete),
		errors.Is(err, wizard.ErrWrongStep),
		errors.Is(err, wizard.ErrAtFirstStep),
		errors.Is(err, wizard.ErrAlreadySubmitted),
		errors.Is(err, catalog.ErrPlatformNotFound):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, wizard.ErrSubmitInFlight):
		return response.Error(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, currency.ErrUnsupportedCurrency):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, checkout.ErrPaymentInit):
		return response.GatewayError(c, err.Error())
	case errors.Is(err, notifier.ErrNotifyFailed):
		return response.GatewayError(c, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return response.TimeoutError(c, "the request timed out, please try again")
	default:
		return response.ServerError(c, "something went wrong")
	}
}
