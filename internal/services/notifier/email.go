// Package notifier delivers quote-request notifications to the intake
// inbox. Delivery is fire-and-forget beyond the returned error; the
// wizard keeps its state so a failed submission can be retried.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ErrNotifyFailed wraps provider failures during email delivery.
var ErrNotifyFailed = errors.New("failed to send quote notification")

// Service is the request/notification sink.
type Service interface {
	SubmitQuoteRequest(ctx context.Context, payload QuotePayload) error
}

type emailService struct {
	client    *resend.Client
	logger    *zap.Logger
	fromEmail string
	toEmail   string
}

// NewEmailService creates a Resend-backed notifier. Quote requests are
// delivered to the intake address.
func NewEmailService(apiKey, fromEmail, toEmail string, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &emailService{
		client:    resend.NewClient(apiKey),
		logger:    logger,
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

func (s *emailService) SubmitQuoteRequest(ctx context.Context, payload QuotePayload) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Hexadigitall <%s>", s.fromEmail),
		To:      []string{s.toEmail},
		ReplyTo: payload.Email,
		Subject: fmt.Sprintf("Custom build request %s", payload.Reference),
		Html:    renderQuoteHTML(payload),
		Text:    renderQuoteText(payload),
		Headers: map[string]string{
			"X-Entity-Ref-ID": payload.Reference,
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "quote_request"},
		},
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.logger.Error("failed to send quote request email",
			zap.Error(err),
			zap.String("reference", payload.Reference))
		return fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}

	s.logger.Info("quote request email sent",
		zap.String("email_id", sent.Id),
		zap.String("reference", payload.Reference))
	return nil
}

func renderQuoteHTML(p QuotePayload) string {
	var b strings.Builder
	b.WriteString("<h2>New custom build request</h2>")
	fmt.Fprintf(&b, "<p><strong>Reference:</strong> %s</p>", p.Reference)
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s<br>", p.Email)
	if p.Company != "" {
		fmt.Fprintf(&b, "<strong>Company:</strong> %s<br>", p.Company)
	}
	if p.Phone != "" {
		fmt.Fprintf(&b, "<strong>Phone:</strong> %s<br>", p.Phone)
	}
	b.WriteString("</p><ul>")
	for _, line := range p.Lines {
		fmt.Fprintf(&b, "<li>%s — %s%.0f</li>", line.Name, p.CurrencySymbol, line.Amount)
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p><strong>Total: %s%.0f %s</strong>", p.CurrencySymbol, p.Total, p.Currency)
	if p.DiscountApplied {
		b.WriteString(" (launch special applied)")
	}
	b.WriteString("</p>")
	return b.String()
}

func renderQuoteText(p QuotePayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New custom build request %s\n\n", p.Reference)
	fmt.Fprintf(&b, "Email: %s\n", p.Email)
	if p.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", p.Company)
	}
	if p.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", p.Phone)
	}
	b.WriteString("\n")
	for _, line := range p.Lines {
		fmt.Fprintf(&b, "- %s: %s%.0f\n", line.Name, p.CurrencySymbol, line.Amount)
	}
	fmt.Fprintf(&b, "\nTotal: %s%.0f %s\n", p.CurrencySymbol, p.Total, p.Currency)
	if p.DiscountApplied {
		b.WriteString("Launch special applied (50% off)\n")
	}
	return b.String()
}
