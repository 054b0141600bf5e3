package checkout

// Payload describes one checkout-session creation request. Amount is
// the final display-currency figure, post-discount and rounded: it
// must equal the amount the buyer saw.
type Payload struct {
	Amount        float64           `json:"amount"`
	Currency      string            `json:"currency"`
	Description   string            `json:"description"`
	CustomerEmail string            `json:"customerEmail"`
	Reference     string            `json:"reference"`
	SuccessURL    string            `json:"successUrl"`
	CancelURL     string            `json:"cancelUrl"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// Session is the provider-created checkout session.
type Session struct {
	ID          string `json:"id"`
	RedirectURL string `json:"redirectUrl"`
}
