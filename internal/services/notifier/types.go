package notifier

// QuoteLine is one itemized entry of the request email.
type QuoteLine struct {
	Name   string
	Amount float64
}

// QuotePayload is the request-intake notification: the itemized
// selection, its converted and discounted pricing, and the buyer's
// contact info.
type QuotePayload struct {
	Reference       string
	Email           string
	Company         string
	Phone           string
	Lines           []QuoteLine
	Currency        string
	CurrencySymbol  string
	Total           float64
	DiscountApplied bool
}
