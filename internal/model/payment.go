package model

// Payment is a donation checkout created with the payment provider.
type Payment struct {
	ID          string            `json:"id"`
	Amount      string            `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	RedirectURL string            `json:"redirectUrl"`
	CheckoutURL string            `json:"checkoutUrl"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
