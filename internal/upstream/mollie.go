package upstream

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/VictorAvelar/mollie-api-go/v4/mollie"
)

const DefaultMollieURL = "https://api.mollie.com"

// Amount is a Mollie money value. Value is a decimal string with exactly
// two fractional digits, e.g. "5.00".
type Amount struct {
	Currency string
	Value    string
}

// PaymentRequest describes a one-off payment to create.
type PaymentRequest struct {
	Amount      Amount
	Description string
	RedirectURL string
	Metadata    map[string]string
}

// PaymentResponse is the part of a created Mollie payment the service uses.
type PaymentResponse struct {
	ID       string
	Status   string
	Checkout string
}

// CheckoutURL is where the payer completes the payment.
func (p *PaymentResponse) CheckoutURL() string {
	return p.Checkout
}

// MollieClient creates payments through the Mollie Go SDK.
type MollieClient struct {
	c   client
	api *mollie.Client
	err error
}

// NewMollieClient builds a Mollie client. Requests go through cfg.HTTPClient
// so they are traced like every other upstream call.
func NewMollieClient(cfg Config) *MollieClient {
	m := &MollieClient{c: newClient("mollie", cfg, DefaultMollieURL)}
	if !m.c.configured() {
		return m
	}
	m.api, m.err = newMollieAPI(m.c)
	return m
}

func newMollieAPI(c client) (*mollie.Client, error) {
	api, err := mollie.NewClient(c.http, mollie.NewConfig(false, mollie.APITokenEnv))
	if err != nil {
		return nil, fmt.Errorf("mollie: new client: %w", err)
	}
	if err := api.WithAuthenticationValue(c.apiKey); err != nil {
		return nil, fmt.Errorf("mollie: api key: %w", err)
	}
	// The SDK resolves relative paths such as "v2/payments" against BaseURL.
	base, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return nil, fmt.Errorf("mollie: base url: %w", err)
	}
	api.BaseURL = base
	return api, nil
}

// CreatePayment creates a one-off payment.
func (m *MollieClient) CreatePayment(ctx context.Context, p PaymentRequest) (*PaymentResponse, error) {
	if !m.c.configured() {
		return nil, ErrNotConfigured
	}
	if m.err != nil {
		return nil, m.err
	}

	req := mollie.CreatePayment{
		Amount:      &mollie.Amount{Currency: p.Amount.Currency, Value: p.Amount.Value},
		Description: p.Description,
		RedirectURL: p.RedirectURL,
	}
	if len(p.Metadata) > 0 {
		req.Metadata = p.Metadata
	}

	start := time.Now()
	res, payment, err := m.api.Payments.Create(ctx, req, nil)
	if err != nil {
		if res != nil && res.Response != nil && (res.StatusCode < 200 || res.StatusCode >= 300) {
			m.c.metrics.observe(m.c.provider, "status_"+statusClass(res.StatusCode), time.Since(start))
			return nil, &StatusError{Provider: m.c.provider, StatusCode: res.StatusCode}
		}
		m.c.metrics.observe(m.c.provider, "error", time.Since(start))
		return nil, fmt.Errorf("mollie: create payment: %w", err)
	}
	m.c.metrics.observe(m.c.provider, "ok", time.Since(start))

	out := &PaymentResponse{ID: payment.ID, Status: payment.Status}
	if payment.Links.Checkout != nil {
		out.Checkout = payment.Links.Checkout.Href
	}
	if out.Checkout == "" {
		return nil, fmt.Errorf("mollie: payment %s has no checkout link", out.ID)
	}
	return out, nil
}
