package service

import (
	"context"
	"math"
	"strconv"
	"strings"

	"citycast/internal/model"
	"citycast/internal/upstream"
)

const (
	DefaultCurrency = "EUR"
	MinDonation     = 1.0
)

// PaymentInput is a donation request. Amount is the decimal amount as sent
// by the client.
type PaymentInput struct {
	Amount      string
	Currency    string
	TourID      string
	TourCity    string
	RedirectURL string
}

// PaymentService creates donation checkouts.
type PaymentService interface {
	Create(ctx context.Context, in PaymentInput) (*model.Payment, error)
}

type paymentService struct {
	provider PaymentCreator
}

// NewPaymentService constructs a new PaymentService.
func NewPaymentService(provider PaymentCreator) PaymentService {
	return &paymentService{provider: provider}
}

func (s *paymentService) Create(ctx context.Context, in PaymentInput) (*model.Payment, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(in.Amount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < MinDonation {
		return nil, invalid("amount is required and must be at least 1.00")
	}
	redirect := strings.TrimSpace(in.RedirectURL)
	if redirect == "" {
		return nil, invalid("redirectUrl is required")
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	description := "cityCast donatie"
	if in.TourCity != "" {
		description += " – " + in.TourCity
	}

	var metadata map[string]string
	if in.TourID != "" || in.TourCity != "" {
		metadata = map[string]string{"tourId": in.TourID, "tourCity": in.TourCity}
	}

	value := strconv.FormatFloat(amount, 'f', 2, 64)
	resp, err := s.provider.CreatePayment(ctx, upstream.PaymentRequest{
		Amount:      upstream.Amount{Currency: currency, Value: value},
		Description: description,
		RedirectURL: redirect,
		Metadata:    metadata,
	})
	if err != nil {
		return nil, upstreamError("create payment", err)
	}

	return &model.Payment{
		ID:          resp.ID,
		Amount:      value,
		Currency:    currency,
		Description: description,
		RedirectURL: redirect,
		CheckoutURL: resp.CheckoutURL(),
		Metadata:    metadata,
	}, nil
}
