package service

import (
	"context"
	"testing"

	"citycast/internal/upstream"
	upMocks "citycast/internal/upstream/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkout(id, href string) *upstream.PaymentResponse {
	return &upstream.PaymentResponse{ID: id, Status: "open", Checkout: href}
}

func TestPaymentService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         PaymentInput
		setupMocks func(m *upMocks.MockMollie)
		wantURL    string
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "tour donation",
			in:   PaymentInput{Amount: "5", TourID: "t-1", TourCity: "Utrecht", RedirectURL: "https://stadtour.nl/tour/t-1"},
			setupMocks: func(m *upMocks.MockMollie) {
				m.On("CreatePayment", ctx, upstream.PaymentRequest{
					Amount:      upstream.Amount{Currency: "EUR", Value: "5.00"},
					Description: "cityCast donatie – Utrecht",
					RedirectURL: "https://stadtour.nl/tour/t-1",
					Metadata:    map[string]string{"tourId": "t-1", "tourCity": "Utrecht"},
				}).Return(checkout("tr_1", "https://mollie/checkout/1"), nil)
			},
			wantURL: "https://mollie/checkout/1",
		},
		{
			name: "generic donation in another currency",
			in:   PaymentInput{Amount: "2.505", Currency: "usd", RedirectURL: "https://stadtour.nl"},
			setupMocks: func(m *upMocks.MockMollie) {
				m.On("CreatePayment", ctx, mock.MatchedBy(func(p upstream.PaymentRequest) bool {
					return p.Amount.Currency == "USD" && p.Description == "cityCast donatie" && p.Metadata == nil
				})).Return(checkout("tr_2", "https://mollie/checkout/2"), nil)
			},
			wantURL: "https://mollie/checkout/2",
		},
		{
			name:       "amount below minimum",
			in:         PaymentInput{Amount: "0.99", RedirectURL: "https://stadtour.nl"},
			setupMocks: func(m *upMocks.MockMollie) {},
			wantErrMsg: "amount is required and must be at least 1.00",
		},
		{
			name:       "amount not a number",
			in:         PaymentInput{Amount: "NaN", RedirectURL: "https://stadtour.nl"},
			setupMocks: func(m *upMocks.MockMollie) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name:       "missing redirect",
			in:         PaymentInput{Amount: "10"},
			setupMocks: func(m *upMocks.MockMollie) {},
			wantErrMsg: "redirectUrl is required",
		},
		{
			name: "provider not configured",
			in:   PaymentInput{Amount: "10", RedirectURL: "https://stadtour.nl"},
			setupMocks: func(m *upMocks.MockMollie) {
				m.On("CreatePayment", ctx, mock.Anything).Return(nil, upstream.ErrNotConfigured)
			},
			wantErr: ErrNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(upMocks.MockMollie)
			tt.setupMocks(m)

			got, err := NewPaymentService(m).Create(ctx, tt.in)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantURL, got.CheckoutURL)
			}
			m.AssertExpectations(t)
		})
	}
}
