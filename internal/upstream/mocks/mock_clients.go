package mocks

import (
	"context"
	"encoding/json"

	"citycast/internal/upstream"
	"github.com/stretchr/testify/mock"
)

type MockPlaces struct {
	mock.Mock
}

func (m *MockPlaces) SearchText(ctx context.Context, q upstream.TextSearch) ([]upstream.Place, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]upstream.Place), args.Error(1)
}

type MockMaps struct {
	mock.Mock
}

func (m *MockMaps) Geocode(ctx context.Context, q upstream.GeocodeQuery) (json.RawMessage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockMaps) Directions(ctx context.Context, q upstream.DirectionsQuery) (json.RawMessage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

type MockOpenTripMap struct {
	mock.Mock
}

func (m *MockOpenTripMap) Radius(ctx context.Context, lat, lng float64) ([]upstream.POI, error) {
	args := m.Called(ctx, lat, lng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]upstream.POI), args.Error(1)
}

func (m *MockOpenTripMap) Detail(ctx context.Context, xid string) (*upstream.PlaceDetail, error) {
	args := m.Called(ctx, xid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.PlaceDetail), args.Error(1)
}

type MockOpenMeteo struct {
	mock.Mock
}

func (m *MockOpenMeteo) Forecast(ctx context.Context, lat, lng float64, days int) (*upstream.Forecast, error) {
	args := m.Called(ctx, lat, lng, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.Forecast), args.Error(1)
}

type MockMollie struct {
	mock.Mock
}

func (m *MockMollie) CreatePayment(ctx context.Context, p upstream.PaymentRequest) (*upstream.PaymentResponse, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.PaymentResponse), args.Error(1)
}
