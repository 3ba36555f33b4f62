package mocks

import (
	"context"
	"encoding/json"
	"io"

	"citycast/internal/model"
	"citycast/internal/navigation"
	"citycast/internal/service"
	"citycast/internal/storage"
	"github.com/stretchr/testify/mock"
)

type MockStopService struct {
	mock.Mock
}

func (m *MockStopService) Generate(ctx context.Context, city, tourType string) ([]model.StopSummary, error) {
	args := m.Called(ctx, city, tourType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StopSummary), args.Error(1)
}

func (m *MockStopService) List(ctx context.Context, city, tourType string) ([]model.Stop, error) {
	args := m.Called(ctx, city, tourType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Stop), args.Error(1)
}

type MockEnrichmentService struct {
	mock.Mock
}

func (m *MockEnrichmentService) Enrich(ctx context.Context, q service.EnrichmentQuery) (*service.EnrichmentResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EnrichmentResult), args.Error(1)
}

type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) Submit(ctx context.Context, in service.FeedbackInput) (*service.FeedbackReceipt, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FeedbackReceipt), args.Error(1)
}

func (m *MockFeedbackService) Testimonials(ctx context.Context, limit int) ([]model.Testimonial, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Testimonial), args.Error(1)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Create(ctx context.Context, in service.PaymentInput) (*model.Payment, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

type MockGeocodeService struct {
	mock.Mock
}

func (m *MockGeocodeService) Geocode(ctx context.Context, in service.GeocodeInput) (json.RawMessage, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

type MockWeatherService struct {
	mock.Mock
}

func (m *MockWeatherService) Forecast(ctx context.Context, lat, lng float64) (*model.Weather, error) {
	args := m.Called(ctx, lat, lng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Weather), args.Error(1)
}

type MockNavigationService struct {
	mock.Mock
}

func (m *MockNavigationService) Route(ctx context.Context, in service.RouteInput) (*navigation.Route, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*navigation.Route), args.Error(1)
}

func (m *MockNavigationService) Progress(ctx context.Context, in service.ProgressInput) service.ProgressResult {
	args := m.Called(ctx, in)
	return args.Get(0).(service.ProgressResult)
}

type MockSitemapService struct {
	mock.Mock
}

func (m *MockSitemapService) Build(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockSitemapService) Publish(ctx context.Context) (storage.ObjectInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).(storage.ObjectInfo), args.Error(1)
}

func (m *MockSitemapService) Open(ctx context.Context) (io.ReadCloser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
