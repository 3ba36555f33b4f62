package mocks

import (
	"context"

	"citycast/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockStopRepository struct {
	mock.Mock
}

func (m *MockStopRepository) Create(ctx context.Context, stop *model.Stop) (*model.Stop, error) {
	args := m.Called(ctx, stop)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stop), args.Error(1)
}

func (m *MockStopRepository) FindByNameAndCity(ctx context.Context, name, city string) (*model.Stop, error) {
	args := m.Called(ctx, name, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stop), args.Error(1)
}

func (m *MockStopRepository) ListByCity(ctx context.Context, city, tourType string) ([]model.Stop, error) {
	args := m.Called(ctx, city, tourType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Stop), args.Error(1)
}

func (m *MockStopRepository) ListCities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStopRepository) GetEnrichment(ctx context.Context, stopID, city string) (*model.Enrichment, error) {
	args := m.Called(ctx, stopID, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrichment), args.Error(1)
}

func (m *MockStopRepository) SaveEnrichment(ctx context.Context, stopID, city string, e *model.Enrichment) error {
	args := m.Called(ctx, stopID, city, e)
	return args.Error(0)
}
