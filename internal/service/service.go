// Package service holds the use cases behind the HTTP API. Services depend
// on the repository and storage abstractions and on small interfaces over
// the upstream clients, so each can be tested with mocks.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"citycast/internal/navigation"
	"citycast/internal/upstream"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNoResults     = errors.New("no results found")
	ErrNoEnrichment  = errors.New("no enrichment data found for this location")
	ErrNotConfigured = errors.New("service not configured")
	ErrUpstream      = errors.New("upstream request failed")
	ErrNoRoute       = navigation.ErrNoRoute
)

// ValidationError is a client error whose message is safe to return as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is makes every ValidationError match ErrInvalidInput.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// upstreamError maps a client failure onto the service sentinels.
func upstreamError(op string, err error) error {
	if errors.Is(err, upstream.ErrNotConfigured) {
		return fmt.Errorf("%s: %w", op, ErrNotConfigured)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrUpstream, err)
}

// PlaceSearcher finds places for a free text query.
type PlaceSearcher interface {
	SearchText(ctx context.Context, q upstream.TextSearch) ([]upstream.Place, error)
}

// Geocoder resolves addresses and coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, q upstream.GeocodeQuery) (json.RawMessage, error)
}

// DirectionsFinder plans a route between points.
type DirectionsFinder interface {
	Directions(ctx context.Context, q upstream.DirectionsQuery) (json.RawMessage, error)
}

// POIFinder looks up points of interest near a coordinate.
type POIFinder interface {
	Radius(ctx context.Context, lat, lng float64) ([]upstream.POI, error)
	Detail(ctx context.Context, xid string) (*upstream.PlaceDetail, error)
}

// Forecaster returns weather forecasts.
type Forecaster interface {
	Forecast(ctx context.Context, lat, lng float64, days int) (*upstream.Forecast, error)
}

// PaymentCreator starts a checkout with the payment provider.
type PaymentCreator interface {
	CreatePayment(ctx context.Context, p upstream.PaymentRequest) (*upstream.PaymentResponse, error)
}
