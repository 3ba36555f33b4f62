package repository

import (
	"context"

	"citycast/internal/model"
)

// StopRepository defines persistence for tour stops and the enrichment
// data stored on them. No business logic here.
type StopRepository interface {
	// Create inserts a stop. It returns ErrDuplicate when a stop with the
	// same city and name already exists.
	Create(ctx context.Context, stop *model.Stop) (*model.Stop, error)

	// FindByNameAndCity returns the stop with exactly this name in city,
	// or ErrNotFound.
	FindByNameAndCity(ctx context.Context, name, city string) (*model.Stop, error)

	// ListByCity returns the stops of a city, optionally narrowed to one
	// tour type, oldest first.
	ListByCity(ctx context.Context, city, tourType string) ([]model.Stop, error)

	// ListCities returns the distinct cities that have stops.
	ListCities(ctx context.Context) ([]string, error)

	// GetEnrichment returns the enrichment stored on a stop. It returns
	// ErrNotFound when the stop does not exist or has not been enriched.
	GetEnrichment(ctx context.Context, stopID, city string) (*model.Enrichment, error)

	// SaveEnrichment updates the enrichment columns of an existing stop in
	// place. It returns ErrNotFound when no such stop exists.
	SaveEnrichment(ctx context.Context, stopID, city string, e *model.Enrichment) error
}
