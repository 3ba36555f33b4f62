package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"citycast/internal/model"
	"citycast/internal/repository"
	"citycast/internal/upstream"
)

// StopService generates and lists the stops of city tours.
type StopService interface {
	// Generate searches points of interest for a city and tour type, saves
	// each one (deduplicated by name and city) and returns them in search
	// order.
	Generate(ctx context.Context, city, tourType string) ([]model.StopSummary, error)

	// List returns the stored stops of a city. tourType may be empty.
	List(ctx context.Context, city, tourType string) ([]model.Stop, error)
}

type stopService struct {
	repo       repository.StopRepository
	places     PlaceSearcher
	language   string
	maxResults int
	now        func() time.Time
}

// NewStopService constructs a new StopService.
func NewStopService(repo repository.StopRepository, places PlaceSearcher, language string, maxResults int) StopService {
	if language == "" {
		language = "nl"
	}
	if maxResults <= 0 {
		maxResults = 10
	}
	return &stopService{repo: repo, places: places, language: language, maxResults: maxResults, now: time.Now}
}

func (s *stopService) Generate(ctx context.Context, city, tourType string) ([]model.StopSummary, error) {
	city = strings.TrimSpace(city)
	tourType = strings.TrimSpace(tourType)
	if city == "" || tourType == "" {
		return nil, invalid("city and tourType are required")
	}

	places, err := s.places.SearchText(ctx, upstream.TextSearch{
		Query:        fmt.Sprintf("top 10 %s bezienswaardigheden in %s", tourType, city),
		LanguageCode: s.language,
		MaxResults:   s.maxResults,
	})
	if err != nil {
		return nil, upstreamError("search places", err)
	}
	if len(places) == 0 {
		return nil, ErrNoResults
	}

	out := make([]model.StopSummary, 0, len(places))
	for _, p := range places {
		now := s.now().UTC()
		stop, err := s.save(ctx, &model.Stop{
			ID:          uuid.New().String(),
			City:        city,
			TourType:    tourType,
			Name:        p.Name,
			Description: p.Name,
			Lat:         p.Lat,
			Lng:         p.Lng,
			CreatedAt:   now,
			LastUpdated: now,
		})
		if err != nil {
			return nil, fmt.Errorf("save stop %q: %w", p.Name, err)
		}
		out = append(out, stop.Summary())
	}
	return out, nil
}

// save returns the existing stop with the same name and city, or inserts
// a new one. A concurrent insert of the same stop resolves to the winner.
func (s *stopService) save(ctx context.Context, stop *model.Stop) (*model.Stop, error) {
	existing, err := s.repo.FindByNameAndCity(ctx, stop.Name, stop.City)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	created, err := s.repo.Create(ctx, stop)
	if errors.Is(err, repository.ErrDuplicate) {
		return s.repo.FindByNameAndCity(ctx, stop.Name, stop.City)
	}
	return created, err
}

func (s *stopService) List(ctx context.Context, city, tourType string) ([]model.Stop, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, invalid("city is required")
	}
	stops, err := s.repo.ListByCity(ctx, city, strings.TrimSpace(tourType))
	if err != nil {
		return nil, fmt.Errorf("list stops: %w", err)
	}
	return stops, nil
}
