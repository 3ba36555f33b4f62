package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"

	"citycast/internal/model"
	"citycast/internal/navigation"
	"citycast/internal/repository"
	"citycast/internal/upstream"
)

// EnrichmentQuery locates the point of interest to enrich. StopID and
// StopCity identify a stored stop; when both are set the result is read
// from and written back to it.
type EnrichmentQuery struct {
	Lat      float64
	Lng      float64
	StopID   string
	StopCity string
	StopName string
}

// EnrichmentResult is an enrichment plus whether it came from the stop.
type EnrichmentResult struct {
	model.Enrichment
	Cached bool `json:"cached"`
}

// EnrichmentService attaches OpenTripMap details to tour stops.
type EnrichmentService interface {
	Enrich(ctx context.Context, q EnrichmentQuery) (*EnrichmentResult, error)
}

type enrichmentService struct {
	repo repository.StopRepository
	otm  POIFinder
	now  func() time.Time
}

// NewEnrichmentService constructs a new EnrichmentService.
func NewEnrichmentService(repo repository.StopRepository, otm POIFinder) EnrichmentService {
	return &enrichmentService{repo: repo, otm: otm, now: time.Now}
}

func (s *enrichmentService) Enrich(ctx context.Context, q EnrichmentQuery) (*EnrichmentResult, error) {
	if !(navigation.LatLng{Lat: q.Lat, Lng: q.Lng}).Valid() {
		return nil, invalid("lat and lng must be valid numbers")
	}
	log := zerolog.Ctx(ctx)

	stored := q.StopID != "" && q.StopCity != ""
	if stored {
		// stop ids are uuids; anything else cannot be a stored stop
		if _, err := uuid.Parse(q.StopID); err != nil {
			log.Warn().Str("stop_id", q.StopID).Msg("enrichment_invalid_stop_id")
			stored = false
		}
	}

	if stored {
		e, err := s.repo.GetEnrichment(ctx, q.StopID, q.StopCity)
		switch {
		case err == nil:
			return &EnrichmentResult{Enrichment: *e, Cached: true}, nil
		case !errors.Is(err, repository.ErrNotFound):
			log.Error().Err(err).Str("stop_id", q.StopID).Msg("enrichment_cache_read_failed")
		}
	}

	e, err := s.lookup(ctx, q)
	if err != nil {
		return nil, err
	}

	if stored {
		err := s.repo.SaveEnrichment(ctx, q.StopID, q.StopCity, e)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			log.Warn().Str("stop_id", q.StopID).Str("city", q.StopCity).Msg("enrichment_stop_not_found")
		case err != nil:
			log.Error().Err(err).Str("stop_id", q.StopID).Msg("enrichment_persist_failed")
		}
	}

	return &EnrichmentResult{Enrichment: *e}, nil
}

// lookup finds the best matching object near the coordinate and returns
// its normalized detail. Provider status errors mean no data.
func (s *enrichmentService) lookup(ctx context.Context, q EnrichmentQuery) (*model.Enrichment, error) {
	pois, err := s.otm.Radius(ctx, q.Lat, q.Lng)
	if err != nil {
		return nil, s.otmError(ctx, "radius search", err)
	}
	if len(pois) == 0 {
		return nil, ErrNoEnrichment
	}

	best := pickPOI(pois, q.StopName)
	detail, err := s.otm.Detail(ctx, best.XID)
	if err != nil {
		return nil, s.otmError(ctx, "place detail", err)
	}

	e := normalizeDetail(detail)
	now := s.now().UTC()
	e.EnrichedAt = &now
	return e, nil
}

func (s *enrichmentService) otmError(ctx context.Context, op string, err error) error {
	var se *upstream.StatusError
	if errors.As(err, &se) {
		zerolog.Ctx(ctx).Warn().Err(err).Str("op", op).Msg("enrichment_provider_status")
		return ErrNoEnrichment
	}
	return upstreamError(op, err)
}

// pickPOI prefers a result whose name contains, or is contained in, the
// stop name ignoring case, and falls back to the first (nearest) result.
func pickPOI(pois []upstream.POI, stopName string) upstream.POI {
	want := cases.Fold().String(strings.TrimSpace(stopName))
	if want != "" {
		for _, p := range pois {
			got := cases.Fold().String(strings.TrimSpace(p.Name))
			if got == "" {
				continue
			}
			if strings.Contains(got, want) || strings.Contains(want, got) {
				return p
			}
		}
	}
	return pois[0]
}

func normalizeDetail(d *upstream.PlaceDetail) *model.Enrichment {
	e := &model.Enrichment{
		Name:      d.Name,
		Kinds:     splitKinds(d.Kinds),
		Rate:      d.RateValue(),
		XID:       d.XID,
		Wikidata:  d.Wikidata,
		Wikipedia: d.Wikipedia,
		URL:       d.URL,
		Image:     d.Image,
	}
	if d.Preview != nil {
		e.Preview = &model.Preview{Source: d.Preview.Source, Width: d.Preview.Width, Height: d.Preview.Height}
	}
	if d.WikipediaExtracts != nil {
		e.Extract = &model.Extract{
			Title: d.WikipediaExtracts.Title,
			Text:  d.WikipediaExtracts.Text,
			HTML:  d.WikipediaExtracts.HTML,
		}
	}
	return e
}

func splitKinds(raw string) []string {
	kinds := []string{}
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
