package service

import (
	"context"
	"encoding/json"
	"strings"

	"golang.org/x/text/language"

	"citycast/internal/upstream"
)

// GeocodeInput is a forward (Address) or reverse (LatLng) lookup. Empty
// Language and Region fall back to the service defaults.
type GeocodeInput struct {
	Address  string
	LatLng   string
	Language string
	Region   string
}

// GeocodeService proxies geocoding requests so the maps key stays on the
// server.
type GeocodeService interface {
	Geocode(ctx context.Context, in GeocodeInput) (json.RawMessage, error)
}

type geocodeService struct {
	maps            Geocoder
	defaultLanguage string
	defaultRegion   string
}

// NewGeocodeService constructs a new GeocodeService.
func NewGeocodeService(maps Geocoder, defaultLanguage, defaultRegion string) GeocodeService {
	return &geocodeService{maps: maps, defaultLanguage: defaultLanguage, defaultRegion: defaultRegion}
}

func (s *geocodeService) Geocode(ctx context.Context, in GeocodeInput) (json.RawMessage, error) {
	address := strings.TrimSpace(in.Address)
	latlng := strings.TrimSpace(in.LatLng)
	if address == "" && latlng == "" {
		return nil, invalid("address or latlng query parameter is required")
	}

	lang := s.defaultLanguage
	if in.Language != "" {
		tag, err := language.Parse(in.Language)
		if err != nil {
			return nil, invalid("language must be a BCP 47 tag")
		}
		lang = tag.String()
	}
	region := strings.ToLower(strings.TrimSpace(in.Region))
	if region == "" {
		region = s.defaultRegion
	}

	q := upstream.GeocodeQuery{Language: lang, Region: region}
	if address != "" {
		q.Address = address
	} else {
		q.LatLng = latlng
	}

	data, err := s.maps.Geocode(ctx, q)
	if err != nil {
		return nil, upstreamError("geocode", err)
	}
	return data, nil
}

// LanguageFromHeader picks the preferred base language of an
// Accept-Language header, or "" when the header is empty or malformed.
func LanguageFromHeader(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	base, conf := tags[0].Base()
	if conf == language.No {
		return ""
	}
	return base.String()
}
