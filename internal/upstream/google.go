package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	DefaultGoogleMapsURL   = "https://maps.googleapis.com"
	DefaultGooglePlacesURL = "https://places.googleapis.com"

	placesFieldMask = "places.id,places.displayName,places.location"
)

// Place is one result of a Places text search.
type Place struct {
	ID   string
	Name string
	Lat  float64
	Lng  float64
}

// TextSearch is a Places API (New) text query.
type TextSearch struct {
	Query        string
	LanguageCode string
	MaxResults   int
}

// PlacesClient talks to the Google Places API (New).
type PlacesClient struct {
	c client
}

// NewPlacesClient builds a Places client. An empty BaseURL uses the public endpoint.
func NewPlacesClient(cfg Config) *PlacesClient {
	return &PlacesClient{c: newClient("google_places", cfg, DefaultGooglePlacesURL)}
}

// SearchText runs a text search and returns the places with a name.
func (p *PlacesClient) SearchText(ctx context.Context, q TextSearch) ([]Place, error) {
	if !p.c.configured() {
		return nil, ErrNotConfigured
	}
	payload, err := json.Marshal(map[string]any{
		"textQuery":      q.Query,
		"languageCode":   q.LanguageCode,
		"maxResultCount": q.MaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("google_places: marshal request: %w", err)
	}
	req, err := p.c.newRequest(ctx, http.MethodPost, "/v1/places:searchText", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Goog-Api-Key", p.c.apiKey)
	req.Header.Set("X-Goog-FieldMask", placesFieldMask)

	body, err := p.c.do(req)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Places []struct {
			ID          string `json:"id"`
			DisplayName struct {
				Text string `json:"text"`
			} `json:"displayName"`
			Location struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"location"`
		} `json:"places"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("google_places: decode response: %w", err)
	}

	places := make([]Place, 0, len(resp.Places))
	for _, pl := range resp.Places {
		name := strings.TrimSpace(pl.DisplayName.Text)
		if name == "" {
			continue
		}
		places = append(places, Place{
			ID:   pl.ID,
			Name: name,
			Lat:  pl.Location.Latitude,
			Lng:  pl.Location.Longitude,
		})
	}
	return places, nil
}

// GeocodeQuery is either a forward (Address) or reverse (LatLng) lookup.
type GeocodeQuery struct {
	Address  string
	LatLng   string
	Language string
	Region   string
}

// DirectionsQuery asks for a route between two points. Origin, Destination
// and Waypoints are "lat,lng" pairs or addresses.
type DirectionsQuery struct {
	Origin      string
	Destination string
	Waypoints   []string
	Mode        string
	Language    string
}

// MapsClient talks to the Google Maps web services that authenticate with
// a key query parameter.
type MapsClient struct {
	c client
}

// NewMapsClient builds a Maps web service client.
func NewMapsClient(cfg Config) *MapsClient {
	return &MapsClient{c: newClient("google_maps", cfg, DefaultGoogleMapsURL)}
}

// Geocode returns the raw Geocoding API response.
func (m *MapsClient) Geocode(ctx context.Context, q GeocodeQuery) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("language", q.Language)
	params.Set("region", q.Region)
	if q.Address != "" {
		params.Set("address", q.Address)
	} else {
		params.Set("latlng", q.LatLng)
	}
	return m.get(ctx, "/maps/api/geocode/json", params)
}

// Directions returns the raw Directions API response.
func (m *MapsClient) Directions(ctx context.Context, q DirectionsQuery) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("origin", q.Origin)
	params.Set("destination", q.Destination)
	if len(q.Waypoints) > 0 {
		params.Set("waypoints", strings.Join(q.Waypoints, "|"))
	}
	if q.Mode != "" {
		params.Set("mode", q.Mode)
	}
	if q.Language != "" {
		params.Set("language", q.Language)
	}
	return m.get(ctx, "/maps/api/directions/json", params)
}

func (m *MapsClient) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if !m.c.configured() {
		return nil, ErrNotConfigured
	}
	params.Set("key", m.c.apiKey)
	req, err := m.c.newRequest(ctx, http.MethodGet, path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	body, err := m.c.do(req)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("google_maps: response is not JSON")
	}
	return body, nil
}
