package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	DefaultOpenTripMapURL = "https://api.opentripmap.com/0.1/en/places"

	otmRadiusMeters = 200
	otmLimit        = 10
	otmKinds        = "interesting_places,historic,architecture,cultural,museums,religion,natural"
)

// POI is a radius search hit.
type POI struct {
	XID  string  `json:"xid"`
	Name string  `json:"name"`
	Dist float64 `json:"dist"`
	Rate int     `json:"rate"`
}

// PlaceDetail is the subset of an OpenTripMap object detail the service
// uses. Rate is a pointer so that an absent rate can be told apart from 0.
type PlaceDetail struct {
	XID       string `json:"xid"`
	Name      string `json:"name"`
	Kinds     string `json:"kinds"`
	Rate      *rate  `json:"rate"`
	Wikidata  string `json:"wikidata"`
	Wikipedia string `json:"wikipedia"`
	URL       string `json:"url"`
	Image     string `json:"image"`
	Preview   *struct {
		Source string `json:"source"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	} `json:"preview"`
	WikipediaExtracts *struct {
		Title string `json:"title"`
		Text  string `json:"text"`
		HTML  string `json:"html"`
	} `json:"wikipedia_extracts"`
}

// rate accepts both the numeric and the string form OpenTripMap uses
// ("3", "3h").
type rate int

func (r *rate) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*r = rate(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("rate: %w", err)
	}
	digits := ""
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			break
		}
		digits += string(ch)
	}
	n, _ = strconv.Atoi(digits)
	*r = rate(n)
	return nil
}

// RateValue returns the rate, 0 when absent.
func (d *PlaceDetail) RateValue() int {
	if d.Rate == nil {
		return 0
	}
	return int(*d.Rate)
}

// OpenTripMapClient talks to the OpenTripMap places API.
type OpenTripMapClient struct {
	c client
}

// NewOpenTripMapClient builds an OpenTripMap client.
func NewOpenTripMapClient(cfg Config) *OpenTripMapClient {
	return &OpenTripMapClient{c: newClient("opentripmap", cfg, DefaultOpenTripMapURL)}
}

// Radius lists points of interest within 200 m of the coordinate, nearest first.
func (o *OpenTripMapClient) Radius(ctx context.Context, lat, lng float64) ([]POI, error) {
	params := url.Values{}
	params.Set("radius", strconv.Itoa(otmRadiusMeters))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(otmLimit))
	params.Set("kinds", otmKinds)

	body, err := o.get(ctx, "/radius", params)
	if err != nil {
		return nil, err
	}
	var pois []POI
	if err := json.Unmarshal(body, &pois); err != nil {
		return nil, fmt.Errorf("opentripmap: decode radius response: %w", err)
	}
	return pois, nil
}

// Detail fetches the full object for xid.
func (o *OpenTripMapClient) Detail(ctx context.Context, xid string) (*PlaceDetail, error) {
	body, err := o.get(ctx, "/xid/"+url.PathEscape(xid), url.Values{})
	if err != nil {
		return nil, err
	}
	var d PlaceDetail
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, fmt.Errorf("opentripmap: decode detail response: %w", err)
	}
	return &d, nil
}

func (o *OpenTripMapClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if !o.c.configured() {
		return nil, ErrNotConfigured
	}
	params.Set("apikey", o.c.apiKey)
	req, err := o.c.newRequest(ctx, http.MethodGet, path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return o.c.do(req)
}
