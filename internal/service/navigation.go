package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"citycast/internal/navigation"
	"citycast/internal/upstream"
)

var travelModes = map[string]bool{"walking": true, "bicycling": true, "driving": true, "transit": true}

// RouteInput asks for a route through the given points.
type RouteInput struct {
	Origin      navigation.LatLng
	Destination navigation.LatLng
	Waypoints   []navigation.LatLng
	Mode        string
	Language    string
}

// ProgressInput is one location update against a known route. Stop, when
// set, is the coordinate of the stop being walked to.
type ProgressInput struct {
	Route            navigation.Route
	CurrentStepIndex int
	Location         *navigation.Sample
	ThresholdMeters  float64
	Stop             *navigation.LatLng
}

// ProgressResult is the tracker state after a location update.
type ProgressResult struct {
	navigation.Progress
	Arrival *navigation.ArrivalState `json:"arrival,omitempty"`
}

// NavigationService plans walking routes and tracks progress along them.
type NavigationService interface {
	Route(ctx context.Context, in RouteInput) (*navigation.Route, error)
	Progress(ctx context.Context, in ProgressInput) ProgressResult
}

type navigationService struct {
	maps           DirectionsFinder
	language       string
	offRouteMeters float64
	arrivalMeters  float64
}

// NewNavigationService constructs a new NavigationService. Non-positive
// thresholds use the navigation package defaults.
func NewNavigationService(maps DirectionsFinder, language string, offRouteMeters, arrivalMeters float64) NavigationService {
	if offRouteMeters <= 0 {
		offRouteMeters = navigation.DefaultOffRouteMeters
	}
	if arrivalMeters <= 0 {
		arrivalMeters = navigation.DefaultArrivalMeters
	}
	return &navigationService{maps: maps, language: language, offRouteMeters: offRouteMeters, arrivalMeters: arrivalMeters}
}

func (s *navigationService) Route(ctx context.Context, in RouteInput) (*navigation.Route, error) {
	if !in.Origin.Valid() || !in.Destination.Valid() {
		return nil, invalid("origin and destination must be valid coordinates")
	}
	mode := strings.ToLower(strings.TrimSpace(in.Mode))
	if mode == "" {
		mode = "walking"
	}
	if !travelModes[mode] {
		return nil, invalid("mode must be one of walking, bicycling, driving, transit")
	}

	waypoints := make([]string, 0, len(in.Waypoints))
	for i, w := range in.Waypoints {
		if !w.Valid() {
			return nil, invalid("waypoint %d is not a valid coordinate", i)
		}
		waypoints = append(waypoints, formatLatLng(w))
	}

	lang := in.Language
	if lang == "" {
		lang = s.language
	}

	raw, err := s.maps.Directions(ctx, upstream.DirectionsQuery{
		Origin:      formatLatLng(in.Origin),
		Destination: formatLatLng(in.Destination),
		Waypoints:   waypoints,
		Mode:        mode,
		Language:    lang,
	})
	if err != nil {
		return nil, upstreamError("directions", err)
	}

	route, err := navigation.ParseDirections(raw)
	if err != nil {
		return nil, fmt.Errorf("parse directions: %w", err)
	}
	return &route, nil
}

func (s *navigationService) Progress(_ context.Context, in ProgressInput) ProgressResult {
	threshold := in.ThresholdMeters
	if threshold <= 0 {
		threshold = s.offRouteMeters
	}
	res := ProgressResult{Progress: navigation.Evaluate(in.Route, in.CurrentStepIndex, in.Location, threshold)}
	if in.Stop != nil {
		a := navigation.Arrival(*in.Stop, in.Location, s.arrivalMeters)
		res.Arrival = &a
	}
	return res
}

func formatLatLng(p navigation.LatLng) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}
