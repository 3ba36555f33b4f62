package navigation

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/twpayne/go-polyline"
)

// ErrNoRoute is returned when a directions response carries no usable route.
var ErrNoRoute = errors.New("no route found")

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		Legs             []directionsLeg `json:"legs"`
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
	} `json:"routes"`
}

type directionsLeg struct {
	Distance textValue        `json:"distance"`
	Duration textValue        `json:"duration"`
	Steps    []directionsStep `json:"steps"`
}

type directionsStep struct {
	HTMLInstructions string    `json:"html_instructions"`
	Distance         textValue `json:"distance"`
	Duration         textValue `json:"duration"`
	Maneuver         string    `json:"maneuver"`
	StartLocation    LatLng    `json:"start_location"`
	EndLocation      LatLng    `json:"end_location"`
}

type textValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// ParseDirections converts a Google Directions web service response into a
// Route. Steps of all legs are flattened into one list with consecutive
// indices and the overview polyline is decoded for off-route checks.
func ParseDirections(data []byte) (Route, error) {
	var resp directionsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return Route{}, fmt.Errorf("decode directions: %w", err)
	}
	if resp.Status != "" && resp.Status != "OK" {
		return Route{}, fmt.Errorf("%w: %s", ErrNoRoute, resp.Status)
	}
	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return Route{}, ErrNoRoute
	}

	r := resp.Routes[0]
	route := Route{Steps: []Step{}, Polyline: []LatLng{}}
	for _, leg := range r.Legs {
		route.TotalDistance += leg.Distance.Value
		route.TotalDuration += leg.Duration.Value
		for _, s := range leg.Steps {
			maneuver := s.Maneuver
			if maneuver == "" {
				maneuver = "straight"
			}
			route.Steps = append(route.Steps, Step{
				Index:           len(route.Steps),
				Instruction:     StripHTML(s.HTMLInstructions),
				InstructionHTML: s.HTMLInstructions,
				Distance:        s.Distance.Value,
				DistanceText:    s.Distance.Text,
				Duration:        s.Duration.Value,
				DurationText:    s.Duration.Text,
				Maneuver:        maneuver,
				StartLocation:   s.StartLocation,
				EndLocation:     s.EndLocation,
			})
		}
	}

	if len(r.Legs) == 1 {
		route.TotalDistanceText = r.Legs[0].Distance.Text
		route.TotalDurationText = r.Legs[0].Duration.Text
	}
	if route.TotalDistanceText == "" {
		route.TotalDistanceText = FormatDistance(float64(route.TotalDistance))
	}
	if route.TotalDurationText == "" {
		route.TotalDurationText = FormatDuration(route.TotalDuration)
	}

	if pts := r.OverviewPolyline.Points; pts != "" {
		coords, _, err := polyline.DecodeCoords([]byte(pts))
		if err != nil {
			return Route{}, fmt.Errorf("decode overview polyline: %w", err)
		}
		for _, c := range coords {
			route.Polyline = append(route.Polyline, LatLng{Lat: c[0], Lng: c[1]})
		}
	}

	return route, nil
}
