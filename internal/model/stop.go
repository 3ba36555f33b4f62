package model

import "time"

// Stop is a point of interest that belongs to a generated city tour.
type Stop struct {
	ID          string    `json:"id"`
	City        string    `json:"city"`
	TourType    string    `json:"tourType"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Lat         float64   `json:"latitude"`
	Lng         float64   `json:"longitude"`
	CreatedAt   time.Time `json:"createdAt"`
	LastUpdated time.Time `json:"lastUpdated"`

	// Enrichment is nil until the stop has been enriched.
	Enrichment *Enrichment `json:"enrichment,omitempty"`
}

// StopSummary is the shape returned to the client after generating stops.
type StopSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Lat         float64 `json:"latitude"`
	Lng         float64 `json:"longitude"`
}

// Summary drops the bookkeeping fields of a stop.
func (s Stop) Summary() StopSummary {
	return StopSummary{ID: s.ID, Name: s.Name, Description: s.Description, Lat: s.Lat, Lng: s.Lng}
}
