package model

import "time"

// Preview is the thumbnail OpenTripMap attaches to an object.
type Preview struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Extract is the Wikipedia summary of an object.
type Extract struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	HTML  string `json:"html"`
}

// Enrichment is the normalized OpenTripMap detail record stored on a stop.
type Enrichment struct {
	Name       string     `json:"name"`
	Kinds      []string   `json:"kinds"`
	Rate       int        `json:"rate"`
	XID        string     `json:"xid"`
	Wikidata   string     `json:"wikidata,omitempty"`
	Wikipedia  string     `json:"wikipedia,omitempty"`
	URL        string     `json:"url,omitempty"`
	Image      string     `json:"image,omitempty"`
	Preview    *Preview   `json:"preview,omitempty"`
	Extract    *Extract   `json:"extract,omitempty"`
	EnrichedAt *time.Time `json:"enrichedAt,omitempty"`
}
