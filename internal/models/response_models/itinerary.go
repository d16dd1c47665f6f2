package response_models

import "smarttrip/internal/itinerary"

// DayFeasibility is the realism report for one day.
type DayFeasibility struct {
	Day         int      `json:"day"`
	MoveMinutes int      `json:"moveMinutes"`
	ItemCount   int      `json:"itemCount"`
	Warnings    []string `json:"warnings,omitempty"`
}

// GeneratedItinerary is the markdown-path generation result.
type GeneratedItinerary struct {
	Markdown    string           `json:"markdown"`
	Days        int              `json:"days"`
	Feasibility []DayFeasibility `json:"feasibility,omitempty"`
}

// StructuredItinerary carries both the typed plan and its markdown
// projection, so clients can render either.
type StructuredItinerary struct {
	Itinerary   *itinerary.ItineraryResponse `json:"itinerary"`
	Markdown    string                       `json:"markdown"`
	Feasibility []DayFeasibility             `json:"feasibility,omitempty"`
}

// RegeneratedDay is the replaced-in-place document after a day or section
// regeneration.
type RegeneratedDay struct {
	Markdown string `json:"markdown"`
	DayNum   int    `json:"dayNum"`
	Section  string `json:"section,omitempty"`
}
