package request_models

import "fmt"

// GeoLookupRequest geocodes the places of a markdown itinerary. City and
// coordinates narrow the search; names outside the city radius are still
// returned when the provider finds them.
type GeoLookupRequest struct {
	Markdown string   `json:"markdown" binding:"required"`
	City     string   `json:"city"`
	CityEn   string   `json:"cityEn"`
	Country  string   `json:"country"`
	CityLat  *float64 `json:"cityLat,omitempty"`
	CityLon  *float64 `json:"cityLon,omitempty"`
}

func (r *GeoLookupRequest) Validate() error {
	if r.Markdown == "" {
		return fmt.Errorf("markdown is required")
	}
	return nil
}
