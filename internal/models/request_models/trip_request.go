package request_models

import (
	"fmt"
	"strings"
)

const (
	MinNights = 1
	MaxNights = 14
)

var (
	budgetModes     = []string{"가성비", "보통", "프리미엄"}
	companionTypes  = []string{"혼자", "커플", "친구", "가족", "아이동반"}
	paceOptions     = []string{"여유", "보통", "빡빡"}
	maxTravelStyles = 8
)

// TripParameters is the shared request body of every generation endpoint.
// Optional coordinate and naming fields come from the city catalog and feed
// geocoding hints; they are never required.
type TripParameters struct {
	Country       string   `json:"country" binding:"required"`
	City          string   `json:"city" binding:"required"`
	Nights        int      `json:"nights" binding:"required"`
	TravelStyles  []string `json:"travelStyles"`
	BudgetMode    string   `json:"budgetMode"`
	CompanionType string   `json:"companionType"`
	Pace          string   `json:"pace"`
	DayStartHour  int      `json:"dayStartHour"`
	DayEndHour    int      `json:"dayEndHour"`
	CityLat       *float64 `json:"cityLat,omitempty"`
	CityLon       *float64 `json:"cityLon,omitempty"`
	CityEn        string   `json:"cityEn,omitempty"`
	CountryCode   string   `json:"countryCode,omitempty"`
}

// Normalize trims fields, fills defaults and deduplicates travel styles.
// Call before Validate.
func (p *TripParameters) Normalize() {
	p.Country = strings.TrimSpace(p.Country)
	p.City = strings.TrimSpace(p.City)
	p.CityEn = strings.TrimSpace(p.CityEn)
	p.CountryCode = strings.ToUpper(strings.TrimSpace(p.CountryCode))

	if p.BudgetMode == "" {
		p.BudgetMode = "보통"
	}
	if p.CompanionType == "" {
		p.CompanionType = "친구"
	}
	if p.Pace == "" {
		p.Pace = "보통"
	}
	if p.DayStartHour == 0 {
		p.DayStartHour = 9
	}
	if p.DayEndHour == 0 {
		p.DayEndHour = 21
	}

	seen := make(map[string]bool)
	styles := make([]string, 0, len(p.TravelStyles))
	for _, s := range p.TravelStyles {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		styles = append(styles, s)
	}
	p.TravelStyles = styles
}

func oneOf(value string, options []string) bool {
	for _, o := range options {
		if value == o {
			return true
		}
	}
	return false
}

func (p *TripParameters) Validate() error {
	if p.Country == "" {
		return fmt.Errorf("country is required")
	}
	if p.City == "" {
		return fmt.Errorf("city is required")
	}
	if p.Nights < MinNights || p.Nights > MaxNights {
		return fmt.Errorf("nights must be between %d and %d", MinNights, MaxNights)
	}
	if !oneOf(p.BudgetMode, budgetModes) {
		return fmt.Errorf("budgetMode must be one of %s", strings.Join(budgetModes, ", "))
	}
	if !oneOf(p.CompanionType, companionTypes) {
		return fmt.Errorf("companionType must be one of %s", strings.Join(companionTypes, ", "))
	}
	if !oneOf(p.Pace, paceOptions) {
		return fmt.Errorf("pace must be one of %s", strings.Join(paceOptions, ", "))
	}
	if p.DayStartHour < 0 || p.DayStartHour > 23 || p.DayEndHour < 1 || p.DayEndHour > 24 {
		return fmt.Errorf("day hours out of range")
	}
	if p.DayEndHour <= p.DayStartHour {
		return fmt.Errorf("dayEndHour must be after dayStartHour")
	}
	if len(p.TravelStyles) > maxTravelStyles {
		return fmt.Errorf("too many travel styles (max %d)", maxTravelStyles)
	}
	return nil
}

// Days is nights+1, the number of itinerary days to generate.
func (p *TripParameters) Days() int {
	return p.Nights + 1
}
