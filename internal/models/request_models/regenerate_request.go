package request_models

import "fmt"

// RegenerateDayRequest rebuilds one day of an existing markdown itinerary.
type RegenerateDayRequest struct {
	Markdown string         `json:"markdown" binding:"required"`
	DayNum   int            `json:"dayNum" binding:"required"`
	Params   TripParameters `json:"params"`
}

func (r *RegenerateDayRequest) Validate() error {
	if r.Markdown == "" {
		return fmt.Errorf("markdown is required")
	}
	if r.DayNum < 1 {
		return fmt.Errorf("dayNum must be at least 1")
	}
	return nil
}

// RegenerateSectionRequest rebuilds one section of one day.
type RegenerateSectionRequest struct {
	Markdown string         `json:"markdown" binding:"required"`
	DayNum   int            `json:"dayNum" binding:"required"`
	Section  string         `json:"section" binding:"required"`
	Params   TripParameters `json:"params"`
}

func (r *RegenerateSectionRequest) Validate() error {
	if r.Markdown == "" {
		return fmt.Errorf("markdown is required")
	}
	if r.DayNum < 1 {
		return fmt.Errorf("dayNum must be at least 1")
	}
	if r.Section == "" {
		return fmt.Errorf("section is required")
	}
	return nil
}
