package request_models

import "fmt"

const maxShareMarkdownBytes = 200_000

// CreateShareRequest stores a finished itinerary for link sharing. The trip
// parameters ride along so the share page can show trip facts without
// re-parsing the markdown.
type CreateShareRequest struct {
	Markdown string         `json:"markdown" binding:"required"`
	Params   TripParameters `json:"params"`
}

func (r *CreateShareRequest) Validate() error {
	if r.Markdown == "" {
		return fmt.Errorf("markdown is required")
	}
	if len(r.Markdown) > maxShareMarkdownBytes {
		return fmt.Errorf("markdown too large")
	}
	return nil
}
