package response_models

// ShareCreated returns the share id plus the one-time delete token. The
// token is shown exactly once; only its hash is stored.
type ShareCreated struct {
	ID          string `json:"id"`
	DeleteToken string `json:"deleteToken"`
	ExpiresAt   string `json:"expiresAt"`
}

// SharedItinerary is the public view of a stored share.
type SharedItinerary struct {
	ID            string   `json:"id"`
	Markdown      string   `json:"markdown"`
	Country       string   `json:"country"`
	City          string   `json:"city"`
	Nights        int      `json:"nights"`
	BudgetMode    string   `json:"budgetMode,omitempty"`
	CompanionType string   `json:"companionType,omitempty"`
	Pace          string   `json:"pace,omitempty"`
	TravelStyles  []string `json:"travelStyles,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	ExpiresAt     string   `json:"expiresAt"`
}
