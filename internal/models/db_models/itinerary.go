package db_models

import (
	"time"

	"github.com/lib/pq"
)

// Itinerary is a shared itinerary snapshot. Rows hold the rendered markdown
// plus the trip facts shown on the share page; content never changes after
// creation, the row just ages out.
type Itinerary struct {
	BaseModel
	Markdown        string         `gorm:"type:text;not null"`
	Country         string         `gorm:"not null"`
	City            string         `gorm:"not null"`
	CityEn          string
	CountryCode     string
	Nights          int
	BudgetMode      string
	CompanionType   string
	Pace            string
	TravelStyles    pq.StringArray `gorm:"type:text[]"`
	DayStartHour    int
	DayEndHour      int
	ExpiresAt       time.Time `gorm:"index;not null"`
	DeleteTokenHash string    `gorm:"not null"`
}
