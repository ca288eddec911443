package models

import "time"

// Record is one persisted country-tagged content item. Records are
// immutable once created; there is no update or delete anywhere in the
// system.
type Record struct {
	ID          string    `json:"id" db:"id"`
	CountryCode string    `json:"countryCode" db:"country_code"`
	Title       string    `json:"title" db:"title"`
	Info        string    `json:"info" db:"info"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	AudioURL    string    `json:"audioUrl" db:"audio_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
