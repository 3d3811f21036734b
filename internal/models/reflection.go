package models

import "time"

// WeeklyReflection is one free-text record per calendar week, keyed by the
// week's start date. Writing a reflection for an existing week replaces it.
type WeeklyReflection struct {
	ID            string    `json:"id"`
	WeekStartDate string    `json:"week_start_date"` // YYYY-MM-DD format
	Highlight     string    `json:"highlight"`
	Challenge     string    `json:"challenge"`
	NextWeekFocus string    `json:"next_week_focus"`
	CreatedAt     time.Time `json:"created_at"`
}
