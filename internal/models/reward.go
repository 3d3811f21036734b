package models

type BadgeType string

const (
	BadgeDaily     BadgeType = "daily"
	BadgeStreak    BadgeType = "streak"
	BadgeMilestone BadgeType = "milestone"
)

// Badge is a derived achievement. Badges are regenerated in full on every
// reward computation; the persisted set is only a cache of the last run.
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Earned      bool      `json:"earned"`
	EarnedDate  string    `json:"earned_date,omitempty"` // YYYY-MM-DD format
	Type        BadgeType `json:"type"`
}

// RewardData is the aggregate reward snapshot. Everything except the grace-day
// fields is recomputed from the plan and logs on demand; grace-day state is
// explicit user action and survives recomputation.
type RewardData struct {
	Badges             []Badge `json:"badges"`
	TotalDaysCompleted int     `json:"total_days_completed"`
	CurrentStreak      int     `json:"current_streak"`
	LongestStreak      int     `json:"longest_streak"`
	GraceDayUsed       bool    `json:"grace_day_used"`
	GraceDayDate       string  `json:"grace_day_date,omitempty"` // YYYY-MM-DD format
}
