package models

import "time"

type ChallengeStatus string

const (
	// ChallengeLocked is the implicit default: no stored record exists.
	ChallengeLocked    ChallengeStatus = "locked"
	ChallengeActive    ChallengeStatus = "active"
	ChallengeCompleted ChallengeStatus = "completed"
)

// Challenge is a static catalog entry for a multi-day opt-in goal.
type Challenge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetDays  int    `json:"target_days"`
}

// ChallengeProgress is the mutable per-challenge state. Locked challenges have
// no record at all; status is derived as locked at the lookup boundary.
type ChallengeProgress struct {
	ID          string          `json:"id"`
	Status      ChallengeStatus `json:"status"`
	CurrentDays int             `json:"current_days"`
	StartedAt   time.Time       `json:"started_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}
