package models

import (
	"fmt"
	"time"
)

type AlarmRepeat string

const (
	RepeatDaily AlarmRepeat = "daily"
)

// Alarm is a daily reminder. The core only stores and matches alarms; actual
// notification delivery is handled by the notify package.
type Alarm struct {
	ID        string      `json:"id"`
	Label     string      `json:"label"`
	Time      string      `json:"time"` // HH:MM format
	Enabled   bool        `json:"enabled"`
	Repeat    AlarmRepeat `json:"repeat"`
	CreatedAt time.Time   `json:"created_at"`
}

func (a *Alarm) Validate() error {
	if a.Label == "" {
		return fmt.Errorf("alarm label cannot be empty")
	}
	if _, err := time.Parse("15:04", a.Time); err != nil {
		return fmt.Errorf("invalid alarm time (expected HH:MM): %w", err)
	}
	return nil
}

// IsDue reports whether the alarm should fire at the given wall-clock moment.
// Alarms match on the minute; the runner is responsible for firing at most
// once per matching minute.
func (a *Alarm) IsDue(now time.Time) bool {
	return a.Enabled && a.Time == now.Format("15:04")
}
