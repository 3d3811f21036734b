package models

import (
	"fmt"
	"time"
)

// TimeBlock is a screen-free window inside a detox plan.
type TimeBlock struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Start string `json:"start"` // HH:MM format
	End   string `json:"end"`   // HH:MM format
}

// DetoxPlan is the single active plan. Creating a new plan replaces the old
// one and clears its logs; a plan is never edited in place.
type DetoxPlan struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	StartDate  string      `json:"start_date"` // YYYY-MM-DD format
	EndDate    string      `json:"end_date"`   // YYYY-MM-DD format, inclusive
	FocusAreas []string    `json:"focus_areas"`
	Activities []string    `json:"activities"`
	TimeBlocks []TimeBlock `json:"time_blocks"`
}

func (p *DetoxPlan) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("plan title cannot be empty")
	}

	start, err := time.Parse("2006-01-02", p.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date (expected YYYY-MM-DD): %w", err)
	}
	end, err := time.Parse("2006-01-02", p.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end date (expected YYYY-MM-DD): %w", err)
	}
	if end.Before(start) {
		return fmt.Errorf("plan end date %s is before start date %s", p.EndDate, p.StartDate)
	}

	for _, tb := range p.TimeBlocks {
		if _, err := time.Parse("15:04", tb.Start); err != nil {
			return fmt.Errorf("block %q: invalid start time (expected HH:MM): %w", tb.Label, err)
		}
		if _, err := time.Parse("15:04", tb.End); err != nil {
			return fmt.Errorf("block %q: invalid end time (expected HH:MM): %w", tb.Label, err)
		}
	}

	return nil
}

// Block returns the time block with the given id, if present.
func (p *DetoxPlan) Block(id string) (TimeBlock, bool) {
	for _, tb := range p.TimeBlocks {
		if tb.ID == id {
			return tb, true
		}
	}
	return TimeBlock{}, false
}
