package detox

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/unplugapp/unplug/internal/dates"
	"github.com/unplugapp/unplug/internal/models"
)

// PlanDuration selects how long a new plan runs, starting today.
type PlanDuration string

const (
	DurationToday PlanDuration = "today"
	Duration7Days PlanDuration = "7days"
)

// PlanForm carries user input for plan creation.
type PlanForm struct {
	Title      string
	Duration   PlanDuration
	FocusAreas []string
	Activities []string
	TimeBlocks []BlockForm
}

type BlockForm struct {
	Label string
	Start string // HH:MM format
	End   string // HH:MM format
}

// CreatePlan builds a plan from form values, replacing any existing plan.
// Replacing a plan clears its logs and reward data: grace day and streaks are
// per-plan state.
func (s *Service) CreatePlan(form PlanForm) (models.DetoxPlan, error) {
	startDate := s.today()
	endDate := startDate
	if form.Duration != DurationToday {
		endDate = dates.AddDays(startDate, 6)
	}

	blocks := make([]models.TimeBlock, 0, len(form.TimeBlocks))
	for i, bf := range form.TimeBlocks {
		label := strings.TrimSpace(bf.Label)
		if label == "" {
			label = fmt.Sprintf("Block %d", i+1)
		}
		blocks = append(blocks, models.TimeBlock{
			ID:    uuid.New().String(),
			Label: label,
			Start: bf.Start,
			End:   bf.End,
		})
	}

	title := strings.TrimSpace(form.Title)
	if title == "" {
		title = "My Detox Plan"
	}

	plan := models.DetoxPlan{
		ID:         uuid.New().String(),
		Title:      title,
		StartDate:  startDate,
		EndDate:    endDate,
		FocusAreas: form.FocusAreas,
		Activities: form.Activities,
		TimeBlocks: blocks,
	}

	if err := plan.Validate(); err != nil {
		return models.DetoxPlan{}, err
	}

	if err := s.store.Reset(); err != nil {
		return models.DetoxPlan{}, err
	}
	if err := s.store.SavePlan(plan); err != nil {
		return models.DetoxPlan{}, err
	}

	return plan, nil
}

// ActivePlan returns the current plan, or nil when none exists.
func (s *Service) ActivePlan() (*models.DetoxPlan, error) {
	return s.store.GetPlan()
}
