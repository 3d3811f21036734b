// Package tui is the interactive checklist for today's detox plan: toggle
// time blocks, record the replacement activity, and set a mood without
// leaving the terminal.
package tui

import (
	"github.com/charmbracelet/bubbles/help"

	"github.com/unplugapp/unplug/internal/detox"
	"github.com/unplugapp/unplug/internal/models"
)

type Model struct {
	detox    *detox.Service
	plan     *models.DetoxPlan
	log      *models.DailyLog
	cursor   int
	keys     KeyMap
	help     help.Model
	status   string
	err      error
	quitting bool
}

func NewModel(svc *detox.Service) (Model, error) {
	plan, err := svc.ActivePlan()
	if err != nil {
		return Model{}, err
	}

	var log *models.DailyLog
	if plan != nil {
		log, err = svc.LogForToday()
		if err != nil {
			return Model{}, err
		}
	}

	return Model{
		detox: svc,
		plan:  plan,
		log:   log,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}, nil
}

// rowCount is the number of selectable rows: one per time block plus the
// activity row.
func (m Model) rowCount() int {
	if m.plan == nil {
		return 0
	}
	return len(m.plan.TimeBlocks) + 1
}

// activityRow is the index of the replacement-activity row.
func (m Model) activityRow() int {
	return len(m.plan.TimeBlocks)
}

func (m Model) blockDone(tb models.TimeBlock) bool {
	return m.log != nil && m.log.HasBlock(tb.ID)
}
