package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unplugapp/unplug/internal/models"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.plan == nil {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.rowCount()-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			if m.cursor == m.activityRow() {
				return m.toggleActivity()
			}
			return m.toggleBlock(m.cursor)

		case key.Matches(msg, m.keys.Activity):
			return m.toggleActivity()

		case key.Matches(msg, m.keys.Mood):
			return m.setMood(msg.String())
		}
	}

	return m, nil
}

func (m Model) toggleBlock(idx int) (tea.Model, tea.Cmd) {
	tb := m.plan.TimeBlocks[idx]
	log, err := m.detox.ToggleBlockForToday(tb.ID)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.log = &log
	if log.HasBlock(tb.ID) {
		m.status = "Marked " + tb.Label + " done"
	} else {
		m.status = "Unmarked " + tb.Label
	}
	return m, nil
}

func (m Model) toggleActivity() (tea.Model, tea.Cmd) {
	current := m.log != nil && m.log.DidActivity
	log, err := m.detox.SetDidActivityForToday(!current)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.log = &log
	if log.DidActivity {
		m.status = "Replacement activity done"
	} else {
		m.status = "Replacement activity cleared"
	}
	return m, nil
}

var moodKeys = map[string]models.Mood{
	"1": models.MoodGood,
	"2": models.MoodOkay,
	"3": models.MoodStressful,
	"4": models.MoodOverwhelmed,
}

func (m Model) setMood(keyPressed string) (tea.Model, tea.Cmd) {
	mood, ok := moodKeys[keyPressed]
	if !ok {
		return m, nil
	}
	log, err := m.detox.SetMoodForToday(mood)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.log = &log
	m.status = "Mood set to " + string(mood)
	return m, nil
}
