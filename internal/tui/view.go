package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}
	if m.plan == nil {
		return "No active plan. Create one with 'unplug plan new'.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.plan.Title))
	b.WriteString("\n\n")

	for i, tb := range m.plan.TimeBlocks {
		cursor := "  "
		if m.cursor == i {
			cursor = cursorStyle.Render("> ")
		}

		line := fmt.Sprintf("[%s] %s-%s  %s", markFor(m.blockDone(tb)), tb.Start, tb.End, tb.Label)
		if m.blockDone(tb) {
			line = doneStyle.Render(line)
		} else {
			line = pendingStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	cursor := "  "
	if m.cursor == m.activityRow() {
		cursor = cursorStyle.Render("> ")
	}
	didActivity := m.log != nil && m.log.DidActivity
	activityLine := fmt.Sprintf("[%s] replacement activity", markFor(didActivity))
	if didActivity {
		activityLine = doneStyle.Render(activityLine)
	} else {
		activityLine = pendingStyle.Render(activityLine)
	}
	b.WriteString(cursor + activityLine + "\n")

	if m.log != nil && m.log.Mood != "" {
		b.WriteString(pendingStyle.Render(fmt.Sprintf("\nMood: %s", m.log.Mood)) + "\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func markFor(done bool) string {
	if done {
		return "x"
	}
	return " "
}
