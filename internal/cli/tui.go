package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unplugapp/unplug/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	model, err := tui.NewModel(ctx.Detox)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}
