package cli

import (
	"fmt"

	"github.com/unplugapp/unplug/internal/detox"
	"github.com/unplugapp/unplug/internal/models"
)

type SupportCmd struct {
	Exercise string `short:"e" help:"Pick an exercise instead (breathing|grounding|journaling)." enum:"breathing,grounding,journaling,"`
}

func (c *SupportCmd) Run(ctx *Context) error {
	var msg detox.SupportMessage

	switch c.Exercise {
	case "breathing":
		msg = detox.BreathingExercise()
	case "grounding":
		msg = detox.GroundingExercise()
	case "journaling":
		msg = detox.JournalingPrompt()
	default:
		if err := ctx.Store.Load(); err != nil {
			return err
		}
		// Use today's recorded mood when there is one.
		mood := models.Mood("")
		if log, err := ctx.Detox.LogForToday(); err == nil && log != nil {
			mood = log.Mood
		}
		msg = ctx.Detox.SupportMessageFor(mood)
	}

	fmt.Printf("%s\n\n%s\n", msg.Title, msg.Body)
	return nil
}
