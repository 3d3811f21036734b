package cli

import (
	"fmt"
	"time"

	"github.com/unplugapp/unplug/internal/dates"
	"github.com/unplugapp/unplug/internal/detox"
)

type ReflectCmd struct {
	Write ReflectWriteCmd `cmd:"" help:"Write (or rewrite) this week's reflection."`
	Show  ReflectShowCmd  `cmd:"" help:"Show past reflections." default:"1"`
}

type ReflectWriteCmd struct {
	Highlight string `short:"H" help:"What went well this week." required:""`
	Challenge string `short:"c" help:"What was hard this week." required:""`
	Focus     string `short:"f" help:"What to focus on next week." required:""`
	Week      string `help:"Week to write for, any date inside it (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *ReflectWriteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Week)
	if err != nil {
		return err
	}

	reflection, err := ctx.Detox.UpsertReflection(detox.ReflectionInput{
		WeekStartDate: dates.WeekStart(date),
		Highlight:     c.Highlight,
		Challenge:     c.Challenge,
		NextWeekFocus: c.Focus,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Reflection saved for week of %s\n", reflection.WeekStartDate)
	return nil
}

type ReflectShowCmd struct{}

func (c *ReflectShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	reflections, err := ctx.Detox.Reflections()
	if err != nil {
		return err
	}
	if len(reflections) == 0 {
		fmt.Println("No reflections yet. Write one with 'unplug reflect write'.")
		return nil
	}

	for _, r := range reflections {
		fmt.Printf("Week of %s (written %s)\n", r.WeekStartDate, r.CreatedAt.Format(time.DateOnly))
		fmt.Printf("  Went well:  %s\n", r.Highlight)
		fmt.Printf("  Was hard:   %s\n", r.Challenge)
		fmt.Printf("  Next week:  %s\n\n", r.NextWeekFocus)
	}
	return nil
}
