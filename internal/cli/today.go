package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unplugapp/unplug/internal/models"
)

type TodayCmd struct {
	Show     TodayShowCmd     `cmd:"" help:"Show today's checklist." default:"1"`
	Block    TodayBlockCmd    `cmd:"" help:"Toggle completion of a time block."`
	Activity TodayActivityCmd `cmd:"" help:"Record the replacement activity."`
	Mood     TodayMoodCmd     `cmd:"" help:"Record today's mood."`
	Trigger  TodayTriggerCmd  `cmd:"" help:"Record a trigger you noticed."`
	Note     TodayNoteCmd     `cmd:"" help:"Write today's gratitude note."`
	Focus    TodayFocusCmd    `cmd:"" help:"Log completed focus sessions."`
}

type TodayShowCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TodayShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	plan, err := ctx.Detox.ActivePlan()
	if err != nil {
		return err
	}
	if plan == nil {
		fmt.Println("No active plan. Create one with 'unplug plan new'.")
		return nil
	}

	log, err := ctx.Detox.LogForDate(date)
	if err != nil {
		return err
	}

	fmt.Printf("Checklist for %s:\n\n", date)
	for i, tb := range plan.TimeBlocks {
		done := log != nil && log.HasBlock(tb.ID)
		fmt.Printf("  %d. %s %s-%s  %s\n", i+1, checkmark(done), tb.Start, tb.End, tb.Label)
	}

	didActivity := log != nil && log.DidActivity
	fmt.Printf("\n  %s replacement activity\n", checkmark(didActivity))

	if log != nil {
		if log.Mood != "" {
			fmt.Printf("  Mood: %s\n", log.Mood)
		}
		if len(log.Triggers) > 0 {
			fmt.Printf("  Triggers: %s\n", strings.Join(log.Triggers, ", "))
		}
		if log.GratitudeNote != "" {
			fmt.Printf("  Gratitude: %s\n", log.GratitudeNote)
		}
		if log.FocusSessions > 0 {
			fmt.Printf("  Focus sessions: %d\n", log.FocusSessions)
		}
	}

	completed, err := ctx.Detox.IsDateCompleted(date)
	if err != nil {
		return err
	}
	if completed {
		fmt.Println("\nDay completed.")
	}
	return nil
}

type TodayBlockCmd struct {
	Block string `arg:"" help:"Block number (as shown by 'unplug today') or label."`
	Date  string `help:"Date to log against (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TodayBlockCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	plan, err := ctx.Detox.ActivePlan()
	if err != nil {
		return err
	}
	if plan == nil {
		return fmt.Errorf("no active plan")
	}

	var block *models.TimeBlock
	if n, err := strconv.Atoi(c.Block); err == nil && n >= 1 && n <= len(plan.TimeBlocks) {
		block = &plan.TimeBlocks[n-1]
	} else {
		for i := range plan.TimeBlocks {
			if strings.EqualFold(plan.TimeBlocks[i].Label, c.Block) {
				block = &plan.TimeBlocks[i]
				break
			}
		}
	}
	if block == nil {
		return fmt.Errorf("no such block: %s", c.Block)
	}

	log, err := ctx.Detox.ToggleBlock(date, block.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s on %s\n", checkmark(log.HasBlock(block.ID)), block.Label, date)
	return nil
}

type TodayActivityCmd struct {
	Done bool   `help:"Whether the replacement activity happened." default:"true" negatable:""`
	Date string `help:"Date to log against (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TodayActivityCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	if _, err := ctx.Detox.SetDidActivity(date, c.Done); err != nil {
		return err
	}
	fmt.Printf("Replacement activity for %s set to %t\n", date, c.Done)
	return nil
}

type TodayMoodCmd struct {
	Mood string `arg:"" help:"Mood (good|okay|stressful|overwhelmed)." enum:"good,okay,stressful,overwhelmed"`
	Date string `help:"Date to log against (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TodayMoodCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	mood, ok := models.ParseMood(c.Mood)
	if !ok {
		return fmt.Errorf("invalid mood: %s", c.Mood)
	}
	if _, err := ctx.Detox.SetMood(date, mood); err != nil {
		return err
	}
	fmt.Printf("Mood for %s recorded as %s\n", date, mood)
	return nil
}

type TodayTriggerCmd struct {
	Trigger string `arg:"" help:"Trigger label."`
	Date    string `help:"Date to log against (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TodayTriggerCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	if _, err := ctx.Detox.AddTrigger(date, c.Trigger); err != nil {
		return err
	}
	fmt.Printf("Trigger %q recorded for %s\n", c.Trigger, date)
	return nil
}

type TodayNoteCmd struct {
	Note string `arg:"" help:"Gratitude note."`
	Date string `help:"Date to log against (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TodayNoteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	if _, err := ctx.Detox.SetGratitudeNote(date, c.Note); err != nil {
		return err
	}
	fmt.Printf("Gratitude note saved for %s\n", date)
	return nil
}

type TodayFocusCmd struct {
	Count int    `arg:"" help:"Number of focus sessions to add." default:"1"`
	Date  string `help:"Date to log against (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TodayFocusCmd) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("focus session count must be at least 1")
	}
	return nil
}

func (c *TodayFocusCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	log, err := ctx.Detox.AddFocusSessions(date, c.Count)
	if err != nil {
		return err
	}
	fmt.Printf("Focus sessions for %s: %d\n", date, log.FocusSessions)
	return nil
}
