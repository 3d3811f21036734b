package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/unplugapp/unplug/internal/detox"
)

type PlanCmd struct {
	New  PlanNewCmd  `cmd:"" help:"Create a new detox plan (replaces the current one)."`
	Show PlanShowCmd `cmd:"" help:"Show the active plan."`
}

type PlanNewCmd struct {
	Title      string   `short:"t" help:"Plan title."`
	Duration   string   `short:"d" help:"Plan duration (today|7days)." default:"7days" enum:"today,7days"`
	Focus      []string `short:"f" help:"Focus areas (repeatable)."`
	Activities []string `short:"a" help:"Replacement activities (repeatable)."`
	Blocks     []string `short:"b" help:"Time blocks as 'Label@HH:MM-HH:MM' (repeatable)."`
	NoInput    bool     `help:"Skip the interactive form even when no flags are given."`
}

func (c *PlanNewCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	form := detox.PlanForm{
		Title:      c.Title,
		Duration:   detox.PlanDuration(c.Duration),
		FocusAreas: c.Focus,
		Activities: c.Activities,
	}

	for _, b := range c.Blocks {
		bf, err := parseBlockSpec(b)
		if err != nil {
			return err
		}
		form.TimeBlocks = append(form.TimeBlocks, bf)
	}

	// No flags at all: walk through the interactive form instead.
	if c.Title == "" && len(c.Blocks) == 0 && !c.NoInput {
		if err := runPlanForm(&form); err != nil {
			return err
		}
	}

	if len(form.TimeBlocks) == 0 {
		return fmt.Errorf("a plan needs at least one time block (use --block 'Label@HH:MM-HH:MM')")
	}

	plan, err := ctx.Detox.CreatePlan(form)
	if err != nil {
		return err
	}

	fmt.Printf("Created plan %q (%s to %s, %d blocks)\n", plan.Title, plan.StartDate, plan.EndDate, len(plan.TimeBlocks))
	fmt.Println("Previous plan, logs, and reward data were cleared.")
	return nil
}

// parseBlockSpec parses 'Label@HH:MM-HH:MM'.
func parseBlockSpec(s string) (detox.BlockForm, error) {
	label, window, found := strings.Cut(s, "@")
	if !found {
		return detox.BlockForm{}, fmt.Errorf("invalid block %q, expected 'Label@HH:MM-HH:MM'", s)
	}
	start, end, found := strings.Cut(window, "-")
	if !found {
		return detox.BlockForm{}, fmt.Errorf("invalid block window %q, expected 'HH:MM-HH:MM'", window)
	}
	return detox.BlockForm{
		Label: strings.TrimSpace(label),
		Start: strings.TrimSpace(start),
		End:   strings.TrimSpace(end),
	}, nil
}

func runPlanForm(form *detox.PlanForm) error {
	var (
		duration   = string(form.Duration)
		focus      string
		activities string
		blockLabel string
		blockStart string
		blockEnd   string
	)

	f := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Plan title").
				Placeholder("My Detox Plan").
				Value(&form.Title),
			huh.NewSelect[string]().
				Title("Duration").
				Options(
					huh.NewOption("Just today", string(detox.DurationToday)),
					huh.NewOption("Seven days", string(detox.Duration7Days)),
				).
				Value(&duration),
			huh.NewInput().
				Title("Focus areas (comma separated)").
				Placeholder("social media, news").
				Value(&focus),
			huh.NewInput().
				Title("Replacement activities (comma separated)").
				Placeholder("reading, walking").
				Value(&activities),
		),
		huh.NewGroup(
			huh.NewInput().Title("First block label").Placeholder("Morning deep work").Value(&blockLabel),
			huh.NewInput().Title("Block start (HH:MM)").Placeholder("08:00").Value(&blockStart),
			huh.NewInput().Title("Block end (HH:MM)").Placeholder("09:00").Value(&blockEnd),
		),
	)
	if err := f.Run(); err != nil {
		return err
	}

	form.Duration = detox.PlanDuration(duration)
	form.FocusAreas = splitCommaList(focus)
	form.Activities = splitCommaList(activities)
	if blockStart != "" && blockEnd != "" {
		form.TimeBlocks = append(form.TimeBlocks, detox.BlockForm{
			Label: blockLabel,
			Start: blockStart,
			End:   blockEnd,
		})
	}
	return nil
}

func splitCommaList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

type PlanShowCmd struct{}

func (c *PlanShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
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

	fmt.Printf("%s (%s to %s)\n", plan.Title, plan.StartDate, plan.EndDate)
	if len(plan.FocusAreas) > 0 {
		fmt.Printf("Focus areas: %s\n", strings.Join(plan.FocusAreas, ", "))
	}
	if len(plan.Activities) > 0 {
		fmt.Printf("Activities:  %s\n", strings.Join(plan.Activities, ", "))
	}
	fmt.Println("\nScreen-free blocks:")
	for _, tb := range plan.TimeBlocks {
		fmt.Printf("  %s-%s  %s\n", tb.Start, tb.End, tb.Label)
	}
	return nil
}
