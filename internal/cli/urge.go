package cli

import (
	"fmt"

	"github.com/unplugapp/unplug/internal/models"
)

type UrgeCmd struct {
	Log      UrgeLogCmd      `cmd:"" help:"Log a craving you just had."`
	Insights UrgeInsightsCmd `cmd:"" help:"Show craving analytics."`
}

type UrgeLogCmd struct {
	Trigger  string `arg:"" help:"What set it off (boredom|stress|notification|habit|social_media_cue|other)." enum:"boredom,stress,notification,habit,social_media_cue,other"`
	Strength int    `short:"s" help:"How strong it felt (1-5)." default:"3"`
	Resisted bool   `short:"r" help:"Whether you did a replacement activity instead."`
}

func (c *UrgeLogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	trigger, ok := models.ParseUrgeTrigger(c.Trigger)
	if !ok {
		return fmt.Errorf("invalid trigger: %s", c.Trigger)
	}

	event, err := ctx.Detox.LogUrge(trigger, c.Strength, c.Resisted)
	if err != nil {
		return err
	}

	outcome := "gave in"
	if event.UsedAlternative {
		outcome = "resisted"
	}
	fmt.Printf("Logged %s urge at %s (strength %d, %s)\n", event.Trigger, event.Time, event.Strength, outcome)
	return nil
}

type UrgeInsightsCmd struct {
	AllPlans bool `help:"Include events from previous plans."`
}

func (c *UrgeInsightsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	planID := ""
	if !c.AllPlans {
		plan, err := ctx.Detox.ActivePlan()
		if err != nil {
			return err
		}
		if plan != nil {
			planID = plan.ID
		}
	}

	insights, err := ctx.Detox.CravingInsights(planID)
	if err != nil {
		return err
	}
	if insights.TotalUrges == 0 {
		fmt.Println("No urges logged yet.")
		return nil
	}

	fmt.Printf("Urges logged:     %d\n", insights.TotalUrges)
	fmt.Printf("Resisted:         %d\n", insights.Resisted)
	fmt.Printf("Average strength: %.1f\n", insights.AverageStrength)
	fmt.Printf("Top trigger:      %s\n", insights.MostCommonTrigger)
	fmt.Printf("Riskiest time:    %s\n", insights.WorstTimeBucket)
	fmt.Printf("Calmest time:     %s\n", insights.BestTimeBucket)
	if insights.PeakHour != nil {
		fmt.Printf("Peak hour:        %02d:00\n", *insights.PeakHour)
	}
	return nil
}
