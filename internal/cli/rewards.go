package cli

import "fmt"

type RewardsCmd struct {
	Show  RewardsShowCmd  `cmd:"" help:"Recompute and show badges and streaks." default:"1"`
	Grace RewardsGraceCmd `cmd:"" help:"Use your one grace day for today."`
}

type RewardsShowCmd struct{}

func (c *RewardsShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	data, err := ctx.Detox.CalculateRewardData()
	if err != nil {
		return err
	}

	fmt.Printf("Days completed: %d\n", data.TotalDaysCompleted)
	fmt.Printf("Current streak: %d\n", data.CurrentStreak)
	fmt.Printf("Longest streak: %d\n", data.LongestStreak)
	if data.GraceDayUsed {
		fmt.Printf("Grace day used on %s\n", data.GraceDayDate)
	}

	if len(data.Badges) == 0 {
		fmt.Println("\nNo badges earned yet.")
		return nil
	}

	fmt.Println("\nBadges:")
	for _, b := range data.Badges {
		fmt.Printf("  %s %s", b.Icon, b.Name)
		if b.EarnedDate != "" {
			fmt.Printf(" (%s)", b.EarnedDate)
		}
		fmt.Println()
	}
	return nil
}

type RewardsGraceCmd struct{}

func (c *RewardsGraceCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	before, err := ctx.Detox.StoredRewardData()
	if err != nil {
		return err
	}

	data, err := ctx.Detox.UseGraceDayForToday()
	if err != nil {
		return err
	}

	if before.GraceDayUsed {
		fmt.Printf("Grace day was already used on %s.\n", data.GraceDayDate)
		return nil
	}

	fmt.Printf("Grace day used for %s. Be kind to yourself, tomorrow is a fresh start.\n", data.GraceDayDate)
	return nil
}

type ProgressCmd struct{}

func (c *ProgressCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	stats, err := ctx.Detox.CalculateProgress()
	if err != nil {
		return err
	}
	if !stats.HasPlan {
		fmt.Println("No active plan. Create one with 'unplug plan new'.")
		return nil
	}

	fmt.Printf("Days so far:     %d\n", stats.TotalDays)
	fmt.Printf("Days completed:  %d\n", stats.CompletedDays)
	fmt.Printf("Best streak:     %d\n", stats.Streak)
	fmt.Printf("Completion rate: %.0f%%\n", stats.CompletionRate*100)
	return nil
}
