package cli

import (
	"fmt"

	"github.com/unplugapp/unplug/internal/models"
)

type ChallengeCmd struct {
	List  ChallengeListCmd  `cmd:"" help:"List challenges and their progress." default:"1"`
	Start ChallengeStartCmd `cmd:"" help:"Activate (or restart) a challenge."`
	Day   ChallengeDayCmd   `cmd:"" help:"Log a day against an active challenge."`
}

type ChallengeListCmd struct{}

func (c *ChallengeListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	challenges, err := ctx.Detox.Challenges()
	if err != nil {
		return err
	}

	for _, ch := range challenges {
		status := ch.Status()
		fmt.Printf("%-22s %-10s", ch.ID, status)
		if status == models.ChallengeActive {
			fmt.Printf(" %d/%d days", ch.Progress.CurrentDays, ch.TargetDays)
		}
		fmt.Printf("\n    %s\n", ch.Description)
	}
	return nil
}

type ChallengeStartCmd struct {
	ID string `arg:"" help:"Challenge id (see 'unplug challenge list')."`
}

func (c *ChallengeStartCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	status, err := ctx.Detox.ChallengeStatus(c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Detox.ActivateChallenge(c.ID); err != nil {
		return err
	}

	if status == models.ChallengeLocked {
		fmt.Printf("Challenge %s started. Good luck!\n", c.ID)
	} else {
		fmt.Printf("Challenge %s restarted from day zero.\n", c.ID)
	}
	return nil
}

type ChallengeDayCmd struct {
	ID     string `arg:"" help:"Challenge id."`
	Failed bool   `help:"Log the day as a miss (does not advance the counter)."`
}

func (c *ChallengeDayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Detox.CompleteChallengeDay(c.ID, !c.Failed); err != nil {
		return err
	}

	status, err := ctx.Detox.ChallengeStatus(c.ID)
	if err != nil {
		return err
	}
	switch status {
	case models.ChallengeCompleted:
		fmt.Printf("Challenge %s completed!\n", c.ID)
	case models.ChallengeActive:
		if c.Failed {
			fmt.Println("Missed day noted. The streak counter is unchanged, keep going.")
		} else {
			fmt.Println("Day logged.")
		}
	default:
		fmt.Printf("Challenge %s is not active; start it first with 'unplug challenge start %s'.\n", c.ID, c.ID)
	}
	return nil
}
