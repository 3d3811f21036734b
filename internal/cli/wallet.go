package cli

import (
	"errors"
	"fmt"

	"github.com/unplugapp/unplug/internal/detox"
)

type WalletCmd struct {
	Show   WalletShowCmd   `cmd:"" help:"Show coin balance and rewards." default:"1"`
	Add    WalletAddCmd    `cmd:"" help:"Define a new custom reward."`
	Redeem WalletRedeemCmd `cmd:"" help:"Redeem a reward."`
	Reset  WalletResetCmd  `cmd:"" help:"Mark all rewards unredeemed."`
}

type WalletShowCmd struct{}

func (c *WalletShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	summary, err := ctx.Detox.Wallet()
	if err != nil {
		return err
	}

	fmt.Printf("Total coins earned: %d (%d coins per completed day)\n", summary.TotalCoins, detox.CoinsPerCompletedDay)
	fmt.Printf("Available coins:    %d\n", summary.AvailableCoins)
	fmt.Printf("Rewards redeemed:   %d\n", summary.RedeemedCount)

	rewards, err := ctx.Detox.CustomRewards()
	if err != nil {
		return err
	}
	if len(rewards) == 0 {
		return nil
	}

	fmt.Println("\nRewards:")
	for _, r := range rewards {
		mark := " "
		if r.Redeemed {
			mark = "x"
		}
		fmt.Printf("  [%s] %-30s %4d coins  (%s)\n", mark, r.Title, r.Cost, r.ID)
	}
	return nil
}

type WalletAddCmd struct {
	Title       string `arg:"" help:"What you are rewarding yourself with."`
	Cost        int    `arg:"" help:"Cost in coins."`
	Description string `short:"d" help:"Optional description."`
}

func (c *WalletAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	reward, err := ctx.Detox.AddCustomReward(c.Title, c.Cost, c.Description)
	if err != nil {
		return err
	}
	fmt.Printf("Added reward %q for %d coins (ID: %s)\n", reward.Title, reward.Cost, reward.ID)
	return nil
}

type WalletRedeemCmd struct {
	ID    string `arg:"" help:"Reward id."`
	Force bool   `help:"Redeem even without enough coins."`
}

func (c *WalletRedeemCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Balance gating happens here, not inside the ledger.
	if !c.Force {
		summary, err := ctx.Detox.Wallet()
		if err != nil {
			return err
		}
		rewards, err := ctx.Detox.CustomRewards()
		if err != nil {
			return err
		}
		for _, r := range rewards {
			if r.ID == c.ID && !r.Redeemed && r.Cost > summary.AvailableCoins {
				return fmt.Errorf("not enough coins: %s costs %d, you have %d", r.Title, r.Cost, summary.AvailableCoins)
			}
		}
	}

	reward, err := ctx.Detox.RedeemReward(c.ID)
	if errors.Is(err, detox.ErrRewardNotFound) {
		return fmt.Errorf("no reward with id %s", c.ID)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Redeemed %q. Enjoy it, you earned it.\n", reward.Title)
	return nil
}

type WalletResetCmd struct{}

func (c *WalletResetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Detox.ResetRedemptions(); err != nil {
		return err
	}
	fmt.Println("All rewards marked unredeemed.")
	return nil
}
