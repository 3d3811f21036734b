package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/unplugapp/unplug/internal/cli"
	"github.com/unplugapp/unplug/internal/detox"
	"github.com/unplugapp/unplug/internal/logger"
	"github.com/unplugapp/unplug/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/unplug/unplug.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init      cli.InitCmd      `cmd:"" help:"Initialize unplug storage."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive checklist." default:"1"`
	Plan      cli.PlanCmd      `cmd:"" help:"Manage your detox plan."`
	Today     cli.TodayCmd     `cmd:"" help:"Log today's adherence."`
	Progress  cli.ProgressCmd  `cmd:"" help:"Show plan progress."`
	Rewards   cli.RewardsCmd   `cmd:"" help:"Show badges, streaks, and the grace day."`
	Urge      cli.UrgeCmd      `cmd:"" help:"Log cravings and see insights."`
	Challenge cli.ChallengeCmd `cmd:"" help:"Opt-in multi-day challenges."`
	Wallet    cli.WalletCmd    `cmd:"" help:"Detox coins and custom rewards."`
	Reflect   cli.ReflectCmd   `cmd:"" help:"Weekly reflections."`
	Alarm     cli.AlarmCmd     `cmd:"" help:"Daily reminders."`
	Support   cli.SupportCmd   `cmd:"" help:"A bit of encouragement."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("unplug"),
		kong.Description("Digital detox companion: plan screen-free time, log the days, keep the streak."),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Detox: detox.New(store),
	}

	err := ctx.Run(appCtx)
	if cerr := store.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Error("Command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
