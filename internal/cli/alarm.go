package cli

import (
	"fmt"
	"time"

	"github.com/unplugapp/unplug/internal/logger"
	"github.com/unplugapp/unplug/internal/notify"
)

type AlarmCmd struct {
	Add     AlarmAddCmd     `cmd:"" help:"Add a daily reminder."`
	List    AlarmListCmd    `cmd:"" help:"List reminders." default:"1"`
	Enable  AlarmEnableCmd  `cmd:"" help:"Enable a reminder."`
	Disable AlarmDisableCmd `cmd:"" help:"Disable a reminder."`
	Delete  AlarmDeleteCmd  `cmd:"" help:"Delete a reminder."`
	Watch   AlarmWatchCmd   `cmd:"" help:"Run in the foreground and fire due reminders."`
}

type AlarmAddCmd struct {
	Time  string `arg:"" help:"Time of day (HH:MM)."`
	Label string `arg:"" optional:"" help:"Reminder label."`
}

func (c *AlarmAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	alarm, err := ctx.Detox.AddAlarm(c.Label, c.Time)
	if err != nil {
		return err
	}
	fmt.Printf("Added reminder %q at %s (ID: %s)\n", alarm.Label, alarm.Time, alarm.ID)
	return nil
}

type AlarmListCmd struct{}

func (c *AlarmListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	alarms, err := ctx.Detox.Alarms()
	if err != nil {
		return err
	}
	if len(alarms) == 0 {
		fmt.Println("No reminders configured.")
		return nil
	}
	for _, a := range alarms {
		state := "off"
		if a.Enabled {
			state = "on"
		}
		fmt.Printf("  %s  %-30s [%s]  (%s)\n", a.Time, a.Label, state, a.ID)
	}
	return nil
}

type AlarmEnableCmd struct {
	ID string `arg:"" help:"Reminder id."`
}

func (c *AlarmEnableCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Detox.SetAlarmEnabled(c.ID, true); err != nil {
		return err
	}
	fmt.Println("Reminder enabled.")
	return nil
}

type AlarmDisableCmd struct {
	ID string `arg:"" help:"Reminder id."`
}

func (c *AlarmDisableCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Detox.SetAlarmEnabled(c.ID, false); err != nil {
		return err
	}
	fmt.Println("Reminder disabled.")
	return nil
}

type AlarmDeleteCmd struct {
	ID string `arg:"" help:"Reminder id."`
}

func (c *AlarmDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Detox.DeleteAlarm(c.ID); err != nil {
		return err
	}
	fmt.Println("Reminder deleted.")
	return nil
}

type AlarmWatchCmd struct {
	Interval time.Duration `help:"Poll interval." default:"30s"`
}

func (c *AlarmWatchCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	notifier := notify.New()
	fired := make(map[string]string) // alarm id -> last minute fired

	fmt.Println("Watching reminders. Press Ctrl+C to stop.")

	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	for {
		now := time.Now()
		due, err := ctx.Detox.DueAlarms(now)
		if err != nil {
			return err
		}

		minute := now.Format("2006-01-02 15:04")
		for _, a := range due {
			if fired[a.ID] == minute {
				continue
			}
			fired[a.ID] = minute

			text := fmt.Sprintf("%s (%s)", a.Label, a.Time)
			if err := notifier.Notify(text); err != nil {
				// Tray not running; fall back to the terminal.
				logger.Warn("Tray delivery failed, printing reminder instead", "alarm", a.Label, "error", err)
				fmt.Printf("[%s] %s\n", now.Format("15:04"), a.Label)
			} else {
				logger.Debug("Reminder delivered to tray", "alarm", a.Label)
			}
		}

		<-ticker.C
	}
}
