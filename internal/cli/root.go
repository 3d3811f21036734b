package cli

import (
	"fmt"
	"time"

	"github.com/unplugapp/unplug/internal/detox"
	"github.com/unplugapp/unplug/internal/storage"
)

type Context struct {
	Store storage.Provider
	Detox *detox.Service
}

// resolveDate accepts "today" or an explicit YYYY-MM-DD date.
func resolveDate(s string) (string, error) {
	if s == "" || s == "today" {
		return time.Now().Format("2006-01-02"), nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return d.Format("2006-01-02"), nil
}

func checkmark(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
