package detox

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/unplugapp/unplug/internal/models"
	"github.com/unplugapp/unplug/internal/storage"
)

// newTestService returns a service backed by a fresh JSON store with the
// clock pinned to noon on the given date.
func newTestService(t *testing.T, today string) *Service {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "unplug.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init storage: %v", err)
	}

	day, err := time.Parse("2006-01-02", today)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", today, err)
	}
	fixed := day.Add(12 * time.Hour)

	return NewWithClock(store, func() time.Time { return fixed })
}

// savePlan persists a plan directly, bypassing CreatePlan so tests can use
// arbitrary date ranges.
func savePlan(t *testing.T, svc *Service, start, end string) models.DetoxPlan {
	t.Helper()

	plan := models.DetoxPlan{
		ID:        "plan-test",
		Title:     "Test Plan",
		StartDate: start,
		EndDate:   end,
		TimeBlocks: []models.TimeBlock{
			{ID: "b1", Label: "Morning", Start: "08:00", End: "09:00"},
			{ID: "b2", Label: "Evening", Start: "20:00", End: "21:00"},
		},
	}
	if err := svc.store.SavePlan(plan); err != nil {
		t.Fatalf("failed to save plan: %v", err)
	}
	return plan
}

// completeDay marks a date completed: one block done plus the replacement
// activity.
func completeDay(t *testing.T, svc *Service, date string) {
	t.Helper()

	if _, err := svc.ToggleBlock(date, "b1"); err != nil {
		t.Fatalf("failed to toggle block for %s: %v", date, err)
	}
	if _, err := svc.SetDidActivity(date, true); err != nil {
		t.Fatalf("failed to set activity for %s: %v", date, err)
	}
}
