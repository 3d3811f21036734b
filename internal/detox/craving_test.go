package detox

import (
	"math"
	"testing"

	"github.com/unplugapp/unplug/internal/models"
)

func saveUrges(t *testing.T, svc *Service, events []models.UrgeEvent) {
	t.Helper()
	if err := svc.store.SaveUrgeEvents(events); err != nil {
		t.Fatalf("failed to save urge events: %v", err)
	}
}

func TestCravingInsights_Empty(t *testing.T) {
	svc := newTestService(t, "2024-01-05")

	insights, err := svc.CravingInsights("")
	if err != nil {
		t.Fatalf("CravingInsights failed: %v", err)
	}

	if insights.TotalUrges != 0 || insights.Resisted != 0 || insights.AverageStrength != 0 {
		t.Errorf("expected zero state, got %+v", insights)
	}
	if insights.MostCommonTrigger != "" || insights.WorstTimeBucket != "" || insights.BestTimeBucket != "" {
		t.Errorf("expected empty classifications, got %+v", insights)
	}
	if insights.PeakHour != nil {
		t.Errorf("expected nil peak hour, got %d", *insights.PeakHour)
	}
}

func TestCravingInsights_MorningCluster(t *testing.T) {
	svc := newTestService(t, "2024-01-05")
	saveUrges(t, svc, []models.UrgeEvent{
		{ID: "u1", Date: "2024-01-05", Time: "08:15", Trigger: models.TriggerBoredom, Strength: 2, UsedAlternative: true},
		{ID: "u2", Date: "2024-01-05", Time: "08:45", Trigger: models.TriggerBoredom, Strength: 4},
		{ID: "u3", Date: "2024-01-05", Time: "23:10", Trigger: models.TriggerStress, Strength: 5, UsedAlternative: true},
	})

	insights, err := svc.CravingInsights("")
	if err != nil {
		t.Fatalf("CravingInsights failed: %v", err)
	}

	if insights.TotalUrges != 3 {
		t.Errorf("TotalUrges = %d, want 3", insights.TotalUrges)
	}
	if insights.Resisted != 2 {
		t.Errorf("Resisted = %d, want 2", insights.Resisted)
	}
	if insights.MostCommonTrigger != models.TriggerBoredom {
		t.Errorf("MostCommonTrigger = %s, want boredom", insights.MostCommonTrigger)
	}
	if insights.WorstTimeBucket != BucketMorning {
		t.Errorf("WorstTimeBucket = %s, want morning", insights.WorstTimeBucket)
	}
	if math.Abs(insights.AverageStrength-11.0/3.0) > 1e-9 {
		t.Errorf("AverageStrength = %f, want %f", insights.AverageStrength, 11.0/3.0)
	}
	if insights.PeakHour == nil || *insights.PeakHour != 8 {
		t.Errorf("PeakHour = %v, want 8", insights.PeakHour)
	}
}

// On a tie, the first candidate to reach the maximum wins.
func TestCravingInsights_FirstSeenWinsTies(t *testing.T) {
	svc := newTestService(t, "2024-01-05")
	saveUrges(t, svc, []models.UrgeEvent{
		{ID: "u1", Date: "2024-01-05", Time: "09:00", Trigger: models.TriggerStress, Strength: 3},
		{ID: "u2", Date: "2024-01-05", Time: "13:00", Trigger: models.TriggerBoredom, Strength: 3},
	})

	insights, err := svc.CravingInsights("")
	if err != nil {
		t.Fatalf("CravingInsights failed: %v", err)
	}

	if insights.MostCommonTrigger != models.TriggerStress {
		t.Errorf("tied triggers should resolve to the first seen, got %s", insights.MostCommonTrigger)
	}
	if insights.WorstTimeBucket != BucketMorning {
		t.Errorf("tied buckets should resolve in morning-first order, got %s", insights.WorstTimeBucket)
	}
	// Evening and night tie at zero events; evening comes first in the
	// fixed scan order.
	if insights.BestTimeBucket != BucketEvening {
		t.Errorf("BestTimeBucket = %s, want evening", insights.BestTimeBucket)
	}
	if insights.PeakHour == nil || *insights.PeakHour != 9 {
		t.Errorf("tied hours should resolve to the first seen, got %v", insights.PeakHour)
	}
}

func TestBucketBoundaries(t *testing.T) {
	cases := []struct {
		hour int
		want TimeBucket
	}{
		{4, BucketNight},
		{5, BucketMorning},
		{11, BucketMorning},
		{12, BucketAfternoon},
		{16, BucketAfternoon},
		{17, BucketEvening},
		{21, BucketEvening},
		{22, BucketNight},
		{0, BucketNight},
	}
	for _, tc := range cases {
		if got := bucketForHour(tc.hour); got != tc.want {
			t.Errorf("bucketForHour(%d) = %s, want %s", tc.hour, got, tc.want)
		}
	}
}

func TestUrgeEventsForPlan_Filters(t *testing.T) {
	svc := newTestService(t, "2024-01-05")
	saveUrges(t, svc, []models.UrgeEvent{
		{ID: "u1", PlanID: "p1", Date: "2024-01-05", Time: "09:00", Trigger: models.TriggerHabit, Strength: 2},
		{ID: "u2", PlanID: "p2", Date: "2024-01-05", Time: "10:00", Trigger: models.TriggerHabit, Strength: 2},
		{ID: "u3", Date: "2024-01-05", Time: "11:00", Trigger: models.TriggerHabit, Strength: 2},
	})

	forPlan, err := svc.UrgeEventsForPlan("p1")
	if err != nil {
		t.Fatalf("UrgeEventsForPlan failed: %v", err)
	}
	if len(forPlan) != 1 || forPlan[0].ID != "u1" {
		t.Errorf("expected only p1's event, got %v", forPlan)
	}

	all, err := svc.UrgeEventsForPlan("")
	if err != nil {
		t.Fatalf("UrgeEventsForPlan failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected all 3 events with no plan filter, got %d", len(all))
	}
}

func TestLogUrge_ClampsStrengthAndTagsPlan(t *testing.T) {
	svc := newTestService(t, "2024-01-05")
	savePlan(t, svc, "2024-01-01", "2024-01-07")

	event, err := svc.LogUrge(models.TriggerNotification, 9, true)
	if err != nil {
		t.Fatalf("LogUrge failed: %v", err)
	}
	if event.Strength != 5 {
		t.Errorf("Strength = %d, want clamped to 5", event.Strength)
	}
	if event.PlanID != "plan-test" {
		t.Errorf("PlanID = %s, want the active plan's id", event.PlanID)
	}
	if event.Date != "2024-01-05" {
		t.Errorf("Date = %s, want today", event.Date)
	}

	low, err := svc.LogUrge(models.TriggerOther, 0, false)
	if err != nil {
		t.Fatalf("LogUrge failed: %v", err)
	}
	if low.Strength != 1 {
		t.Errorf("Strength = %d, want clamped to 1", low.Strength)
	}
}
