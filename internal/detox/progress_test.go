package detox

import (
	"math"
	"testing"
)

func TestCalculateProgress(t *testing.T) {
	svc := newTestService(t, "2024-01-05")
	savePlan(t, svc, "2024-01-01", "2024-01-07")

	completeDay(t, svc, "2024-01-01")
	completeDay(t, svc, "2024-01-02")
	completeDay(t, svc, "2024-01-04")

	stats, err := svc.CalculateProgress()
	if err != nil {
		t.Fatalf("CalculateProgress failed: %v", err)
	}

	if !stats.HasPlan {
		t.Fatal("HasPlan = false with an active plan")
	}
	// Effective range is clipped at today: Jan 1 through Jan 5.
	if stats.TotalDays != 5 {
		t.Errorf("TotalDays = %d, want 5", stats.TotalDays)
	}
	if stats.CompletedDays != 3 {
		t.Errorf("CompletedDays = %d, want 3", stats.CompletedDays)
	}
	if stats.Streak != 2 {
		t.Errorf("Streak = %d, want 2", stats.Streak)
	}
	if math.Abs(stats.CompletionRate-0.6) > 1e-9 {
		t.Errorf("CompletionRate = %f, want 0.6", stats.CompletionRate)
	}
}

func TestCalculateProgress_NoPlan(t *testing.T) {
	svc := newTestService(t, "2024-01-05")

	stats, err := svc.CalculateProgress()
	if err != nil {
		t.Fatalf("CalculateProgress failed: %v", err)
	}
	if stats.HasPlan || stats.TotalDays != 0 || stats.CompletionRate != 0 {
		t.Errorf("expected zero stats without a plan, got %+v", stats)
	}
}
