package detox

import "testing"

func TestCreatePlan_Defaults(t *testing.T) {
	svc := newTestService(t, "2024-03-01")

	plan, err := svc.CreatePlan(PlanForm{
		Duration: Duration7Days,
		TimeBlocks: []BlockForm{
			{Label: "", Start: "08:00", End: "09:00"},
			{Label: "Evening wind-down", Start: "20:00", End: "21:30"},
		},
	})
	if err != nil {
		t.Fatalf("CreatePlan failed: %v", err)
	}

	if plan.Title != "My Detox Plan" {
		t.Errorf("Title = %q, want default", plan.Title)
	}
	if plan.StartDate != "2024-03-01" || plan.EndDate != "2024-03-07" {
		t.Errorf("range = %s..%s, want 2024-03-01..2024-03-07", plan.StartDate, plan.EndDate)
	}
	if plan.TimeBlocks[0].Label != "Block 1" {
		t.Errorf("blank block label = %q, want positional default", plan.TimeBlocks[0].Label)
	}
	if plan.TimeBlocks[0].ID == "" || plan.TimeBlocks[0].ID == plan.TimeBlocks[1].ID {
		t.Error("block ids missing or not unique")
	}
}

func TestCreatePlan_TodayDuration(t *testing.T) {
	svc := newTestService(t, "2024-03-01")

	plan, err := svc.CreatePlan(PlanForm{
		Title:      "One day off",
		Duration:   DurationToday,
		TimeBlocks: []BlockForm{{Label: "All day", Start: "09:00", End: "21:00"}},
	})
	if err != nil {
		t.Fatalf("CreatePlan failed: %v", err)
	}
	if plan.StartDate != plan.EndDate || plan.StartDate != "2024-03-01" {
		t.Errorf("range = %s..%s, want a single day", plan.StartDate, plan.EndDate)
	}
}

func TestCreatePlan_RejectsBadBlockTimes(t *testing.T) {
	svc := newTestService(t, "2024-03-01")

	_, err := svc.CreatePlan(PlanForm{
		Duration:   DurationToday,
		TimeBlocks: []BlockForm{{Label: "Bad", Start: "8am", End: "09:00"}},
	})
	if err == nil {
		t.Error("accepted malformed block start time")
	}
}

func TestCreatePlan_ReplacesPlanAndClearsState(t *testing.T) {
	svc := newTestService(t, "2024-03-01")
	savePlan(t, svc, "2024-02-26", "2024-03-03")
	completeDay(t, svc, "2024-02-26")
	if _, err := svc.CalculateRewardData(); err != nil {
		t.Fatalf("CalculateRewardData failed: %v", err)
	}

	plan, err := svc.CreatePlan(PlanForm{
		Title:      "Fresh start",
		Duration:   Duration7Days,
		TimeBlocks: []BlockForm{{Label: "Morning", Start: "08:00", End: "09:00"}},
	})
	if err != nil {
		t.Fatalf("CreatePlan failed: %v", err)
	}

	active, err := svc.ActivePlan()
	if err != nil {
		t.Fatalf("ActivePlan failed: %v", err)
	}
	if active == nil || active.ID != plan.ID {
		t.Fatalf("active plan = %+v, want the replacement", active)
	}

	logs, err := svc.store.GetLogs()
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("old logs survived plan replacement: %d", len(logs))
	}

	reward, err := svc.StoredRewardData()
	if err != nil {
		t.Fatalf("StoredRewardData failed: %v", err)
	}
	if len(reward.Badges) != 0 || reward.GraceDayUsed {
		t.Errorf("old reward state survived plan replacement: %+v", reward)
	}
}

func TestActivePlan_NilWithoutPlan(t *testing.T) {
	svc := newTestService(t, "2024-03-01")

	plan, err := svc.ActivePlan()
	if err != nil {
		t.Fatalf("ActivePlan failed: %v", err)
	}
	if plan != nil {
		t.Errorf("expected nil plan, got %+v", plan)
	}
}
