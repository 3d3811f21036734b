package detox

import (
	"testing"

	"github.com/unplugapp/unplug/internal/models"
)

func challengeProgress(t *testing.T, svc *Service, id string) *models.ChallengeProgress {
	t.Helper()
	progress, err := svc.store.GetChallengeProgress()
	if err != nil {
		t.Fatalf("failed to load challenge progress: %v", err)
	}
	for i := range progress {
		if progress[i].ID == id {
			return &progress[i]
		}
	}
	return nil
}

func TestChallenges_AllLockedInitially(t *testing.T) {
	svc := newTestService(t, "2024-01-05")

	challenges, err := svc.Challenges()
	if err != nil {
		t.Fatalf("Challenges failed: %v", err)
	}
	if len(challenges) != len(Catalog) {
		t.Fatalf("got %d challenges, want %d", len(challenges), len(Catalog))
	}
	for _, c := range challenges {
		if c.Status() != models.ChallengeLocked {
			t.Errorf("challenge %s: status = %s, want locked", c.ID, c.Status())
		}
	}
}

func TestChallengeLifecycle(t *testing.T) {
	svc := newTestService(t, "2024-01-05")

	if err := svc.ActivateChallenge("no_bed_scrolling"); err != nil {
		t.Fatalf("ActivateChallenge failed: %v", err)
	}

	status, err := svc.ChallengeStatus("no_bed_scrolling")
	if err != nil {
		t.Fatalf("ChallengeStatus failed: %v", err)
	}
	if status != models.ChallengeActive {
		t.Fatalf("status = %s, want active", status)
	}

	if err := svc.CompleteChallengeDay("no_bed_scrolling", true); err != nil {
		t.Fatalf("CompleteChallengeDay failed: %v", err)
	}
	p := challengeProgress(t, svc, "no_bed_scrolling")
	if p.CurrentDays != 1 || p.Status != models.ChallengeActive {
		t.Errorf("after day 1: days = %d status = %s, want 1/active", p.CurrentDays, p.Status)
	}

	if err := svc.CompleteChallengeDay("no_bed_scrolling", true); err != nil {
		t.Fatalf("CompleteChallengeDay failed: %v", err)
	}
	p = challengeProgress(t, svc, "no_bed_scrolling")
	if p.CurrentDays != 2 || p.Status != models.ChallengeCompleted {
		t.Errorf("after day 2: days = %d status = %s, want 2/completed", p.CurrentDays, p.Status)
	}
	if p.CompletedAt == nil {
		t.Error("completed challenge missing CompletedAt")
	}
}

func TestCompleteChallengeDay_FailedDayKeepsCounter(t *testing.T) {
	svc := newTestService(t, "2024-01-05")

	if err := svc.ActivateChallenge("no_morning_social"); err != nil {
		t.Fatalf("ActivateChallenge failed: %v", err)
	}
	if err := svc.CompleteChallengeDay("no_morning_social", true); err != nil {
		t.Fatalf("CompleteChallengeDay failed: %v", err)
	}
	if err := svc.CompleteChallengeDay("no_morning_social", false); err != nil {
		t.Fatalf("CompleteChallengeDay failed: %v", err)
	}

	p := challengeProgress(t, svc, "no_morning_social")
	if p.CurrentDays != 1 {
		t.Errorf("failed day changed counter: days = %d, want 1", p.CurrentDays)
	}
	if p.Status != models.ChallengeActive {
		t.Errorf("status = %s, want active", p.Status)
	}
}

func TestCompleteChallengeDay_NoOpUnlessActive(t *testing.T) {
	svc := newTestService(t, "2024-01-05")

	// Locked: no progress record exists, a day report changes nothing.
	if err := svc.CompleteChallengeDay("evening_screen_free", true); err != nil {
		t.Fatalf("CompleteChallengeDay failed: %v", err)
	}
	if p := challengeProgress(t, svc, "evening_screen_free"); p != nil {
		t.Errorf("locked challenge grew a progress record: %+v", p)
	}

	// Completed: further day reports leave the record alone.
	if err := svc.ActivateChallenge("no_bed_scrolling"); err != nil {
		t.Fatalf("ActivateChallenge failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := svc.CompleteChallengeDay("no_bed_scrolling", true); err != nil {
			t.Fatalf("CompleteChallengeDay failed: %v", err)
		}
	}
	if err := svc.CompleteChallengeDay("no_bed_scrolling", true); err != nil {
		t.Fatalf("CompleteChallengeDay failed: %v", err)
	}
	p := challengeProgress(t, svc, "no_bed_scrolling")
	if p.CurrentDays != 2 || p.Status != models.ChallengeCompleted {
		t.Errorf("completed challenge changed: days = %d status = %s", p.CurrentDays, p.Status)
	}
}

func TestActivateChallenge_RestartResetsProgress(t *testing.T) {
	svc := newTestService(t, "2024-01-05")

	if err := svc.ActivateChallenge("no_bed_scrolling"); err != nil {
		t.Fatalf("ActivateChallenge failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := svc.CompleteChallengeDay("no_bed_scrolling", true); err != nil {
			t.Fatalf("CompleteChallengeDay failed: %v", err)
		}
	}

	if err := svc.ActivateChallenge("no_bed_scrolling"); err != nil {
		t.Fatalf("re-activate failed: %v", err)
	}
	p := challengeProgress(t, svc, "no_bed_scrolling")
	if p.Status != models.ChallengeActive || p.CurrentDays != 0 {
		t.Errorf("restart kept old progress: days = %d status = %s", p.CurrentDays, p.Status)
	}
	if p.CompletedAt != nil {
		t.Error("restart kept CompletedAt")
	}
}

func TestChallengeUnknownID(t *testing.T) {
	svc := newTestService(t, "2024-01-05")

	if err := svc.ActivateChallenge("does_not_exist"); err == nil {
		t.Error("ActivateChallenge accepted unknown id")
	}
	if err := svc.CompleteChallengeDay("does_not_exist", true); err == nil {
		t.Error("CompleteChallengeDay accepted unknown id")
	}
}
