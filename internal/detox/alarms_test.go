package detox

import (
	"testing"
	"time"
)

func TestAddAlarm(t *testing.T) {
	svc := newTestService(t, "2024-01-10")

	alarm, err := svc.AddAlarm("Wind down", "21:30")
	if err != nil {
		t.Fatalf("AddAlarm failed: %v", err)
	}
	if !alarm.Enabled {
		t.Error("new alarm should start enabled")
	}

	defaulted, err := svc.AddAlarm("   ", "08:00")
	if err != nil {
		t.Fatalf("AddAlarm failed: %v", err)
	}
	if defaulted.Label != "Detox reminder" {
		t.Errorf("Label = %q, want default label for blank input", defaulted.Label)
	}

	if _, err := svc.AddAlarm("Bad", "25:99"); err == nil {
		t.Error("accepted invalid alarm time")
	}

	alarms, err := svc.Alarms()
	if err != nil {
		t.Fatalf("Alarms failed: %v", err)
	}
	if len(alarms) != 2 {
		t.Errorf("got %d alarms, want 2", len(alarms))
	}
}

func TestAlarmIsDue(t *testing.T) {
	at := func(clock string) time.Time {
		parsed, err := time.Parse("2006-01-02 15:04", "2024-01-10 "+clock)
		if err != nil {
			t.Fatalf("bad clock %q: %v", clock, err)
		}
		return parsed
	}

	alarm, err := newTestService(t, "2024-01-10").AddAlarm("Wind down", "21:30")
	if err != nil {
		t.Fatalf("AddAlarm failed: %v", err)
	}

	if !alarm.IsDue(at("21:30")) {
		t.Error("alarm not due at its own minute")
	}
	if alarm.IsDue(at("21:31")) {
		t.Error("alarm due one minute late")
	}

	alarm.Enabled = false
	if alarm.IsDue(at("21:30")) {
		t.Error("disabled alarm reported due")
	}
}

func TestAlarmEnableDisableDelete(t *testing.T) {
	svc := newTestService(t, "2024-01-10")

	alarm, err := svc.AddAlarm("Wind down", "21:30")
	if err != nil {
		t.Fatalf("AddAlarm failed: %v", err)
	}

	if err := svc.SetAlarmEnabled(alarm.ID, false); err != nil {
		t.Fatalf("SetAlarmEnabled failed: %v", err)
	}
	alarms, _ := svc.Alarms()
	if alarms[0].Enabled {
		t.Error("alarm still enabled after disable")
	}

	if err := svc.SetAlarmEnabled("missing", true); err == nil {
		t.Error("SetAlarmEnabled accepted unknown id")
	}

	if err := svc.DeleteAlarm(alarm.ID); err != nil {
		t.Fatalf("DeleteAlarm failed: %v", err)
	}
	alarms, _ = svc.Alarms()
	if len(alarms) != 0 {
		t.Errorf("got %d alarms after delete, want 0", len(alarms))
	}

	if err := svc.DeleteAlarm(alarm.ID); err == nil {
		t.Error("DeleteAlarm accepted an already-deleted id")
	}
}

func TestDueAlarms(t *testing.T) {
	svc := newTestService(t, "2024-01-10")

	early, err := svc.AddAlarm("Morning", "08:00")
	if err != nil {
		t.Fatalf("AddAlarm failed: %v", err)
	}
	if _, err := svc.AddAlarm("Evening", "21:30"); err != nil {
		t.Fatalf("AddAlarm failed: %v", err)
	}
	muted, err := svc.AddAlarm("Muted", "08:00")
	if err != nil {
		t.Fatalf("AddAlarm failed: %v", err)
	}
	if err := svc.SetAlarmEnabled(muted.ID, false); err != nil {
		t.Fatalf("SetAlarmEnabled failed: %v", err)
	}

	now, _ := time.Parse("2006-01-02 15:04", "2024-01-10 08:00")
	due, err := svc.DueAlarms(now)
	if err != nil {
		t.Fatalf("DueAlarms failed: %v", err)
	}
	if len(due) != 1 || due[0].ID != early.ID {
		t.Errorf("due = %+v, want only the enabled 08:00 alarm", due)
	}
}
