package detox

import (
	"testing"

	"github.com/unplugapp/unplug/internal/models"
)

func TestSupportMessageFor(t *testing.T) {
	svc := newTestService(t, "2024-01-05")

	msg := svc.SupportMessageFor(models.MoodStressful)
	if msg.Title == "" || msg.Body == "" {
		t.Fatalf("empty support message: %+v", msg)
	}
	found := false
	for _, m := range moodMessages[models.MoodStressful] {
		if m == msg {
			found = true
		}
	}
	if !found {
		t.Errorf("message %+v not drawn from the stressful pool", msg)
	}

	// Stable within a day.
	if again := svc.SupportMessageFor(models.MoodStressful); again != msg {
		t.Errorf("same day produced different messages: %+v vs %+v", msg, again)
	}

	// Unknown mood falls back to the generic pool.
	generic := svc.SupportMessageFor("")
	found = false
	for _, m := range genericMessages {
		if m == generic {
			found = true
		}
	}
	if !found {
		t.Errorf("message %+v not drawn from the generic pool", generic)
	}
}
