package detox

import (
	"fmt"

	"github.com/unplugapp/unplug/internal/models"
)

// Catalog is the static challenge list. Read-only; progress is stored
// separately, one record per challenge that has ever been activated.
var Catalog = []models.Challenge{
	{
		ID:          "no_morning_social",
		Title:       "No Morning Social Apps",
		Description: "Avoid social apps before 10 AM for 3 days.",
		TargetDays:  3,
	},
	{
		ID:          "evening_screen_free",
		Title:       "Screen-Free Evenings",
		Description: "Stay off screens for 1 hour before bed for 3 days.",
		TargetDays:  3,
	},
	{
		ID:          "no_bed_scrolling",
		Title:       "No Scrolling in Bed",
		Description: "Do not use your phone once you are in bed for 2 days.",
		TargetDays:  2,
	},
	{
		ID:          "consistent_week",
		Title:       "Consistent Week",
		Description: "Complete at least 6 out of 7 days of your plan.",
		TargetDays:  1,
	},
}

func challengeByID(id string) (models.Challenge, bool) {
	for _, c := range Catalog {
		if c.ID == id {
			return c, true
		}
	}
	return models.Challenge{}, false
}

// ChallengeWithProgress pairs a catalog entry with its stored progress, if
// any.
type ChallengeWithProgress struct {
	models.Challenge
	Progress *models.ChallengeProgress
}

func (c ChallengeWithProgress) Status() models.ChallengeStatus {
	if c.Progress == nil {
		return models.ChallengeLocked
	}
	return c.Progress.Status
}

// Challenges returns every catalog entry joined with stored progress.
func (s *Service) Challenges() ([]ChallengeWithProgress, error) {
	progress, err := s.store.GetChallengeProgress()
	if err != nil {
		return nil, err
	}

	out := make([]ChallengeWithProgress, 0, len(Catalog))
	for _, c := range Catalog {
		cwp := ChallengeWithProgress{Challenge: c}
		for i := range progress {
			if progress[i].ID == c.ID {
				cwp.Progress = &progress[i]
				break
			}
		}
		out = append(out, cwp)
	}
	return out, nil
}

// ChallengeStatus reports the state of a challenge; absence of a progress
// record means locked.
func (s *Service) ChallengeStatus(id string) (models.ChallengeStatus, error) {
	progress, err := s.store.GetChallengeProgress()
	if err != nil {
		return "", err
	}
	for i := range progress {
		if progress[i].ID == id {
			return progress[i].Status, nil
		}
	}
	return models.ChallengeLocked, nil
}

// ActivateChallenge starts (or restarts) a challenge: day count back to zero,
// started-at stamped now, any prior completion cleared. Re-activating an
// active or completed challenge is an explicit restart, not a resume.
func (s *Service) ActivateChallenge(id string) error {
	if _, ok := challengeByID(id); !ok {
		return fmt.Errorf("unknown challenge: %s", id)
	}

	progress, err := s.store.GetChallengeProgress()
	if err != nil {
		return err
	}

	now := s.now()
	found := false
	for i := range progress {
		if progress[i].ID == id {
			progress[i].Status = models.ChallengeActive
			progress[i].StartedAt = now
			progress[i].CompletedAt = nil
			progress[i].CurrentDays = 0
			found = true
			break
		}
	}
	if !found {
		progress = append(progress, models.ChallengeProgress{
			ID:        id,
			Status:    models.ChallengeActive,
			StartedAt: now,
		})
	}

	return s.store.SaveChallengeProgress(progress)
}

// CompleteChallengeDay logs one day against an active challenge. A failed day
// passes the status check but leaves the counter untouched. Reaching the
// target day count completes the challenge; anything but an active challenge
// is a no-op.
func (s *Service) CompleteChallengeDay(id string, success bool) error {
	challenge, ok := challengeByID(id)
	if !ok {
		return fmt.Errorf("unknown challenge: %s", id)
	}

	progress, err := s.store.GetChallengeProgress()
	if err != nil {
		return err
	}

	for i := range progress {
		if progress[i].ID != id {
			continue
		}
		if progress[i].Status != models.ChallengeActive {
			return nil
		}

		if success {
			progress[i].CurrentDays++
		}
		if progress[i].CurrentDays >= challenge.TargetDays {
			progress[i].Status = models.ChallengeCompleted
			completedAt := s.now()
			progress[i].CompletedAt = &completedAt
		}

		return s.store.SaveChallengeProgress(progress)
	}

	// No record: still locked, nothing to do.
	return nil
}
