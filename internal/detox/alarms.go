package detox

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/unplugapp/unplug/internal/models"
)

// AddAlarm creates an enabled daily alarm.
func (s *Service) AddAlarm(label, timeOfDay string) (models.Alarm, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = "Detox reminder"
	}

	alarm := models.Alarm{
		ID:        uuid.New().String(),
		Label:     label,
		Time:      timeOfDay,
		Enabled:   true,
		Repeat:    models.RepeatDaily,
		CreatedAt: s.now(),
	}
	if err := alarm.Validate(); err != nil {
		return models.Alarm{}, err
	}

	alarms, err := s.store.GetAlarms()
	if err != nil {
		return models.Alarm{}, err
	}
	alarms = append(alarms, alarm)
	if err := s.store.SaveAlarms(alarms); err != nil {
		return models.Alarm{}, err
	}
	return alarm, nil
}

func (s *Service) Alarms() ([]models.Alarm, error) {
	return s.store.GetAlarms()
}

// SetAlarmEnabled toggles a single alarm on or off.
func (s *Service) SetAlarmEnabled(id string, enabled bool) error {
	alarms, err := s.store.GetAlarms()
	if err != nil {
		return err
	}
	for i := range alarms {
		if alarms[i].ID == id {
			alarms[i].Enabled = enabled
			return s.store.SaveAlarms(alarms)
		}
	}
	return fmt.Errorf("alarm not found: %s", id)
}

func (s *Service) DeleteAlarm(id string) error {
	alarms, err := s.store.GetAlarms()
	if err != nil {
		return err
	}
	for i := range alarms {
		if alarms[i].ID == id {
			alarms = append(alarms[:i], alarms[i+1:]...)
			return s.store.SaveAlarms(alarms)
		}
	}
	return fmt.Errorf("alarm not found: %s", id)
}

// DueAlarms returns the enabled alarms matching the given minute.
func (s *Service) DueAlarms(now time.Time) ([]models.Alarm, error) {
	alarms, err := s.store.GetAlarms()
	if err != nil {
		return nil, err
	}
	due := []models.Alarm{}
	for _, a := range alarms {
		if a.IsDue(now) {
			due = append(due, a)
		}
	}
	return due, nil
}
