package detox

import "github.com/unplugapp/unplug/internal/models"

// IsLogCompleted is the single authoritative completion rule: a day counts
// iff its log exists, at least one block is done, and the replacement
// activity happened. Every streak, badge, and coin calculation goes through
// this predicate.
func IsLogCompleted(log *models.DailyLog) bool {
	if log == nil {
		return false
	}
	return len(log.CompletedBlocks) > 0 && log.DidActivity
}

// IsDateCompleted looks up the log for a date and applies IsLogCompleted.
// A missing log means the day is not completed.
func (s *Service) IsDateCompleted(date string) (bool, error) {
	log, err := s.LogForDate(date)
	if err != nil {
		return false, err
	}
	return IsLogCompleted(log), nil
}

// LogForDate returns the log for a date, or nil if none exists.
func (s *Service) LogForDate(date string) (*models.DailyLog, error) {
	logs, err := s.store.GetLogs()
	if err != nil {
		return nil, err
	}
	for i := range logs {
		if logs[i].Date == date {
			return &logs[i], nil
		}
	}
	return nil, nil
}

// LogForToday returns today's log, or nil if nothing has been recorded yet.
func (s *Service) LogForToday() (*models.DailyLog, error) {
	return s.LogForDate(s.today())
}

// patchLog loads the log collection, applies fn to the log for the given
// date (creating it lazily), and saves the collection back. Logs are merged
// field by field, never wholesale replaced.
func (s *Service) patchLog(date string, fn func(*models.DailyLog)) (models.DailyLog, error) {
	logs, err := s.store.GetLogs()
	if err != nil {
		return models.DailyLog{}, err
	}

	idx := -1
	for i := range logs {
		if logs[i].Date == date {
			idx = i
			break
		}
	}
	if idx < 0 {
		logs = append(logs, models.DailyLog{Date: date, CompletedBlocks: []string{}})
		idx = len(logs) - 1
	}

	fn(&logs[idx])

	if err := s.store.SaveLogs(logs); err != nil {
		return models.DailyLog{}, err
	}
	return logs[idx], nil
}

// ToggleBlock flips completion of a single time block for a date.
func (s *Service) ToggleBlock(date, blockID string) (models.DailyLog, error) {
	return s.patchLog(date, func(log *models.DailyLog) {
		for i, id := range log.CompletedBlocks {
			if id == blockID {
				log.CompletedBlocks = append(log.CompletedBlocks[:i], log.CompletedBlocks[i+1:]...)
				return
			}
		}
		log.CompletedBlocks = append(log.CompletedBlocks, blockID)
	})
}

func (s *Service) ToggleBlockForToday(blockID string) (models.DailyLog, error) {
	return s.ToggleBlock(s.today(), blockID)
}

// SetDidActivity records whether a replacement activity happened on a date.
func (s *Service) SetDidActivity(date string, value bool) (models.DailyLog, error) {
	return s.patchLog(date, func(log *models.DailyLog) {
		log.DidActivity = value
	})
}

func (s *Service) SetDidActivityForToday(value bool) (models.DailyLog, error) {
	return s.SetDidActivity(s.today(), value)
}

func (s *Service) SetMood(date string, mood models.Mood) (models.DailyLog, error) {
	return s.patchLog(date, func(log *models.DailyLog) {
		log.Mood = mood
	})
}

func (s *Service) SetMoodForToday(mood models.Mood) (models.DailyLog, error) {
	return s.SetMood(s.today(), mood)
}

// AddTrigger records a trigger label for a date. Duplicate labels collapse
// into a set.
func (s *Service) AddTrigger(date, trigger string) (models.DailyLog, error) {
	return s.patchLog(date, func(log *models.DailyLog) {
		for _, t := range log.Triggers {
			if t == trigger {
				return
			}
		}
		log.Triggers = append(log.Triggers, trigger)
	})
}

func (s *Service) SetGratitudeNote(date, note string) (models.DailyLog, error) {
	return s.patchLog(date, func(log *models.DailyLog) {
		log.GratitudeNote = note
	})
}

// AddFocusSessions increments the focus session counter for a date.
func (s *Service) AddFocusSessions(date string, count int) (models.DailyLog, error) {
	return s.patchLog(date, func(log *models.DailyLog) {
		if count > 0 {
			log.FocusSessions += count
		}
	})
}
