package detox

import (
	"github.com/unplugapp/unplug/internal/dates"
	"github.com/unplugapp/unplug/internal/models"
)

// ProgressStats is the plan-bounded adherence summary shown on the progress
// screen.
type ProgressStats struct {
	HasPlan        bool
	TotalDays      int
	CompletedDays  int
	Streak         int     // longest run within the plan range
	CompletionRate float64 // 0-1
}

// CalculateProgress summarizes adherence over the plan's effective date range
// (start through the earlier of plan end and today).
func (s *Service) CalculateProgress() (ProgressStats, error) {
	plan, err := s.store.GetPlan()
	if err != nil {
		return ProgressStats{}, err
	}
	if plan == nil {
		return ProgressStats{}, nil
	}

	logs, err := s.store.GetLogs()
	if err != nil {
		return ProgressStats{}, err
	}
	byDate := make(map[string]*models.DailyLog, len(logs))
	for i := range logs {
		byDate[logs[i].Date] = &logs[i]
	}

	effectiveEnd := dates.Min(plan.EndDate, s.today())
	dateRange := dates.EachDayBetween(plan.StartDate, effectiveEnd)

	stats := ProgressStats{
		HasPlan:   true,
		TotalDays: len(dateRange),
	}

	run := 0
	for _, date := range dateRange {
		if IsLogCompleted(byDate[date]) {
			stats.CompletedDays++
			run++
			if run > stats.Streak {
				stats.Streak = run
			}
		} else {
			run = 0
		}
	}

	if stats.TotalDays > 0 {
		stats.CompletionRate = float64(stats.CompletedDays) / float64(stats.TotalDays)
	}
	return stats, nil
}
