package detox

import (
	"fmt"

	"github.com/unplugapp/unplug/internal/dates"
	"github.com/unplugapp/unplug/internal/models"
)

// streakThresholds are the streak lengths that earn a badge. Static catalog,
// never mutated at runtime.
var streakThresholds = []int{3, 5, 7}

// CalculateRewardData folds the plan and logs into the full reward snapshot:
// daily badges, streak badges, the plan milestone, completed-day count, and
// both streak lengths. Grace-day state is carried over from the previous
// snapshot; it is user action, not derived data. The result is persisted and
// returned.
func (s *Service) CalculateRewardData() (models.RewardData, error) {
	plan, err := s.store.GetPlan()
	if err != nil {
		return models.RewardData{}, err
	}
	prev, err := s.store.GetRewardData()
	if err != nil {
		return models.RewardData{}, err
	}

	data := models.RewardData{
		Badges:       []models.Badge{},
		GraceDayUsed: prev.GraceDayUsed,
		GraceDayDate: prev.GraceDayDate,
	}

	if plan == nil {
		if err := s.store.SaveRewardData(data); err != nil {
			return models.RewardData{}, err
		}
		return data, nil
	}

	logs, err := s.store.GetLogs()
	if err != nil {
		return models.RewardData{}, err
	}
	byDate := make(map[string]*models.DailyLog, len(logs))
	for i := range logs {
		byDate[logs[i].Date] = &logs[i]
	}

	today := s.today()
	effectiveEnd := dates.Min(plan.EndDate, today)
	dateRange := dates.EachDayBetween(plan.StartDate, effectiveEnd)

	badges := []models.Badge{}
	allCompleted := len(dateRange) > 0
	current := 0
	longest := 0

	for i, date := range dateRange {
		if IsLogCompleted(byDate[date]) {
			data.TotalDaysCompleted++
			current++
			if current > longest {
				longest = current
			}
			badges = append(badges, models.Badge{
				ID:          "daily-" + date,
				Name:        fmt.Sprintf("Day %d Complete", i+1),
				Description: fmt.Sprintf("You completed your detox tasks on %s.", date),
				Icon:        "✅",
				Earned:      true,
				EarnedDate:  date,
				Type:        models.BadgeDaily,
			})
		} else {
			current = 0
			allCompleted = false
		}
	}

	// Current streak is the run of completions ending at the last date in
	// range, which is exactly the running counter after the forward scan.
	data.CurrentStreak = current
	data.LongestStreak = longest

	for _, threshold := range streakThresholds {
		if longest >= threshold {
			badges = append(badges, models.Badge{
				ID:          fmt.Sprintf("streak-%d", threshold),
				Name:        fmt.Sprintf("%d-Day Streak", threshold),
				Description: fmt.Sprintf("You maintained your detox streak for %d days.", threshold),
				Icon:        "🔥",
				Earned:      true,
				EarnedDate:  today,
				Type:        models.BadgeStreak,
			})
		}
	}

	if allCompleted {
		badges = append(badges, models.Badge{
			ID:          "milestone-full-plan",
			Name:        "Full Plan Completed",
			Description: "You completed every day of your detox plan.",
			Icon:        "🏆",
			Earned:      true,
			EarnedDate:  dateRange[len(dateRange)-1],
			Type:        models.BadgeMilestone,
		})
	}

	data.Badges = dedupeBadges(badges)

	if err := s.store.SaveRewardData(data); err != nil {
		return models.RewardData{}, err
	}
	return data, nil
}

// dedupeBadges collapses badges by id, later entries overwriting earlier ones
// in place. Ids are generated without collision, but the recompute path keeps
// this as a safety net.
func dedupeBadges(badges []models.Badge) []models.Badge {
	out := make([]models.Badge, 0, len(badges))
	index := make(map[string]int, len(badges))
	for _, b := range badges {
		if i, ok := index[b.ID]; ok {
			out[i] = b
			continue
		}
		index[b.ID] = len(out)
		out = append(out, b)
	}
	return out
}

// StoredRewardData returns the last persisted snapshot without recomputing.
func (s *Service) StoredRewardData() (models.RewardData, error) {
	return s.store.GetRewardData()
}

// UseGraceDayForToday marks the one-per-plan grace day as used. Calling it
// again is a no-op; the original date is kept. A grace day does not alter
// streak math, it only records the self-compassion choice.
func (s *Service) UseGraceDayForToday() (models.RewardData, error) {
	data, err := s.store.GetRewardData()
	if err != nil {
		return models.RewardData{}, err
	}
	if data.GraceDayUsed {
		return data, nil
	}

	data.GraceDayUsed = true
	data.GraceDayDate = s.today()

	if err := s.store.SaveRewardData(data); err != nil {
		return models.RewardData{}, err
	}
	return data, nil
}
