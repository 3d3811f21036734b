package detox

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/unplugapp/unplug/internal/models"
)

// TimeBucket is a coarse time-of-day classification for urge events.
type TimeBucket string

const (
	BucketMorning   TimeBucket = "morning"   // 05:00-11:59
	BucketAfternoon TimeBucket = "afternoon" // 12:00-16:59
	BucketEvening   TimeBucket = "evening"   // 17:00-21:59
	BucketNight     TimeBucket = "night"     // 22:00-04:59
)

var bucketOrder = []TimeBucket{BucketMorning, BucketAfternoon, BucketEvening, BucketNight}

func bucketForHour(hour int) TimeBucket {
	switch {
	case hour >= 5 && hour < 12:
		return BucketMorning
	case hour >= 12 && hour < 17:
		return BucketAfternoon
	case hour >= 17 && hour < 22:
		return BucketEvening
	default:
		return BucketNight
	}
}

// CravingInsights is the derived urge summary. With no matching events,
// TotalUrges is zero and every other field stays at its zero value.
type CravingInsights struct {
	TotalUrges        int
	Resisted          int
	MostCommonTrigger models.UrgeTrigger
	BestTimeBucket    TimeBucket // fewest urges
	WorstTimeBucket   TimeBucket // most urges
	PeakHour          *int       // 0-23, nil when no event time parses
	AverageStrength   float64
}

// LogUrge appends an immutable craving record stamped with the current date
// and time. Strength is clamped to 1-5. The event is tagged with the active
// plan's id when one exists.
func (s *Service) LogUrge(trigger models.UrgeTrigger, strength int, usedAlternative bool) (models.UrgeEvent, error) {
	events, err := s.store.GetUrgeEvents()
	if err != nil {
		return models.UrgeEvent{}, err
	}

	planID := ""
	if plan, err := s.store.GetPlan(); err == nil && plan != nil {
		planID = plan.ID
	}

	if strength < 1 {
		strength = 1
	} else if strength > 5 {
		strength = 5
	}

	now := s.now()
	event := models.UrgeEvent{
		ID:              uuid.New().String(),
		PlanID:          planID,
		Date:            now.Format("2006-01-02"),
		Time:            now.Format("15:04"),
		Trigger:         trigger,
		Strength:        strength,
		UsedAlternative: usedAlternative,
	}

	events = append(events, event)
	if err := s.store.SaveUrgeEvents(events); err != nil {
		return models.UrgeEvent{}, err
	}
	return event, nil
}

// UrgeEventsForPlan returns events tagged with the given plan id, or all
// events when the id is empty.
func (s *Service) UrgeEventsForPlan(planID string) ([]models.UrgeEvent, error) {
	events, err := s.store.GetUrgeEvents()
	if err != nil {
		return nil, err
	}
	if planID == "" {
		return events, nil
	}
	filtered := []models.UrgeEvent{}
	for _, e := range events {
		if e.PlanID == planID {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// CravingInsights aggregates the urge log into trigger frequency, time-of-day
// risk buckets, and strength averages. Ties everywhere resolve to the first
// candidate to reach the maximum, scanning events in insertion order and
// buckets in fixed morning-to-night order.
func (s *Service) CravingInsights(planID string) (CravingInsights, error) {
	events, err := s.UrgeEventsForPlan(planID)
	if err != nil {
		return CravingInsights{}, err
	}
	if len(events) == 0 {
		return CravingInsights{}, nil
	}

	insights := CravingInsights{TotalUrges: len(events)}

	triggerCounts := make(map[models.UrgeTrigger]int)
	triggerSeen := []models.UrgeTrigger{}
	bucketCounts := make(map[TimeBucket]int)
	hourCounts := make(map[int]int)
	hourSeen := []int{}
	strengthSum := 0

	for _, e := range events {
		if e.UsedAlternative {
			insights.Resisted++
		}
		strengthSum += e.Strength

		if _, ok := triggerCounts[e.Trigger]; !ok {
			triggerSeen = append(triggerSeen, e.Trigger)
		}
		triggerCounts[e.Trigger]++

		hourStr, _, found := strings.Cut(e.Time, ":")
		if !found {
			continue
		}
		hour, err := strconv.Atoi(hourStr)
		if err != nil {
			continue
		}
		bucketCounts[bucketForHour(hour)]++
		if _, ok := hourCounts[hour]; !ok {
			hourSeen = append(hourSeen, hour)
		}
		hourCounts[hour]++
	}

	insights.AverageStrength = float64(strengthSum) / float64(len(events))

	triggerMax := 0
	for _, trigger := range triggerSeen {
		if triggerCounts[trigger] > triggerMax {
			triggerMax = triggerCounts[trigger]
			insights.MostCommonTrigger = trigger
		}
	}

	maxBucket := -1
	minBucket := int(^uint(0) >> 1)
	for _, bucket := range bucketOrder {
		count := bucketCounts[bucket]
		if count > maxBucket {
			maxBucket = count
			insights.WorstTimeBucket = bucket
		}
		if count < minBucket {
			minBucket = count
			insights.BestTimeBucket = bucket
		}
	}

	maxHourCount := 0
	for _, hour := range hourSeen {
		if hourCounts[hour] > maxHourCount {
			maxHourCount = hourCounts[hour]
			h := hour
			insights.PeakHour = &h
		}
	}

	return insights, nil
}
