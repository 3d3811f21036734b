package detox

import (
	"strings"

	"github.com/google/uuid"

	"github.com/unplugapp/unplug/internal/models"
)

// ReflectionInput carries the free-text fields of a weekly reflection.
type ReflectionInput struct {
	WeekStartDate string
	Highlight     string
	Challenge     string
	NextWeekFocus string
}

// UpsertReflection writes the reflection for a week, replacing any existing
// record with the same week-start date. Fields are stored trimmed.
func (s *Service) UpsertReflection(input ReflectionInput) (models.WeeklyReflection, error) {
	reflections, err := s.store.GetReflections()
	if err != nil {
		return models.WeeklyReflection{}, err
	}

	now := s.now()
	for i := range reflections {
		if reflections[i].WeekStartDate == input.WeekStartDate {
			reflections[i].Highlight = strings.TrimSpace(input.Highlight)
			reflections[i].Challenge = strings.TrimSpace(input.Challenge)
			reflections[i].NextWeekFocus = strings.TrimSpace(input.NextWeekFocus)
			reflections[i].CreatedAt = now
			if err := s.store.SaveReflections(reflections); err != nil {
				return models.WeeklyReflection{}, err
			}
			return reflections[i], nil
		}
	}

	reflection := models.WeeklyReflection{
		ID:            uuid.New().String(),
		WeekStartDate: input.WeekStartDate,
		Highlight:     strings.TrimSpace(input.Highlight),
		Challenge:     strings.TrimSpace(input.Challenge),
		NextWeekFocus: strings.TrimSpace(input.NextWeekFocus),
		CreatedAt:     now,
	}
	reflections = append(reflections, reflection)
	if err := s.store.SaveReflections(reflections); err != nil {
		return models.WeeklyReflection{}, err
	}
	return reflection, nil
}

func (s *Service) Reflections() ([]models.WeeklyReflection, error) {
	return s.store.GetReflections()
}

// ReflectionForWeek returns the reflection keyed by the given week-start
// date, or nil when none exists.
func (s *Service) ReflectionForWeek(weekStartDate string) (*models.WeeklyReflection, error) {
	reflections, err := s.store.GetReflections()
	if err != nil {
		return nil, err
	}
	for i := range reflections {
		if reflections[i].WeekStartDate == weekStartDate {
			return &reflections[i], nil
		}
	}
	return nil, nil
}
