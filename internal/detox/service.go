// Package detox holds the computation engines behind the app: the completion
// predicate, streak and reward derivation, craving insights, challenge
// progress, the coin wallet, and the thin log/plan/alarm/reflection stores.
package detox

import (
	"time"

	"github.com/unplugapp/unplug/internal/dates"
	"github.com/unplugapp/unplug/internal/storage"
)

type Service struct {
	store storage.Provider
	now   func() time.Time
}

func New(store storage.Provider) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// NewWithClock pins the service clock, used by tests to fix "today".
func NewWithClock(store storage.Provider, now func() time.Time) *Service {
	return &Service{
		store: store,
		now:   now,
	}
}

func (s *Service) today() string {
	return dates.ToISO(s.now())
}
