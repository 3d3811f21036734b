package storage

import (
	"encoding/json"

	"github.com/unplugapp/unplug/internal/logger"
	"github.com/unplugapp/unplug/internal/models"
)

// Logical record keys shared by both backends.
const (
	keyPlan              = "plan"
	keyLogs              = "logs"
	keyRewardData        = "reward_data"
	keyAlarms            = "alarms"
	keyCustomRewards     = "custom_rewards"
	keyUrgeEvents        = "urge_events"
	keyWeeklyReflections = "weekly_reflections"
	keyChallengeProgress = "challenge_progress"
)

// backend is the raw byte-level store both providers implement. found is
// false when no record exists under the key.
type backend interface {
	raw(key string) (data []byte, found bool, err error)
	putRaw(key string, data []byte) error
	deleteRaw(key string) error
}

// loadList reads a JSON array record. Absence and corruption both yield an
// empty slice: a record that fails to parse is treated exactly like one that
// was never written.
func loadList[T any](b backend, key string) ([]T, error) {
	data, found, err := b.raw(key)
	if err != nil {
		return nil, err
	}
	if !found {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil || out == nil {
		if err != nil {
			logger.Warn("Record failed to parse, using empty fallback", "key", key, "error", err)
		}
		return []T{}, nil
	}
	return out, nil
}

// loadObject reads a single JSON object record, substituting fallback on
// absence or corruption.
func loadObject[T any](b backend, key string, fallback T) (T, error) {
	data, found, err := b.raw(key)
	if err != nil {
		return fallback, err
	}
	if !found {
		return fallback, nil
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		logger.Warn("Record failed to parse, using fallback", "key", key, "error", err)
		return fallback, nil
	}
	return out, nil
}

// defaultRewardData is the fallback snapshot: no badges, all counters zero,
// grace day unused.
func defaultRewardData() models.RewardData {
	return models.RewardData{Badges: []models.Badge{}}
}

func saveRecord(b backend, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.putRaw(key, data)
}
