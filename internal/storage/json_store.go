package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/unplugapp/unplug/internal/logger"
	"github.com/unplugapp/unplug/internal/models"
)

// Store is the on-disk shape of the JSON backend: one document holding every
// logical record as raw JSON.
type Store struct {
	Version int                        `json:"version"`
	Records map[string]json.RawMessage `json:"records"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Records: make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'unplug init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// A file that no longer parses is treated like an empty store rather
		// than a fatal error; individual records fall back to their defaults.
		logger.Warn("Storage file failed to parse, starting from an empty store", "path", s.path, "error", err)
		s.store = &Store{Version: 1}
	}

	if s.store.Records == nil {
		s.store.Records = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) raw(key string) ([]byte, bool, error) {
	if s.store == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}
	data, ok := s.store.Records[key]
	return data, ok, nil
}

func (s *JSONStore) putRaw(key string, data []byte) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Records[key] = data
	return s.save()
}

func (s *JSONStore) deleteRaw(key string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	delete(s.store.Records, key)
	return s.save()
}

func (s *JSONStore) GetPlan() (*models.DetoxPlan, error) {
	return loadObject[*models.DetoxPlan](s, keyPlan, nil)
}

func (s *JSONStore) SavePlan(plan models.DetoxPlan) error {
	return saveRecord(s, keyPlan, plan)
}

func (s *JSONStore) GetLogs() ([]models.DailyLog, error) {
	return loadList[models.DailyLog](s, keyLogs)
}

func (s *JSONStore) SaveLogs(logs []models.DailyLog) error {
	return saveRecord(s, keyLogs, logs)
}

func (s *JSONStore) GetRewardData() (models.RewardData, error) {
	return loadObject(s, keyRewardData, defaultRewardData())
}

func (s *JSONStore) SaveRewardData(data models.RewardData) error {
	return saveRecord(s, keyRewardData, data)
}

func (s *JSONStore) GetAlarms() ([]models.Alarm, error) {
	return loadList[models.Alarm](s, keyAlarms)
}

func (s *JSONStore) SaveAlarms(alarms []models.Alarm) error {
	return saveRecord(s, keyAlarms, alarms)
}

func (s *JSONStore) GetCustomRewards() ([]models.CustomReward, error) {
	return loadList[models.CustomReward](s, keyCustomRewards)
}

func (s *JSONStore) SaveCustomRewards(rewards []models.CustomReward) error {
	return saveRecord(s, keyCustomRewards, rewards)
}

func (s *JSONStore) GetUrgeEvents() ([]models.UrgeEvent, error) {
	return loadList[models.UrgeEvent](s, keyUrgeEvents)
}

func (s *JSONStore) SaveUrgeEvents(events []models.UrgeEvent) error {
	return saveRecord(s, keyUrgeEvents, events)
}

func (s *JSONStore) GetReflections() ([]models.WeeklyReflection, error) {
	return loadList[models.WeeklyReflection](s, keyWeeklyReflections)
}

func (s *JSONStore) SaveReflections(reflections []models.WeeklyReflection) error {
	return saveRecord(s, keyWeeklyReflections, reflections)
}

func (s *JSONStore) GetChallengeProgress() ([]models.ChallengeProgress, error) {
	return loadList[models.ChallengeProgress](s, keyChallengeProgress)
}

func (s *JSONStore) SaveChallengeProgress(progress []models.ChallengeProgress) error {
	return saveRecord(s, keyChallengeProgress, progress)
}

func (s *JSONStore) Reset() error {
	for _, key := range []string{keyPlan, keyLogs, keyRewardData} {
		if err := s.deleteRaw(key); err != nil {
			return err
		}
	}
	return nil
}
