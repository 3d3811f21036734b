package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/unplugapp/unplug/internal/models"
)

// SQLiteStore keeps each logical record as a JSON document in a single
// key-value table. The record namespace and fallback behavior are identical
// to the JSON backend.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'unplug init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) raw(key string) ([]byte, bool, error) {
	if s.db == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read record %q: %w", key, err)
	}

	return []byte(value), true, nil
}

func (s *SQLiteStore) putRaw(key string, data []byte) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`
		INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(data))
	if err != nil {
		return fmt.Errorf("failed to write record %q: %w", key, err)
	}

	return nil
}

func (s *SQLiteStore) deleteRaw(key string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, err := s.db.Exec("DELETE FROM records WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete record %q: %w", key, err)
	}

	return nil
}

func (s *SQLiteStore) GetPlan() (*models.DetoxPlan, error) {
	return loadObject[*models.DetoxPlan](s, keyPlan, nil)
}

func (s *SQLiteStore) SavePlan(plan models.DetoxPlan) error {
	return saveRecord(s, keyPlan, plan)
}

func (s *SQLiteStore) GetLogs() ([]models.DailyLog, error) {
	return loadList[models.DailyLog](s, keyLogs)
}

func (s *SQLiteStore) SaveLogs(logs []models.DailyLog) error {
	return saveRecord(s, keyLogs, logs)
}

func (s *SQLiteStore) GetRewardData() (models.RewardData, error) {
	return loadObject(s, keyRewardData, defaultRewardData())
}

func (s *SQLiteStore) SaveRewardData(data models.RewardData) error {
	return saveRecord(s, keyRewardData, data)
}

func (s *SQLiteStore) GetAlarms() ([]models.Alarm, error) {
	return loadList[models.Alarm](s, keyAlarms)
}

func (s *SQLiteStore) SaveAlarms(alarms []models.Alarm) error {
	return saveRecord(s, keyAlarms, alarms)
}

func (s *SQLiteStore) GetCustomRewards() ([]models.CustomReward, error) {
	return loadList[models.CustomReward](s, keyCustomRewards)
}

func (s *SQLiteStore) SaveCustomRewards(rewards []models.CustomReward) error {
	return saveRecord(s, keyCustomRewards, rewards)
}

func (s *SQLiteStore) GetUrgeEvents() ([]models.UrgeEvent, error) {
	return loadList[models.UrgeEvent](s, keyUrgeEvents)
}

func (s *SQLiteStore) SaveUrgeEvents(events []models.UrgeEvent) error {
	return saveRecord(s, keyUrgeEvents, events)
}

func (s *SQLiteStore) GetReflections() ([]models.WeeklyReflection, error) {
	return loadList[models.WeeklyReflection](s, keyWeeklyReflections)
}

func (s *SQLiteStore) SaveReflections(reflections []models.WeeklyReflection) error {
	return saveRecord(s, keyWeeklyReflections, reflections)
}

func (s *SQLiteStore) GetChallengeProgress() ([]models.ChallengeProgress, error) {
	return loadList[models.ChallengeProgress](s, keyChallengeProgress)
}

func (s *SQLiteStore) SaveChallengeProgress(progress []models.ChallengeProgress) error {
	return saveRecord(s, keyChallengeProgress, progress)
}

func (s *SQLiteStore) Reset() error {
	for _, key := range []string{keyPlan, keyLogs, keyRewardData} {
		if err := s.deleteRaw(key); err != nil {
			return err
		}
	}
	return nil
}
