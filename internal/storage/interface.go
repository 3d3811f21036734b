package storage

import "github.com/unplugapp/unplug/internal/models"

// Provider is the persistence boundary for the app. Both backends expose the
// same logical record namespace; absent or corrupt records always come back
// as the documented fallback value, never as an error.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Plan
	GetPlan() (*models.DetoxPlan, error)
	SavePlan(models.DetoxPlan) error

	// Daily logs
	GetLogs() ([]models.DailyLog, error)
	SaveLogs([]models.DailyLog) error

	// Rewards
	GetRewardData() (models.RewardData, error)
	SaveRewardData(models.RewardData) error

	// Alarms
	GetAlarms() ([]models.Alarm, error)
	SaveAlarms([]models.Alarm) error

	// Custom rewards
	GetCustomRewards() ([]models.CustomReward, error)
	SaveCustomRewards([]models.CustomReward) error

	// Urge events
	GetUrgeEvents() ([]models.UrgeEvent, error)
	SaveUrgeEvents([]models.UrgeEvent) error

	// Weekly reflections
	GetReflections() ([]models.WeeklyReflection, error)
	SaveReflections([]models.WeeklyReflection) error

	// Challenge progress
	GetChallengeProgress() ([]models.ChallengeProgress, error)
	SaveChallengeProgress([]models.ChallengeProgress) error

	// Reset clears the plan and everything derived from it (logs and reward
	// data), used when a new plan replaces the old one.
	Reset() error

	// Utils
	GetConfigPath() string
}
