package models

type UrgeTrigger string

const (
	TriggerBoredom        UrgeTrigger = "boredom"
	TriggerStress         UrgeTrigger = "stress"
	TriggerNotification   UrgeTrigger = "notification"
	TriggerHabit          UrgeTrigger = "habit"
	TriggerSocialMediaCue UrgeTrigger = "social_media_cue"
	TriggerOther          UrgeTrigger = "other"
)

func ParseUrgeTrigger(s string) (UrgeTrigger, bool) {
	switch UrgeTrigger(s) {
	case TriggerBoredom, TriggerStress, TriggerNotification,
		TriggerHabit, TriggerSocialMediaCue, TriggerOther:
		return UrgeTrigger(s), true
	default:
		return "", false
	}
}

// UrgeEvent is an append-only craving record. Events are never mutated or
// deleted once logged.
type UrgeEvent struct {
	ID              string      `json:"id"`
	PlanID          string      `json:"plan_id,omitempty"`
	Date            string      `json:"date"` // YYYY-MM-DD format
	Time            string      `json:"time"` // HH:MM format
	Trigger         UrgeTrigger `json:"trigger"`
	Strength        int         `json:"strength"` // 1-5 inclusive
	UsedAlternative bool        `json:"used_alternative"`
}
