package models

type Mood string

const (
	MoodGood        Mood = "good"
	MoodOkay        Mood = "okay"
	MoodStressful   Mood = "stressful"
	MoodOverwhelmed Mood = "overwhelmed"
)

// ParseMood maps user input to a Mood, rejecting anything outside the
// fixed enumeration.
func ParseMood(s string) (Mood, bool) {
	switch Mood(s) {
	case MoodGood, MoodOkay, MoodStressful, MoodOverwhelmed:
		return Mood(s), true
	default:
		return "", false
	}
}

// DailyLog is one day's adherence record. The date is the primary key; at most
// one log exists per date. Logs are created lazily the first time any field is
// set and patched field by field after that.
type DailyLog struct {
	Date            string   `json:"date"` // YYYY-MM-DD format
	CompletedBlocks []string `json:"completed_blocks"`
	DidActivity     bool     `json:"did_activity"`
	Mood            Mood     `json:"mood,omitempty"`
	Triggers        []string `json:"triggers,omitempty"`
	GratitudeNote   string   `json:"gratitude_note,omitempty"`
	FocusSessions   int      `json:"focus_sessions,omitempty"`
}

// HasBlock reports whether the given block id is marked completed.
func (l *DailyLog) HasBlock(blockID string) bool {
	for _, id := range l.CompletedBlocks {
		if id == blockID {
			return true
		}
	}
	return false
}
