package detox

import "github.com/unplugapp/unplug/internal/models"

// SupportMessage is a short encouragement shown on the support screen.
type SupportMessage struct {
	Title string
	Body  string
}

var genericMessages = []SupportMessage{
	{
		Title: "One step at a time",
		Body:  "You don't need a perfect detox. Showing up today is already progress.",
	},
	{
		Title: "Progress, not perfection",
		Body:  "Even if you slipped, you are still moving in the right direction.",
	},
	{
		Title: "You're not alone",
		Body:  "Many people struggle with screen time. You're doing something brave by facing it.",
	},
}

var moodMessages = map[models.Mood][]SupportMessage{
	models.MoodGood: {
		{
			Title: "Nice work",
			Body:  "You're feeling good today. Use that energy to strengthen your new habits.",
		},
		{
			Title: "Keep the momentum",
			Body:  "Celebrate your small wins and keep taking small, consistent steps.",
		},
	},
	models.MoodOkay: {
		{
			Title: "You're doing fine",
			Body:  "It's okay to feel just 'okay'. You still showed up, and that matters.",
		},
		{
			Title: "Gentle progress",
			Body:  "Try to do one small thing for yourself today, even 5 minutes counts.",
		},
	},
	models.MoodStressful: {
		{
			Title: "Breathe, you've got this",
			Body:  "Stress happens. Take a pause, breathe slowly, and come back when you're ready.",
		},
		{
			Title: "Lighten the load",
			Body:  "You don't have to fix everything today. Choose one simple step and start there.",
		},
	},
	models.MoodOverwhelmed: {
		{
			Title: "It's okay to slow down",
			Body:  "Feeling overwhelmed is not a failure. It's a signal to go gently with yourself.",
		},
		{
			Title: "Small is enough",
			Body:  "Pick the smallest possible action. A 1-minute pause away from screens is still progress.",
		},
	},
}

// SupportMessageFor picks a message for the given mood, rotating daily by
// day of month so the choice is stable within a day.
func (s *Service) SupportMessageFor(mood models.Mood) SupportMessage {
	pool := genericMessages
	if msgs, ok := moodMessages[mood]; ok && len(msgs) > 0 {
		pool = msgs
	}
	return pool[s.now().Day()%len(pool)]
}

func BreathingExercise() SupportMessage {
	return SupportMessage{
		Title: "1-minute breathing reset",
		Body:  "Inhale slowly for 4 seconds, hold for 4 seconds, and exhale for 6 seconds. Repeat this 5-8 times.",
	}
}

func GroundingExercise() SupportMessage {
	return SupportMessage{
		Title: "5-4-3-2-1 grounding",
		Body:  "Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, and 1 you can taste.",
	}
}

func JournalingPrompt() SupportMessage {
	return SupportMessage{
		Title: "Quick reflection prompt",
		Body:  "Write for 2-3 minutes about this: what is one thing my future self will thank me for if I do it today?",
	}
}
