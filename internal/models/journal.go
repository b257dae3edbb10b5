package models

import "time"

// Synchro is a timestamped log of a perceived meaningful coincidence,
// optionally tagged with a repeating number pattern (e.g. "11:11").
type Synchro struct {
	ID         string    `json:"id"`
	TS         time.Time `json:"ts"`
	Note       string    `json:"note,omitempty"`
	Tag        string    `json:"tag,omitempty"`
	NumberSeen string    `json:"numberSeen,omitempty"`
}

// Ritual records a meditation session.
type Ritual struct {
	ID        string    `json:"id"`
	TS        time.Time `json:"ts"`
	Minutes   int       `json:"minutes"`
	Completed bool      `json:"completed"`
}

// Settings holds app preferences that sit outside the user profile.
type Settings struct {
	MeditationMinutes int  `json:"meditationMinutes"`
	LunarMode         bool `json:"lunarMode"`
}
