package models

type Energy string

const (
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
	EnergyHigh   Energy = "high"
)

type TaskTheme string

const (
	ThemeGrowth     TaskTheme = "growth"
	ThemeHealing    TaskTheme = "healing"
	ThemeCreativity TaskTheme = "creativity"
)

// DailyTask is a daily intention owned by exactly one DayEntry.
type DailyTask struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Theme     TaskTheme `json:"theme,omitempty"`
	Completed bool      `json:"completed"`
}

// DayEntry is the per-calendar-date journal record, keyed by YYYY-MM-DD.
type DayEntry struct {
	Date             string      `json:"date"` // YYYY-MM-DD format
	MorningEnergy    Energy      `json:"morningEnergy,omitempty"`
	MiddayEnergy     Energy      `json:"middayEnergy,omitempty"`
	Tasks            []DailyTask `json:"tasks"`
	Reflection       string      `json:"reflection,omitempty"`
	Synchronicities  []string    `json:"synchronicities"`
	Gratitude        []string    `json:"gratitude"`
	EveningCompleted bool        `json:"eveningCompleted"`
}
