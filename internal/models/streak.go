package models

// Streaks tracks consecutive evening-reflection days. Mutated only by the
// store's streak-update algorithm, never by direct profile edits.
type Streaks struct {
	CurrentStreak  int    `json:"currentStreak"`
	LongestStreak  int    `json:"longestStreak"`
	LastActiveDate string `json:"lastActiveDate"` // YYYY-MM-DD, empty when never active
}
