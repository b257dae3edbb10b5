package models

// Badge is an append-only achievement record. Award logic lives outside the
// store; the store only de-duplicates by ID on insert.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	EarnedAt    string `json:"earnedAt"` // RFC3339 timestamp
	Icon        string `json:"icon"`
}
