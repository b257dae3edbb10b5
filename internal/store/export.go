package store

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/astroflow/astroflow/internal/models"
)

// ExportSnapshot is the one-way export document. Field names are part of
// the file format; consumers re-importing elsewhere rely on them.
type ExportSnapshot struct {
	Profile    models.UserProfile         `json:"profile"`
	Days       map[string]models.DayEntry `json:"days"`
	Streaks    models.Streaks             `json:"streaks"`
	Badges     []models.Badge             `json:"badges"`
	ExportedAt string                     `json:"exportedAt"`
}

// Export returns a snapshot of the exportable state. ExportedAt captures
// the clock at call time; everything else is a copy of current state.
func (s *Store) Export() ExportSnapshot {
	days := make(map[string]models.DayEntry, len(s.days))
	for date, entry := range s.days {
		days[date] = entry
	}

	badges := make([]models.Badge, len(s.badges))
	copy(badges, s.badges)

	return ExportSnapshot{
		Profile:    s.profile,
		Days:       days,
		Streaks:    s.streaks,
		Badges:     badges,
		ExportedAt: s.clock.Now().Format(time.RFC3339),
	}
}

// ExportJSON renders the snapshot as an indented UTF-8 JSON document.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s.Export(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}
	return data, nil
}

// WriteExport writes the export document to w.
func (s *Store) WriteExport(w io.Writer) error {
	data, err := s.ExportJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
