package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/astroflow/astroflow/internal/content"
	"github.com/astroflow/astroflow/internal/models"
	"github.com/astroflow/astroflow/internal/store"
)

type Context struct {
	Store   *store.Store
	Content *content.Service
}

const dateLayout = "2006-01-02"

// parseDateArg accepts "today" or a YYYY-MM-DD string.
func parseDateArg(s string) (string, error) {
	if s == "today" {
		return time.Now().Format(dateLayout), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return t.Format(dateLayout), nil
}

func parseEnergy(s string) (models.Energy, error) {
	switch models.Energy(s) {
	case models.EnergyLow, models.EnergyMedium, models.EnergyHigh:
		return models.Energy(s), nil
	default:
		return "", fmt.Errorf("invalid energy level %q, use low, medium, or high", s)
	}
}

// appendSplit appends comma-separated values from input to existing,
// trimming whitespace, skipping empties, and capping the result at max.
func appendSplit(existing []string, input string, max int) []string {
	out := existing
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if len(out) >= max {
			break
		}
		out = append(out, part)
	}
	return out
}

// truncate shortens s to max runes for one-line listings; empty becomes "-".
func truncate(s string, max int) string {
	if s == "" {
		return "-"
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// recentEnergy returns the latest energy check-in from an entry, preferring
// midday over morning.
func recentEnergy(entry models.DayEntry) models.Energy {
	if entry.MiddayEnergy != "" {
		return entry.MiddayEnergy
	}
	if entry.MorningEnergy != "" {
		return entry.MorningEnergy
	}
	return models.EnergyMedium
}
