package cli

import (
	"fmt"
	"time"

	"github.com/astroflow/astroflow/internal/models"
	"github.com/astroflow/astroflow/internal/store"
)

// Streak thresholds and the badges they award. This lives outside the
// store, which only de-duplicates by id.
var streakBadges = []struct {
	Days        int
	ID          string
	Name        string
	Description string
	Icon        string
}{
	{1, "first-reflection", "First Light", "Completed your first evening reflection", "🌱"},
	{3, "streak-3", "Three in Flow", "Reflected three evenings in a row", "🌒"},
	{7, "streak-7", "Week of Alignment", "A full week of evening reflections", "✨"},
	{30, "streak-30", "Lunar Cycle", "Thirty consecutive evenings of reflection", "🌕"},
}

// awardStreakBadges inserts every badge whose threshold the current streak
// has reached and returns the ones that are new.
func awardStreakBadges(st *store.Store) ([]models.Badge, error) {
	current := st.Streaks().CurrentStreak
	now := time.Now().Format(time.RFC3339)

	var earned []models.Badge
	for _, def := range streakBadges {
		if current < def.Days {
			continue
		}
		badge := models.Badge{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			EarnedAt:    now,
			Icon:        def.Icon,
		}
		added, err := st.AddBadge(badge)
		if err != nil {
			return earned, err
		}
		if added {
			earned = append(earned, badge)
		}
	}
	return earned, nil
}

type StreaksCmd struct{}

func (c *StreaksCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	streaks := ctx.Store.Streaks()
	fmt.Printf("Current streak: %d day(s)\n", streaks.CurrentStreak)
	fmt.Printf("Longest streak: %d day(s)\n", streaks.LongestStreak)
	if streaks.LastActiveDate != "" {
		fmt.Printf("Last active:    %s\n", streaks.LastActiveDate)
	}
	return nil
}

type BadgesCmd struct{}

func (c *BadgesCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	badges := ctx.Store.Badges()
	if len(badges) == 0 {
		fmt.Println("No badges earned yet. Complete an evening reflection to start a streak.")
		return nil
	}

	fmt.Println("Badges:")
	for _, badge := range badges {
		fmt.Printf("  %s %s (%s) earned %s\n", badge.Icon, badge.Name, badge.Description, badge.EarnedAt)
	}
	return nil
}
