package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/astroflow/astroflow/internal/insight"
	"github.com/astroflow/astroflow/internal/store"
)

// MaxListEntries caps the gratitude and synchronicity prompts; the store
// accepts longer lists.
const MaxListEntries = 5

type ReflectCmd struct {
	Text string `help:"Reflection text; when empty an interactive form opens."`
}

func (c *ReflectCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	entry := ctx.Store.TodayEntry()

	reflection := c.Text
	gratitude := entry.Gratitude
	synchronicities := entry.Synchronicities

	if reflection == "" {
		var gratitudeInput, synchroInput string

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewText().
					Title(ctx.Content.ReflectionPrompt()).
					Value(&reflection),
				huh.NewInput().
					Title(fmt.Sprintf("Gratitude (comma-separated, up to %d)", MaxListEntries)).
					Value(&gratitudeInput),
				huh.NewInput().
					Title("Synchronicities noticed (comma-separated)").
					Value(&synchroInput),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("reflection aborted: %w", err)
		}

		gratitude = appendSplit(gratitude, gratitudeInput, MaxListEntries)
		synchronicities = appendSplit(synchronicities, synchroInput, MaxListEntries)
	}

	completed := true
	today := time.Now().Format(dateLayout)
	patch := store.DayPatch{
		Reflection:       &reflection,
		Gratitude:        &gratitude,
		Synchronicities:  &synchronicities,
		EveningCompleted: &completed,
	}
	if err := ctx.Store.UpdateDayEntry(today, patch); err != nil {
		return err
	}

	if err := ctx.Store.UpdateStreaks(); err != nil {
		return err
	}

	streaks := ctx.Store.Streaks()
	fmt.Printf("Evening reflection complete. Current streak: %d day(s).\n", streaks.CurrentStreak)

	if score := insight.ScoreSentiment(reflection); score != 0 {
		fmt.Printf("Sentiment: %+d\n", score)
	}

	earned, err := awardStreakBadges(ctx.Store)
	if err != nil {
		return err
	}
	for _, badge := range earned {
		fmt.Printf("%s Badge earned: %s (%s)\n", badge.Icon, badge.Name, badge.Description)
	}
	return nil
}
