package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/astroflow/astroflow/internal/content"
	"github.com/astroflow/astroflow/internal/models"
	"github.com/astroflow/astroflow/internal/store"
	"github.com/astroflow/astroflow/internal/tui"
)

type MeditateCmd struct {
	Minutes int  `help:"Session length in minutes; 0 uses the saved default."`
	Save    bool `help:"Save the given minutes as the new default."`
	History bool `help:"List past sessions instead of starting one."`
}

func (c *MeditateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if c.History {
		rituals := ctx.Store.Rituals()
		if len(rituals) == 0 {
			fmt.Println("No sessions logged yet.")
			return nil
		}
		fmt.Println("Meditation log:")
		for _, r := range rituals {
			status := "ended early"
			if r.Completed {
				status = "completed"
			}
			fmt.Printf("  %s  %d min  %s\n", r.TS.Local().Format("2006-01-02 15:04"), r.Minutes, status)
		}
		return nil
	}

	minutes := c.Minutes
	if minutes <= 0 {
		minutes = ctx.Store.Settings().MeditationMinutes
	}

	if c.Save && c.Minutes > 0 {
		patch := store.SettingsPatch{MeditationMinutes: &c.Minutes}
		if err := ctx.Store.SetSettings(patch); err != nil {
			return err
		}
	}

	quote := ctx.Content.Quote(content.Tags{}, time.Now())
	model := tui.NewMeditateModel(minutes, quote)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("timer failed: %w", err)
	}

	completed := false
	if m, ok := final.(tui.MeditateModel); ok {
		completed = m.Completed
	}

	ritual := models.Ritual{
		ID:        uuid.NewString(),
		TS:        time.Now(),
		Minutes:   minutes,
		Completed: completed,
	}
	if err := ctx.Store.AddRitual(ritual); err != nil {
		return err
	}

	if completed {
		fmt.Println("Session complete. Well done.")
	} else {
		fmt.Println("Session ended early. Logged anyway.")
	}
	return nil
}
