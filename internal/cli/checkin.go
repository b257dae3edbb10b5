package cli

import (
	"fmt"
	"time"

	"github.com/astroflow/astroflow/internal/models"
	"github.com/astroflow/astroflow/internal/store"
)

type CheckinCmd struct {
	Energy string `arg:"" help:"Energy level: low, medium, or high."`
	Midday bool   `help:"Record as the midday check-in instead of morning."`
}

func (c *CheckinCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	energy, err := parseEnergy(c.Energy)
	if err != nil {
		return err
	}

	today := time.Now().Format(dateLayout)
	patch := store.DayPatch{MorningEnergy: &energy}
	slot := "morning"
	if c.Midday {
		patch = store.DayPatch{MiddayEnergy: &energy}
		slot = "midday"
	}

	if err := ctx.Store.UpdateDayEntry(today, patch); err != nil {
		return err
	}

	fmt.Printf("Logged %s energy: %s\n", slot, energy)

	if energy == models.EnergyLow {
		fmt.Printf("Nudge: %s\n", ctx.Content.Nudge(energy))
	}
	return nil
}
