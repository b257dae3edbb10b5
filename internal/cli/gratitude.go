package cli

import (
	"fmt"
	"time"

	"github.com/astroflow/astroflow/internal/store"
)

type GratitudeCmd struct {
	Text string `arg:"" help:"What are you grateful for?"`
}

func (c *GratitudeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	entry := ctx.Store.TodayEntry()
	if len(entry.Gratitude) >= MaxListEntries {
		fmt.Printf("Today's gratitude list is full (%d entries).\n", MaxListEntries)
		return nil
	}

	// The store replaces lists wholesale, so append to the full list here.
	gratitude := append(entry.Gratitude, c.Text)
	today := time.Now().Format(dateLayout)
	patch := store.DayPatch{Gratitude: &gratitude}
	if err := ctx.Store.UpdateDayEntry(today, patch); err != nil {
		return err
	}

	fmt.Printf("Gratitude logged (%d/%d today).\n", len(gratitude), MaxListEntries)
	return nil
}
