package cli

import (
	"fmt"
	"strings"
)

type DayCmd struct {
	Date   string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
	Recent int    `help:"List the last N recorded days instead." default:"0"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if c.Recent > 0 {
		entries := ctx.Store.RecentDays(c.Recent)
		if len(entries) == 0 {
			fmt.Println("No days recorded yet.")
			return nil
		}
		for _, entry := range entries {
			done := 0
			for _, task := range entry.Tasks {
				if task.Completed {
					done++
				}
			}
			fmt.Printf("  %s  %s  intentions %d/%d  reflection %s\n",
				entry.Date, checkbox(entry.EveningCompleted), done, len(entry.Tasks),
				truncate(entry.Reflection, 40))
		}
		return nil
	}

	date, err := parseDateArg(c.Date)
	if err != nil {
		return err
	}

	entry, ok := ctx.Store.Day(date)
	if !ok {
		fmt.Printf("No entry for %s yet.\n", date)
		return nil
	}

	fmt.Printf("Entry for %s:\n\n", date)

	if entry.MorningEnergy != "" {
		fmt.Printf("  Morning energy: %s\n", entry.MorningEnergy)
	}
	if entry.MiddayEnergy != "" {
		fmt.Printf("  Midday energy:  %s\n", entry.MiddayEnergy)
	}

	if len(entry.Tasks) > 0 {
		fmt.Println("  Intentions:")
		for _, task := range entry.Tasks {
			fmt.Printf("    %s %s\n", checkbox(task.Completed), task.Text)
		}
	}

	if len(entry.Gratitude) > 0 {
		fmt.Printf("  Gratitude: %s\n", strings.Join(entry.Gratitude, "; "))
	}
	if len(entry.Synchronicities) > 0 {
		fmt.Printf("  Synchronicities: %s\n", strings.Join(entry.Synchronicities, "; "))
	}
	if entry.Reflection != "" {
		fmt.Printf("  Reflection: %s\n", entry.Reflection)
	}

	status := "pending"
	if entry.EveningCompleted {
		status = "complete"
	}
	fmt.Printf("  Evening reflection: %s\n", status)

	return nil
}
