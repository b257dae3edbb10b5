package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/astroflow/astroflow/internal/astro"
	"github.com/astroflow/astroflow/internal/content"
	"github.com/astroflow/astroflow/internal/insight"
)

type InsightCmd struct {
	Weekly bool   `help:"Show the weekly insight instead of today's."`
	Sign   string `help:"Sun sign override." default:"Libra"`
}

func (c *InsightCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if c.Weekly {
		weekly := insight.WeeklyInsight(c.Sign)
		fmt.Println(weekly.Title)
		fmt.Println(weekly.Body)
		fmt.Printf("Focus days: %s\n", strings.Join(weekly.FocusDays, ", "))
		return nil
	}

	now := time.Now()
	entry := ctx.Store.TodayEntry()
	energy := recentEnergy(entry)

	daily := insight.DailyInsight(c.Sign, energy, now)
	fmt.Println(daily.Title)
	fmt.Println(daily.Body)
	for _, rec := range daily.Recs {
		fmt.Printf("  • %s\n", rec)
	}

	fmt.Println()
	fmt.Printf("Alignment: %s\n", astro.AlignmentInsight(c.Sign, astro.CurrentTransits()))
	fmt.Printf("Quote: %s\n", ctx.Content.Quote(content.Tags{Energy: energy}, now))
	return nil
}

type MoonCmd struct {
	Date string `arg:"" help:"Date to look up (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *MoonCmd) Run(ctx *Context) error {
	date, err := parseDateArg(c.Date)
	if err != nil {
		return err
	}

	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return err
	}

	details := astro.Details(t)
	fmt.Printf("%s %s (day %d of the cycle)\n", astro.Emoji(details.Bucket), details.Name, details.Index)
	return nil
}
