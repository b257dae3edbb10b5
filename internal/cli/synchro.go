package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/astroflow/astroflow/internal/insight"
	"github.com/astroflow/astroflow/internal/models"
)

type SynchroAddCmd struct {
	Note   string `arg:"" help:"What did you notice?"`
	Tag    string `help:"Optional tag, e.g. 'numbers' or 'encounter'."`
	Number string `help:"Number pattern seen, e.g. '11:11'."`
}

func (c *SynchroAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	synchro := models.Synchro{
		ID:         uuid.NewString(),
		TS:         time.Now(),
		Note:       c.Note,
		Tag:        c.Tag,
		NumberSeen: c.Number,
	}
	if err := ctx.Store.AddSynchro(synchro); err != nil {
		return err
	}

	fmt.Println("Synchronicity logged.")
	return nil
}

type SynchroLogCmd struct {
	Last int `help:"Show only the most recent N records." default:"10"`
}

func (c *SynchroLogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	synchros := ctx.Store.Synchros()
	if len(synchros) == 0 {
		fmt.Println("No synchronicities logged yet.")
		return nil
	}

	start := 0
	if c.Last > 0 && len(synchros) > c.Last {
		start = len(synchros) - c.Last
	}

	fmt.Println("Synchronicity log:")
	for _, s := range synchros[start:] {
		line := fmt.Sprintf("  %s  %s", s.TS.Local().Format("2006-01-02 15:04"), s.Note)
		if s.NumberSeen != "" {
			line += fmt.Sprintf(" [%s]", s.NumberSeen)
		}
		if s.Tag != "" {
			line += fmt.Sprintf(" #%s", s.Tag)
		}
		fmt.Println(line)
	}
	return nil
}

type SynchroAnalyzeCmd struct{}

func (c *SynchroAnalyzeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Open(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	analysis, ok := insight.AnalyzeSynchros(ctx.Store.Synchros())
	if !ok {
		fmt.Println("Nothing to analyze yet. Log a synchronicity first.")
		return nil
	}

	fmt.Printf("Records analyzed: %d\n", analysis.Total)
	fmt.Printf("Most active hour: %02d:00\n", analysis.BestHour)
	if analysis.TopNumber != "" {
		fmt.Printf("Most seen number: %s\n", analysis.TopNumber)
	}
	return nil
}
