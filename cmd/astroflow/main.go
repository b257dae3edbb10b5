package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/astroflow/astroflow/internal/cli"
	"github.com/astroflow/astroflow/internal/content"
	"github.com/astroflow/astroflow/internal/storage"
	"github.com/astroflow/astroflow/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/astroflow/astroflow.db"`

	Init      cli.InitCmd      `cmd:"" help:"Initialize astroflow storage."`
	Onboard   cli.OnboardCmd   `cmd:"" help:"Set up your profile."`
	Profile   cli.ProfileCmd   `cmd:"" help:"Show or update your profile."`
	Checkin   cli.CheckinCmd   `cmd:"" help:"Log a morning or midday energy check-in."`
	Reflect   cli.ReflectCmd   `cmd:"" help:"Complete the evening reflection."`
	Gratitude cli.GratitudeCmd `cmd:"" help:"Log one gratitude for today."`
	Streaks   cli.StreaksCmd   `cmd:"" help:"Show streak counters."`
	Badges    cli.BadgesCmd    `cmd:"" help:"List earned badges."`
	Insight   cli.InsightCmd   `cmd:"" help:"Show today's or this week's insight."`
	Moon      cli.MoonCmd      `cmd:"" help:"Show the moon phase for a date."`
	Day       cli.DayCmd       `cmd:"" help:"Show the journal entry for a day."`
	Export    cli.ExportCmd    `cmd:"" help:"Export all data as JSON."`
	Meditate  cli.MeditateCmd  `cmd:"" help:"Run the meditation timer."`
	Task      struct {
		Add  cli.TaskAddCmd  `cmd:"" help:"Add a daily intention."`
		List cli.TaskListCmd `cmd:"" help:"List today's intentions."`
		Done cli.TaskDoneCmd `cmd:"" help:"Toggle an intention's completion."`
	} `cmd:"" help:"Manage daily intentions."`
	Synchro struct {
		Add     cli.SynchroAddCmd     `cmd:"" help:"Log a synchronicity."`
		Log     cli.SynchroLogCmd     `cmd:"" help:"Show the synchronicity log."`
		Analyze cli.SynchroAnalyzeCmd `cmd:"" help:"Find your patterns."`
	} `cmd:"" help:"Track synchronicities."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a storage backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore storage from a backup."`
	} `cmd:"" help:"Manage storage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("astroflow"),
		kong.Description("Daily alignment journal: check-ins, reflections, streaks, and a meditation timer"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine backend type based on extension
	var backend storage.Backend
	if strings.HasSuffix(CLI.Config, ".json") {
		backend = storage.NewJSONBackend(CLI.Config)
	} else {
		backend = storage.NewSQLiteBackend(CLI.Config)
	}

	catalog, err := content.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Store:   store.New(backend, store.SystemClock),
		Content: catalog,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
