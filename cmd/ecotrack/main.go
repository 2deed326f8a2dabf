package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/ecotrack/internal/cli"
	"github.com/julianstephens/ecotrack/internal/storage"
	"github.com/julianstephens/ecotrack/internal/streaklog"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/ecotrack/ecotrack.db"`

	Init      cli.InitCmd      `cmd:"" help:"Initialize ecotrack storage."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Footprint cli.FootprintCmd `cmd:"" help:"Estimate your monthly carbon footprint."`
	Log       cli.LogCmd       `cmd:"" help:"Log today's eco action."`
	Streak    cli.StreakCmd    `cmd:"" help:"Show the daily action streak."`
	Fact      cli.FactCmd      `cmd:"" help:"Print a random eco fact."`
	Entry     struct {
		List   cli.EntryListCmd   `cmd:"" help:"List saved footprint entries."`
		Show   cli.EntryShowCmd   `cmd:"" help:"Show a saved entry."`
		Delete cli.EntryDeleteCmd `cmd:"" help:"Delete a saved entry."`
	} `cmd:"" help:"Manage saved footprint entries."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the storage."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore storage from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run diagnostics."`
	Debug  cli.DebugCmd  `cmd:"" help:"Inspect stored data."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ecotrack"),
		kong.Description("Household carbon footprint estimator and eco-action streak companion"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Log:   streaklog.New(filepath.Join(filepath.Dir(CLI.Config), "streak.json")),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
