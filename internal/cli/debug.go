package cli

import (
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	DBPath    *DebugDBPathCmd    `cmd:"" help:"Show storage paths."`
	DumpEntry *DebugDumpEntryCmd `cmd:"" help:"Dump a saved entry as JSON."`
	DumpLog   *DebugDumpLogCmd   `cmd:"" help:"Dump the streak log as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	// Output in machine-readable format
	output := map[string]string{
		"store_path":      ctx.Store.GetConfigPath(),
		"streak_log_path": ctx.Log.Path(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpEntryCmd struct {
	ID string `arg:"" help:"ID of the entry to dump."`
}

func (cmd *DebugDumpEntryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	entry, err := ctx.Store.GetEntry(cmd.ID)
	if err != nil {
		return fmt.Errorf("failed to get entry: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpLogCmd struct{}

func (cmd *DebugDumpLogCmd) Run(ctx *Context) error {
	output := map[string][]string{
		"logged_dates": ctx.Log.Load(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal log: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
