package cli

import (
	"fmt"

	"github.com/julianstephens/ecotrack/internal/render"
)

type EntryListCmd struct{}

func (c *EntryListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No saved entries. Run 'ecotrack footprint --save' to record one.")
		return nil
	}

	fmt.Printf("Saved entries (%d total):\n\n", len(entries))
	for _, e := range entries {
		fmt.Printf("%s  %7.1f kg CO2e  %-11s  %s\n", e.Day, e.CO2e.Total, e.Inputs.Diet, e.ID)
	}

	return nil
}

type EntryShowCmd struct {
	ID string `arg:"" help:"ID of the entry to show."`
}

func (c *EntryShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	entry, err := ctx.Store.GetEntry(c.ID)
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	currency := "INR"
	if err == nil {
		currency = settings.Currency
	}

	fmt.Printf("Entry %s (%s)\n\n", entry.ID, entry.Day)
	fmt.Println(render.Footprint(entry.CO2e))
	fmt.Println(render.Savings(entry.Savings, currency))
	return nil
}

type EntryDeleteCmd struct {
	ID string `arg:"" help:"ID of the entry to delete."`
}

func (c *EntryDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if err := ctx.Store.DeleteEntry(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted entry: %s\n", c.ID)
	return nil
}
