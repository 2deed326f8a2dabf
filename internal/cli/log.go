package cli

import (
	"fmt"
	"slices"
	"time"

	"github.com/julianstephens/ecotrack/internal/streak"
)

type LogCmd struct{}

func (c *LogCmd) Run(ctx *Context) error {
	today := getCurrentDate()
	dates := ctx.Log.Load()

	if slices.Contains(dates, today) {
		fmt.Println("✅ Already logged today!")
	} else {
		if err := ctx.Log.Append(today); err != nil {
			return fmt.Errorf("failed to log today's action: %w", err)
		}
		dates = ctx.Log.Load()
		fmt.Println("🔥 Logged today's eco action!")
	}

	state := streak.Compute(dates, time.Now())
	fmt.Printf("Current streak: %d day(s) (longest: %d)\n", state.Current, state.Longest)
	return nil
}
