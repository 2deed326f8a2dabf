package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/julianstephens/ecotrack/internal/render"
	"github.com/julianstephens/ecotrack/internal/streak"
)

type StreakCmd struct {
	JSON bool `help:"Output as JSON."`
}

func (c *StreakCmd) Run(ctx *Context) error {
	dates := ctx.Log.Load()
	state := streak.Compute(dates, time.Now())
	loggedToday := slices.Contains(dates, getCurrentDate())

	if c.JSON {
		output := map[string]any{
			"current_streak": state.Current,
			"longest_streak": state.Longest,
			"logged_today":   loggedToday,
			"logged_days":    len(dates),
		}
		jsonBytes, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	fmt.Println(render.Streak(state, loggedToday))
	return nil
}
