// Package streak computes daily logging streaks over a set of calendar
// dates in YYYY-MM-DD form.
package streak

import (
	"slices"
	"time"
)

const dayFormat = "2006-01-02"

// State holds the current and longest streak lengths. Both are recomputed
// from the full date set on every call; nothing is memoized.
type State struct {
	Current int
	Longest int
}

// Longest returns the length of the longest run of calendar-consecutive
// dates. Duplicates and unparseable entries are ignored. Empty input
// yields 0.
func Longest(dates []string) int {
	days := uniqueDays(dates)
	if len(days) == 0 {
		return 0
	}

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i]-days[i-1] == 1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}

	return longest
}

// Compute returns the current and longest streaks for the given dates,
// using now as the reference for "today". The current streak counts back
// from today, or from yesterday if today has not been logged yet (a streak
// survives until a full day is missed). If neither day is present the
// current streak is 0, but the longest streak is still reported.
func Compute(dates []string, now time.Time) State {
	days := uniqueDays(dates)
	longest := Longest(dates)
	if len(days) == 0 {
		return State{}
	}

	present := make(map[int64]struct{}, len(days))
	for _, d := range days {
		present[d] = struct{}{}
	}

	today := dayNumber(now.Format(dayFormat))
	check := today
	if _, ok := present[today]; !ok {
		if _, ok := present[today-1]; !ok {
			return State{Current: 0, Longest: longest}
		}
		check = today - 1
	}

	current := 0
	for {
		if _, ok := present[check]; !ok {
			break
		}
		current++
		check--
	}

	return State{Current: current, Longest: longest}
}

// uniqueDays parses the date strings into sorted unique day numbers
// (days since the Unix epoch), dropping anything unparseable.
func uniqueDays(dates []string) []int64 {
	seen := make(map[int64]struct{}, len(dates))
	days := make([]int64, 0, len(dates))
	for _, d := range dates {
		n := dayNumber(d)
		if n < 0 {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		days = append(days, n)
	}

	slices.Sort(days)
	return days
}

func dayNumber(date string) int64 {
	t, err := time.Parse(dayFormat, date)
	if err != nil {
		return -1
	}
	return t.Unix() / (24 * 60 * 60)
}
