package streak

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestLongest_RunWithGap(t *testing.T) {
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-10"}
	if got := Longest(dates); got != 3 {
		t.Errorf("Longest = %d, want 3", got)
	}
}

func TestLongest_EmptyInput(t *testing.T) {
	if got := Longest(nil); got != 0 {
		t.Errorf("Longest(nil) = %d, want 0", got)
	}
}

func TestLongest_SingleDate(t *testing.T) {
	if got := Longest([]string{"2024-06-15"}); got != 1 {
		t.Errorf("Longest = %d, want 1", got)
	}
}

func TestLongest_RunEndsAtInput(t *testing.T) {
	// The final run must be flushed even though the scan ends mid-run.
	dates := []string{"2024-01-01", "2024-01-05", "2024-01-06", "2024-01-07", "2024-01-08"}
	if got := Longest(dates); got != 4 {
		t.Errorf("Longest = %d, want 4", got)
	}
}

func TestLongest_UnsortedAndDuplicated(t *testing.T) {
	dates := []string{"2024-01-03", "2024-01-01", "2024-01-02", "2024-01-02"}
	if got := Longest(dates); got != 3 {
		t.Errorf("Longest = %d, want 3", got)
	}
}

func TestCompute_TodayPresent(t *testing.T) {
	dates := []string{"2024-01-03", "2024-01-04", "2024-01-05"}
	got := Compute(dates, day("2024-01-05"))
	if got.Current != 3 || got.Longest != 3 {
		t.Errorf("Compute = %+v, want current=3 longest=3", got)
	}
}

func TestCompute_YesterdayAnchorsStreak(t *testing.T) {
	// Today not yet logged; the streak survives on yesterday's entry.
	dates := []string{"2024-01-03", "2024-01-04"}
	got := Compute(dates, day("2024-01-05"))
	if got.Current != 2 || got.Longest != 2 {
		t.Errorf("Compute = %+v, want current=2 longest=2", got)
	}
}

func TestCompute_BrokenStreakStillReportsLongest(t *testing.T) {
	dates := []string{"2024-01-01"}
	got := Compute(dates, day("2024-01-05"))
	if got.Current != 0 || got.Longest != 1 {
		t.Errorf("Compute = %+v, want current=0 longest=1", got)
	}
}

func TestCompute_EmptyHistory(t *testing.T) {
	got := Compute(nil, day("2024-01-05"))
	if got.Current != 0 || got.Longest != 0 {
		t.Errorf("Compute = %+v, want zero state", got)
	}
}

func TestCompute_CurrentStopsAtFirstGap(t *testing.T) {
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-04", "2024-01-05"}
	got := Compute(dates, day("2024-01-05"))
	if got.Current != 2 {
		t.Errorf("current = %d, want 2 (gap on Jan 3 breaks the walk)", got.Current)
	}
	if got.Longest != 2 {
		t.Errorf("longest = %d, want 2", got.Longest)
	}
}

func TestCompute_LongestMayExceedCurrent(t *testing.T) {
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-10"}
	got := Compute(dates, day("2024-01-10"))
	if got.Current != 1 || got.Longest != 4 {
		t.Errorf("Compute = %+v, want current=1 longest=4", got)
	}
}
