package streaklog

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func testLog(t *testing.T) *Log {
	return New(filepath.Join(t.TempDir(), "streak.json"))
}

func TestLoad_MissingFileIsEmptyHistory(t *testing.T) {
	l := testLog(t)
	if dates := l.Load(); len(dates) != 0 {
		t.Errorf("expected empty history, got %v", dates)
	}
}

func TestLoad_CorruptFileIsEmptyHistory(t *testing.T) {
	l := testLog(t)
	if err := os.WriteFile(l.Path(), []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	if dates := l.Load(); len(dates) != 0 {
		t.Errorf("expected empty history for corrupt file, got %v", dates)
	}
}

func TestLoad_DeduplicatesAndSorts(t *testing.T) {
	l := testLog(t)
	content := `{"logged_dates": ["2024-01-03", "2024-01-01", "2024-01-03", "garbage", "2024-01-02"]}`
	if err := os.WriteFile(l.Path(), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	got := l.Load()
	want := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	if !slices.Equal(got, want) {
		t.Errorf("Load = %v, want %v", got, want)
	}
}

func TestAppend_Idempotent(t *testing.T) {
	l := testLog(t)

	if err := l.Append("2024-01-05"); err != nil {
		t.Fatalf("first append failed: %v", err)
	}
	if err := l.Append("2024-01-05"); err != nil {
		t.Fatalf("second append failed: %v", err)
	}

	got := l.Load()
	if !slices.Equal(got, []string{"2024-01-05"}) {
		t.Errorf("Load after double append = %v, want a single entry", got)
	}
}

func TestAppend_KeepsFileSorted(t *testing.T) {
	l := testLog(t)

	for _, d := range []string{"2024-01-05", "2024-01-02", "2024-01-03"} {
		if err := l.Append(d); err != nil {
			t.Fatalf("append %s failed: %v", d, err)
		}
	}

	got := l.Load()
	want := []string{"2024-01-02", "2024-01-03", "2024-01-05"}
	if !slices.Equal(got, want) {
		t.Errorf("Load = %v, want %v", got, want)
	}
}

func TestAppend_RejectsMalformedDate(t *testing.T) {
	l := testLog(t)
	if err := l.Append("05-01-2024"); err == nil {
		t.Error("expected an error for a malformed date")
	}
	if dates := l.Load(); len(dates) != 0 {
		t.Errorf("malformed append should not persist anything, got %v", dates)
	}
}

func TestAppend_CreatesParentDirectory(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "nested", "dir", "streak.json"))
	if err := l.Append("2024-01-05"); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if got := l.Load(); !slices.Equal(got, []string{"2024-01-05"}) {
		t.Errorf("Load = %v, want the appended date", got)
	}
}

func TestRoundTrip_OrderIndependent(t *testing.T) {
	l := testLog(t)
	content := `{"logged_dates": ["2024-02-02", "2024-02-01"]}`
	if err := os.WriteFile(l.Path(), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	before := l.Load()
	if err := l.Append("2024-02-03"); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	after := l.Load()

	if !slices.Equal(after, append(before, "2024-02-03")) {
		t.Errorf("round trip changed the set: before=%v after=%v", before, after)
	}
}
