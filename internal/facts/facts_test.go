package facts

import (
	"slices"
	"testing"
)

func TestRandom_ReturnsKnownFact(t *testing.T) {
	all := All()
	for range 20 {
		if f := Random(); !slices.Contains(all, f) {
			t.Fatalf("Random returned an unknown fact: %q", f)
		}
	}
}

func TestNext_NeverRepeatsCurrent(t *testing.T) {
	current := All()[0]
	for range 50 {
		next := Next(current)
		if next == current {
			t.Fatal("Next returned the current fact")
		}
	}
}
