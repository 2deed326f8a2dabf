package footprint

import (
	"testing"

	"github.com/julianstephens/ecotrack/internal/models"
)

func TestComputeSavings_UnderBenchmarkYieldsZero(t *testing.T) {
	s := ComputeSavings(50, 80, models.DietOmnivorous)

	if s.Energy != 0 {
		t.Errorf("energy savings below benchmark = %v, want 0", s.Energy)
	}
	if s.Travel != 0 {
		t.Errorf("travel savings below benchmark = %v, want 0", s.Travel)
	}
	if s.Total != 0 {
		t.Errorf("total savings = %v, want 0", s.Total)
	}
}

func TestComputeSavings_ExcessOverBenchmark(t *testing.T) {
	s := ComputeSavings(250, 500, models.DietOmnivorous)

	if !almostEqual(s.Energy, 1200) {
		t.Errorf("energy savings = %v, want max(0, 250*8 - 100*8) = 1200", s.Energy)
	}
	if !almostEqual(s.Travel, 3200) {
		t.Errorf("travel savings = %v, want max(0, 500*8 - 100*8) = 3200", s.Travel)
	}
}

func TestComputeSavings_DietLookup(t *testing.T) {
	cases := []struct {
		diet models.Diet
		want float64
	}{
		{models.DietVegetarian, 1500},
		{models.DietVegan, 2500},
		{models.DietOmnivorous, 0},
		{models.DietOther, 0},
	}

	for _, c := range cases {
		s := ComputeSavings(0, 0, c.diet)
		if !almostEqual(s.Diet, c.want) {
			t.Errorf("diet savings for %q = %v, want %v", c.diet, s.Diet, c.want)
		}
	}
}

func TestComputeSavings_ExactlyAtBenchmark(t *testing.T) {
	s := ComputeSavings(100, 100, models.DietOther)
	if s.Energy != 0 || s.Travel != 0 {
		t.Errorf("at-benchmark usage should save nothing, got energy=%v travel=%v", s.Energy, s.Travel)
	}
}
