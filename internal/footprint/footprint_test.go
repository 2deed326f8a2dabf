package footprint

import (
	"math"
	"testing"

	"github.com/julianstephens/ecotrack/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEnergy_LinearInConsumption(t *testing.T) {
	cases := []struct {
		kwh  float64
		want float64
	}{
		{0, 0},
		{1, 0.40},
		{100, 40.0},
		{250, 100.0},
	}

	for _, c := range cases {
		got := Energy(c.kwh)
		if !almostEqual(got, c.want) {
			t.Errorf("Energy(%v) = %v, want %v", c.kwh, got, c.want)
		}
	}
}

func TestTravel_AmortizesFlightsMonthly(t *testing.T) {
	// 500 km by car plus 1000 km flown per year
	got := Travel(500, 1000)
	want := 500*0.17 + 1000*0.15/12
	if !almostEqual(got, want) {
		t.Errorf("Travel(500, 1000) = %v, want %v", got, want)
	}
}

func TestTravel_SeparableContributions(t *testing.T) {
	carOnly := Travel(300, 0)
	flightOnly := Travel(0, 2400)

	if !almostEqual(Travel(300, 2400), carOnly+flightOnly) {
		t.Errorf("expected Travel to be the sum of independent contributions")
	}
	if !almostEqual(Travel(600, 0), 2*carOnly) {
		t.Errorf("doubling car distance should double its contribution")
	}
	if !almostEqual(Travel(0, 4800), 2*flightOnly) {
		t.Errorf("doubling flight distance should double its contribution")
	}
}

func TestDietCO2_FactorLookup(t *testing.T) {
	cases := []struct {
		diet models.Diet
		want float64
	}{
		{models.DietVegan, 90 * 0.5},
		{models.DietVegetarian, 90 * 1.2},
		{models.DietOmnivorous, 90 * 2.5},
		{models.DietOther, 90 * 2.0},
	}

	for _, c := range cases {
		got := DietCO2(c.diet, DefaultMealsPerMonth)
		if !almostEqual(got, c.want) {
			t.Errorf("DietCO2(%q) = %v, want %v", c.diet, got, c.want)
		}
	}
}

func TestDietCO2_UnrecognizedEqualsOther(t *testing.T) {
	got := DietCO2(models.Diet("pescatarian"), DefaultMealsPerMonth)
	want := DietCO2(models.DietOther, DefaultMealsPerMonth)
	if !almostEqual(got, want) {
		t.Errorf("unrecognized diet = %v, want the other-category result %v", got, want)
	}
}

func TestTotal_WasteReduction(t *testing.T) {
	full := Total(10, 20, 30, 1.0)
	reduced := Total(10, 20, 30, 0.8)

	// 20% off the flat 10 kg waste baseline
	if !almostEqual(full.Total-reduced.Total, 2.0) {
		t.Errorf("recycling should reduce the total by 2.0 kg, got %v", full.Total-reduced.Total)
	}
	if !almostEqual(reduced.Waste, 8.0) {
		t.Errorf("reduced waste = %v, want 8.0", reduced.Waste)
	}
}

func TestTotal_SumOfCategories(t *testing.T) {
	b := Total(100, 97.5, 108, 0.8)
	sum := b.Energy + b.Travel + b.Diet + b.Waste
	if !almostEqual(b.Total, sum) {
		t.Errorf("Total = %v, want sum of categories %v", b.Total, sum)
	}
}

func TestCompute_EndToEnd(t *testing.T) {
	in := models.FootprintInputs{
		ElectricityKWh: 250,
		CarKmMonth:     500,
		FlightKmYear:   1000,
		Diet:           models.DietVegetarian,
		Recycles:       true,
	}

	breakdown, savings := Compute(in, DefaultMealsPerMonth)

	if !almostEqual(breakdown.Energy, 100.0) {
		t.Errorf("energy = %v, want 100.0", breakdown.Energy)
	}
	if !almostEqual(breakdown.Travel, 97.5) {
		t.Errorf("travel = %v, want 97.5", breakdown.Travel)
	}
	if !almostEqual(breakdown.Diet, 108.0) {
		t.Errorf("diet = %v, want 108.0", breakdown.Diet)
	}
	if !almostEqual(breakdown.Waste, 8.0) {
		t.Errorf("waste = %v, want 8.0", breakdown.Waste)
	}
	if !almostEqual(breakdown.Total, 313.5) {
		t.Errorf("total = %v, want 313.5", breakdown.Total)
	}

	if !almostEqual(savings.Energy, 1200) {
		t.Errorf("energy savings = %v, want 1200", savings.Energy)
	}
	if !almostEqual(savings.Travel, 3200) {
		t.Errorf("travel savings = %v, want 3200", savings.Travel)
	}
	if !almostEqual(savings.Diet, 1500) {
		t.Errorf("diet savings = %v, want 1500", savings.Diet)
	}
	if !almostEqual(savings.Total, 5900) {
		t.Errorf("total savings = %v, want 5900", savings.Total)
	}
}

func TestEnergy_NegativeInputPassesThrough(t *testing.T) {
	// The calculator performs no validation; negative inputs are defined
	// arithmetically. Rejection, if any, happens at the caller's boundary.
	got := Energy(-10)
	if !almostEqual(got, -4.0) {
		t.Errorf("Energy(-10) = %v, want -4.0", got)
	}
}
