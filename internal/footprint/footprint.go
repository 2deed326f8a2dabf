// Package footprint estimates a household's monthly carbon footprint and the
// potential financial savings of moving to an eco-friendly benchmark.
//
// All functions are pure. Inputs are not validated: negative figures flow
// through the arithmetic unchanged, and callers that care should reject them
// at their own boundary.
package footprint

import "github.com/julianstephens/ecotrack/internal/models"

// Energy returns the monthly CO2e in kg from home electricity use.
func Energy(kwh float64) float64 {
	return kwh * ElectricityKgPerKWh
}

// Travel returns the monthly CO2e in kg from car travel and flights. The
// annual flight figure is amortized monthly.
func Travel(carKmMonth, flightKmYear float64) float64 {
	return carKmMonth*CarKgPerKm + flightKmYear*FlightKgPerKm/monthsPerYear
}

// DietCO2 returns the monthly CO2e in kg for a diet category over the given
// meal count. Unrecognized categories use the "other" factor.
func DietCO2(diet models.Diet, mealsPerMonth float64) float64 {
	var factor float64
	switch diet {
	case models.DietVegan:
		factor = MealKgVegan
	case models.DietVegetarian:
		factor = MealKgVegetarian
	case models.DietOmnivorous:
		factor = MealKgOmnivorous
	default:
		factor = MealKgOther
	}
	return mealsPerMonth * factor
}

// Total combines the three computed components with the flat waste baseline
// scaled by wasteFactor and returns the full breakdown. Total is the sum of
// the four categories.
func Total(energy, travel, diet, wasteFactor float64) models.Breakdown {
	waste := WasteKgPerMonth * wasteFactor
	return models.Breakdown{
		Total:  energy + travel + diet + waste,
		Energy: energy,
		Travel: travel,
		Diet:   diet,
		Waste:  waste,
	}
}

// WasteFactor maps the recycling flag to the waste reduction factor.
func WasteFactor(recycles bool) float64 {
	if recycles {
		return RecyclingWasteFactor
	}
	return 1.0
}

// Compute derives the full CO2e breakdown and savings estimate from a set of
// inputs, using mealsPerMonth for the diet component (pass
// DefaultMealsPerMonth for the standard meal count).
func Compute(in models.FootprintInputs, mealsPerMonth float64) (models.Breakdown, models.Savings) {
	energy := Energy(in.ElectricityKWh)
	travel := Travel(in.CarKmMonth, in.FlightKmYear)
	diet := DietCO2(in.Diet, mealsPerMonth)
	breakdown := Total(energy, travel, diet, WasteFactor(in.Recycles))
	savings := ComputeSavings(in.ElectricityKWh, in.CarKmMonth, in.Diet)
	return breakdown, savings
}
