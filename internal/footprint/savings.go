package footprint

import "github.com/julianstephens/ecotrack/internal/models"

// ComputeSavings estimates the monthly amount a household would save by
// moving to the eco-friendly benchmark. Only usage in excess of the
// benchmark counts, so each category is clamped at zero. The diet figure is
// a fixed lookup against an omnivorous baseline rather than a scaled value.
func ComputeSavings(kwh, carKm float64, diet models.Diet) models.Savings {
	energy := max(0, kwh*CostPerKWh-BenchmarkKWh*CostPerKWh)
	travel := max(0, carKm*CostPerCarKm-BenchmarkCarKm*CostPerCarKm)

	var dietSaving float64
	switch diet {
	case models.DietVegetarian:
		dietSaving = VegetarianMonthlySaving
	case models.DietVegan:
		dietSaving = VeganMonthlySaving
	}

	return models.Savings{
		Total:  energy + travel + dietSaving,
		Energy: energy,
		Travel: travel,
		Diet:   dietSaving,
	}
}
