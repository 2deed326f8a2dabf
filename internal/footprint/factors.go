package footprint

// Emission factors in kg CO2e. These are simplified sample figures, not a
// real emissions-factor database.
const (
	// ElectricityKgPerKWh is kg CO2e per kWh of grid electricity.
	ElectricityKgPerKWh = 0.40

	// CarKgPerKm is kg CO2e per km of car travel (average fuel).
	CarKgPerKm = 0.17

	// FlightKgPerKm is kg CO2e per km flown (short/medium haul).
	FlightKgPerKm = 0.15

	// WasteKgPerMonth is a flat monthly per-person baseline for general waste.
	WasteKgPerMonth = 10.0

	// RecyclingWasteFactor is applied to the waste baseline when the
	// household recycles actively (a 20% reduction).
	RecyclingWasteFactor = 0.8

	// DefaultMealsPerMonth is the meal count used when the caller does not
	// supply one (three meals a day over a thirty-day month).
	DefaultMealsPerMonth = 90
)

// Per-meal emission factors in kg CO2e, by diet category.
const (
	MealKgVegan      = 0.5
	MealKgVegetarian = 1.2
	MealKgOmnivorous = 2.5
	MealKgOther      = 2.0
)

// Financial factors in INR and the eco-friendly benchmark scenario used to
// frame potential savings. Only usage in excess of the benchmark counts.
const (
	// CostPerKWh is the approximate cost of a kWh of electricity.
	CostPerKWh = 8.0

	// CostPerCarKm is the approximate per-km cost of car travel (fuel and wear).
	CostPerCarKm = 8.0

	// BenchmarkKWh is the benchmark monthly electricity consumption.
	BenchmarkKWh = 100.0

	// BenchmarkCarKm is the benchmark monthly car travel.
	BenchmarkCarKm = 100.0

	// VegetarianMonthlySaving is the assumed monthly saving of a vegetarian
	// diet versus an average omnivorous one.
	VegetarianMonthlySaving = 1500.0

	// VeganMonthlySaving is the assumed monthly saving of a vegan diet
	// versus an average omnivorous one.
	VeganMonthlySaving = 2500.0
)

const monthsPerYear = 12
