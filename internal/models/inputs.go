package models

import "strings"

// Diet categorizes a household's primary diet for footprint estimation.
type Diet string

const (
	DietOmnivorous Diet = "omnivorous"
	DietVegetarian Diet = "vegetarian"
	DietVegan      Diet = "vegan"
	DietOther      Diet = "other"
)

// ParseDiet maps a user-supplied diet string to a Diet. Unrecognized
// values map to DietOther rather than failing.
func ParseDiet(s string) Diet {
	switch Diet(strings.ToLower(strings.TrimSpace(s))) {
	case DietOmnivorous:
		return DietOmnivorous
	case DietVegetarian:
		return DietVegetarian
	case DietVegan:
		return DietVegan
	case DietOther:
		return DietOther
	default:
		return DietOther
	}
}

// FootprintInputs holds the raw monthly figures a footprint estimate is
// computed from. ElectricityKWh and CarKmMonth are per month, FlightKmYear
// is per year and amortized monthly by the calculator.
type FootprintInputs struct {
	ElectricityKWh float64 `json:"electricity_kwh"`
	CarKmMonth     float64 `json:"car_km_month"`
	FlightKmYear   float64 `json:"flight_km_year"`
	Diet           Diet    `json:"diet"`
	Recycles       bool    `json:"recycles"`
}
