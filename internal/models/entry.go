package models

import "time"

// Entry is a saved footprint computation: the inputs a user submitted plus
// the CO2e and savings figures derived from them at the time of saving.
type Entry struct {
	ID        string          `json:"id"`
	Day       string          `json:"day"` // YYYY-MM-DD format
	Inputs    FootprintInputs `json:"inputs"`
	CO2e      Breakdown       `json:"co2e"`
	Savings   Savings         `json:"savings"`
	CreatedAt time.Time       `json:"created_at"`
}

// Breakdown is a monthly CO2e estimate in kilograms, total plus the four
// contributing categories. Total is always the sum of the categories.
type Breakdown struct {
	Total  float64 `json:"total"`
	Energy float64 `json:"energy"`
	Travel float64 `json:"travel"`
	Diet   float64 `json:"diet"`
	Waste  float64 `json:"waste"`
}

// Savings is a monthly currency-savings estimate against the eco-friendly
// benchmark, total plus the three contributing categories.
type Savings struct {
	Total  float64 `json:"total"`
	Energy float64 `json:"energy"`
	Travel float64 `json:"travel"`
	Diet   float64 `json:"diet"`
}
