package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/ecotrack/internal/models"
)

type FootprintFormModel struct {
	Kwh      string
	CarKm    string
	FlightKm string
	Diet     models.Diet
	Recycle  bool
}

func NewFootprintFormModel() *FootprintFormModel {
	return &FootprintFormModel{
		Kwh:      "250",
		CarKm:    "500",
		FlightKm: "1000",
		Diet:     models.DietOmnivorous,
	}
}

// Inputs converts the form strings into calculator inputs. Call only after
// the form validated them.
func (fm *FootprintFormModel) Inputs() models.FootprintInputs {
	kwh, _ := strconv.ParseFloat(fm.Kwh, 64)
	carKm, _ := strconv.ParseFloat(fm.CarKm, 64)
	flightKm, _ := strconv.ParseFloat(fm.FlightKm, 64)
	return models.FootprintInputs{
		ElectricityKWh: kwh,
		CarKmMonth:     carKm,
		FlightKmYear:   flightKm,
		Diet:           fm.Diet,
		Recycles:       fm.Recycle,
	}
}

func validateAmount(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if f < 0 {
		return fmt.Errorf("must be non-negative")
	}
	return nil
}

// NewFootprintForm creates the calculator input form.
func NewFootprintForm(fm *FootprintFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly Electricity (kWh)").
				Value(&fm.Kwh).
				Validate(validateAmount),
			huh.NewInput().
				Title("Monthly Car Travel (km)").
				Value(&fm.CarKm).
				Validate(validateAmount),
			huh.NewInput().
				Title("Annual Flights (km)").
				Value(&fm.FlightKm).
				Validate(validateAmount),
			huh.NewSelect[models.Diet]().
				Title("Primary Diet Type").
				Options(
					huh.NewOption("Omnivorous", models.DietOmnivorous),
					huh.NewOption("Vegetarian", models.DietVegetarian),
					huh.NewOption("Vegan", models.DietVegan),
					huh.NewOption("Other", models.DietOther),
				).
				Value(&fm.Diet),
			huh.NewConfirm().
				Title("Do you recycle actively?").
				Value(&fm.Recycle),
		),
	).WithTheme(huh.ThemeDracula())
}
