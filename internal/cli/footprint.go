package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/julianstephens/ecotrack/internal/footprint"
	"github.com/julianstephens/ecotrack/internal/models"
	"github.com/julianstephens/ecotrack/internal/render"
)

type FootprintCmd struct {
	Kwh      float64 `short:"k" help:"Monthly electricity consumption (kWh)." required:""`
	CarKm    float64 `short:"c" help:"Monthly car travel (km)." default:"0"`
	FlightKm float64 `short:"f" help:"Annual flight distance (km)." default:"0"`
	Diet     string  `short:"d" help:"Primary diet type (omnivorous|vegetarian|vegan|other)." default:"omnivorous"`
	Recycle  bool    `short:"r" help:"Household recycles actively."`
	Meals    int     `short:"m" help:"Meals per month (0 uses the configured default)." default:"0"`
	Save     bool    `short:"s" help:"Save the computed entry to storage."`
	JSON     bool    `help:"Output as JSON."`
}

func (c *FootprintCmd) Validate() error {
	// The calculator itself accepts anything; reject obviously bad figures
	// at the command boundary instead.
	if c.Kwh < 0 || c.CarKm < 0 || c.FlightKm < 0 {
		return fmt.Errorf("consumption and distance figures must be non-negative")
	}
	if c.Meals < 0 {
		return fmt.Errorf("meals per month must be non-negative")
	}
	return nil
}

func (c *FootprintCmd) Run(ctx *Context) error {
	in := models.FootprintInputs{
		ElectricityKWh: c.Kwh,
		CarKmMonth:     c.CarKm,
		FlightKmYear:   c.FlightKm,
		Diet:           models.ParseDiet(c.Diet),
		Recycles:       c.Recycle,
	}

	meals := float64(c.Meals)
	currency := "INR"
	if err := ctx.Store.Load(); err == nil {
		defer ctx.Store.Close()
		if settings, err := ctx.Store.GetSettings(); err == nil {
			currency = settings.Currency
			if meals == 0 {
				meals = float64(settings.MealsPerMonth)
			}
		}
	} else if c.Save {
		// Settings are optional for a plain computation, storage is not
		// when the result should be saved.
		return err
	}
	if meals == 0 {
		meals = footprint.DefaultMealsPerMonth
	}

	breakdown, savings := footprint.Compute(in, meals)

	entry := models.Entry{
		ID:        uuid.New().String(),
		Day:       getCurrentDate(),
		Inputs:    in,
		CO2e:      breakdown,
		Savings:   savings,
		CreatedAt: time.Now(),
	}

	if c.JSON {
		jsonBytes, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(jsonBytes))
	} else {
		fmt.Println(render.Footprint(breakdown))
		fmt.Println(render.Savings(savings, currency))
	}

	if c.Save {
		if err := ctx.Store.AddEntry(entry); err != nil {
			return fmt.Errorf("failed to save entry: %w", err)
		}
		fmt.Printf("Saved entry: %s\n", entry.ID)
	}

	return nil
}
