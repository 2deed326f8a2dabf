// Package facts serves the rotating "did you know" tips shown alongside the
// calculator.
package facts

import "math/rand"

var facts = []string{
	"Switching to a plant-based diet can cut your food-related emissions by up to 73%.",
	"Air travel is one of the fastest-growing sources of greenhouse gas emissions.",
	"The average person's annual footprint varies drastically, from 0.5 to over 30 tons of CO2e.",
	"Turning down your thermostat by just 1 degree C can reduce your heating bill (and emissions) by up to 10%.",
	"Globally, food waste accounts for about 8% of all greenhouse gas emissions.",
	"Repairing electronics instead of replacing them saves around 40 kg of CO2 per device.",
	"Choosing public transport or cycling over driving for a 10 km commute saves about 1.7 kg of CO2 daily.",
	"Recycling one aluminum can saves enough energy to run a TV for three hours.",
}

// All returns every known fact.
func All() []string {
	out := make([]string, len(facts))
	copy(out, facts)
	return out
}

// Random returns a random fact.
func Random() string {
	return facts[rand.Intn(len(facts))]
}

// Next returns a random fact different from current, so repeatedly asking
// for the next fact always shows something new.
func Next(current string) string {
	if len(facts) < 2 {
		return Random()
	}
	for {
		if f := Random(); f != current {
			return f
		}
	}
}
