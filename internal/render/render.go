// Package render formats footprint, savings, and streak figures for
// terminal output. The same renderers back the CLI commands and the TUI.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ecotrack/internal/models"
	"github.com/julianstephens/ecotrack/internal/streak"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(10)

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(0, 2)
)

// Footprint renders a CO2e breakdown.
func Footprint(b models.Breakdown) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Monthly Carbon Footprint"))
	sb.WriteString("\n\n")
	for _, row := range []struct {
		label string
		kg    float64
	}{
		{"Energy", b.Energy},
		{"Travel", b.Travel},
		{"Diet", b.Diet},
		{"Waste", b.Waste},
	} {
		sb.WriteString(fmt.Sprintf("%s %8.1f kg CO2e\n", labelStyle.Render(row.label), row.kg))
	}
	sb.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Total"), totalStyle.Render(fmt.Sprintf("%8.1f kg CO2e", b.Total))))

	return boxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// Savings renders a savings breakdown in the given currency.
func Savings(s models.Savings, currency string) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Potential Monthly Savings"))
	sb.WriteString("\n\n")
	for _, row := range []struct {
		label  string
		amount float64
	}{
		{"Energy", s.Energy},
		{"Travel", s.Travel},
		{"Diet", s.Diet},
	} {
		sb.WriteString(fmt.Sprintf("%s %10.0f %s\n", labelStyle.Render(row.label), row.amount, currency))
	}
	sb.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Total"), totalStyle.Render(fmt.Sprintf("%10.0f %s", s.Total, currency))))
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render("Compared to the eco-friendly benchmark scenario."))

	return boxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// Streak renders the streak state, noting whether today is already logged.
func Streak(s streak.State, loggedToday bool) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Daily Action Streak"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("%s %d day(s)\n", labelStyle.Render("Current"), s.Current))
	sb.WriteString(fmt.Sprintf("%s %d day(s)\n", labelStyle.Render("Longest"), s.Longest))
	sb.WriteString("\n")
	if loggedToday {
		sb.WriteString(mutedStyle.Render("Logged today ✓"))
	} else {
		sb.WriteString(mutedStyle.Render("Not logged today, run 'ecotrack log'"))
	}

	return boxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}
