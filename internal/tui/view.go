package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ecotrack/internal/render"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateCalculator:
		content = m.viewCalculator()
	case StateStreak:
		content = m.viewStreak()
	case StateFacts:
		content = m.viewFacts()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Calculator", "Streak", "Facts"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewCalculator() string {
	if m.formActive() {
		return docStyle.Render(m.form.View())
	}

	result := lipgloss.JoinVertical(
		lipgloss.Left,
		render.Footprint(*m.breakdown),
		render.Savings(*m.savings, m.currency),
	)
	if m.statusMsg != "" {
		result = lipgloss.JoinVertical(lipgloss.Left, result, statusStyle.Render(m.statusMsg))
	}
	return docStyle.Render(result)
}

func (m Model) viewStreak() string {
	view := render.Streak(m.streakState, m.loggedToday)
	if m.statusMsg != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, statusStyle.Render(m.statusMsg))
	}
	return docStyle.Render(view)
}

func (m Model) viewFacts() string {
	return docStyle.Render(factStyle.Render("💡 Did you know?\n\n" + m.fact))
}
