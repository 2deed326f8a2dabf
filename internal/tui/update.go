package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/ecotrack/internal/facts"
	"github.com/julianstephens/ecotrack/internal/footprint"
	"github.com/julianstephens/ecotrack/internal/models"
)

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		// While the calculator form is focused it owns the keyboard
		if m.state == StateCalculator && m.formActive() {
			return m.updateForm(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % numTabs
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + numTabs) % numTabs
		case key.Matches(msg, m.keys.Log):
			if m.state == StateStreak {
				return m.logToday()
			}
		case key.Matches(msg, m.keys.NextFact):
			if m.state == StateFacts {
				m.fact = facts.Next(m.fact)
			}
		case key.Matches(msg, m.keys.Save):
			if m.state == StateCalculator && m.breakdown != nil {
				return m.saveEntry()
			}
		case key.Matches(msg, m.keys.Edit):
			if m.state == StateCalculator && m.breakdown != nil {
				m.form = NewFootprintForm(m.formModel)
				m.breakdown = nil
				m.savings = nil
				m.statusMsg = ""
				return m, m.form.Init()
			}
		}
		return m, nil
	}

	if m.state == StateCalculator && m.formActive() {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) formActive() bool {
	return m.form != nil && m.breakdown == nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		breakdown, savings := footprint.Compute(m.formModel.Inputs(), m.meals)
		m.breakdown = &breakdown
		m.savings = &savings
		m.statusMsg = ""
	}
	if m.form.State == huh.StateAborted {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m Model) logToday() (tea.Model, tea.Cmd) {
	today := time.Now().Format("2006-01-02")
	if err := m.log.Append(today); err != nil {
		m.statusMsg = fmt.Sprintf("failed to log: %v", err)
		return m, nil
	}
	m.refreshStreak()
	return m, nil
}

func (m Model) saveEntry() (tea.Model, tea.Cmd) {
	entry := models.Entry{
		ID:        uuid.New().String(),
		Day:       time.Now().Format("2006-01-02"),
		Inputs:    m.formModel.Inputs(),
		CO2e:      *m.breakdown,
		Savings:   *m.savings,
		CreatedAt: time.Now(),
	}

	if err := m.store.AddEntry(entry); err != nil {
		m.statusMsg = fmt.Sprintf("failed to save: %v", err)
		return m, nil
	}

	m.statusMsg = "Saved ✓"
	return m, nil
}
