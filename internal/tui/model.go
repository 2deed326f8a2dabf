package tui

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/ecotrack/internal/facts"
	"github.com/julianstephens/ecotrack/internal/footprint"
	"github.com/julianstephens/ecotrack/internal/models"
	"github.com/julianstephens/ecotrack/internal/storage"
	"github.com/julianstephens/ecotrack/internal/streak"
	"github.com/julianstephens/ecotrack/internal/streaklog"
)

type SessionState int

const (
	StateCalculator SessionState = iota
	StateStreak
	StateFacts
)

const numTabs = 3

type Model struct {
	store storage.Provider
	log   *streaklog.Log
	state SessionState
	keys  KeyMap
	help  help.Model

	form      *huh.Form
	formModel *FootprintFormModel

	// Last computed result; nil until the form has been submitted once
	breakdown *models.Breakdown
	savings   *models.Savings
	currency  string
	meals     float64
	statusMsg string

	streakState streak.State
	loggedToday bool

	fact string

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, log *streaklog.Log) Model {
	currency := "INR"
	meals := float64(footprint.DefaultMealsPerMonth)
	if settings, err := store.GetSettings(); err == nil {
		currency = settings.Currency
		if settings.MealsPerMonth > 0 {
			meals = float64(settings.MealsPerMonth)
		}
	}

	fm := NewFootprintFormModel()

	m := Model{
		store:     store,
		log:       log,
		state:     StateCalculator,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		form:      NewFootprintForm(fm),
		formModel: fm,
		currency:  currency,
		meals:     meals,
		fact:      facts.Random(),
	}
	m.refreshStreak()

	return m
}

func (m Model) ShortHelp() []key.Binding {
	bindings := []key.Binding{m.keys.Tab}
	switch m.state {
	case StateCalculator:
		if m.breakdown != nil {
			bindings = append(bindings, m.keys.Save, m.keys.Edit)
		}
	case StateStreak:
		bindings = append(bindings, m.keys.Log)
	case StateFacts:
		bindings = append(bindings, m.keys.NextFact)
	}
	return append(bindings, m.keys.Quit)
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab},
		{m.keys.Log, m.keys.NextFact},
		{m.keys.Save, m.keys.Edit, m.keys.Quit},
	}
}

func (m *Model) refreshStreak() {
	dates := m.log.Load()
	m.streakState = streak.Compute(dates, time.Now())
	m.loggedToday = slices.Contains(dates, time.Now().Format("2006-01-02"))
}
