package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/ecotrack/internal/models"
)

func setupStores(t *testing.T) map[string]Provider {
	tempDir := t.TempDir()

	stores := map[string]Provider{
		"json":   NewJSONStore(filepath.Join(tempDir, "ecotrack.json")),
		"sqlite": NewSQLiteStore(filepath.Join(tempDir, "ecotrack.db")),
	}

	for name, store := range stores {
		if err := store.Init(); err != nil {
			t.Fatalf("failed to initialize %s store: %v", name, err)
		}
		t.Cleanup(func() { store.Close() })
	}

	return stores
}

func sampleEntry(id string) models.Entry {
	return models.Entry{
		ID:  id,
		Day: "2024-01-05",
		Inputs: models.FootprintInputs{
			ElectricityKWh: 250,
			CarKmMonth:     500,
			FlightKmYear:   1000,
			Diet:           models.DietVegetarian,
			Recycles:       true,
		},
		CO2e: models.Breakdown{
			Total: 313.5, Energy: 100, Travel: 97.5, Diet: 108, Waste: 8,
		},
		Savings: models.Savings{
			Total: 5900, Energy: 1200, Travel: 3200, Diet: 1500,
		},
		CreatedAt: time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC),
	}
}

func TestInit_SetsDefaultSettings(t *testing.T) {
	for name, store := range setupStores(t) {
		settings, err := store.GetSettings()
		if err != nil {
			t.Fatalf("%s: failed to get settings: %v", name, err)
		}
		if settings.Currency != "INR" {
			t.Errorf("%s: currency = %q, want INR", name, settings.Currency)
		}
		if settings.MealsPerMonth != 90 {
			t.Errorf("%s: meals per month = %d, want 90", name, settings.MealsPerMonth)
		}
	}
}

func TestInit_FailsIfAlreadyInitialized(t *testing.T) {
	tempDir := t.TempDir()
	store := NewJSONStore(filepath.Join(tempDir, "ecotrack.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("expected second init to fail")
	}
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	for name, store := range setupStores(t) {
		want := Settings{Currency: "EUR", MealsPerMonth: 60}
		if err := store.SaveSettings(want); err != nil {
			t.Fatalf("%s: failed to save settings: %v", name, err)
		}

		got, err := store.GetSettings()
		if err != nil {
			t.Fatalf("%s: failed to get settings: %v", name, err)
		}
		if got != want {
			t.Errorf("%s: settings = %+v, want %+v", name, got, want)
		}
	}
}

func TestEntryLifecycle(t *testing.T) {
	for name, store := range setupStores(t) {
		entry := sampleEntry("entry-1")
		if err := store.AddEntry(entry); err != nil {
			t.Fatalf("%s: failed to add entry: %v", name, err)
		}

		got, err := store.GetEntry("entry-1")
		if err != nil {
			t.Fatalf("%s: failed to get entry: %v", name, err)
		}
		if got.Inputs != entry.Inputs {
			t.Errorf("%s: inputs = %+v, want %+v", name, got.Inputs, entry.Inputs)
		}
		if got.CO2e != entry.CO2e {
			t.Errorf("%s: co2e = %+v, want %+v", name, got.CO2e, entry.CO2e)
		}
		if got.Savings != entry.Savings {
			t.Errorf("%s: savings = %+v, want %+v", name, got.Savings, entry.Savings)
		}

		if err := store.DeleteEntry("entry-1"); err != nil {
			t.Fatalf("%s: failed to delete entry: %v", name, err)
		}
		if _, err := store.GetEntry("entry-1"); err == nil {
			t.Errorf("%s: expected an error getting a deleted entry", name)
		}
	}
}

func TestGetAllEntries_NewestFirst(t *testing.T) {
	for name, store := range setupStores(t) {
		older := sampleEntry("entry-old")
		older.Day = "2024-01-01"
		newer := sampleEntry("entry-new")
		newer.Day = "2024-01-10"

		for _, e := range []models.Entry{older, newer} {
			if err := store.AddEntry(e); err != nil {
				t.Fatalf("%s: failed to add entry: %v", name, err)
			}
		}

		entries, err := store.GetAllEntries()
		if err != nil {
			t.Fatalf("%s: failed to list entries: %v", name, err)
		}
		if len(entries) != 2 {
			t.Fatalf("%s: got %d entries, want 2", name, len(entries))
		}
		if entries[0].ID != "entry-new" {
			t.Errorf("%s: first entry = %s, want entry-new", name, entries[0].ID)
		}
	}
}

func TestDeleteEntry_MissingEntryFails(t *testing.T) {
	for name, store := range setupStores(t) {
		if err := store.DeleteEntry("nope"); err == nil {
			t.Errorf("%s: expected an error deleting a missing entry", name)
		}
	}
}

func TestJSONStore_LoadMissingFileFails(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "ecotrack.json"))
	if err := store.Load(); err == nil {
		t.Error("expected load of an uninitialized store to fail")
	}
}
