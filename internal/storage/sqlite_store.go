package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/ecotrack/internal/models"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
	id              TEXT PRIMARY KEY,
	day             TEXT NOT NULL,
	electricity_kwh REAL NOT NULL,
	car_km_month    REAL NOT NULL,
	flight_km_year  REAL NOT NULL,
	diet            TEXT NOT NULL,
	recycles        INTEGER NOT NULL,
	co2e_total      REAL NOT NULL,
	co2e_energy     REAL NOT NULL,
	co2e_travel     REAL NOT NULL,
	co2e_diet       REAL NOT NULL,
	co2e_waste      REAL NOT NULL,
	savings_total   REAL NOT NULL,
	savings_energy  REAL NOT NULL,
	savings_travel  REAL NOT NULL,
	savings_diet    REAL NOT NULL,
	created_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_day ON entries(day);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'ecotrack init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return Settings{}, err
	}
	defer rows.Close()

	settings := Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, err
		}
		switch key {
		case "currency":
			settings.Currency = value
		case "meals_per_month":
			if _, err := fmt.Sscanf(value, "%d", &settings.MealsPerMonth); err != nil {
				return Settings{}, fmt.Errorf("parsing meals_per_month: %w", err)
			}
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return Settings{}, err
	}

	if count == 0 {
		return Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("currency", settings.Currency); err != nil {
		return err
	}
	if _, err := stmt.Exec("meals_per_month", fmt.Sprintf("%d", settings.MealsPerMonth)); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddEntry(entry models.Entry) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO entries (
			id, day, electricity_kwh, car_km_month, flight_km_year, diet, recycles,
			co2e_total, co2e_energy, co2e_travel, co2e_diet, co2e_waste,
			savings_total, savings_energy, savings_travel, savings_diet, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Day,
		entry.Inputs.ElectricityKWh, entry.Inputs.CarKmMonth, entry.Inputs.FlightKmYear,
		string(entry.Inputs.Diet), boolToInt(entry.Inputs.Recycles),
		entry.CO2e.Total, entry.CO2e.Energy, entry.CO2e.Travel, entry.CO2e.Diet, entry.CO2e.Waste,
		entry.Savings.Total, entry.Savings.Energy, entry.Savings.Travel, entry.Savings.Diet,
		entry.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetEntry(id string) (models.Entry, error) {
	row := s.db.QueryRow(`
		SELECT id, day, electricity_kwh, car_km_month, flight_km_year, diet, recycles,
		       co2e_total, co2e_energy, co2e_travel, co2e_diet, co2e_waste,
		       savings_total, savings_energy, savings_travel, savings_diet, created_at
		FROM entries WHERE id = ?`, id)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return models.Entry{}, fmt.Errorf("entry not found: %s", id)
	}
	return entry, err
}

func (s *SQLiteStore) GetAllEntries() ([]models.Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, day, electricity_kwh, car_km_month, flight_km_year, diet, recycles,
		       co2e_total, co2e_energy, co2e_travel, co2e_diet, co2e_waste,
		       savings_total, savings_energy, savings_travel, savings_diet, created_at
		FROM entries ORDER BY day DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (s *SQLiteStore) DeleteEntry(id string) error {
	res, err := s.db.Exec("DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("entry not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var entry models.Entry
	var diet string
	var recycles int
	var createdAt string

	err := row.Scan(
		&entry.ID, &entry.Day,
		&entry.Inputs.ElectricityKWh, &entry.Inputs.CarKmMonth, &entry.Inputs.FlightKmYear,
		&diet, &recycles,
		&entry.CO2e.Total, &entry.CO2e.Energy, &entry.CO2e.Travel, &entry.CO2e.Diet, &entry.CO2e.Waste,
		&entry.Savings.Total, &entry.Savings.Energy, &entry.Savings.Travel, &entry.Savings.Diet,
		&createdAt,
	)
	if err != nil {
		return models.Entry{}, err
	}

	entry.Inputs.Diet = models.Diet(diet)
	entry.Inputs.Recycles = recycles != 0
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		entry.CreatedAt = t
	}

	return entry, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
