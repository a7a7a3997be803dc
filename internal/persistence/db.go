// Package persistence provides the SQLite season log used by the CLI.
// The engine itself performs no I/O; recording daily snapshots is the
// surrounding application's concern.
package persistence

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/engine"
)

// DB wraps a SQLite connection for season logging.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS days (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		day INTEGER NOT NULL,
		date TEXT NOT NULL,
		crop TEXT NOT NULL,
		stage TEXT NOT NULL,
		dvs REAL NOT NULL,
		biomass_kg REAL NOT NULL,
		storage_kg REAL NOT NULL,
		lai REAL NOT NULL,
		height_cm REAL NOT NULL,
		health REAL NOT NULL,
		weed_density REAL NOT NULL,
		moisture_pct REAL NOT NULL,
		nitrogen_kg REAL NOT NULL,
		water_stress REAL NOT NULL,
		nitrogen_stress REAL NOT NULL,
		heat_stress REAL NOT NULL,
		rain_mm REAL NOT NULL,
		tmax_c REAL NOT NULL,
		funds REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		day INTEGER NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_days_run ON days(run_id, day);
	CREATE INDEX IF NOT EXISTS idx_events_run ON events(run_id, day);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// DayRow is one recorded day of a run.
type DayRow struct {
	RunID          string  `db:"run_id"`
	Day            int     `db:"day"`
	Date           string  `db:"date"`
	Crop           string  `db:"crop"`
	Stage          string  `db:"stage"`
	DVS            float64 `db:"dvs"`
	BiomassKg      float64 `db:"biomass_kg"`
	StorageKg      float64 `db:"storage_kg"`
	LAI            float64 `db:"lai"`
	HeightCM       float64 `db:"height_cm"`
	Health         float64 `db:"health"`
	WeedDensity    float64 `db:"weed_density"`
	MoisturePct    float64 `db:"moisture_pct"`
	NitrogenKg     float64 `db:"nitrogen_kg"`
	WaterStress    float64 `db:"water_stress"`
	NitrogenStress float64 `db:"nitrogen_stress"`
	HeatStress     float64 `db:"heat_stress"`
	RainMM         float64 `db:"rain_mm"`
	TmaxC          float64 `db:"tmax_c"`
	Funds          float64 `db:"funds"`
}

// RecordDay appends one daily snapshot to the log.
func (db *DB) RecordDay(runID string, s engine.SimulationState) error {
	row := DayRow{
		RunID:          runID,
		Day:            s.Day,
		Date:           s.Date.Format("2006-01-02"),
		Crop:           string(s.Crop.Type),
		Stage:          s.Crop.Stage.Name(),
		DVS:            s.Crop.DVS,
		BiomassKg:      s.Crop.BiomassKg,
		StorageKg:      s.Crop.StorageKg,
		LAI:            s.Crop.LAI,
		HeightCM:       s.Crop.HeightCM,
		Health:         s.Crop.Health,
		WeedDensity:    s.Crop.WeedDensity,
		MoisturePct:    s.Soil.MoisturePct,
		NitrogenKg:     s.Soil.NitrogenKg,
		WaterStress:    s.Stress.Water,
		NitrogenStress: s.Stress.Nitrogen,
		HeatStress:     s.Stress.Heat,
		RainMM:         s.Weather.RainMM,
		TmaxC:          s.Weather.TmaxC,
		Funds:          s.Funds,
	}

	_, err := db.conn.NamedExec(`INSERT INTO days
		(run_id, day, date, crop, stage, dvs, biomass_kg, storage_kg, lai,
		 height_cm, health, weed_density, moisture_pct, nitrogen_kg,
		 water_stress, nitrogen_stress, heat_stress, rain_mm, tmax_c, funds)
		VALUES (:run_id, :day, :date, :crop, :stage, :dvs, :biomass_kg,
		 :storage_kg, :lai, :height_cm, :health, :weed_density, :moisture_pct,
		 :nitrogen_kg, :water_stress, :nitrogen_stress, :heat_stress,
		 :rain_mm, :tmax_c, :funds)`, row)
	if err != nil {
		return fmt.Errorf("record day %d: %w", s.Day, err)
	}
	return nil
}

// RecordEvents appends events to the log.
func (db *DB) RecordEvents(runID string, events []engine.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range events {
		_, err := tx.Exec(
			"INSERT INTO events (run_id, day, category, description) VALUES (?, ?, ?, ?)",
			runID, e.Day, e.Category, e.Description,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// RecentDays returns the most recent N recorded days for a run,
// newest first.
func (db *DB) RecentDays(runID string, limit int) ([]DayRow, error) {
	var rows []DayRow
	err := db.conn.Select(&rows,
		"SELECT run_id, day, date, crop, stage, dvs, biomass_kg, storage_kg, lai, height_cm, health, weed_density, moisture_pct, nitrogen_kg, water_stress, nitrogen_stress, heat_stress, rain_mm, tmax_c, funds FROM days WHERE run_id = ? ORDER BY id DESC LIMIT ?",
		runID, limit,
	)
	if err != nil {
		return nil, err
	}
	slog.Debug("season log queried", "run_id", runID, "rows", len(rows))
	return rows, nil
}
