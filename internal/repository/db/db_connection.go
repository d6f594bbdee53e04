package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// Init opens/creates the SQLite DB file and ensures tables exist.
func Init(path string) (*sql.DB, error) {
	sqlDB, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Conservative pool settings: SQLite is not great with many writers.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := sqlDB.Exec(pragma); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := ensureSchema(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached.
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return sqlDB, nil
}

const schemaTanks = `
CREATE TABLE IF NOT EXISTS tanks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    volume_l REAL,
    co2_on_hour INTEGER CHECK (co2_on_hour BETWEEN 0 AND 23),
    co2_off_hour INTEGER CHECK (co2_off_hour BETWEEN 0 AND 23),
    created_at TIMESTAMP NOT NULL
);
`

const schemaWaterTests = `
CREATE TABLE IF NOT EXISTS water_tests (
    id TEXT PRIMARY KEY,
    tank_id INTEGER NOT NULL REFERENCES tanks(id),
    taken_at TIMESTAMP NOT NULL,
    ph REAL,
    ammonia REAL,
    nitrite REAL,
    nitrate REAL,
    temperature REAL,
    kh REAL,
    gh REAL,
    co2_indicator TEXT,
    notes TEXT
);
`

const schemaWaterTestsIndex = `
CREATE INDEX IF NOT EXISTS idx_water_tests_tank_time
    ON water_tests (tank_id, taken_at);
`

const schemaCustomRanges = `
CREATE TABLE IF NOT EXISTS custom_ranges (
    tank_id INTEGER NOT NULL REFERENCES tanks(id),
    parameter TEXT NOT NULL,
    safe_low REAL NOT NULL,
    safe_high REAL NOT NULL,
    PRIMARY KEY (tank_id, parameter),
    CHECK (safe_high > safe_low)
);
`

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

func ensureSchema(sqlDB *sql.DB) error {
	tx, err := sqlDB.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// In case of panic, rollback to avoid leaving an open transaction.
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaTanks,
		schemaWaterTests,
		schemaWaterTestsIndex,
		schemaCustomRanges,
		schemaUsers,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
