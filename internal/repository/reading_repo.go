package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"aqualog/internal/models"

	"github.com/google/uuid"
)

type ReadingSQLite struct {
	db *sql.DB
}

func NewReadingSQLite(db *sql.DB) *ReadingSQLite { return &ReadingSQLite{db: db} }

var _ ReadingRepo = (*ReadingSQLite)(nil)

const (
	insertWaterTestSQL = `
		INSERT INTO water_tests (id, tank_id, taken_at, ph, ammonia, nitrite, nitrate, temperature, kh, gh, co2_indicator, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	waterTestColumns = `id, tank_id, taken_at, ph, ammonia, nitrite, nitrate, temperature, kh, gh, co2_indicator, notes`
)

// Append inserts a new water test. If ID or TakenAt are empty, they're set.
func (r *ReadingSQLite) Append(ctx context.Context, wt models.WaterTest) error {
	if wt.ID == "" {
		wt.ID = uuid.NewString()
	}
	if wt.TakenAt.IsZero() {
		wt.TakenAt = time.Now().UTC()
	} else {
		wt.TakenAt = wt.TakenAt.UTC()
	}

	var indicator *string
	if wt.CO2Indicator != "" {
		s := wt.CO2Indicator
		indicator = &s
	}

	_, err := r.db.ExecContext(ctx, insertWaterTestSQL,
		wt.ID,
		wt.TankID,
		wt.TakenAt.Format("2006-01-02 15:04:05"),
		wt.PH, wt.Ammonia, wt.Nitrite, wt.Nitrate, wt.Temperature, wt.KH, wt.GH,
		indicator,
		wt.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert water test for tank %d: %w", wt.TankID, err)
	}
	return nil
}

// ListByTank returns tests in [from, to] (inclusive, zero times unbounded),
// ordered oldest to newest as the cycle analyzer expects.
func (r *ReadingSQLite) ListByTank(ctx context.Context, tankID int64, from, to time.Time) ([]models.WaterTest, error) {
	conds := []string{"tank_id = ?"}
	args := []any{tankID}

	if !from.IsZero() {
		conds = append(conds, "taken_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "taken_at <= ?")
		args = append(args, to.UTC())
	}

	query := `SELECT ` + waterTestColumns + ` FROM water_tests WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY taken_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list water tests for tank %d: %w", tankID, err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.WaterTest
	for rows.Next() {
		wt, err := scanWaterTest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan water test: %w", err)
		}
		out = append(out, wt)
	}
	return out, rows.Err()
}

// Latest returns the newest test for a tank, or a zero-value record (empty
// ID) when the tank has no history yet.
func (r *ReadingSQLite) Latest(ctx context.Context, tankID int64) (models.WaterTest, error) {
	query := `SELECT ` + waterTestColumns + ` FROM water_tests WHERE tank_id = ? ORDER BY taken_at DESC LIMIT 1`
	wt, err := scanWaterTest(r.db.QueryRowContext(ctx, query, tankID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.WaterTest{}, nil
		}
		return models.WaterTest{}, fmt.Errorf("latest water test for tank %d: %w", tankID, err)
	}
	return wt, nil
}

func scanWaterTest(row rowScanner) (models.WaterTest, error) {
	var (
		wt        models.WaterTest
		indicator sql.NullString
		notes     sql.NullString
	)
	if err := row.Scan(
		&wt.ID,
		&wt.TankID,
		&wt.TakenAt,
		&wt.PH, &wt.Ammonia, &wt.Nitrite, &wt.Nitrate, &wt.Temperature, &wt.KH, &wt.GH,
		&indicator,
		&notes,
	); err != nil {
		return models.WaterTest{}, err
	}
	wt.CO2Indicator = indicator.String
	wt.Notes = notes.String
	wt.TakenAt = wt.TakenAt.UTC()
	return wt, nil
}
