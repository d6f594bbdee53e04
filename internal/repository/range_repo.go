package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"aqualog/internal/models"
)

type RangeSQLite struct {
	db *sql.DB
}

func NewRangeSQLite(db *sql.DB) *RangeSQLite { return &RangeSQLite{db: db} }

var _ RangeRepo = (*RangeSQLite)(nil)

const (
	selectRangeSQL = `
		SELECT tank_id, parameter, safe_low, safe_high
		FROM custom_ranges WHERE tank_id = ? AND parameter = ?
	`

	listRangesSQL = `
		SELECT tank_id, parameter, safe_low, safe_high
		FROM custom_ranges WHERE tank_id = ? ORDER BY parameter
	`

	upsertRangeSQL = `
		INSERT INTO custom_ranges (tank_id, parameter, safe_low, safe_high)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(tank_id, parameter) DO UPDATE SET
			safe_low=excluded.safe_low,
			safe_high=excluded.safe_high
	`

	deleteRangeSQL = `DELETE FROM custom_ranges WHERE tank_id = ? AND parameter = ?`
)

// Get fetches one override. Returns (nil, nil) when the tank defines none
// for the parameter; lookup failures are returned, never mapped to absence.
func (r *RangeSQLite) Get(ctx context.Context, tankID int64, parameter string) (*models.SafeRangeOverride, error) {
	var o models.SafeRangeOverride
	err := r.db.QueryRowContext(ctx, selectRangeSQL, tankID, parameter).
		Scan(&o.TankID, &o.Parameter, &o.Low, &o.High)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select range %s for tank %d: %w", parameter, tankID, err)
	}
	return &o, nil
}

// ListByTank returns every override a tank defines.
func (r *RangeSQLite) ListByTank(ctx context.Context, tankID int64) ([]models.SafeRangeOverride, error) {
	rows, err := r.db.QueryContext(ctx, listRangesSQL, tankID)
	if err != nil {
		return nil, fmt.Errorf("list ranges for tank %d: %w", tankID, err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.SafeRangeOverride
	for rows.Next() {
		var o models.SafeRangeOverride
		if err := rows.Scan(&o.TankID, &o.Parameter, &o.Low, &o.High); err != nil {
			return nil, fmt.Errorf("scan range: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Set inserts or updates an override. The schema CHECK rejects high <= low;
// the store never swaps or clamps bad bounds on the caller's behalf.
func (r *RangeSQLite) Set(ctx context.Context, o models.SafeRangeOverride) error {
	_, err := r.db.ExecContext(ctx, upsertRangeSQL, o.TankID, o.Parameter, o.Low, o.High)
	if err != nil {
		return fmt.Errorf("upsert range %s for tank %d: %w", o.Parameter, o.TankID, err)
	}
	return nil
}

// Delete removes an override so the catalog default applies again.
func (r *RangeSQLite) Delete(ctx context.Context, tankID int64, parameter string) error {
	_, err := r.db.ExecContext(ctx, deleteRangeSQL, tankID, parameter)
	if err != nil {
		return fmt.Errorf("delete range %s for tank %d: %w", parameter, tankID, err)
	}
	return nil
}
