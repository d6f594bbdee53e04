package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"aqualog/internal/models"
)

// ErrTankNotFound marks lookups for a tank id that does not exist.
var ErrTankNotFound = errors.New("tank not found")

type TankSQLite struct {
	db *sql.DB
}

func NewTankSQLite(db *sql.DB) *TankSQLite { return &TankSQLite{db: db} }

var _ TankRepo = (*TankSQLite)(nil)

const (
	insertTankSQL = `
		INSERT INTO tanks (name, volume_l, co2_on_hour, co2_off_hour, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	selectTankSQL = `
		SELECT id, name, volume_l, co2_on_hour, co2_off_hour, created_at
		FROM tanks WHERE id = ?
	`

	listTanksSQL = `
		SELECT id, name, volume_l, co2_on_hour, co2_off_hour, created_at
		FROM tanks ORDER BY id
	`

	updateTankVolumeSQL = `UPDATE tanks SET volume_l = ? WHERE id = ?`

	setTankScheduleSQL = `UPDATE tanks SET co2_on_hour = ?, co2_off_hour = ? WHERE id = ?`

	clearTankScheduleSQL = `UPDATE tanks SET co2_on_hour = NULL, co2_off_hour = NULL WHERE id = ?`
)

// Create inserts a tank and returns it with the generated id.
func (r *TankSQLite) Create(ctx context.Context, t models.Tank) (models.Tank, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	} else {
		t.CreatedAt = t.CreatedAt.UTC()
	}

	res, err := r.db.ExecContext(ctx, insertTankSQL,
		t.Name, t.VolumeL, t.CO2OnHour, t.CO2OffHour, t.CreatedAt)
	if err != nil {
		return models.Tank{}, fmt.Errorf("insert tank %q: %w", t.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Tank{}, fmt.Errorf("get tank id for %q: %w", t.Name, err)
	}
	t.ID = id
	return t, nil
}

// GetByID fetches one tank or ErrTankNotFound.
func (r *TankSQLite) GetByID(ctx context.Context, id int64) (models.Tank, error) {
	t, err := scanTank(r.db.QueryRowContext(ctx, selectTankSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tank{}, fmt.Errorf("%w: id %d", ErrTankNotFound, id)
		}
		return models.Tank{}, fmt.Errorf("select tank %d: %w", id, err)
	}
	return t, nil
}

// List returns all tanks ordered by id.
func (r *TankSQLite) List(ctx context.Context) ([]models.Tank, error) {
	rows, err := r.db.QueryContext(ctx, listTanksSQL)
	if err != nil {
		return nil, fmt.Errorf("list tanks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Tank
	for rows.Next() {
		t, err := scanTank(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tank: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateVolume sets a tank's water volume in litres.
func (r *TankSQLite) UpdateVolume(ctx context.Context, id int64, volumeL float64) error {
	return r.exec(ctx, updateTankVolumeSQL, id, volumeL, id)
}

// SetCo2Schedule stores the tank's own injection window. Hour validation
// happens in the service; the schema CHECK is the last line of defense.
func (r *TankSQLite) SetCo2Schedule(ctx context.Context, id int64, onHour, offHour int) error {
	return r.exec(ctx, setTankScheduleSQL, id, onHour, offHour, id)
}

// ClearCo2Schedule removes the tank override so the global window applies.
func (r *TankSQLite) ClearCo2Schedule(ctx context.Context, id int64) error {
	return r.exec(ctx, clearTankScheduleSQL, id, id)
}

// exec runs an UPDATE that must touch exactly one tank row.
func (r *TankSQLite) exec(ctx context.Context, query string, id int64, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update tank %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for tank %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrTankNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTank(row rowScanner) (models.Tank, error) {
	var (
		t       models.Tank
		volume  sql.NullFloat64
		onHour  sql.NullInt64
		offHour sql.NullInt64
	)
	if err := row.Scan(&t.ID, &t.Name, &volume, &onHour, &offHour, &t.CreatedAt); err != nil {
		return models.Tank{}, err
	}
	if volume.Valid {
		v := volume.Float64
		t.VolumeL = &v
	}
	if onHour.Valid {
		h := int(onHour.Int64)
		t.CO2OnHour = &h
	}
	if offHour.Valid {
		h := int(offHour.Int64)
		t.CO2OffHour = &h
	}
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}
