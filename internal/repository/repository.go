package repository

import (
	"context"
	"database/sql"
	"time"

	"aqualog/internal/models"
	"aqualog/internal/repository/db"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// TankRepo stores tank profiles and their per-tank configuration.
type TankRepo interface {
	Create(ctx context.Context, t models.Tank) (models.Tank, error)
	GetByID(ctx context.Context, id int64) (models.Tank, error)
	List(ctx context.Context) ([]models.Tank, error)
	UpdateVolume(ctx context.Context, id int64, volumeL float64) error
	SetCo2Schedule(ctx context.Context, id int64, onHour, offHour int) error
	ClearCo2Schedule(ctx context.Context, id int64) error
}

// ReadingRepo is the append-only water test history.
type ReadingRepo interface {
	Append(ctx context.Context, wt models.WaterTest) error
	ListByTank(ctx context.Context, tankID int64, from, to time.Time) ([]models.WaterTest, error)
	Latest(ctx context.Context, tankID int64) (models.WaterTest, error)
}

// RangeRepo stores per-tank safe range overrides.
type RangeRepo interface {
	Get(ctx context.Context, tankID int64, parameter string) (*models.SafeRangeOverride, error)
	ListByTank(ctx context.Context, tankID int64) ([]models.SafeRangeOverride, error)
	Set(ctx context.Context, o models.SafeRangeOverride) error
	Delete(ctx context.Context, tankID int64, parameter string) error
}

type Repository struct {
	Tanks    TankRepo
	Readings ReadingRepo
	Ranges   RangeRepo
	Auth     Authorization
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Tanks:    NewTankSQLite(sqlDB),
		Readings: NewReadingSQLite(sqlDB),
		Ranges:   NewRangeSQLite(sqlDB),
		Auth:     NewUserRepository(sqlDB),
	}
}

// InitDB opens the SQLite file and bootstraps the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.Init(path)
}
