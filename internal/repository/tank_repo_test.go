package repository

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"aqualog/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestTankCreate_AssignsID(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewTankSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO tanks`)).
		WithArgs("Planted 60L", 60.0, nil, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	created, err := repo.Create(ctx(t), models.Tank{Name: "Planted 60L", VolumeL: fptr(60)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected id 7, got %d", created.ID)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt should be set")
	}
}

func TestTankGetByID_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewTankSQLite(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM tanks WHERE id = ?`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "volume_l", "co2_on_hour", "co2_off_hour", "created_at"}))

	if _, err := repo.GetByID(ctx(t), 99); !errors.Is(err, ErrTankNotFound) {
		t.Fatalf("expected ErrTankNotFound, got %v", err)
	}
}

func TestTankGetByID_ScansOptionalColumns(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewTankSQLite(db)

	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM tanks WHERE id = ?`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "volume_l", "co2_on_hour", "co2_off_hour", "created_at"}).
			AddRow(4, "Shrimp tank", nil, 22, 6, created))

	tank, err := repo.GetByID(ctx(t), 4)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if tank.VolumeL != nil {
		t.Fatalf("volume should be nil, got %v", *tank.VolumeL)
	}
	if !tank.HasCo2Schedule() || *tank.CO2OnHour != 22 || *tank.CO2OffHour != 6 {
		t.Fatalf("schedule not scanned: %+v", tank)
	}
}

func TestTankSetCo2Schedule_NoSuchTank(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewTankSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE tanks SET co2_on_hour = ?, co2_off_hour = ?`)).
		WithArgs(9, 17, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.SetCo2Schedule(ctx(t), 42, 9, 17); !errors.Is(err, ErrTankNotFound) {
		t.Fatalf("expected ErrTankNotFound, got %v", err)
	}
}

func TestTankUpdateVolume(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewTankSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE tanks SET volume_l = ?`)).
		WithArgs(120.0, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateVolume(ctx(t), 4, 120); err != nil {
		t.Fatalf("UpdateVolume: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}
