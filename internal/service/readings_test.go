package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"aqualog/internal/models"
	"aqualog/internal/repository"
	"aqualog/internal/waterquality"
)

func newReadingService(tanks *fakeTankRepo, readings *fakeReadingRepo) *ReadingService {
	return NewReadingService(tanks, readings, waterquality.NewCatalog())
}

func TestRecord_AssignsIDAndTimestamp(t *testing.T) {
	tanks := newFakeTankRepo(models.Tank{ID: 1, Name: "main"})
	readings := &fakeReadingRepo{}
	svc := newReadingService(tanks, readings)

	t0 := time.Now().UTC()
	saved, err := svc.Record(context.Background(), models.WaterTest{TankID: 1, PH: fptr(7.1)})
	t1 := time.Now().UTC()
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected generated id")
	}
	if saved.TakenAt.Before(t0) || saved.TakenAt.After(t1) {
		t.Fatalf("timestamp %v not within [%v, %v]", saved.TakenAt, t0, t1)
	}
	if len(readings.tests) != 1 {
		t.Fatalf("expected 1 stored test, got %d", len(readings.tests))
	}
}

func TestRecord_UnknownTank(t *testing.T) {
	svc := newReadingService(newFakeTankRepo(), &fakeReadingRepo{})

	_, err := svc.Record(context.Background(), models.WaterTest{TankID: 9, PH: fptr(7)})
	if !errors.Is(err, repository.ErrTankNotFound) {
		t.Fatalf("expected ErrTankNotFound, got %v", err)
	}
}

func TestRecord_RejectsImplausibleValues(t *testing.T) {
	tanks := newFakeTankRepo(models.Tank{ID: 1, Name: "main"})
	svc := newReadingService(tanks, &fakeReadingRepo{})

	// pH 19 is beyond the 0–14 scale: this is a data entry error.
	_, err := svc.Record(context.Background(), models.WaterTest{TankID: 1, PH: fptr(19)})
	if !errors.Is(err, waterquality.ErrImplausibleReading) {
		t.Fatalf("expected ErrImplausibleReading, got %v", err)
	}
}

func TestRecord_RejectsBadIndicator(t *testing.T) {
	tanks := newFakeTankRepo(models.Tank{ID: 1, Name: "main"})
	svc := newReadingService(tanks, &fakeReadingRepo{})

	_, err := svc.Record(context.Background(), models.WaterTest{TankID: 1, CO2Indicator: "Teal"})
	if !errors.Is(err, ErrInvalidIndicator) {
		t.Fatalf("expected ErrInvalidIndicator, got %v", err)
	}
}

func TestRecord_UnsafeButPlausibleValuePasses(t *testing.T) {
	tanks := newFakeTankRepo(models.Tank{ID: 1, Name: "main"})
	svc := newReadingService(tanks, &fakeReadingRepo{})

	// 5 ppm ammonia is dangerous but plausible: ingestion accepts it and
	// evaluation reports it, rather than refusing the record.
	if _, err := svc.Record(context.Background(), models.WaterTest{TankID: 1, Ammonia: fptr(5)}); err != nil {
		t.Fatalf("Record: %v", err)
	}
}

func TestList_RejectsInvertedTimeRange(t *testing.T) {
	tanks := newFakeTankRepo(models.Tank{ID: 1, Name: "main"})
	svc := newReadingService(tanks, &fakeReadingRepo{})

	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.List(context.Background(), 1, from, to); !errors.Is(err, errInvalidTimeRange) {
		t.Fatalf("expected errInvalidTimeRange, got %v", err)
	}
}
