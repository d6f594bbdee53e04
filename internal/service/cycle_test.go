package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"aqualog/internal/models"
	"aqualog/internal/waterquality"
)

func nitrogenTest(tankID int64, day int, ammonia, nitrite, nitrate float64) models.WaterTest {
	return models.WaterTest{
		ID:      "t" + string(rune('0'+day)),
		TankID:  tankID,
		TakenAt: time.Date(2025, 6, day, 8, 0, 0, 0, time.UTC),
		Ammonia: fptr(ammonia),
		Nitrite: fptr(nitrite),
		Nitrate: fptr(nitrate),
	}
}

func TestCycleStatus_Cycled(t *testing.T) {
	readings := &fakeReadingRepo{tests: []models.WaterTest{
		nitrogenTest(1, 1, 3.0, 1.5, 0),
		nitrogenTest(1, 5, 0, 0, 5),
		nitrogenTest(1, 6, 0, 0, 5),
		nitrogenTest(1, 7, 0, 0, 5),
	}}
	svc := NewCycleService(readings, waterquality.NewCycleAnalyzer(waterquality.NewCatalog()))

	status, err := svc.Status(context.Background(), 1)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !status.IsCycled || status.WindowSize != 3 {
		t.Fatalf("expected cycled over 3 readings, got %+v", status)
	}
}

func TestCycleStatus_NotCycledWithoutNitrate(t *testing.T) {
	readings := &fakeReadingRepo{tests: []models.WaterTest{
		nitrogenTest(1, 5, 0, 0, 5),
		nitrogenTest(1, 6, 0, 0, 5),
		nitrogenTest(1, 7, 0, 0, 0),
	}}
	svc := NewCycleService(readings, waterquality.NewCycleAnalyzer(waterquality.NewCatalog()))

	status, err := svc.Status(context.Background(), 1)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.IsCycled {
		t.Fatalf("no nitrate in newest test, got %+v", status)
	}
}

func TestCycleStatus_RepoErrorPropagates(t *testing.T) {
	readings := &fakeReadingRepo{listErr: errors.New("db down")}
	svc := NewCycleService(readings, waterquality.NewCycleAnalyzer(waterquality.NewCatalog()))

	if _, err := svc.Status(context.Background(), 1); !errors.Is(err, readings.listErr) {
		t.Fatalf("expected repo error, got %v", err)
	}
}
