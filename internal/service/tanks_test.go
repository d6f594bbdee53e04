package service

import (
	"context"
	"errors"
	"testing"

	"aqualog/internal/models"
	"aqualog/internal/waterquality"
)

func newTankService(tanks *fakeTankRepo, ranges *fakeRangeRepo) *TankService {
	return NewTankService(tanks, ranges, waterquality.NewCatalog())
}

func TestTankCreate_Validation(t *testing.T) {
	svc := newTankService(newFakeTankRepo(), newFakeRangeRepo())

	if _, err := svc.Create(context.Background(), TankParams{Name: "   "}); !errors.Is(err, ErrEmptyTankName) {
		t.Fatalf("expected ErrEmptyTankName, got %v", err)
	}
	if _, err := svc.Create(context.Background(), TankParams{Name: "x", VolumeL: fptr(-3)}); !errors.Is(err, ErrInvalidVolume) {
		t.Fatalf("expected ErrInvalidVolume, got %v", err)
	}

	created, err := svc.Create(context.Background(), TankParams{Name: " Planted 60 ", VolumeL: fptr(60)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Name != "Planted 60" {
		t.Fatalf("name should be trimmed, got %q", created.Name)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestSetRange_RejectsInvalidConfiguration(t *testing.T) {
	tanks := newFakeTankRepo(models.Tank{ID: 1, Name: "main"})
	ranges := newFakeRangeRepo()
	svc := newTankService(tanks, ranges)

	// high <= low is a configuration error; bounds are never repaired.
	err := svc.SetRange(context.Background(), models.SafeRangeOverride{TankID: 1, Parameter: "ph", Low: 8, High: 6})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if len(ranges.overrides) != 0 {
		t.Fatalf("invalid range must not be stored")
	}

	err = svc.SetRange(context.Background(), models.SafeRangeOverride{TankID: 1, Parameter: "phosphate", Low: 0, High: 1})
	if !errors.Is(err, waterquality.ErrUnknownParameter) {
		t.Fatalf("expected ErrUnknownParameter, got %v", err)
	}

	// The drop checker is categorical; it has no numeric band to override.
	err = svc.SetRange(context.Background(), models.SafeRangeOverride{TankID: 1, Parameter: "co2_indicator", Low: 0, High: 1})
	if !errors.Is(err, ErrNotOverridable) {
		t.Fatalf("expected ErrNotOverridable, got %v", err)
	}
}

func TestSetRange_StoresWellFormedOverride(t *testing.T) {
	tanks := newFakeTankRepo(models.Tank{ID: 1, Name: "main"})
	ranges := newFakeRangeRepo()
	svc := newTankService(tanks, ranges)

	o := models.SafeRangeOverride{TankID: 1, Parameter: "nitrate", Low: 5, High: 15}
	if err := svc.SetRange(context.Background(), o); err != nil {
		t.Fatalf("SetRange: %v", err)
	}
	stored, err := ranges.Get(context.Background(), 1, "nitrate")
	if err != nil || stored == nil || *stored != o {
		t.Fatalf("override not stored: %+v %v", stored, err)
	}
}

func TestSetCo2Schedule_Validation(t *testing.T) {
	tanks := newFakeTankRepo(models.Tank{ID: 1, Name: "main"})
	svc := newTankService(tanks, newFakeRangeRepo())

	err := svc.SetCo2Schedule(context.Background(), 1, waterquality.Co2Schedule{OnHour: 25, OffHour: 6})
	if !errors.Is(err, waterquality.ErrInvalidScheduleHour) {
		t.Fatalf("expected ErrInvalidScheduleHour, got %v", err)
	}

	// Wraparound windows are valid configuration.
	if err := svc.SetCo2Schedule(context.Background(), 1, waterquality.Co2Schedule{OnHour: 22, OffHour: 6}); err != nil {
		t.Fatalf("SetCo2Schedule: %v", err)
	}
	if len(tanks.scheduleSet) != 2 || tanks.scheduleSet[0] != 22 || tanks.scheduleSet[1] != 6 {
		t.Fatalf("schedule not stored: %v", tanks.scheduleSet)
	}
}
