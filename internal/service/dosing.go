package service

import (
	"context"
	"errors"
	"fmt"

	"aqualog/internal/repository"
	"aqualog/internal/waterquality"
)

// ErrVolumeRequired marks a dosing request for a tank without a recorded
// volume. Missing volume is a reportable condition, not a crash: the
// dashboard renders "cannot compute dose".
var ErrVolumeRequired = errors.New("tank volume is required for dosing")

type DosingService struct {
	tankRepo repository.TankRepo
}

func NewDosingService(tankRepo repository.TankRepo) *DosingService {
	return &DosingService{tankRepo: tankRepo}
}

// Recommend quantifies a remediation dose for the tank, scaled to its
// recorded volume.
func (s *DosingService) Recommend(ctx context.Context, tankID int64, req waterquality.DoseRequest) (waterquality.DoseRecommendation, error) {
	tank, err := s.tankRepo.GetByID(ctx, tankID)
	if err != nil {
		return waterquality.DoseRecommendation{}, err
	}
	if tank.VolumeL == nil || *tank.VolumeL <= 0 {
		return waterquality.DoseRecommendation{}, fmt.Errorf("%w: tank %d", ErrVolumeRequired, tankID)
	}
	return waterquality.RecommendDose(req, *tank.VolumeL)
}

// WaterChangePercent passes through to the core's dilution helper.
func (s *DosingService) WaterChangePercent(current, target float64) float64 {
	return waterquality.WaterChangePercent(current, target)
}

// TankVolume passes through to the core's volume helper.
func (s *DosingService) TankVolume(length, width, height float64, unit waterquality.DimensionUnit) (float64, float64, error) {
	return waterquality.TankVolume(length, width, height, unit)
}
