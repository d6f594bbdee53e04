package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aqualog/internal/models"
	"aqualog/internal/repository"
	"aqualog/internal/waterquality"
)

// Validation errors surfaced to the API layer as bad requests.
var (
	ErrEmptyTankName  = errors.New("tank name is required")
	ErrInvalidVolume  = errors.New("tank volume must be a positive number")
	ErrInvalidRange   = errors.New("invalid range: high must be greater than low")
	ErrNotOverridable = errors.New("parameter has no numeric safe range to override")
)

// TankParams is the creation payload for a tank.
type TankParams struct {
	Name    string   `json:"name"`
	VolumeL *float64 `json:"volume_l,omitempty"`
}

type TankService struct {
	tankRepo  repository.TankRepo
	rangeRepo repository.RangeRepo
	catalog   *waterquality.Catalog
}

func NewTankService(tankRepo repository.TankRepo, rangeRepo repository.RangeRepo, catalog *waterquality.Catalog) *TankService {
	return &TankService{tankRepo: tankRepo, rangeRepo: rangeRepo, catalog: catalog}
}

// Create validates and stores a new tank profile.
func (s *TankService) Create(ctx context.Context, params TankParams) (models.Tank, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return models.Tank{}, ErrEmptyTankName
	}
	if params.VolumeL != nil && *params.VolumeL <= 0 {
		return models.Tank{}, ErrInvalidVolume
	}
	return s.tankRepo.Create(ctx, models.Tank{Name: name, VolumeL: params.VolumeL})
}

func (s *TankService) Get(ctx context.Context, id int64) (models.Tank, error) {
	return s.tankRepo.GetByID(ctx, id)
}

func (s *TankService) List(ctx context.Context) ([]models.Tank, error) {
	return s.tankRepo.List(ctx)
}

func (s *TankService) UpdateVolume(ctx context.Context, id int64, volumeL float64) error {
	if volumeL <= 0 {
		return ErrInvalidVolume
	}
	return s.tankRepo.UpdateVolume(ctx, id, volumeL)
}

// SetRange stores a per-tank safe band override. Invalid configuration is
// rejected here, at the point of ingestion: bounds are never swapped or
// clamped on the caller's behalf, and only continuous catalog parameters
// can be overridden.
func (s *TankService) SetRange(ctx context.Context, o models.SafeRangeOverride) error {
	spec, err := s.catalog.Spec(waterquality.Parameter(o.Parameter))
	if err != nil {
		return err
	}
	if spec.Kind != waterquality.KindContinuous {
		return fmt.Errorf("%w: %s", ErrNotOverridable, o.Parameter)
	}
	if o.High <= o.Low {
		return fmt.Errorf("%w: (%g, %g)", ErrInvalidRange, o.Low, o.High)
	}
	if _, err := s.tankRepo.GetByID(ctx, o.TankID); err != nil {
		return err
	}
	return s.rangeRepo.Set(ctx, o)
}

func (s *TankService) Ranges(ctx context.Context, tankID int64) ([]models.SafeRangeOverride, error) {
	return s.rangeRepo.ListByTank(ctx, tankID)
}

func (s *TankService) DeleteRange(ctx context.Context, tankID int64, parameter string) error {
	if !s.catalog.Known(waterquality.Parameter(parameter)) {
		return fmt.Errorf("%w: %q", waterquality.ErrUnknownParameter, parameter)
	}
	return s.rangeRepo.Delete(ctx, tankID, parameter)
}

// SetCo2Schedule stores the tank's injection window. Wraparound windows
// (on > off) are valid; hours outside the clock are not.
func (s *TankService) SetCo2Schedule(ctx context.Context, tankID int64, schedule waterquality.Co2Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	return s.tankRepo.SetCo2Schedule(ctx, tankID, schedule.OnHour, schedule.OffHour)
}

func (s *TankService) ClearCo2Schedule(ctx context.Context, tankID int64) error {
	return s.tankRepo.ClearCo2Schedule(ctx, tankID)
}
