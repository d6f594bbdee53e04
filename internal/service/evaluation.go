package service

import (
	"context"
	"errors"
	"time"

	"aqualog/internal/models"
	"aqualog/internal/repository"
	"aqualog/internal/waterquality"
)

// ErrNoReadings marks an evaluation request for a tank without history.
var ErrNoReadings = errors.New("tank has no recorded water tests")

// EvaluationReport bundles the verdicts for one evaluated water test.
type EvaluationReport struct {
	TankID   int64                 `json:"tank_id"`
	TestID   string                `json:"test_id"`
	TakenAt  time.Time             `json:"taken_at"`
	Verdicts []waterquality.Verdict `json:"verdicts"`
}

type EvaluationService struct {
	tankRepo    repository.TankRepo
	readingRepo repository.ReadingRepo
	rangeRepo   repository.RangeRepo
	evaluator   *waterquality.Evaluator
}

func NewEvaluationService(
	tankRepo repository.TankRepo,
	readingRepo repository.ReadingRepo,
	rangeRepo repository.RangeRepo,
	evaluator *waterquality.Evaluator,
) *EvaluationService {
	return &EvaluationService{
		tankRepo:    tankRepo,
		readingRepo: readingRepo,
		rangeRepo:   rangeRepo,
		evaluator:   evaluator,
	}
}

// EvaluateLatest evaluates the newest water test of a tank across every
// parameter it measured.
func (s *EvaluationService) EvaluateLatest(ctx context.Context, tankID int64) (EvaluationReport, error) {
	latest, err := s.readingRepo.Latest(ctx, tankID)
	if err != nil {
		return EvaluationReport{}, err
	}
	if latest.ID == "" {
		// Distinguish "no history" from "unknown tank".
		if _, err := s.tankRepo.GetByID(ctx, tankID); err != nil {
			return EvaluationReport{}, err
		}
		return EvaluationReport{}, ErrNoReadings
	}

	verdicts, err := s.EvaluateTest(ctx, latest)
	if err != nil {
		return EvaluationReport{}, err
	}
	return EvaluationReport{
		TankID:   tankID,
		TestID:   latest.ID,
		TakenAt:  latest.TakenAt,
		Verdicts: verdicts,
	}, nil
}

// EvaluateTest evaluates one water test. The tank's overrides and CO₂
// schedule are loaded once and handed to the core as plain data, keeping
// the core itself free of I/O.
func (s *EvaluationService) EvaluateTest(ctx context.Context, wt models.WaterTest) ([]waterquality.Verdict, error) {
	cfg, err := s.tankConfig(ctx, wt.TankID)
	if err != nil {
		return nil, err
	}
	return s.evaluator.EvaluateAll(toReading(wt), cfg)
}

func (s *EvaluationService) tankConfig(ctx context.Context, tankID int64) (waterquality.TankConfig, error) {
	cfg := waterquality.TankConfig{TankID: tankID}

	overrides, err := s.rangeRepo.ListByTank(ctx, tankID)
	if err != nil {
		return waterquality.TankConfig{}, err
	}
	if len(overrides) > 0 {
		static := make(waterquality.StaticOverrides, len(overrides))
		for _, o := range overrides {
			static[waterquality.Parameter(o.Parameter)] = waterquality.Range{Low: o.Low, High: o.High}
		}
		cfg.Overrides = static
	}

	tank, err := s.tankRepo.GetByID(ctx, tankID)
	if err != nil {
		return waterquality.TankConfig{}, err
	}
	if tank.HasCo2Schedule() {
		cfg.Schedule = &waterquality.Co2Schedule{
			OnHour:  *tank.CO2OnHour,
			OffHour: *tank.CO2OffHour,
		}
	}
	return cfg, nil
}
