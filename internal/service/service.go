package service

import (
	"context"
	"time"

	"aqualog/internal/models"
	"aqualog/internal/repository"
	"aqualog/internal/waterquality"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Tanks manages tank profiles and their per-tank evaluation configuration.
type Tanks interface {
	Create(ctx context.Context, params TankParams) (models.Tank, error)
	Get(ctx context.Context, id int64) (models.Tank, error)
	List(ctx context.Context) ([]models.Tank, error)
	UpdateVolume(ctx context.Context, id int64, volumeL float64) error
	SetRange(ctx context.Context, o models.SafeRangeOverride) error
	Ranges(ctx context.Context, tankID int64) ([]models.SafeRangeOverride, error)
	DeleteRange(ctx context.Context, tankID int64, parameter string) error
	SetCo2Schedule(ctx context.Context, tankID int64, schedule waterquality.Co2Schedule) error
	ClearCo2Schedule(ctx context.Context, tankID int64) error
}

// Readings validates and records water tests.
type Readings interface {
	Record(ctx context.Context, wt models.WaterTest) (models.WaterTest, error)
	List(ctx context.Context, tankID int64, from, to time.Time) ([]models.WaterTest, error)
}

// Evaluation turns recorded tests into verdicts via the water quality core.
type Evaluation interface {
	EvaluateLatest(ctx context.Context, tankID int64) (EvaluationReport, error)
	EvaluateTest(ctx context.Context, wt models.WaterTest) ([]waterquality.Verdict, error)
}

// Dosing quantifies remediation for a tank.
type Dosing interface {
	Recommend(ctx context.Context, tankID int64, req waterquality.DoseRequest) (waterquality.DoseRecommendation, error)
	WaterChangePercent(current, target float64) float64
	TankVolume(length, width, height float64, unit waterquality.DimensionUnit) (litres, gallons float64, err error)
}

// Cycle reports nitrogen cycle progress from a tank's history.
type Cycle interface {
	Status(ctx context.Context, tankID int64) (waterquality.CycleStatus, error)
}

// Service aggregates all sub-services behind one dependency for handlers.
type Service struct {
	Tanks
	Readings
	Evaluation
	Dosing
	Cycle
	Authorization
}

// Config carries deployment-level knobs the services need.
type Config struct {
	DefaultCo2Schedule waterquality.Co2Schedule
	JWTSigningKey      string
}

// NewService wires the repository layer and the water quality core into
// concrete services.
func NewService(repos *repository.Repository, cfg Config) *Service {
	catalog := waterquality.NewCatalog()
	evaluator := waterquality.NewEvaluator(catalog, cfg.DefaultCo2Schedule)

	return &Service{
		Tanks:         NewTankService(repos.Tanks, repos.Ranges, catalog),
		Readings:      NewReadingService(repos.Tanks, repos.Readings, catalog),
		Evaluation:    NewEvaluationService(repos.Tanks, repos.Readings, repos.Ranges, evaluator),
		Dosing:        NewDosingService(repos.Tanks),
		Cycle:         NewCycleService(repos.Readings, waterquality.NewCycleAnalyzer(catalog)),
		Authorization: NewAuthService(repos.Auth, cfg.JWTSigningKey),
	}
}
