package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aqualog/internal/models"
	"aqualog/internal/repository"
	"aqualog/internal/waterquality"

	"github.com/google/uuid"
)

// ErrInvalidIndicator marks a CO₂ indicator value outside Green/Blue/Yellow.
var ErrInvalidIndicator = errors.New("invalid co2 indicator: must be Green, Blue, or Yellow")

var errInvalidTimeRange = errors.New("invalid time range: from must be <= to")

type ReadingService struct {
	tankRepo    repository.TankRepo
	readingRepo repository.ReadingRepo
	catalog     *waterquality.Catalog
}

func NewReadingService(tankRepo repository.TankRepo, readingRepo repository.ReadingRepo, catalog *waterquality.Catalog) *ReadingService {
	return &ReadingService{tankRepo: tankRepo, readingRepo: readingRepo, catalog: catalog}
}

// Record sanity-checks and stores one water test. Numeric values must sit
// inside the catalog's hard physical limits; those limits catch data entry
// errors, not unsafe water. An id and UTC timestamp are assigned when
// missing.
func (s *ReadingService) Record(ctx context.Context, wt models.WaterTest) (models.WaterTest, error) {
	if _, err := s.tankRepo.GetByID(ctx, wt.TankID); err != nil {
		return models.WaterTest{}, err
	}

	for param, value := range numericFields(&wt) {
		if value == nil {
			continue
		}
		if err := s.catalog.CheckPlausible(param, *value); err != nil {
			return models.WaterTest{}, err
		}
	}
	if wt.CO2Indicator != "" && !waterquality.ValidIndicator(waterquality.Indicator(wt.CO2Indicator)) {
		return models.WaterTest{}, fmt.Errorf("%w: %q", ErrInvalidIndicator, wt.CO2Indicator)
	}

	if wt.ID == "" {
		wt.ID = uuid.NewString()
	}
	if wt.TakenAt.IsZero() {
		wt.TakenAt = time.Now().UTC()
	} else {
		wt.TakenAt = wt.TakenAt.UTC()
	}

	if err := s.readingRepo.Append(ctx, wt); err != nil {
		return models.WaterTest{}, err
	}
	return wt, nil
}

// List returns a tank's history inside the optional [from, to] bounds.
func (s *ReadingService) List(ctx context.Context, tankID int64, from, to time.Time) ([]models.WaterTest, error) {
	from = toUTC(from)
	to = toUTC(to)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, errInvalidTimeRange
	}
	return s.readingRepo.ListByTank(ctx, tankID, from, to)
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// numericFields maps each continuous parameter to its column in the record.
func numericFields(wt *models.WaterTest) map[waterquality.Parameter]*float64 {
	return map[waterquality.Parameter]*float64{
		waterquality.PH:          wt.PH,
		waterquality.Ammonia:     wt.Ammonia,
		waterquality.Nitrite:     wt.Nitrite,
		waterquality.Nitrate:     wt.Nitrate,
		waterquality.Temperature: wt.Temperature,
		waterquality.KH:          wt.KH,
		waterquality.GH:          wt.GH,
	}
}

// toReading converts a stored water test into the core's reading form.
func toReading(wt models.WaterTest) waterquality.Reading {
	values := make(map[waterquality.Parameter]waterquality.Value)
	for param, field := range numericFields(&wt) {
		if field != nil {
			values[param] = waterquality.Numeric(*field)
		}
	}
	if wt.CO2Indicator != "" {
		values[waterquality.CO2Indicator] = waterquality.Color(waterquality.Indicator(wt.CO2Indicator))
	}
	return waterquality.Reading{
		TankID:  wt.TankID,
		TakenAt: wt.TakenAt,
		Values:  values,
	}
}
