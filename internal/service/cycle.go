package service

import (
	"context"
	"time"

	"aqualog/internal/repository"
	"aqualog/internal/waterquality"
)

type CycleService struct {
	readingRepo repository.ReadingRepo
	analyzer    *waterquality.CycleAnalyzer
}

func NewCycleService(readingRepo repository.ReadingRepo, analyzer *waterquality.CycleAnalyzer) *CycleService {
	return &CycleService{readingRepo: readingRepo, analyzer: analyzer}
}

// Status assesses the nitrogen cycle from the tank's full history, oldest
// to newest. An empty or short history simply reports "not cycled".
func (s *CycleService) Status(ctx context.Context, tankID int64) (waterquality.CycleStatus, error) {
	history, err := s.readingRepo.ListByTank(ctx, tankID, time.Time{}, time.Time{})
	if err != nil {
		return waterquality.CycleStatus{}, err
	}
	readings := make([]waterquality.Reading, 0, len(history))
	for _, wt := range history {
		readings = append(readings, toReading(wt))
	}
	return s.analyzer.Assess(readings), nil
}
