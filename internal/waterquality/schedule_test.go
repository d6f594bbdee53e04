package waterquality

import (
	"errors"
	"testing"
)

func TestCo2Schedule_NonWrapping(t *testing.T) {
	t.Parallel()

	s := Co2Schedule{OnHour: 9, OffHour: 17}
	for h := 9; h <= 16; h++ {
		if !s.Contains(h) {
			t.Fatalf("hour %d should be inside window 9→17", h)
		}
	}
	for _, h := range []int{8, 17, 0, 23} {
		if s.Contains(h) {
			t.Fatalf("hour %d should be outside window 9→17", h)
		}
	}
}

func TestCo2Schedule_Wrapping(t *testing.T) {
	t.Parallel()

	s := Co2Schedule{OnHour: 22, OffHour: 6}
	for _, h := range []int{22, 23, 0, 1, 2, 3, 4, 5} {
		if !s.Contains(h) {
			t.Fatalf("hour %d should be inside window 22→6", h)
		}
	}
	for h := 6; h <= 21; h++ {
		if s.Contains(h) {
			t.Fatalf("hour %d should be outside window 22→6", h)
		}
	}
}

func TestCo2Schedule_Validate(t *testing.T) {
	t.Parallel()

	if err := (Co2Schedule{OnHour: 0, OffHour: 23}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Wraparound is a valid configuration, not an error.
	if err := (Co2Schedule{OnHour: 22, OffHour: 6}).Validate(); err != nil {
		t.Fatalf("unexpected error for wraparound: %v", err)
	}
	for _, s := range []Co2Schedule{
		{OnHour: -1, OffHour: 17},
		{OnHour: 9, OffHour: 24},
	} {
		err := s.Validate()
		if !errors.Is(err, ErrInvalidScheduleHour) {
			t.Fatalf("schedule %+v: expected ErrInvalidScheduleHour, got %v", s, err)
		}
	}
}
