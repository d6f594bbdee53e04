package waterquality

import (
	"errors"
	"fmt"
)

// ErrInvalidScheduleHour marks a CO₂ schedule hour outside 0–23.
var ErrInvalidScheduleHour = errors.New("schedule hour outside 0–23")

// Co2Schedule is a daily CO₂ injection window in whole clock hours.
// OnHour > OffHour is a valid wraparound window (e.g. 22→6), not an error.
type Co2Schedule struct {
	OnHour  int `json:"on_hour"`
	OffHour int `json:"off_hour"`
}

// Validate rejects hours outside the 24-hour clock. Wraparound is allowed.
func (s Co2Schedule) Validate() error {
	for _, h := range []int{s.OnHour, s.OffHour} {
		if h < 0 || h > 23 {
			return fmt.Errorf("%w: %d", ErrInvalidScheduleHour, h)
		}
	}
	return nil
}

// Contains reports whether the clock hour falls inside the injection window.
// A non-wrapping window covers [OnHour, OffHour); a wrapping one covers
// hour >= OnHour || hour < OffHour. The boundary semantics are exact: an
// off-by-one here changes which CO₂ alarms get suppressed.
func (s Co2Schedule) Contains(hour int) bool {
	if s.OnHour <= s.OffHour {
		return s.OnHour <= hour && hour < s.OffHour
	}
	return hour >= s.OnHour || hour < s.OffHour
}
