package models

import "time"

// Tank is one aquarium profile. VolumeL is optional; dosing cannot be
// computed without it. CO₂ schedule hours are optional as a pair: both set
// means the tank overrides the global injection window.
type Tank struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	VolumeL    *float64  `json:"volume_l,omitempty"`
	CO2OnHour  *int      `json:"co2_on_hour,omitempty"`
	CO2OffHour *int      `json:"co2_off_hour,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// HasCo2Schedule reports whether the tank defines its own injection window.
func (t Tank) HasCo2Schedule() bool {
	return t.CO2OnHour != nil && t.CO2OffHour != nil
}
