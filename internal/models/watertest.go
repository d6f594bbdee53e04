package models

import "time"

// WaterTest is one recorded measurement event. Every parameter column is
// optional; a nil field means the parameter was not measured that time.
// CO2Indicator holds one of the drop-checker colors or is empty.
type WaterTest struct {
	ID           string    `json:"id"`
	TankID       int64     `json:"tank_id"`
	TakenAt      time.Time `json:"taken_at"`
	PH           *float64  `json:"ph,omitempty"`
	Ammonia      *float64  `json:"ammonia,omitempty"`
	Nitrite      *float64  `json:"nitrite,omitempty"`
	Nitrate      *float64  `json:"nitrate,omitempty"`
	Temperature  *float64  `json:"temperature,omitempty"`
	KH           *float64  `json:"kh,omitempty"`
	GH           *float64  `json:"gh,omitempty"`
	CO2Indicator string    `json:"co2_indicator,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}
