package models

// SafeRangeOverride replaces the default safe band of one parameter for one
// tank. High must be strictly above Low; the store and the service both
// reject anything else rather than repairing it.
type SafeRangeOverride struct {
	TankID    int64   `json:"tank_id"`
	Parameter string  `json:"parameter"`
	Low       float64 `json:"low"`
	High      float64 `json:"high"`
}
