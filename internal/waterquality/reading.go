package waterquality

import "time"

// Indicator is the categorical drop-checker color for dissolved CO₂.
type Indicator string

const (
	IndicatorGreen  Indicator = "Green"
	IndicatorBlue   Indicator = "Blue"
	IndicatorYellow Indicator = "Yellow"
)

// ValidIndicator reports whether s is one of the three drop-checker colors.
func ValidIndicator(s Indicator) bool {
	switch s {
	case IndicatorGreen, IndicatorBlue, IndicatorYellow:
		return true
	}
	return false
}

// Value is one measured parameter value: a number for continuous parameters
// or an indicator color for co2_indicator. The zero Value means "measured
// but unusable" and evaluates to indeterminate.
type Value struct {
	Number    *float64
	Indicator Indicator
}

// Numeric wraps a float measurement.
func Numeric(v float64) Value {
	return Value{Number: &v}
}

// Color wraps a drop-checker reading.
func Color(i Indicator) Value {
	return Value{Indicator: i}
}

// Reading is one measured event for a tank. Parameters that were not
// measured are simply absent from Values. TakenAt may be the zero time when
// the measurement moment is unknown; schedule-based CO₂ suppression then
// cannot apply.
type Reading struct {
	TankID  int64
	TakenAt time.Time
	Values  map[Parameter]Value
}

// Value fetches one measured value, reporting whether it was present.
func (r Reading) Value(p Parameter) (Value, bool) {
	v, ok := r.Values[p]
	return v, ok
}

// Numeric fetches a numeric measurement, reporting false when the parameter
// is absent or non-numeric.
func (r Reading) Numeric(p Parameter) (float64, bool) {
	v, ok := r.Values[p]
	if !ok || v.Number == nil {
		return 0, false
	}
	return *v.Number, true
}
