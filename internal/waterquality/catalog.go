package waterquality

import (
	"errors"
	"fmt"
)

// Parameter identifies a water parameter tracked by the catalog.
type Parameter string

const (
	PH           Parameter = "ph"
	Ammonia      Parameter = "ammonia"
	Nitrite      Parameter = "nitrite"
	Nitrate      Parameter = "nitrate"
	Temperature  Parameter = "temperature"
	KH           Parameter = "kh"
	GH           Parameter = "gh"
	CO2Indicator Parameter = "co2_indicator"
)

// Kind distinguishes continuous numeric parameters from categorical ones.
type Kind int

const (
	KindContinuous Kind = iota
	KindCategorical
)

// Domain errors surfaced to callers at the input boundary.
var (
	ErrUnknownParameter   = errors.New("unknown parameter")
	ErrImplausibleReading = errors.New("reading outside plausible limits")
)

// Range is a closed numeric band [Low, High].
type Range struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Valid reports whether the band is well-formed (High strictly above Low).
func (r Range) Valid() bool { return r.High > r.Low }

// ParameterSpec describes one known parameter: its kind, absolute plausible
// limits used for input sanity checks, the default safe band applied when a
// tank defines no override, and the display unit.
type ParameterSpec struct {
	Name       Parameter
	Kind       Kind
	HardLimits Range
	SafeRange  Range
	Unit       string
}

// Catalog is the immutable set of known parameter specs. Build one at startup
// with NewCatalog and share it; it is never mutated afterward.
type Catalog struct {
	specs map[Parameter]ParameterSpec
	order []Parameter
}

// NewCatalog returns the fixed parameter catalog. Safe bands target a planted
// freshwater tank; hard limits bound what a test kit could plausibly report.
func NewCatalog() *Catalog {
	specs := []ParameterSpec{
		{Name: Temperature, Kind: KindContinuous, HardLimits: Range{0, 40}, SafeRange: Range{18, 28}, Unit: "°C"},
		{Name: PH, Kind: KindContinuous, HardLimits: Range{0, 14}, SafeRange: Range{6, 8}, Unit: ""},
		{Name: Ammonia, Kind: KindContinuous, HardLimits: Range{0, 10}, SafeRange: Range{0, 0}, Unit: "ppm"},
		{Name: Nitrite, Kind: KindContinuous, HardLimits: Range{0, 10}, SafeRange: Range{0, 0}, Unit: "ppm"},
		{Name: Nitrate, Kind: KindContinuous, HardLimits: Range{0, 500}, SafeRange: Range{20, 50}, Unit: "ppm"},
		{Name: KH, Kind: KindContinuous, HardLimits: Range{0, 20}, SafeRange: Range{4, 8}, Unit: "dKH"},
		{Name: GH, Kind: KindContinuous, HardLimits: Range{0, 30}, SafeRange: Range{6, 10}, Unit: "dGH"},
		{Name: CO2Indicator, Kind: KindCategorical, Unit: ""},
	}

	c := &Catalog{specs: make(map[Parameter]ParameterSpec, len(specs))}
	for _, s := range specs {
		c.specs[s.Name] = s
		c.order = append(c.order, s.Name)
	}
	return c
}

// Spec returns the spec for a parameter, or ErrUnknownParameter for any
// identifier outside the fixed catalog.
func (c *Catalog) Spec(p Parameter) (ParameterSpec, error) {
	s, ok := c.specs[p]
	if !ok {
		return ParameterSpec{}, fmt.Errorf("%w: %q", ErrUnknownParameter, p)
	}
	return s, nil
}

// Known reports whether p is a catalog parameter.
func (c *Catalog) Known(p Parameter) bool {
	_, ok := c.specs[p]
	return ok
}

// Parameters lists all catalog parameters in a stable order.
func (c *Catalog) Parameters() []Parameter {
	out := make([]Parameter, len(c.order))
	copy(out, c.order)
	return out
}

// CheckPlausible validates a numeric reading against the parameter's hard
// physical limits. These limits catch data entry errors, not safety issues.
func (c *Catalog) CheckPlausible(p Parameter, value float64) error {
	s, err := c.Spec(p)
	if err != nil {
		return err
	}
	if s.Kind != KindContinuous {
		return fmt.Errorf("%w: %q is not numeric", ErrUnknownParameter, p)
	}
	if value < s.HardLimits.Low || value > s.HardLimits.High {
		return fmt.Errorf("%w: %s reading %g outside %g–%g",
			ErrImplausibleReading, p, value, s.HardLimits.Low, s.HardLimits.High)
	}
	return nil
}
