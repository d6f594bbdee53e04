package waterquality

// OverrideSource supplies per-tank safe range overrides. Implementations are
// provided by the caller; a nil *Range means no override exists. Lookup errors
// must be returned as-is, not mapped to "no override", so a failing store is
// never mistaken for default thresholds.
type OverrideSource interface {
	SafeRange(tankID int64, param Parameter) (*Range, error)
}

// StaticOverrides is an in-memory OverrideSource for a single tank, keyed by
// parameter. Handy for tests and for callers that have already loaded a
// tank's overrides.
type StaticOverrides map[Parameter]Range

func (s StaticOverrides) SafeRange(_ int64, param Parameter) (*Range, error) {
	r, ok := s[param]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

// RangeResolver resolves the effective safe band for a (tank, parameter)
// pair: a well-formed tank override wins, otherwise the catalog default.
type RangeResolver struct {
	catalog   *Catalog
	overrides OverrideSource
}

// NewRangeResolver builds a resolver over the catalog and an optional
// override source (nil means no tank defines overrides).
func NewRangeResolver(catalog *Catalog, overrides OverrideSource) *RangeResolver {
	return &RangeResolver{catalog: catalog, overrides: overrides}
}

// Resolve returns the effective safe band for the parameter and whether it
// came from a tank override. Only continuous parameters have a band; asking
// for a categorical one is a caller error.
func (r *RangeResolver) Resolve(tankID int64, param Parameter) (Range, bool, error) {
	spec, err := r.catalog.Spec(param)
	if err != nil {
		return Range{}, false, err
	}
	if r.overrides != nil {
		override, err := r.overrides.SafeRange(tankID, param)
		if err != nil {
			return Range{}, false, err
		}
		if override != nil && override.Valid() {
			return *override, true, nil
		}
	}
	return spec.SafeRange, false, nil
}
