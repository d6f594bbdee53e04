package waterquality

import "time"

// cycleWindow is how many trailing readings must agree before a tank is
// called cycled.
const cycleWindow = 3

// CycleStatus reports whether a tank's nitrogen cycle appears complete and
// the evidence window the call considered. WindowSize is zero when the
// history was too short to judge.
type CycleStatus struct {
	IsCycled    bool      `json:"is_cycled"`
	WindowSize  int       `json:"window_size"`
	WindowStart time.Time `json:"window_start,omitempty"`
	WindowEnd   time.Time `json:"window_end,omitempty"`
}

// CycleAnalyzer detects nitrogen cycle completion from a reading history.
type CycleAnalyzer struct {
	catalog *Catalog
}

// NewCycleAnalyzer builds an analyzer over the catalog's safe bands.
func NewCycleAnalyzer(catalog *Catalog) *CycleAnalyzer {
	return &CycleAnalyzer{catalog: catalog}
}

// Assess inspects a tank's history, ordered oldest to newest. The tank is
// cycled when ammonia and nitrite sit at or below their safe-high bounds in
// each of the last three readings and the newest reading shows nitrate
// strictly above zero. The `<=` comparison is deliberate: a reading exactly
// at the bound passes. Fewer than three readings, or a window reading
// missing any of the three nitrogen values, is not enough evidence.
func (a *CycleAnalyzer) Assess(history []Reading) CycleStatus {
	if len(history) < cycleWindow {
		return CycleStatus{}
	}

	window := history[len(history)-cycleWindow:]
	status := CycleStatus{
		WindowSize:  cycleWindow,
		WindowStart: window[0].TakenAt,
		WindowEnd:   window[cycleWindow-1].TakenAt,
	}

	ammoniaHigh := a.safeHigh(Ammonia)
	nitriteHigh := a.safeHigh(Nitrite)
	for _, r := range window {
		ammonia, ok := r.Numeric(Ammonia)
		if !ok || ammonia > ammoniaHigh {
			return status
		}
		nitrite, ok := r.Numeric(Nitrite)
		if !ok || nitrite > nitriteHigh {
			return status
		}
	}

	nitrate, ok := window[cycleWindow-1].Numeric(Nitrate)
	if !ok || nitrate <= 0 {
		return status
	}

	status.IsCycled = true
	return status
}

func (a *CycleAnalyzer) safeHigh(p Parameter) float64 {
	spec, err := a.catalog.Spec(p)
	if err != nil {
		return 0
	}
	return spec.SafeRange.High
}
