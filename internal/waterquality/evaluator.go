package waterquality

// Status classifies one evaluated (reading, parameter) pair.
type Status string

const (
	StatusWithinRange   Status = "within_range"
	StatusTooLow        Status = "too_low"
	StatusTooHigh       Status = "too_high"
	StatusSuppressed    Status = "suppressed"
	StatusIndeterminate Status = "indeterminate"
)

// Verdict is the outcome of evaluating one parameter of one reading.
// EffectiveRange is the band actually compared against (override or default);
// it is nil for categorical parameters. UnionizedNH3 is set only when the
// ammonia toxicity path was taken.
type Verdict struct {
	Parameter      Parameter `json:"parameter"`
	Status         Status    `json:"status"`
	MeasuredValue  *float64  `json:"measured_value,omitempty"`
	Indicator      Indicator `json:"indicator,omitempty"`
	EffectiveRange *Range    `json:"effective_range,omitempty"`
	IsCustomRange  bool      `json:"is_custom_range"`
	UnionizedNH3   *float64  `json:"unionized_nh3,omitempty"`
}

// TankConfig carries the per-tank inputs an evaluation needs. Overrides may
// be nil (no tank overrides); Schedule nil means the evaluator's default
// injection window applies.
type TankConfig struct {
	TankID    int64
	Overrides OverrideSource
	Schedule  *Co2Schedule
}

// DefaultCo2Schedule is the global injection window used when neither the
// tank nor the deployment configures one.
var DefaultCo2Schedule = Co2Schedule{OnHour: 9, OffHour: 17}

type rule func(e *Evaluator, r Reading, param Parameter, v Value, cfg TankConfig) (Verdict, error)

// Evaluator turns readings into verdicts. Each parameter is handled by
// exactly one entry in the dispatch table: ammonia and co2_indicator have
// dedicated rules with their own side inputs, every other continuous
// parameter shares the generic range comparison. Evaluators are stateless
// and safe for concurrent use.
type Evaluator struct {
	catalog         *Catalog
	defaultSchedule Co2Schedule
	rules           map[Parameter]rule
}

// NewEvaluator builds an evaluator over the catalog with the given default
// CO₂ injection window.
func NewEvaluator(catalog *Catalog, defaultSchedule Co2Schedule) *Evaluator {
	e := &Evaluator{
		catalog:         catalog,
		defaultSchedule: defaultSchedule,
		rules:           make(map[Parameter]rule),
	}
	for _, p := range catalog.Parameters() {
		switch p {
		case Ammonia:
			e.rules[p] = evaluateAmmonia
		case CO2Indicator:
			e.rules[p] = evaluateCO2
		default:
			e.rules[p] = evaluateContinuous
		}
	}
	return e
}

// Evaluate produces the verdict for one parameter of one reading. Unknown
// parameters and override-store failures return an error; missing or
// malformed values degrade to an indeterminate verdict instead, so a batch
// of readings is never aborted by one bad field.
func (e *Evaluator) Evaluate(r Reading, param Parameter, cfg TankConfig) (Verdict, error) {
	fn, ok := e.rules[param]
	if !ok {
		_, err := e.catalog.Spec(param)
		return Verdict{}, err
	}
	v, _ := r.Value(param)
	return fn(e, r, param, v, cfg)
}

// EvaluateAll evaluates every parameter present in the reading, in catalog
// order.
func (e *Evaluator) EvaluateAll(r Reading, cfg TankConfig) ([]Verdict, error) {
	var out []Verdict
	for _, p := range e.catalog.Parameters() {
		if _, ok := r.Value(p); !ok {
			continue
		}
		verdict, err := e.Evaluate(r, p, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, verdict)
	}
	return out, nil
}

func (e *Evaluator) schedule(cfg TankConfig) Co2Schedule {
	if cfg.Schedule != nil {
		return *cfg.Schedule
	}
	return e.defaultSchedule
}

// evaluateContinuous handles every ordinary numeric parameter: resolve the
// effective band, then classify. Band boundaries are inclusive.
func evaluateContinuous(e *Evaluator, _ Reading, param Parameter, v Value, cfg TankConfig) (Verdict, error) {
	return classifyAgainstRange(e, cfg, param, v)
}

func classifyAgainstRange(e *Evaluator, cfg TankConfig, param Parameter, v Value) (Verdict, error) {
	resolver := NewRangeResolver(e.catalog, cfg.Overrides)
	band, custom, err := resolver.Resolve(cfg.TankID, param)
	if err != nil {
		return Verdict{}, err
	}
	verdict := Verdict{
		Parameter:      param,
		EffectiveRange: &band,
		IsCustomRange:  custom,
	}
	if v.Number == nil {
		verdict.Status = StatusIndeterminate
		return verdict, nil
	}
	verdict.MeasuredValue = v.Number
	switch {
	case *v.Number < band.Low:
		verdict.Status = StatusTooLow
	case *v.Number > band.High:
		verdict.Status = StatusTooHigh
	default:
		verdict.Status = StatusWithinRange
	}
	return verdict, nil
}

// evaluateAmmonia applies the toxicity model when the same reading carries
// pH and temperature; only the unionized NH₃ concentration is compared, and
// against the fixed toxicity threshold. Without pH or temperature it falls
// back to comparing raw ammonia against the resolved band rather than
// fabricating the missing inputs.
func evaluateAmmonia(e *Evaluator, r Reading, _ Parameter, v Value, cfg TankConfig) (Verdict, error) {
	if v.Number == nil {
		return classifyAgainstRange(e, cfg, Ammonia, v)
	}
	ph, phOK := r.Numeric(PH)
	tempC, tempOK := r.Numeric(Temperature)
	if !phOK || !tempOK {
		return classifyAgainstRange(e, cfg, Ammonia, v)
	}

	nh3 := UnionizedAmmonia(*v.Number, ph, tempC)
	band := Range{Low: 0, High: UnionizedAmmoniaLimitPPM}
	verdict := Verdict{
		Parameter:      Ammonia,
		MeasuredValue:  v.Number,
		EffectiveRange: &band,
		UnionizedNH3:   &nh3,
	}
	if nh3 > UnionizedAmmoniaLimitPPM {
		verdict.Status = StatusTooHigh
	} else {
		verdict.Status = StatusWithinRange
	}
	return verdict, nil
}

// evaluateCO2 handles the drop checker. Yellow (excess CO₂) is always
// reported; Blue (low CO₂) is downgraded to suppressed when the reading time
// is known and falls outside the tank's injection window, since the checker
// is expected to read low while injection is off.
func evaluateCO2(e *Evaluator, r Reading, _ Parameter, v Value, cfg TankConfig) (Verdict, error) {
	verdict := Verdict{Parameter: CO2Indicator, Indicator: v.Indicator}
	switch v.Indicator {
	case IndicatorGreen:
		verdict.Status = StatusWithinRange
	case IndicatorYellow:
		verdict.Status = StatusTooHigh
	case IndicatorBlue:
		verdict.Status = StatusTooLow
		if !r.TakenAt.IsZero() && !e.schedule(cfg).Contains(r.TakenAt.Hour()) {
			verdict.Status = StatusSuppressed
		}
	default:
		verdict.Status = StatusIndeterminate
	}
	return verdict, nil
}
