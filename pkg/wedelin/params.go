package wedelin

import (
	"time"

	"github.com/mitchellh/mapstructure"
)

// ParameterKind tags the payload carried by a Parameter.
type ParameterKind int

const (
	ParameterReal ParameterKind = iota
	ParameterInteger
	ParameterString
)

// Parameter is a single entry of the typed parameter map the caller
// passes to Solve/Optimize (specification §6): a name maps to exactly
// one of a real, an integer or a string value.
type Parameter struct {
	Kind    ParameterKind
	Real    float64
	Integer int64
	String  string
}

func Real(v float64) Parameter    { return Parameter{Kind: ParameterReal, Real: v} }
func Integer(v int64) Parameter   { return Parameter{Kind: ParameterInteger, Integer: v} }
func StringParam(v string) Parameter { return Parameter{Kind: ParameterString, String: v} }

// ConstraintOrder selects the order in which violated rows are visited
// during one sweep (component C4).
type ConstraintOrder string

const (
	OrderNone               ConstraintOrder = "none"
	OrderReversing          ConstraintOrder = "reversing"
	OrderRandom             ConstraintOrder = "random"
	OrderInfeasibilityDecr  ConstraintOrder = "infeasibility-decr"
	OrderInfeasibilityIncr  ConstraintOrder = "infeasibility-incr"
)

// Norm selects the cost-normalization strategy (component C8).
type Norm string

const (
	NormNone Norm = "none"
	NormL1   Norm = "l1"
	NormL2   Norm = "l2"
	NormInf  Norm = "inf"
	NormRng  Norm = "rng"
)

// InitPolicy selects how the initial x is seeded (specification §4.5).
type InitPolicy string

const (
	InitBastert InitPolicy = "bastert"
	InitRandom  InitPolicy = "random"
	InitBest    InitPolicy = "best"
)

// Params bundles every knob of the outer loop, the push phase and the
// optimizer, with the defaults the reference implementation uses
// (inequalities-1coeff.hpp's `parameters` constructor and
// inequalities-Zcoeff.cpp's push-phase fields).
type Params struct {
	Order ConstraintOrder `mapstructure:"constraint-order"`

	Theta float64 `mapstructure:"theta"`
	Delta float64 `mapstructure:"delta"`

	Limit int64 `mapstructure:"limit"`

	KappaMin  float64 `mapstructure:"kappa-min"`
	KappaStep float64 `mapstructure:"kappa-step"`
	KappaMax  float64 `mapstructure:"kappa-max"`
	Alpha     float64 `mapstructure:"alpha"`
	W         int64   `mapstructure:"w"`

	TimeLimit time.Duration `mapstructure:"-"`

	InitPolicy  InitPolicy `mapstructure:"init-policy"`
	InitRandom  float64    `mapstructure:"init-random"`
	Norm        Norm       `mapstructure:"norm"`

	PushingKFactor             float64 `mapstructure:"pushing-k-factor"`
	PushesLimit                int64   `mapstructure:"pushes-limit"`
	PushingObjectiveAmplifier  float64 `mapstructure:"pushing-objective-amplifier"`
	PushingIterationLimit      int64   `mapstructure:"pushing-iteration-limit"`

	Seed    int64 `mapstructure:"seed"`
	HasSeed bool  `mapstructure:"-"`

	Threads int `mapstructure:"thread"`

	Serialize bool `mapstructure:"serialize"`
}

// DefaultParams returns the parameter bundle with every default value
// from the reference implementation.
func DefaultParams() Params {
	return Params{
		Order:                     OrderNone,
		Theta:                     0.5,
		Delta:                     0.5,
		Limit:                     100,
		KappaMin:                  0.0,
		KappaStep:                 0.0001,
		KappaMax:                  0.6,
		Alpha:                     2.0,
		W:                         20,
		TimeLimit:                 10 * time.Second,
		InitPolicy:                InitBastert,
		InitRandom:                0.5,
		Norm:                      NormNone,
		PushingKFactor:            0.9,
		PushesLimit:               50,
		PushingObjectiveAmplifier: 10,
		PushingIterationLimit:     10,
		Threads:                   1,
	}
}

// ParseParams decodes a typed parameter map (specification §6) onto a
// Params value pre-populated with defaults. Unknown keys are ignored
// (mapstructure.ErrorUnused is not set); malformed values fall back to
// the default and are reported in the returned error slice rather than aborting
// the decode, per the specification's "bad parameter" error taxonomy.
func ParseParams(raw map[string]Parameter) (Params, []error) {
	p := DefaultParams()
	var errs []error

	generic := make(map[string]interface{}, len(raw))
	for name, v := range raw {
		switch v.Kind {
		case ParameterReal:
			generic[name] = v.Real
		case ParameterInteger:
			generic[name] = v.Integer
		case ParameterString:
			generic[name] = v.String
		}
	}

	if seed, ok := raw["seed"]; ok {
		if seed.Kind == ParameterInteger {
			p.Seed = seed.Integer
			p.HasSeed = true
		} else {
			errs = append(errs, &BadParameterError{Name: "seed", Value: seed})
		}
		delete(generic, "seed")
	}

	if tl, ok := raw["time-limit"]; ok {
		switch tl.Kind {
		case ParameterReal:
			p.TimeLimit = time.Duration(tl.Real * float64(time.Second))
		case ParameterInteger:
			p.TimeLimit = time.Duration(tl.Integer) * time.Second
		default:
			errs = append(errs, &BadParameterError{Name: "time-limit", Value: tl})
		}
		delete(generic, "time-limit")
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
	})
	if err != nil {
		errs = append(errs, err)
		return p, errs
	}

	if err := decoder.Decode(generic); err != nil {
		errs = append(errs, err)
	}

	return p, errs
}
