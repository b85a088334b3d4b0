package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gitrdm/baryonyx/pkg/wedelin"
)

// addSolverFlags registers every knob of wedelin.Params as a flag,
// bound into v under the same key mapstructure already expects, so
// loadParams can read each value back from v by that key.
func addSolverFlags(cmd *cobra.Command, v *viper.Viper) {
	d := wedelin.DefaultParams()
	fs := cmd.Flags()

	fs.String("constraint-order", string(d.Order), "row visitation order: none, reversing, random, infeasibility-decr, infeasibility-incr")
	fs.Float64("theta", d.Theta, "preference decay factor")
	fs.Float64("delta", d.Delta, "preference increment")
	fs.Int64("limit", d.Limit, "sweep limit, 0 disables")
	fs.Float64("kappa-min", d.KappaMin, "initial kappa")
	fs.Float64("kappa-step", d.KappaStep, "kappa growth per warmup window")
	fs.Float64("kappa-max", d.KappaMax, "kappa ceiling")
	fs.Float64("alpha", d.Alpha, "kappa growth exponent")
	fs.Int64("w", d.W, "sweeps per kappa-growth warmup window")
	fs.Duration("time-limit", d.TimeLimit, "wall-clock limit, 0 disables")
	fs.String("init-policy", string(d.InitPolicy), "initial assignment policy: bastert, random, best")
	fs.Float64("init-random", d.InitRandom, "tie-break / random-init probability")
	fs.String("norm", string(d.Norm), "cost normalization: none, l1, l2, inf, rng")
	fs.Float64("pushing-k-factor", d.PushingKFactor, "multiplier applied to kappa during a push sweep")
	fs.Int64("pushes-limit", d.PushesLimit, "maximum number of pushes, 0 disables pushing")
	fs.Float64("pushing-objective-amplifier", d.PushingObjectiveAmplifier, "objective amplifier applied during a push sweep")
	fs.Int64("pushing-iteration-limit", d.PushingIterationLimit, "feasible sweeps between two pushes")
	fs.Int64("seed", 0, "PRNG seed; unset draws from the clock")
	fs.Int("thread", d.Threads, "number of parallel optimizer workers")
	fs.Bool("serialize", d.Serialize, "sets Params.Serialize; no subcommand writes a file for it")

	for _, name := range []string{
		"constraint-order", "theta", "delta", "limit", "kappa-min", "kappa-step",
		"kappa-max", "alpha", "w", "time-limit", "init-policy", "init-random", "norm",
		"pushing-k-factor", "pushes-limit", "pushing-objective-amplifier",
		"pushing-iteration-limit", "seed", "thread", "serialize",
	} {
		_ = v.BindPFlag(name, fs.Lookup(name))
	}
}

// loadParams decodes v's bound flags/config/env onto wedelin.Params
// through wedelin.ParseParams. time-limit is read directly as a
// duration, since Params excludes it from the mapstructure decode;
// seed is passed only when non-zero, so an unset seed leaves HasSeed
// false.
func loadParams(v *viper.Viper) (wedelin.Params, []error) {
	raw := map[string]wedelin.Parameter{
		"constraint-order":            wedelin.StringParam(v.GetString("constraint-order")),
		"theta":                       wedelin.Real(v.GetFloat64("theta")),
		"delta":                       wedelin.Real(v.GetFloat64("delta")),
		"limit":                       wedelin.Integer(v.GetInt64("limit")),
		"kappa-min":                   wedelin.Real(v.GetFloat64("kappa-min")),
		"kappa-step":                  wedelin.Real(v.GetFloat64("kappa-step")),
		"kappa-max":                   wedelin.Real(v.GetFloat64("kappa-max")),
		"alpha":                       wedelin.Real(v.GetFloat64("alpha")),
		"w":                           wedelin.Integer(v.GetInt64("w")),
		"init-policy":                 wedelin.StringParam(v.GetString("init-policy")),
		"init-random":                 wedelin.Real(v.GetFloat64("init-random")),
		"norm":                        wedelin.StringParam(v.GetString("norm")),
		"pushing-k-factor":            wedelin.Real(v.GetFloat64("pushing-k-factor")),
		"pushes-limit":                wedelin.Integer(v.GetInt64("pushes-limit")),
		"pushing-objective-amplifier": wedelin.Real(v.GetFloat64("pushing-objective-amplifier")),
		"pushing-iteration-limit":     wedelin.Integer(v.GetInt64("pushing-iteration-limit")),
		"thread":                      wedelin.Integer(int64(v.GetInt("thread"))),
	}
	if v.GetInt64("seed") != 0 {
		raw["seed"] = wedelin.Integer(v.GetInt64("seed"))
	}

	p, errs := wedelin.ParseParams(raw)

	if tl := v.GetDuration("time-limit"); tl > 0 {
		p.TimeLimit = tl
	} else {
		p.TimeLimit = 0
	}
	p.Serialize = v.GetBool("serialize")

	return p, errs
}
