package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gitrdm/baryonyx/pkg/lp"
	"github.com/gitrdm/baryonyx/pkg/wedelin"
)

func solveCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "run a single annealing worker over a linear-program file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(v)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			sugar := logger.Sugar()

			pb, err := readProblem(args[0])
			if err != nil {
				return err
			}

			params, perrs := loadParams(v)
			for _, perr := range perrs {
				sugar.Warnw("parameter error", "error", perr)
			}

			result, err := wedelin.Solve(pb, params, sugar)
			if err != nil && result.Status != wedelin.StatusInfeasiblePreprocess {
				return err
			}

			printResult(cmd, result)
			if result.Status == wedelin.StatusInfeasiblePreprocess {
				return err
			}
			return nil
		},
	}

	addSolverFlags(cmd, v)
	return cmd
}

func readProblem(path string) (*lp.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("baryonyx: open %s: %w", path, err)
	}
	defer f.Close()
	return lp.ParseLP(f)
}

func newLogger(v *viper.Viper) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func printResult(cmd *cobra.Command, r wedelin.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "status: %s\n", r.Status)
	fmt.Fprintf(out, "objective: %g\n", r.Objective)
	fmt.Fprintf(out, "dual-bound: %g\n", r.DualBound)
	fmt.Fprintf(out, "remaining-constraints: %d\n", r.RemainingConstraints)
	fmt.Fprintf(out, "loop: %d\n", r.Loop)
	fmt.Fprintf(out, "duration: %s\n", r.Duration)
	for i, name := range r.VariableName {
		fmt.Fprintf(out, "%s = %d\n", name, r.VariableValue[i])
	}
}
