package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gitrdm/baryonyx/pkg/wedelin"
)

// boundsCmd runs the same single-worker solve as "solve" to completion
// and prints a shorter report: the status, the Lagrangian bound
// (component C9) and, only when the result is feasible, the objective.
func boundsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bounds FILE",
		Short: "print the Lagrangian lower/upper bound estimate for a linear-program file",
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

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "status: %s\n", result.Status)
			fmt.Fprintf(out, "dual-bound: %g\n", result.DualBound)
			if result.Feasible() {
				fmt.Fprintf(out, "objective: %g\n", result.Objective)
			}
			return nil
		},
	}

	addSolverFlags(cmd, v)
	return cmd
}
