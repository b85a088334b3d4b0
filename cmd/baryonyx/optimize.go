package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gitrdm/baryonyx/pkg/wedelin"
)

func optimizeCmd(v *viper.Viper) *cobra.Command {
	var checkpointDir string

	cmd := &cobra.Command{
		Use:   "optimize FILE",
		Short: "run the parallel optimizer (multiple independent annealing workers) over a linear-program file",
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

			result, err := wedelin.Optimize(pb, params, sugar, wedelin.OptimizeOptions{
				CheckpointDir: checkpointDir,
			})
			if err != nil {
				return err
			}

			printResult(cmd, result)
			return nil
		},
	}

	addSolverFlags(cmd, v)
	cmd.Flags().StringVar(&checkpointDir, "checkpoint-dir", "", "directory to write per-worker temp-<id>.sol checkpoint files, empty disables")
	return cmd
}
