// Command baryonyx runs the Wedelin-heuristic solver over a textual
// linear-program file from the command line.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

func main() {
	v := viper.New()
	v.SetEnvPrefix("baryonyx")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:     "baryonyx",
		Short:   "baryonyx solves and optimizes 0/1 linear programs with a Lagrangian-relaxation heuristic",
		Version: version,
	}

	cmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	cmd.PersistentFlags().String("config", "", "path to a config file (YAML/JSON/TOML)")
	_ = v.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))

	cobra.OnInitialize(func() {
		if path := v.GetString("config"); path != "" {
			v.SetConfigFile(path)
			_ = v.ReadInConfig()
		}
	})

	cmd.AddCommand(solveCmd(v))
	cmd.AddCommand(optimizeCmd(v))
	cmd.AddCommand(boundsCmd(v))

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
