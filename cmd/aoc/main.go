package main

import (
	"aoc2021/internal/config"
	"aoc2021/internal/logging"
	"aoc2021/internal/report"
	"aoc2021/internal/runner"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	configPath string
	timeout    time.Duration

	// Loaded in PersistentPreRunE
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2021 solvers",
	Long: `aoc solves the 2021 daily puzzles from their input files.

Each day parses its input, computes a silver and a gold answer and prints
them. Inputs are read from the directory configured in .aoc/config.yaml
(default: ./inputs).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			// config init replaces the file, so a broken one must not block it.
			if cmd != configInitCmd {
				return fmt.Errorf("invalid config %s: %w", configPath, err)
			}
			cfg = config.DefaultConfig()
		}
		if verbose {
			cfg.Logging.DebugMode = true
			cfg.Logging.Level = "debug"
		}

		if err := logging.Initialize(logging.Options{
			Level:           cfg.Logging.Level,
			Format:          cfg.Logging.Format,
			File:            cfg.Logging.File,
			DebugMode:       cfg.Logging.DebugMode,
			CategoryEnabled: cfg.Logging.IsCategoryEnabled,
		}); err != nil {
			return err
		}
		logging.Boot("aoc %s, run %s", cmd.Name(), logging.RunID())
		logging.BootDebug("config %s loaded, inputs from %s", configPath, cfg.Inputs.Dir)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

// listCmd prints the registered days
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the days that have a solver",
	Args:  cobra.NoArgs,
	RunE:  listDays,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Operation timeout (default: runner.timeout from config)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func listDays(cmd *cobra.Command, args []string) error {
	return report.List(cmd.OutOrStdout(), runner.DefaultRegistry(cfg))
}

// effectiveTimeout prefers the --timeout flag over the config value.
func effectiveTimeout() time.Duration {
	if timeout > 0 {
		return timeout
	}
	return cfg.GetTimeout()
}
