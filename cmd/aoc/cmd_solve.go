package main

import (
	"aoc2021/internal/report"
	"aoc2021/internal/runner"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	solveInputDir string
	solveInput    string
	solvePlain    bool
	solveParallel bool
	solveTiming   bool
)

// solveCmd solves one or more days
var solveCmd = &cobra.Command{
	Use:   "solve [day...]",
	Short: "Solve the given days (default: every day)",
	Long: `Reads each day's input file, solves both parts and prints:

  --- Day 1: Sonar Sweep ---
  	silver - increases 7
  	gold   - increases 5

A malformed or missing input aborts with a non-zero exit code.

Examples:
  aoc solve
  aoc solve 3
  aoc solve 4 --input ./sample.txt`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveInputDir, "input-dir", "", "Directory holding the input files (overrides inputs.dir)")
	solveCmd.Flags().StringVar(&solveInput, "input", "", "Input file for a single day")
	solveCmd.Flags().BoolVar(&solvePlain, "plain", false, "Print without colors")
	solveCmd.Flags().BoolVar(&solveParallel, "parallel", false, "Solve days concurrently (also runner.parallel)")
	solveCmd.Flags().BoolVar(&solveTiming, "timing", false, "Show how long each day took")
}

// parseDays turns CLI arguments into day numbers.
func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, a := range args {
		d, err := strconv.Atoi(a)
		if err != nil || d < 1 || d > 25 {
			return nil, fmt.Errorf("invalid day %q (want 1-25)", a)
		}
		days = append(days, d)
	}
	return days, nil
}

// signalContext returns a context cancelled on SIGINT/SIGTERM or after timeout.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	if d := effectiveTimeout(); d > 0 {
		tctx, cancel := context.WithTimeout(ctx, d)
		return tctx, func() {
			cancel()
			stop()
		}
	}
	return ctx, stop
}

func runSolve(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}
	if solveInput != "" && len(days) != 1 {
		return fmt.Errorf("--input needs exactly one day")
	}
	if solveInputDir != "" {
		cfg.Inputs.Dir = solveInputDir
	}

	opts := runner.Options{Parallel: solveParallel || cfg.Runner.Parallel}
	if solveInput != "" {
		opts.Inputs = map[int]string{days[0]: solveInput}
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	results, err := runner.New(cfg, nil).Run(ctx, days, opts)
	if err != nil {
		return err
	}
	return report.New(cmd.OutOrStdout(), report.Options{Plain: solvePlain, Timing: solveTiming}).Render(results)
}
