package main

import (
	"aoc2021/internal/logging"
	"aoc2021/internal/report"
	"aoc2021/internal/runner"
	"aoc2021/internal/watch"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
)

var watchInput string

// watchCmd re-solves a day whenever its input file changes
var watchCmd = &cobra.Command{
	Use:   "watch [day]",
	Short: "Re-solve a day every time its input file is saved",
	Long: `Solves the day once, then keeps watching its input file and prints
fresh answers after every save. Parse errors are reported but do not stop
the watch. Press Ctrl+C to exit.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchInput, "input", "", "Input file to watch (default: configured file for the day)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}
	day := days[0]

	r := runner.New(cfg, nil)
	path, err := r.InputPath(day, watchInput)
	if err != nil {
		return err
	}
	out := report.New(cmd.OutOrStdout(), report.Options{Timing: true})

	// Serializes output between the initial solve and watcher callbacks.
	var mu sync.Mutex
	solve := func(ctx context.Context, p string) {
		mu.Lock()
		defer mu.Unlock()
		result, err := r.SolveDay(ctx, day, p)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return
		}
		if err := out.RenderOne(result); err != nil {
			logging.WatchError("render failed: %v", err)
		}
	}

	// Watch mode has no timeout, only signals.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(solve, path)
	if err != nil {
		return err
	}

	solve(ctx, path)

	if err := w.Start(ctx); err != nil {
		w.Stop()
		return err
	}
	defer w.Stop()

	mu.Lock()
	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s (Ctrl+C to stop)\n", path)
	mu.Unlock()

	<-ctx.Done()
	return nil
}
