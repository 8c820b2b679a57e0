// Package runner resolves input files for the requested days, runs the
// solvers and returns their results in day order.
package runner

import (
	"context"
	"fmt"
	"time"

	"aoc2021/internal/config"
	"aoc2021/internal/input"
	"aoc2021/internal/logging"
	"aoc2021/internal/puzzle"
	"aoc2021/internal/puzzle/bingo"
	"aoc2021/internal/puzzle/diagnostic"
	"aoc2021/internal/puzzle/dive"
	"aoc2021/internal/puzzle/sonar"

	"golang.org/x/sync/errgroup"
)

// DefaultRegistry registers every solver, shaped by cfg.
func DefaultRegistry(cfg *config.Config) *puzzle.Registry {
	return puzzle.NewRegistry(
		sonar.New(cfg.Puzzles.SonarWindow),
		dive.New(),
		diagnostic.New(),
		bingo.New(cfg.Puzzles.BingoSize),
	)
}

// Options tune a single Run call.
type Options struct {
	// Parallel solves the days concurrently.
	Parallel bool
	// Inputs overrides the configured input path per day.
	Inputs map[int]string
}

// Runner solves days from their configured inputs.
type Runner struct {
	cfg      *config.Config
	registry *puzzle.Registry
}

// New creates a runner. A nil registry means DefaultRegistry(cfg).
func New(cfg *config.Config, registry *puzzle.Registry) *Runner {
	if registry == nil {
		registry = DefaultRegistry(cfg)
	}
	return &Runner{cfg: cfg, registry: registry}
}

// Registry returns the solvers this runner knows about.
func (r *Runner) Registry() *puzzle.Registry {
	return r.registry
}

// InputPath returns the input file for day, preferring override when set.
func (r *Runner) InputPath(day int, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return r.cfg.InputPath(day)
}

// Run solves days, or every registered day when days is empty. The first
// failure aborts the run.
func (r *Runner) Run(ctx context.Context, days []int, opts Options) ([]puzzle.Result, error) {
	if len(days) == 0 {
		days = r.registry.Days()
	}
	for _, d := range days {
		if _, err := r.registry.Get(d); err != nil {
			return nil, err
		}
	}

	logging.Runner("solving %d day(s), parallel=%v", len(days), opts.Parallel)
	results := make([]puzzle.Result, len(days))

	if !opts.Parallel {
		for i, d := range days {
			logging.RunnerDebug("day %d: starting", d)
			res, err := r.SolveDay(ctx, d, opts.Inputs[d])
			if err != nil {
				logging.RunnerWarn("run aborted at day %d: %v", d, err)
				return nil, err
			}
			results[i] = res
		}
		return results, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for i, d := range days {
		i, d := i, d
		eg.Go(func() error {
			logging.RunnerDebug("day %d: starting", d)
			res, err := r.SolveDay(egCtx, d, opts.Inputs[d])
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		logging.RunnerWarn("parallel run aborted: %v", err)
		return nil, err
	}
	return results, nil
}

// SolveDay reads the input for one day and solves it.
func (r *Runner) SolveDay(ctx context.Context, day int, override string) (puzzle.Result, error) {
	if err := ctx.Err(); err != nil {
		return puzzle.Result{}, err
	}

	solver, err := r.registry.Get(day)
	if err != nil {
		return puzzle.Result{}, err
	}
	path, err := r.InputPath(day, override)
	if err != nil {
		return puzzle.Result{}, err
	}

	data, err := input.ReadFile(path)
	logging.AuditForDay(day).InputRead(path, len(data), err)
	if err != nil {
		return puzzle.Result{}, fmt.Errorf("day %d: %w", day, err)
	}
	return r.solve(solver, path, data)
}

// SolveData solves day from input bytes already in memory.
func (r *Runner) SolveData(day int, data []byte) (puzzle.Result, error) {
	solver, err := r.registry.Get(day)
	if err != nil {
		return puzzle.Result{}, err
	}
	return r.solve(solver, "<memory>", data)
}

func (r *Runner) solve(solver puzzle.Solver, path string, data []byte) (puzzle.Result, error) {
	log := logging.Get(logging.CategoryRunner).With("day", solver.Day())
	start := time.Now()
	res, err := solver.Solve(data)
	logging.AuditForDay(solver.Day()).Solve(path, time.Since(start), err)
	if err != nil {
		log.Warn("solve failed for %s: %v", path, err)
		return puzzle.Result{}, fmt.Errorf("day %d (%s): %w", solver.Day(), path, err)
	}
	if res.Elapsed == 0 {
		res.Elapsed = time.Since(start)
	}
	log.Debug("solved %s in %s: silver=%d gold=%d", path, res.Elapsed, res.Silver.Value, res.Gold.Value)
	return res, nil
}
