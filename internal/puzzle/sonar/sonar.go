// Package sonar counts how often a sequence of depth readings increases,
// both reading to reading and over sliding window sums.
package sonar

import (
	"fmt"
	"time"

	"aoc2021/internal/input"
	"aoc2021/internal/logging"
	"aoc2021/internal/puzzle"
)

// DefaultWindow is the sliding window width used for the gold answer.
const DefaultWindow = 3

// Increases counts adjacent pairs where the later reading is strictly larger.
func Increases(depths []int) int {
	increases := 0
	for i := 1; i < len(depths); i++ {
		if depths[i] > depths[i-1] {
			increases++
		}
	}
	return increases
}

// WindowIncreases counts adjacent windows of the given width whose sum is
// strictly larger than the previous window's. Sequences with fewer than
// window+1 readings have nothing to compare and yield 0.
func WindowIncreases(depths []int, window int) int {
	if window < 1 || len(depths) < window+1 {
		return 0
	}
	sum := 0
	for _, d := range depths[:window] {
		sum += d
	}
	increases := 0
	for i := window; i < len(depths); i++ {
		next := sum + depths[i] - depths[i-window]
		if next > sum {
			increases++
		}
		sum = next
	}
	return increases
}

// Parse reads one depth per line.
func Parse(data []byte) ([]int, error) {
	depths, err := input.Numbers[int](data)
	if err != nil {
		return nil, fmt.Errorf("sonar sweep: %w", err)
	}
	return depths, nil
}

// Solver is the day 1 solver.
type Solver struct {
	Window int
}

// New returns a solver using the given window width; zero means DefaultWindow.
func New(window int) *Solver {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Solver{Window: window}
}

func (s *Solver) Day() int      { return 1 }
func (s *Solver) Title() string { return "Sonar Sweep" }

func (s *Solver) Solve(data []byte) (puzzle.Result, error) {
	start := time.Now()
	depths, err := Parse(data)
	if err != nil {
		return puzzle.Result{}, err
	}
	logging.SonarDebug("parsed %d depth readings, window %d", len(depths), s.Window)

	return puzzle.Result{
		Day:     s.Day(),
		Title:   s.Title(),
		Silver:  puzzle.Answer{Label: "increases", Value: Increases(depths)},
		Gold:    puzzle.Answer{Label: "increases", Value: WindowIncreases(depths, s.Window)},
		Elapsed: time.Since(start),
	}, nil
}
