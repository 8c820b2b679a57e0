// Package puzzle defines what a daily solver looks like and keeps the
// registry the runner and CLI resolve days from.
package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// ErrUnknownDay is returned when no solver is registered for a day.
var ErrUnknownDay = errors.New("unknown day")

// Answer is one of the two statistics a day produces.
type Answer struct {
	Label  string // e.g. "increases", "power consumption"
	Value  int
	Detail string // optional extra context, e.g. "id 3"
}

// Result is the outcome of solving a single day.
type Result struct {
	Day     int
	Title   string
	Silver  Answer
	Gold    Answer
	Elapsed time.Duration
}

// Solver solves one day from its raw input bytes.
// Implementations must not keep state between calls to Solve.
type Solver interface {
	Day() int
	Title() string
	Solve(input []byte) (Result, error)
}

// Registry maps day numbers to solvers.
type Registry struct {
	mu      sync.RWMutex
	solvers map[int]Solver
}

// NewRegistry creates a registry holding the given solvers.
func NewRegistry(solvers ...Solver) *Registry {
	r := &Registry{solvers: make(map[int]Solver)}
	for _, s := range solvers {
		r.Register(s)
	}
	return r
}

// Register adds s, replacing any solver already registered for its day.
func (r *Registry) Register(s Solver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.solvers[s.Day()] = s
}

// Get returns the solver for day.
func (r *Registry) Get(day int) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Header renders the per-day banner, e.g. "--- Day 1: Sonar Sweep ---".
func (r Result) Header() string {
	return fmt.Sprintf("--- Day %d: %s ---", r.Day, r.Title)
}

// String renders the answer as "<label> <value>", prefixed by the detail
// when there is one: "id 3, score 1924".
func (a Answer) String() string {
	if a.Detail != "" {
		return fmt.Sprintf("%s, %s %d", a.Detail, a.Label, a.Value)
	}
	return fmt.Sprintf("%s %d", a.Label, a.Value)
}
