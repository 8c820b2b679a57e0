// Package dive steers a submarine through a list of planned moves and
// reports where it ends up.
package dive

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"aoc2021/internal/input"
	"aoc2021/internal/logging"
	"aoc2021/internal/puzzle"
)

// ErrUnknownInstruction is returned for a keyword other than forward, down or up.
var ErrUnknownInstruction = errors.New("unknown instruction")

// Kind enumerates the instruction keywords.
type Kind int

const (
	Forward Kind = iota
	Down
	Up
)

func (k Kind) String() string {
	switch k {
	case Forward:
		return "forward"
	case Down:
		return "down"
	case Up:
		return "up"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Instruction is a single move with its magnitude.
type Instruction struct {
	Kind      Kind
	Magnitude int
}

// Submarine is the position accumulator. The zero value is at the surface.
type Submarine struct {
	Horizontal int
	Depth      int
	Aim        int
}

// Execute applies in using the direct rules: up and down move the depth.
func (s *Submarine) Execute(in Instruction) {
	switch in.Kind {
	case Forward:
		s.Horizontal += in.Magnitude
	case Down:
		s.Depth += in.Magnitude
	case Up:
		s.Depth -= in.Magnitude
	}
}

// ExecuteWithAim applies in using the aim rules: up and down turn the aim,
// forward moves ahead and dives by magnitude×aim.
func (s *Submarine) ExecuteWithAim(in Instruction) {
	switch in.Kind {
	case Forward:
		s.Horizontal += in.Magnitude
		s.Depth += in.Magnitude * s.Aim
	case Down:
		s.Aim += in.Magnitude
	case Up:
		s.Aim -= in.Magnitude
	}
}

// Position returns |horizontal × depth|.
func (s Submarine) Position() int {
	p := s.Horizontal * s.Depth
	if p < 0 {
		return -p
	}
	return p
}

// Pilot folds instructions over a fresh submarine.
func Pilot(instructions []Instruction, withAim bool) Submarine {
	var sub Submarine
	for _, in := range instructions {
		if withAim {
			sub.ExecuteWithAim(in)
		} else {
			sub.Execute(in)
		}
	}
	return sub
}

// ParseInstruction parses a line such as "forward 5".
func ParseInstruction(line string) (Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Instruction{}, fmt.Errorf("%w: expected \"<keyword> <magnitude>\", got %q", input.ErrMalformed, line)
	}

	var kind Kind
	switch fields[0] {
	case "forward":
		kind = Forward
	case "down":
		kind = Down
	case "up":
		kind = Up
	default:
		return Instruction{}, fmt.Errorf("%w: %q", ErrUnknownInstruction, fields[0])
	}

	magnitude, err := input.ParseInt[int](fields[1])
	if err != nil {
		return Instruction{}, err
	}
	if magnitude < 0 {
		return Instruction{}, fmt.Errorf("%w: negative magnitude %d", input.ErrMalformed, magnitude)
	}
	return Instruction{Kind: kind, Magnitude: magnitude}, nil
}

// Parse reads one instruction per line, skipping blank lines.
func Parse(data []byte) ([]Instruction, error) {
	var instructions []Instruction
	for i, line := range input.Lines(data) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		in, err := ParseInstruction(line)
		if err != nil {
			return nil, fmt.Errorf("dive: line %d: %w", i+1, err)
		}
		instructions = append(instructions, in)
	}
	return instructions, nil
}

// Solver is the day 2 solver.
type Solver struct{}

func New() *Solver { return &Solver{} }

func (s *Solver) Day() int      { return 2 }
func (s *Solver) Title() string { return "Dive!" }

func (s *Solver) Solve(data []byte) (puzzle.Result, error) {
	start := time.Now()
	instructions, err := Parse(data)
	if err != nil {
		return puzzle.Result{}, err
	}

	direct := Pilot(instructions, false)
	aimed := Pilot(instructions, true)
	logging.DiveDebug("%d instructions: direct %+v, aimed %+v", len(instructions), direct, aimed)

	return puzzle.Result{
		Day:     s.Day(),
		Title:   s.Title(),
		Silver:  puzzle.Answer{Label: "horizontal position", Value: direct.Position()},
		Gold:    puzzle.Answer{Label: "horizontal position", Value: aimed.Position()},
		Elapsed: time.Since(start),
	}, nil
}
