// Package bingo plays bingo against a set of square boards and reports the
// order in which the boards win.
package bingo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"aoc2021/internal/input"
	"aoc2021/internal/logging"
	"aoc2021/internal/puzzle"
)

// DefaultSize is the side length of a standard board.
const DefaultSize = 5

var (
	// ErrBoardShape is returned when board values do not form a square of side >= 2.
	ErrBoardShape = errors.New("board is not a square of side 2 or more")
	// ErrNoWinner is returned when no board wins with the given draws.
	ErrNoWinner = errors.New("no board won")
)

// Board is one bingo card. Once won it ignores further draws.
type Board struct {
	id     int
	size   int
	values []int
	marked []bool
	won    bool
}

// Win records a board winning on a draw.
type Win struct {
	BoardID int
	Draw    int
	Score   int
}

// NewBoard builds a board from its values in row-major order.
func NewBoard(id int, values []int) (*Board, error) {
	size := isqrt(len(values))
	if size < 2 || size*size != len(values) {
		return nil, fmt.Errorf("%w: %d values", ErrBoardShape, len(values))
	}
	return &Board{
		id:     id,
		size:   size,
		values: append([]int(nil), values...),
		marked: make([]bool, len(values)),
	}, nil
}

func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

func (b *Board) ID() int   { return b.id }
func (b *Board) Size() int { return b.size }
func (b *Board) Won() bool { return b.won }

// Draw marks value on the board and reports whether that completed a row or
// a column. The score of a winning draw is the sum of the unmarked values
// times value. Draws on a board that has already won do nothing.
func (b *Board) Draw(value int) (score int, won bool) {
	if b.won {
		return 0, false
	}
	for i, v := range b.values {
		if v == value {
			b.marked[i] = true
			break
		}
	}
	if b.rowComplete() || b.columnComplete() {
		b.won = true
		return b.score(value), true
	}
	return 0, false
}

func (b *Board) rowComplete() bool {
	for row := 0; row < b.size; row++ {
		full := true
		for col := 0; col < b.size; col++ {
			if !b.marked[row*b.size+col] {
				full = false
				break
			}
		}
		if full {
			return true
		}
	}
	return false
}

func (b *Board) columnComplete() bool {
	for col := 0; col < b.size; col++ {
		full := true
		for row := 0; row < b.size; row++ {
			if !b.marked[row*b.size+col] {
				full = false
				break
			}
		}
		if full {
			return true
		}
	}
	return false
}

func (b *Board) score(last int) int {
	sum := 0
	for i, v := range b.values {
		if !b.marked[i] {
			sum += v
		}
	}
	return sum * last
}

// Play runs every draw over every board that has not won yet and returns
// the wins in the order they happened.
func Play(draws []int, boards []*Board) []Win {
	var wins []Win
	for _, d := range draws {
		for _, b := range boards {
			if b.won {
				continue
			}
			if score, won := b.Draw(d); won {
				logging.BingoDebug("board %d won on %d with score %d", b.id, d, score)
				wins = append(wins, Win{BoardID: b.id, Draw: d, Score: score})
			}
		}
		if len(wins) == len(boards) {
			break
		}
	}
	return wins
}

// Parse reads the comma-separated draw line followed by boards of size rows
// with size values each. Blank lines between boards are optional.
func Parse(data []byte, size int) ([]int, []*Board, error) {
	if size < 2 {
		return nil, nil, fmt.Errorf("giant squid: %w: side %d", ErrBoardShape, size)
	}
	lines := input.Lines(data)
	first := 0
	for first < len(lines) && strings.TrimSpace(lines[first]) == "" {
		first++
	}
	if first == len(lines) {
		return nil, nil, fmt.Errorf("giant squid: %w", input.ErrEmpty)
	}

	var draws []int
	for _, tok := range strings.Split(strings.TrimRight(strings.TrimSpace(lines[first]), ","), ",") {
		n, err := input.ParseInt[int](strings.TrimSpace(tok))
		if err != nil {
			return nil, nil, fmt.Errorf("giant squid: draws: %w", err)
		}
		draws = append(draws, n)
	}

	grid, err := input.Grid([]byte(strings.Join(lines[first+1:], "\n")))
	if err != nil {
		return nil, nil, fmt.Errorf("giant squid: boards: %w", err)
	}
	var rows [][]int
	for i, row := range grid {
		if len(row) == 0 {
			continue
		}
		if len(row) != size {
			return nil, nil, fmt.Errorf("giant squid: line %d: %w: %d values, want %d", first+2+i, input.ErrMalformed, len(row), size)
		}
		rows = append(rows, row)
	}
	if len(rows)%size != 0 {
		return nil, nil, fmt.Errorf("giant squid: %w: %d board rows is not a multiple of %d", input.ErrMalformed, len(rows), size)
	}

	boards := make([]*Board, 0, len(rows)/size)
	for start := 0; start < len(rows); start += size {
		values := make([]int, 0, size*size)
		for _, row := range rows[start : start+size] {
			values = append(values, row...)
		}
		b, err := NewBoard(len(boards), values)
		if err != nil {
			return nil, nil, fmt.Errorf("giant squid: board %d: %w", len(boards), err)
		}
		boards = append(boards, b)
	}
	return draws, boards, nil
}

// Solver is the day 4 solver.
type Solver struct {
	Size int
}

// New returns a solver for boards of the given side; zero means DefaultSize.
func New(size int) *Solver {
	if size <= 0 {
		size = DefaultSize
	}
	return &Solver{Size: size}
}

func (s *Solver) Day() int      { return 4 }
func (s *Solver) Title() string { return "Giant Squid" }

func (s *Solver) Solve(data []byte) (puzzle.Result, error) {
	start := time.Now()
	draws, boards, err := Parse(data, s.Size)
	if err != nil {
		return puzzle.Result{}, err
	}

	wins := Play(draws, boards)
	if len(wins) == 0 {
		return puzzle.Result{}, fmt.Errorf("giant squid: %w after %d draws on %d boards", ErrNoWinner, len(draws), len(boards))
	}
	first, last := wins[0], wins[len(wins)-1]

	return puzzle.Result{
		Day:     s.Day(),
		Title:   s.Title(),
		Silver:  puzzle.Answer{Label: "score", Value: first.Score},
		Gold:    puzzle.Answer{Label: "score", Value: last.Score, Detail: fmt.Sprintf("id %d", last.BoardID)},
		Elapsed: time.Since(start),
	}, nil
}
