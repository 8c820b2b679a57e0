// Package diagnostic decodes the submarine's binary diagnostic report.
//
// Every report line is a fixed-width bit pattern. The gamma rate takes the
// majority bit at each position and the epsilon rate is its complement. The
// oxygen and CO2 ratings narrow the report down to a single pattern by
// repeatedly keeping the majority (oxygen) or minority (CO2) partition,
// one bit position at a time from the most significant end.
package diagnostic

import (
	"fmt"
	"strings"
	"time"

	"aoc2021/internal/input"
	"aoc2021/internal/logging"
	"aoc2021/internal/puzzle"
)

// MaxWidth is the widest pattern a uint64 can hold.
const MaxWidth = 64

// Decoder holds the rates and ratings derived from one report.
type Decoder struct {
	Width   int
	Gamma   uint64
	Epsilon uint64
	Oxygen  uint64
	CO2     uint64
}

// NewDecoder returns a decoder for patterns of the given width.
func NewDecoder(width int) *Decoder {
	return &Decoder{Width: width}
}

// Decode derives every rate and rating from values.
func (d *Decoder) Decode(values []uint64) {
	counts := BitCounts(values, d.Width)
	d.Gamma, d.Epsilon = Rates(counts, len(values), d.Width)
	d.Oxygen = OxygenRating(values, d.Width)
	d.CO2 = CO2Rating(values, d.Width)
}

// PowerConsumption is gamma × epsilon.
func (d *Decoder) PowerConsumption() uint64 {
	return d.Gamma * d.Epsilon
}

// LifeSupportRating is oxygen × CO2.
func (d *Decoder) LifeSupportRating() uint64 {
	return d.Oxygen * d.CO2
}

// BitCounts returns, per bit position, how many values have that bit set.
// Index 0 is the least significant bit.
func BitCounts(values []uint64, width int) []int {
	counts := make([]int, width)
	for i := range counts {
		counts[i] = bitCount(values, i)
	}
	return counts
}

func bitCount(values []uint64, bit int) int {
	n := 0
	for _, v := range values {
		if bitRead(v, bit) {
			n++
		}
	}
	return n
}

// Rates builds gamma from the bits set in more than half of total values
// and returns it with its width-masked complement, epsilon.
func Rates(counts []int, total, width int) (gamma, epsilon uint64) {
	for i, c := range counts {
		if c > total/2 {
			gamma |= 1 << uint(i)
		}
	}
	epsilon = ^gamma & mask(width)
	return gamma, epsilon
}

// OxygenRating keeps the majority partition at each bit; ties keep the 1s.
func OxygenRating(values []uint64, width int) uint64 {
	return filterRating(values, width, true)
}

// CO2Rating keeps the minority partition at each bit; ties keep the 0s.
func CO2Rating(values []uint64, width int) uint64 {
	return filterRating(values, width, false)
}

// filterRating partitions values one bit at a time and returns the value
// left once a partition leaves exactly one. Every bit is filtered before
// the count is checked, so a single input value can still be dropped. It
// returns 0 when the bits run out, or the candidates run dry, first.
func filterRating(values []uint64, width int, majority bool) uint64 {
	candidates := append([]uint64(nil), values...)
	for bit := width - 1; bit >= 0; bit-- {
		onesWin := bitCount(candidates, bit)*2 >= len(candidates)
		keepOnes := onesWin == majority

		kept := candidates[:0]
		for _, v := range candidates {
			if bitRead(v, bit) == keepOnes {
				kept = append(kept, v)
			}
		}
		candidates = kept

		if len(candidates) == 1 {
			return candidates[0]
		}
	}
	return 0
}

func bitRead(v uint64, bit int) bool {
	return v&(1<<uint(bit)) != 0
}

func mask(width int) uint64 {
	if width >= MaxWidth {
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}

// Format prints v as a zero-padded bit string of the given width.
func Format(v uint64, width int) string {
	var b strings.Builder
	for bit := width - 1; bit >= 0; bit-- {
		if bitRead(v, bit) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Parse reads one bit pattern per line. The width of the first non-blank
// line is the width of the report.
func Parse(data []byte) (values []uint64, width int, err error) {
	for i, line := range input.Lines(data) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if width == 0 {
			width = len(line)
			if width > MaxWidth {
				return nil, 0, fmt.Errorf("binary diagnostic: %w: width %d exceeds %d bits", input.ErrMalformed, width, MaxWidth)
			}
		}
		if len(line) != width {
			return nil, 0, fmt.Errorf("binary diagnostic: line %d: %w: width %d, want %d", i+1, input.ErrMalformed, len(line), width)
		}
		v, ok := fromBits(line)
		if !ok {
			return nil, 0, fmt.Errorf("binary diagnostic: line %d: %w: %q is not binary", i+1, input.ErrMalformed, line)
		}
		values = append(values, v)
	}
	if width == 0 {
		return nil, 0, fmt.Errorf("binary diagnostic: %w", input.ErrEmpty)
	}
	return values, width, nil
}

// fromBits reads a string of 0s and 1s, most significant bit first.
func fromBits(line string) (uint64, bool) {
	digits := input.Digits(line)
	if len(digits) != len(line) {
		return 0, false
	}
	var v uint64
	for _, d := range digits {
		if d > 1 {
			return 0, false
		}
		v = v<<1 | uint64(d)
	}
	return v, true
}

// Solver is the day 3 solver.
type Solver struct{}

func New() *Solver { return &Solver{} }

func (s *Solver) Day() int      { return 3 }
func (s *Solver) Title() string { return "Binary Diagnostic" }

func (s *Solver) Solve(data []byte) (puzzle.Result, error) {
	start := time.Now()
	values, width, err := Parse(data)
	if err != nil {
		return puzzle.Result{}, err
	}

	d := NewDecoder(width)
	d.Decode(values)
	logging.DiagnosticDebug("gamma %s epsilon %s oxygen %s co2 %s",
		Format(d.Gamma, width), Format(d.Epsilon, width), Format(d.Oxygen, width), Format(d.CO2, width))

	return puzzle.Result{
		Day:     s.Day(),
		Title:   s.Title(),
		Silver:  puzzle.Answer{Label: "power consumption", Value: int(d.PowerConsumption())},
		Gold:    puzzle.Answer{Label: "life support rating", Value: int(d.LifeSupportRating())},
		Elapsed: time.Since(start),
	}, nil
}
