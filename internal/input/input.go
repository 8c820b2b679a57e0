// Package input loads puzzle input files and splits them into the small
// shapes the daily solvers work on: lines, numbers, digits and grids.
package input

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	// ErrMalformed marks input that does not honor a day's format.
	ErrMalformed = errors.New("malformed input")
	// ErrEmpty marks an input with no usable content.
	ErrEmpty = errors.New("empty input")
)

// ReadFile reads a whole input file.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}
	return data, nil
}

// Lines splits data on \n, tolerating \r\n. A single trailing empty line is dropped.
func Lines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Fields returns the whitespace separated tokens of data.
func Fields(data []byte) []string {
	return strings.Fields(string(data))
}

// Numbers parses one number per line. Blank lines are skipped.
func Numbers[T constraints.Integer](data []byte) ([]T, error) {
	var out []T
	for i, line := range Lines(data) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n, err := ParseInt[T](line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseInt parses a base 10 token into T.
func ParseInt[T constraints.Integer](s string) (T, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformed, s)
	}
	var zero T
	v := T(n)
	if int64(v) != n || (n < 0 && zero-1 > zero) {
		return 0, fmt.Errorf("%w: %q out of range", ErrMalformed, s)
	}
	return v, nil
}

// Digits returns every decimal digit in s, ignoring anything else.
func Digits(s string) []int {
	var out []int
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, int(r-'0'))
		}
	}
	return out
}

// Grid parses rows of space separated integers. Rows may differ in length.
func Grid(data []byte) ([][]int, error) {
	var grid [][]int
	for i, line := range Lines(data) {
		row := make([]int, 0, 8)
		for _, tok := range strings.Fields(line) {
			n, err := ParseInt[int](tok)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			row = append(row, n)
		}
		grid = append(grid, row)
	}
	return grid, nil
}
