package sonar

import (
	"testing"

	"aoc2021/internal/input"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var example = []int{199, 200, 208, 210, 200, 207, 240, 269, 260, 263}

func TestIncreases(t *testing.T) {
	tests := []struct {
		name   string
		depths []int
		want   int
	}{
		{"none", nil, 0},
		{"one", []int{10}, 0},
		{"once incremented", []int{10, 20}, 1},
		{"thrice incremented", []int{10, 20, 30, 40}, 3},
		{"no increases", []int{50, 40, 40, 30, 20, 10}, 0},
		{"example", example, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Increases(tt.depths))
		})
	}
}

func TestWindowIncreases(t *testing.T) {
	assert.Equal(t, 5, WindowIncreases(example, 3))
	assert.Equal(t, 0, WindowIncreases(nil, 3))
	assert.Equal(t, 0, WindowIncreases([]int{1, 2, 3}, 3))
	assert.Equal(t, 1, WindowIncreases([]int{1, 2, 3, 4}, 3))
	assert.Equal(t, 0, WindowIncreases([]int{5, 5, 5, 5}, 3))
	// width 1 is the plain pairwise count
	assert.Equal(t, Increases(example), WindowIncreases(example, 1))
}

func TestParse(t *testing.T) {
	depths, err := Parse([]byte("199\r\n200\r\n208\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{199, 200, 208}, depths)

	_, err = Parse([]byte("199\nabc\n"))
	assert.ErrorIs(t, err, input.ErrMalformed)
}

func TestSolver(t *testing.T) {
	data := []byte("199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n")
	s := New(0)

	first, err := s.Solve(data)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Day)
	assert.Equal(t, "Sonar Sweep", first.Title)
	assert.Equal(t, 7, first.Silver.Value)
	assert.Equal(t, 5, first.Gold.Value)

	second, err := s.Solve(data)
	require.NoError(t, err)
	assert.Equal(t, first.Silver, second.Silver)
	assert.Equal(t, first.Gold, second.Gold)
}
