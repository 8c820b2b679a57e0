package bingo

import (
	"testing"

	"aoc2021/internal/input"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7
`

func TestRowWin(t *testing.T) {
	board, err := NewBoard(0, []int{1, 2, 3, 4})
	require.NoError(t, err)

	score, won := board.Draw(1)
	assert.False(t, won)
	assert.Zero(t, score)

	score, won = board.Draw(2)
	assert.True(t, won)
	assert.Equal(t, 14, score)
	assert.True(t, board.Won())
}

func TestColumnWin(t *testing.T) {
	board, err := NewBoard(0, []int{1, 2, 3, 4})
	require.NoError(t, err)

	_, won := board.Draw(2)
	assert.False(t, won)

	score, won := board.Draw(4)
	assert.True(t, won)
	assert.Equal(t, 16, score)
}

func TestWonIsTerminal(t *testing.T) {
	board, err := NewBoard(7, []int{1, 2, 3, 4})
	require.NoError(t, err)
	board.Draw(1)
	board.Draw(2)

	score, won := board.Draw(3)
	assert.False(t, won)
	assert.Zero(t, score)
	assert.True(t, board.Won())
	assert.Equal(t, 7, board.ID())
	assert.Equal(t, 2, board.Size())
}

func TestDrawMissingValue(t *testing.T) {
	board, err := NewBoard(0, []int{1, 2, 3, 4})
	require.NoError(t, err)
	_, won := board.Draw(99)
	assert.False(t, won)
}

func TestNewBoardShape(t *testing.T) {
	for _, n := range []int{0, 1, 3, 5, 8} {
		_, err := NewBoard(0, make([]int, n))
		assert.ErrorIs(t, err, ErrBoardShape, "%d values", n)
	}
	b, err := NewBoard(0, make([]int, 25))
	require.NoError(t, err)
	assert.Equal(t, 5, b.Size())
}

func TestNewBoardCopiesValues(t *testing.T) {
	values := []int{1, 2, 3, 4}
	b, err := NewBoard(0, values)
	require.NoError(t, err)
	values[0] = 9

	b.Draw(1)
	score, won := b.Draw(2)
	assert.True(t, won)
	assert.Equal(t, 14, score)
}

func TestPlayWinOrder(t *testing.T) {
	draws, boards, err := Parse([]byte(exampleInput), DefaultSize)
	require.NoError(t, err)
	require.Len(t, boards, 3)
	assert.Len(t, draws, 27)

	wins := Play(draws, boards)
	want := []Win{
		{BoardID: 2, Draw: 24, Score: 4512},
		{BoardID: 0, Draw: 16, Score: 2192},
		{BoardID: 1, Draw: 13, Score: 1924},
	}
	if diff := cmp.Diff(want, wins); diff != "" {
		t.Errorf("Play mismatch (-want +got):\n%s", diff)
	}
}

func TestPlayNoWinner(t *testing.T) {
	b, err := NewBoard(0, []int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Empty(t, Play([]int{1, 4}, []*Board{b}))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", input.ErrEmpty},
		{"bad draw", "1,x,3\n\n1 2\n3 4\n", input.ErrMalformed},
		{"partial board", "1,2\n\n1 2\n3 4\n\n5 6\n", input.ErrMalformed},
		{"bad cell", "1,2\n\n1 2\n3 q\n", input.ErrMalformed},
		{"short row", "1,2\n\n1 2\n3\n4 5\n6 7\n", input.ErrMalformed},
		{"only blank lines", "\n\n", input.ErrEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse([]byte(tt.in), 2)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseRejectsTinyBoards(t *testing.T) {
	_, _, err := Parse([]byte("1,2\n\n1\n"), 1)
	assert.ErrorIs(t, err, ErrBoardShape)
}

func TestParseBoardsWithoutBlankLines(t *testing.T) {
	draws, boards, err := Parse([]byte("\n4, 3\n1 2\n3 4\n5 6\n7 8\n"), 2)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3}, draws)
	require.Len(t, boards, 2)
	assert.Equal(t, 1, boards[1].ID())
}

func TestSolver(t *testing.T) {
	res, err := New(0).Solve([]byte(exampleInput))
	require.NoError(t, err)
	assert.Equal(t, "Giant Squid", res.Title)
	assert.Equal(t, 4512, res.Silver.Value)
	assert.Equal(t, 1924, res.Gold.Value)
	assert.Equal(t, "id 1", res.Gold.Detail)
}

func TestSolverNoWinner(t *testing.T) {
	_, err := New(2).Solve([]byte("9\n\n1 2\n3 4\n"))
	assert.ErrorIs(t, err, ErrNoWinner)
}
