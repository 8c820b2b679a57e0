package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"aoc2021/internal/config"
	"aoc2021/internal/input"
	"aoc2021/internal/puzzle"
	"aoc2021/internal/puzzle/dive"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Inputs.Dir = "testdata"
	return cfg
}

var wantExamples = []puzzle.Result{
	{Day: 1, Title: "Sonar Sweep",
		Silver: puzzle.Answer{Label: "increases", Value: 7},
		Gold:   puzzle.Answer{Label: "increases", Value: 5}},
	{Day: 2, Title: "Dive!",
		Silver: puzzle.Answer{Label: "horizontal position", Value: 150},
		Gold:   puzzle.Answer{Label: "horizontal position", Value: 900}},
	{Day: 3, Title: "Binary Diagnostic",
		Silver: puzzle.Answer{Label: "power consumption", Value: 198},
		Gold:   puzzle.Answer{Label: "life support rating", Value: 230}},
	{Day: 4, Title: "Giant Squid",
		Silver: puzzle.Answer{Label: "score", Value: 4512},
		Gold:   puzzle.Answer{Label: "score", Value: 1924, Detail: "id 1"}},
}

var ignoreElapsed = cmpopts.IgnoreFields(puzzle.Result{}, "Elapsed")

func TestRunAllDays(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		name := "sequential"
		if parallel {
			name = "parallel"
		}
		t.Run(name, func(t *testing.T) {
			r := New(testConfig(), nil)
			got, err := r.Run(context.Background(), nil, Options{Parallel: parallel})
			require.NoError(t, err)
			if diff := cmp.Diff(wantExamples, got, ignoreElapsed); diff != "" {
				t.Errorf("Run mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunKeepsRequestedOrder(t *testing.T) {
	r := New(testConfig(), nil)
	got, err := r.Run(context.Background(), []int{3, 1}, Options{Parallel: true})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].Day)
	assert.Equal(t, 1, got[1].Day)
}

func TestRunIsIdempotent(t *testing.T) {
	r := New(testConfig(), nil)
	first, err := r.Run(context.Background(), nil, Options{})
	require.NoError(t, err)
	second, err := r.Run(context.Background(), nil, Options{})
	require.NoError(t, err)
	if diff := cmp.Diff(first, second, ignoreElapsed); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
}

func TestRunUnknownDay(t *testing.T) {
	r := New(testConfig(), nil)
	_, err := r.Run(context.Background(), []int{1, 25}, Options{})
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestRunMissingInput(t *testing.T) {
	cfg := testConfig()
	cfg.Inputs.Dir = t.TempDir()

	r := New(cfg, nil)
	_, err := r.Run(context.Background(), []int{2}, Options{Parallel: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "day 2")
}

func TestRunMalformedInputOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("sideways 3\n"), 0644))

	r := New(testConfig(), nil)
	_, err := r.Run(context.Background(), []int{1, 2}, Options{Inputs: map[int]string{2: path}})
	require.Error(t, err)
	assert.ErrorIs(t, err, dive.ErrUnknownInstruction)
	assert.Contains(t, err.Error(), path)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(testConfig(), nil)
	_, err := r.Run(ctx, nil, Options{Parallel: true})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveData(t *testing.T) {
	r := New(testConfig(), nil)
	res, err := r.SolveData(1, []byte("1\n2\n3\n4\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Silver.Value)
	assert.Equal(t, 1, res.Gold.Value)

	_, err = r.SolveData(3, []byte("012\n"))
	assert.ErrorIs(t, err, input.ErrMalformed)
}

func TestDefaultRegistryHonorsConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Puzzles.BingoSize = 2
	cfg.Puzzles.SonarWindow = 1

	r := New(cfg, nil)
	assert.Equal(t, []int{1, 2, 3, 4}, r.Registry().Days())

	res, err := r.SolveData(4, []byte("1,2\n\n1 2\n3 4\n"))
	require.NoError(t, err)
	assert.Equal(t, 14, res.Silver.Value)

	res, err = r.SolveData(1, []byte("199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n"))
	require.NoError(t, err)
	assert.Equal(t, 7, res.Gold.Value)
}
