package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "aoc2021" {
		t.Errorf("expected Name=aoc2021, got %s", cfg.Name)
	}
	if cfg.Puzzles.BingoSize != 5 {
		t.Errorf("expected BingoSize=5, got %d", cfg.Puzzles.BingoSize)
	}
	if cfg.Puzzles.SonarWindow != 3 {
		t.Errorf("expected SonarWindow=3, got %d", cfg.Puzzles.SonarWindow)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("AOC_INPUT_DIR", "")
	t.Setenv("AOC_LOG_LEVEL", "")
	t.Setenv("AOC_DEBUG", "")

	path := filepath.Join(t.TempDir(), ".aoc", "config.yaml")

	cfg := DefaultConfig()
	cfg.Inputs.Dir = "puzzles/2021"
	cfg.Inputs.Files[4] = "bingo.txt"
	cfg.Puzzles.BingoSize = 3
	cfg.Runner.Parallel = true

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "puzzles/2021", loaded.Inputs.Dir)
	assert.Equal(t, "bingo.txt", loaded.Inputs.Files[4])
	assert.Equal(t, "day01_sonar_sweep.txt", loaded.Inputs.Files[1])
	assert.Equal(t, 3, loaded.Puzzles.BingoSize)
	assert.True(t, loaded.Runner.Parallel)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("AOC_INPUT_DIR", "")
	t.Setenv("AOC_LOG_LEVEL", "")
	t.Setenv("AOC_DEBUG", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("puzzles: [unterminated"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"bingo too small", func(c *Config) { c.Puzzles.BingoSize = 1 }, "bingo_size"},
		{"zero window", func(c *Config) { c.Puzzles.SonarWindow = 0 }, "sonar_window"},
		{"bad level", func(c *Config) { c.Logging.Level = "chatty" }, "log level"},
		{"empty file", func(c *Config) { c.Inputs.Files[2] = "" }, "day 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_InputPath(t *testing.T) {
	cfg := DefaultConfig()

	p, err := cfg.InputPath(3)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("inputs", "day03_binary_diagnostic.txt"), p)

	abs := filepath.Join(t.TempDir(), "custom.txt")
	cfg.Inputs.Files[1] = abs
	p, err = cfg.InputPath(1)
	require.NoError(t, err)
	assert.Equal(t, abs, p)

	_, err = cfg.InputPath(9)
	assert.Error(t, err)
}

func TestConfig_GetTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, time.Minute, cfg.GetTimeout())

	cfg.Runner.Timeout = "5s"
	assert.Equal(t, 5*time.Second, cfg.GetTimeout())

	cfg.Runner.Timeout = "soon"
	assert.Equal(t, time.Minute, cfg.GetTimeout())
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	c := LoggingConfig{}
	assert.True(t, c.IsCategoryEnabled("bingo"))

	c.Categories = map[string]bool{"bingo": false}
	assert.False(t, c.IsCategoryEnabled("bingo"))
	assert.True(t, c.IsCategoryEnabled("dive"))
}

func TestConfig_YAML(t *testing.T) {
	data, err := DefaultConfig().YAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "bingo_size: 5")
	assert.Contains(t, string(data), "dir: inputs")
	assert.Contains(t, string(data), "1: day01_sonar_sweep.txt")
}
