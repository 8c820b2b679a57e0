package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all solver configuration.
type Config struct {
	// Core settings
	Name string `yaml:"name"`

	// Where the daily input files live
	Inputs InputsConfig `yaml:"inputs"`

	// Per-puzzle tunables
	Puzzles PuzzlesConfig `yaml:"puzzles"`

	// Solve scheduling
	Runner RunnerConfig `yaml:"runner"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// InputsConfig locates the input file for each day.
type InputsConfig struct {
	Dir   string         `yaml:"dir"`
	Files map[int]string `yaml:"files"` // day -> file name relative to Dir
}

// PuzzlesConfig holds the shape parameters of individual puzzles.
type PuzzlesConfig struct {
	BingoSize   int `yaml:"bingo_size"`   // side length of a bingo board
	SonarWindow int `yaml:"sonar_window"` // sliding window width for day 1 gold
}

// RunnerConfig configures how days are scheduled.
type RunnerConfig struct {
	Parallel bool   `yaml:"parallel"`
	Timeout  string `yaml:"timeout"`
}

// DefaultConfigPath is where `aoc config init` writes and the CLI reads by default.
const DefaultConfigPath = ".aoc/config.yaml"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name: "aoc2021",

		Inputs: InputsConfig{
			Dir: "inputs",
			Files: map[int]string{
				1: "day01_sonar_sweep.txt",
				2: "day02_dive.txt",
				3: "day03_binary_diagnostic.txt",
				4: "day04_giant_squid.txt",
			},
		},

		Puzzles: PuzzlesConfig{
			BingoSize:   5,
			SonarWindow: 3,
		},

		Runner: RunnerConfig{
			Parallel: false,
			Timeout:  "1m",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Defaults if the config file doesn't exist
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.YAML()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// YAML renders the configuration as it would be saved.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("AOC_INPUT_DIR"); dir != "" {
		c.Inputs.Dir = dir
	}
	if level := os.Getenv("AOC_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if v := os.Getenv("AOC_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Logging.DebugMode = debug
		}
	}
}

// InputPath returns the path of the input file for day.
func (c *Config) InputPath(day int) (string, error) {
	name, ok := c.Inputs.Files[day]
	if !ok {
		return "", fmt.Errorf("no input file configured for day %d", day)
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	return filepath.Join(c.Inputs.Dir, name), nil
}

// GetTimeout returns the runner timeout as a duration.
func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Runner.Timeout)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}

// ValidLogLevels lists the accepted logging.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Puzzles.BingoSize < 2 {
		return fmt.Errorf("invalid bingo_size: %d (must be at least 2)", c.Puzzles.BingoSize)
	}
	if c.Puzzles.SonarWindow < 1 {
		return fmt.Errorf("invalid sonar_window: %d (must be at least 1)", c.Puzzles.SonarWindow)
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}

	for day, name := range c.Inputs.Files {
		if name == "" {
			return fmt.Errorf("empty input file name for day %d", day)
		}
	}

	return nil
}
