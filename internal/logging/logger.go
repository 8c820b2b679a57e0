// Package logging provides config-driven categorized logging for the solvers.
// Every category is a named child of one zap logger that carries the run ID of
// the current invocation. When debug_mode is off only warnings and errors are
// written, whatever level is configured.
package logging

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot       Category = "boot"       // CLI startup, config loading
	CategoryRunner     Category = "runner"     // Input resolution, solve scheduling
	CategorySonar      Category = "sonar"      // Day 1
	CategoryDive       Category = "dive"       // Day 2
	CategoryDiagnostic Category = "diagnostic" // Day 3
	CategoryBingo      Category = "bingo"      // Day 4
	CategoryWatch      Category = "watch"      // Input file watcher
)

// Options mirrors config.LoggingConfig to keep this package free of the
// config import.
type Options struct {
	Level     string // debug, info, warn, error
	Format    string // console, json
	File      string // empty means stderr
	DebugMode bool   // false clamps the level to warn
	RunID     string // generated when empty

	// CategoryEnabled reports whether a category may log; nil enables all.
	// The CLI passes config.LoggingConfig.IsCategoryEnabled.
	CategoryEnabled func(category string) bool
}

// Logger is a category-scoped printf-style logger.
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
}

var (
	mu      sync.RWMutex
	base    = zap.NewNop()
	opts    Options
	runID   string
	loggers = make(map[Category]*Logger)
)

// Initialize builds the root zap logger from o. It may be called again to
// reconfigure; existing category loggers are discarded.
func Initialize(o Options) error {
	level, err := parseLevel(o.Level)
	if err != nil {
		return err
	}
	if !o.DebugMode && level < zapcore.WarnLevel {
		level = zapcore.WarnLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Sampling = nil
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	switch strings.ToLower(o.Format) {
	case "", "console", "text":
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	case "json":
		cfg.Encoding = "json"
	default:
		return fmt.Errorf("unknown log format: %s", o.Format)
	}
	out := "stderr"
	if o.File != "" {
		out = o.File
	}
	cfg.OutputPaths = []string{out}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	install(logger, o)
	return nil
}

// install swaps the root logger. Tests use it with an observer core.
func install(logger *zap.Logger, o Options) {
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}

	mu.Lock()
	defer mu.Unlock()
	opts = o
	runID = o.RunID
	base = logger.With(zap.String("run", o.RunID))
	loggers = make(map[Category]*Logger)
}

func parseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level: %s", s)
}

// RunID returns the correlation ID of the current invocation.
func RunID() string {
	mu.RLock()
	defer mu.RUnlock()
	return runID
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return opts.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	enabled := opts.CategoryEnabled
	mu.RUnlock()
	if enabled == nil {
		return true
	}
	return enabled(string(category))
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if the category is disabled.
func Get(category Category) *Logger {
	if !IsCategoryEnabled(category) {
		return &Logger{category: category, sugar: zap.NewNop().Sugar()}
	}

	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}
	l := &Logger{
		category: category,
		sugar:    base.Named(string(category)).Sugar(),
	}
	loggers[category] = l
	return l
}

// With returns a child logger carrying extra key/value pairs.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{category: l.category, sugar: l.sugar.With(keysAndValues...)}
}

func (l *Logger) Debug(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.sugar.Warnf(format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() {
	mu.RLock()
	b := base
	mu.RUnlock()
	if err := b.Sync(); err != nil && !isTerminalSyncErr(err) {
		fmt.Fprintf(os.Stderr, "[logging] sync failed: %v\n", err)
	}
}

func isTerminalSyncErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "invalid argument") || strings.Contains(msg, "inappropriate ioctl")
}

// =============================================================================
// CONVENIENCE FUNCTIONS - Quick logging without getting a logger first
// =============================================================================

func Boot(format string, args ...interface{})      { Get(CategoryBoot).Info(format, args...) }
func BootDebug(format string, args ...interface{}) { Get(CategoryBoot).Debug(format, args...) }

func Runner(format string, args ...interface{})      { Get(CategoryRunner).Info(format, args...) }
func RunnerDebug(format string, args ...interface{}) { Get(CategoryRunner).Debug(format, args...) }
func RunnerWarn(format string, args ...interface{})  { Get(CategoryRunner).Warn(format, args...) }

func SonarDebug(format string, args ...interface{})      { Get(CategorySonar).Debug(format, args...) }
func DiveDebug(format string, args ...interface{})       { Get(CategoryDive).Debug(format, args...) }
func DiagnosticDebug(format string, args ...interface{}) { Get(CategoryDiagnostic).Debug(format, args...) }
func BingoDebug(format string, args ...interface{})      { Get(CategoryBingo).Debug(format, args...) }

func Watch(format string, args ...interface{})      { Get(CategoryWatch).Info(format, args...) }
func WatchDebug(format string, args ...interface{}) { Get(CategoryWatch).Debug(format, args...) }
func WatchError(format string, args ...interface{}) { Get(CategoryWatch).Error(format, args...) }
