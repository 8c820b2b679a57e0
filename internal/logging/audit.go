package logging

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// =============================================================================
// AUDIT EVENT TYPES
// =============================================================================

// AuditEventType names what happened. Each type renders as the first
// argument of a solve_event/6 fact.
type AuditEventType string

const (
	// Input files -> solve_event(/input_read, ...)
	AuditInputRead  AuditEventType = "input_read"
	AuditInputError AuditEventType = "input_error"

	// Solves
	AuditSolveComplete AuditEventType = "solve_complete"
	AuditSolveError    AuditEventType = "solve_error"

	// Watch mode
	AuditWatchTrigger AuditEventType = "watch_trigger"
)

// CategoryAudit is the logger name every audit event is written under.
const CategoryAudit Category = "audit"

// AuditEvent is one structured audit record.
type AuditEvent struct {
	Timestamp  int64 // Unix milliseconds
	EventType  AuditEventType
	Day        int    // 0 when not tied to a day
	Target     string // input path
	Success    bool
	DurationMs int64
	Error      string // empty on success
	Message    string // human-readable summary
	Fact       string // pre-formatted solve_event/6 fact
}

// AuditLogger writes audit events scoped to a day.
type AuditLogger struct {
	day int
}

// Audit returns an unscoped audit logger.
func Audit() *AuditLogger {
	return &AuditLogger{}
}

// AuditForDay returns an audit logger whose events carry day.
func AuditForDay(day int) *AuditLogger {
	return &AuditLogger{day: day}
}

// =============================================================================
// AUDIT LOGGING METHODS
// =============================================================================

// Log writes an audit event. Events are debug-level so they only show up
// when debug_mode is on.
func (a *AuditLogger) Log(event AuditEvent) {
	if !IsDebugMode() || !IsCategoryEnabled(CategoryAudit) {
		return
	}

	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}
	if event.Day == 0 {
		event.Day = a.day
	}
	if event.Fact == "" {
		event.Fact = formatFact(event)
	}

	mu.RLock()
	l := base.Named(string(CategoryAudit))
	mu.RUnlock()

	fields := []zap.Field{
		zap.String("event", string(event.EventType)),
		zap.Int64("ts", event.Timestamp),
		zap.Bool("success", event.Success),
		zap.String("fact", event.Fact),
	}
	if event.Day != 0 {
		fields = append(fields, zap.Int("day", event.Day))
	}
	if event.Target != "" {
		fields = append(fields, zap.String("target", event.Target))
	}
	if event.DurationMs != 0 {
		fields = append(fields, zap.Int64("dur_ms", event.DurationMs))
	}
	if event.Error != "" {
		fields = append(fields, zap.String("error", event.Error))
	}
	l.Debug(event.Message, fields...)
}

// formatFact renders e as
// solve_event(/type, Day, "target", /true|/false, DurationMs, "error").
func formatFact(e AuditEvent) string {
	success := "/false"
	if e.Success {
		success = "/true"
	}
	return fmt.Sprintf("solve_event(/%s, %d, \"%s\", %s, %d, \"%s\").",
		e.EventType, e.Day, escapeString(e.Target), success, e.DurationMs, escapeString(e.Error))
}

// escapeString escapes s for use inside a double-quoted fact argument.
func escapeString(s string) string {
	if !strings.ContainsAny(s, "\"\\\n\r\t") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// =============================================================================
// CONVENIENCE METHODS
// =============================================================================

// InputRead records an input file load.
func (a *AuditLogger) InputRead(path string, size int, err error) {
	event := AuditEvent{
		EventType: AuditInputRead,
		Target:    path,
		Success:   err == nil,
		Message:   fmt.Sprintf("read %s (%d bytes)", path, size),
	}
	if err != nil {
		event.EventType = AuditInputError
		event.Error = err.Error()
		event.Message = fmt.Sprintf("failed to read %s", path)
	}
	a.Log(event)
}

// Solve records the outcome of one solve.
func (a *AuditLogger) Solve(path string, elapsed time.Duration, err error) {
	event := AuditEvent{
		EventType:  AuditSolveComplete,
		Target:     path,
		Success:    err == nil,
		DurationMs: elapsed.Milliseconds(),
		Message:    fmt.Sprintf("solved %s in %s", path, elapsed),
	}
	if err != nil {
		event.EventType = AuditSolveError
		event.Error = err.Error()
		event.Message = fmt.Sprintf("solve of %s failed", path)
	}
	a.Log(event)
}

// WatchTrigger records a settled change that re-runs a solve.
func (a *AuditLogger) WatchTrigger(path string) {
	a.Log(AuditEvent{
		EventType: AuditWatchTrigger,
		Target:    path,
		Success:   true,
		Message:   fmt.Sprintf("%s changed", path),
	})
}
