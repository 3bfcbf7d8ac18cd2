// Package obslog provides categorized, config-gated diagnostic logging for
// the inference engine core. It is the ambient logging seam each prover and
// the coordinator write through before a ProofObject's failure status
// discards the underlying error — mirroring the teacher's
// internal/logging category system (debug_mode-gated, category-scoped
// file logger), trimmed to the categories this core's provers need and
// backed by go.uber.org/zap's SugaredLogger instead of a hand-rolled
// *log.Logger, since zap is the pack's structured-logging library of
// choice for CLI/engine diagnostics.
package obslog

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Category scopes a log line to one subsystem, mirroring the teacher's
// Category type (CategoryKernel, CategoryTactile, ...).
type Category string

const (
	CategoryCoordinator Category = "coordinator"
	CategoryResolution  Category = "resolution"
	CategoryModal       Category = "modal"
	CategoryCLP         Category = "clp"
	CategorySMT         Category = "smt"
	CategoryAnalogy     Category = "analogy"
)

var (
	mu      sync.RWMutex
	base    *zap.SugaredLogger
	enabled = true
)

func init() {
	l, err := zap.NewProduction()
	if err != nil {
		l = zap.NewNop()
	}
	base = l.Sugar()
}

// SetEnabled turns structured logging on or off process-wide, mirroring the
// teacher's debug_mode config gate. Logging is enabled by default; callers
// that want no log noise turn it off.
func SetEnabled(v bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = v
}

// Replace swaps the underlying zap logger, used by tests/hosts that want to
// capture or silence output.
func Replace(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	base = l.Sugar()
}

func logf(level, category Category, msg string, args ...interface{}) {
	mu.RLock()
	on, logger := enabled, base
	mu.RUnlock()
	if !on || logger == nil {
		return
	}
	sugared := logger.With("category", string(category))
	switch level {
	case "debug":
		sugared.Debugf(msg, args...)
	case "warn":
		sugared.Warnf(msg, args...)
	case "error":
		sugared.Errorf(msg, args...)
	default:
		sugared.Infof(msg, args...)
	}
}

// Info logs an informational line under category.
func Info(category Category, msg string, args ...interface{}) { logf("info", category, msg, args...) }

// Debug logs a debug line under category.
func Debug(category Category, msg string, args ...interface{}) { logf("debug", category, msg, args...) }

// Warn logs a warning line under category.
func Warn(category Category, msg string, args ...interface{}) { logf("warn", category, msg, args...) }

// Error logs an error line under category. Per spec.md §7, provers never
// propagate this error past their Prove boundary — it becomes a
// proof.Failure instead; Error exists so the discarded error is still
// observable in diagnostics, mirroring the teacher's
// audit-log-then-swallow pattern for shard errors.
func Error(category Category, msg string, args ...interface{}) { logf("error", category, msg, args...) }

// Timer brackets a timed operation, mirroring the teacher's
// logging.StartTimer/Stop helper.
type Timer struct {
	category Category
	label    string
	start    time.Time
}

// StartTimer begins timing an operation under category, logging a debug
// line with the elapsed duration when Stop is called.
func StartTimer(category Category, label string) *Timer {
	return &Timer{category: category, label: label, start: time.Now()}
}

// Stop logs the elapsed time since StartTimer and returns it.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Debug(t.category, "%s took %s", t.label, elapsed)
	return elapsed
}
