package smt

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain verifies no goroutine leaks across this package's tests, mirroring
// internal/mangle/engine_test.go's TestMain. smt is the package in this repo
// that actually spawns subprocesses (Run, via os/exec); exec.Cmd's internal
// stdout/stderr copy goroutines must exit by the time Cmd.Run returns, and
// this check holds the package to that.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
