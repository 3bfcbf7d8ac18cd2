package clp

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain verifies no goroutine leaks across this package's tests, mirroring
// internal/mangle/engine_test.go's TestMain — clp's solve loop doesn't spawn
// goroutines itself, but it's the package SPEC_FULL.md names alongside smt
// for this check since both do search/propagation work a future worker-pool
// labeling strategy could plausibly parallelize.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
