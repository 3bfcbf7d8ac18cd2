package smt

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/Steake/godelos-core/obslog"
)

// Verdict is the solver's reported satisfiability status.
type Verdict string

const (
	VerdictSat     Verdict = "sat"
	VerdictUnsat   Verdict = "unsat"
	VerdictUnknown Verdict = "unknown"
	VerdictError   Verdict = "error"
	VerdictTimeout Verdict = "timeout"
)

// RunResult carries the solver's parsed verdict plus any model/unsat-core
// text that followed it.
type RunResult struct {
	Verdict   Verdict
	Model     string
	UnsatCore []string
	RawStdout string
	RawStderr string
}

// Run writes script to a temp file and invokes cfg.Binary/cfg.Args against
// it, enforcing cfg.TimeoutMs as a wall-clock kill deadline — the same
// write-script-then-exec-with-timeout shape as the teacher's
// tactile.DirectExecutor.Execute, minus the sandbox/audit machinery this
// bridge has no use for.
func Run(ctx context.Context, script string, cfg SolverConfiguration) (RunResult, error) {
	timer := obslog.StartTimer(obslog.CategorySMT, "smt solver invocation")
	defer timer.Stop()

	f, err := os.CreateTemp("", "godelos-smt-*.smt2")
	if err != nil {
		return RunResult{Verdict: VerdictError}, fmt.Errorf("smt: create script file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(script); err != nil {
		f.Close()
		return RunResult{Verdict: VerdictError}, fmt.Errorf("smt: write script: %w", err)
	}
	f.Close()

	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := append(append([]string{}, cfg.Args...), path)
	cmd := exec.CommandContext(execCtx, cfg.Binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	obslog.Debug(obslog.CategorySMT, "invoking %s %v", cfg.Binary, args)
	runErr := cmd.Run()

	result := RunResult{RawStdout: stdout.String(), RawStderr: stderr.String()}
	if execCtx.Err() == context.DeadlineExceeded {
		result.Verdict = VerdictTimeout
		obslog.Warn(obslog.CategorySMT, "solver %s killed after %s", cfg.Binary, timeout)
		return result, nil
	}
	if runErr != nil {
		if _, ok := runErr.(*exec.ExitError); !ok {
			result.Verdict = VerdictError
			obslog.Error(obslog.CategorySMT, "solver %s failed to start: %v", cfg.Binary, runErr)
			return result, nil
		}
		// A non-zero exit with parseable stdout still carries a verdict
		// (many solvers exit non-zero alongside "unsat" on some inputs).
	}

	result.Verdict, result.Model, result.UnsatCore = ParseResponse(result.RawStdout)
	return result, nil
}
