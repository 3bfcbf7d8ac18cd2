// Package smt bridges the inference engine core to an external SMT-LIB 2
// solver executable (spec.md §4.6): translate a formula to SMT-LIB syntax,
// invoke the solver as a subprocess with a wall-clock timeout, and parse its
// sat/unsat/unknown verdict back into a ProofObject.
//
// Grounded on the teacher's internal/tactile.DirectExecutor (os/exec with a
// context timeout, captured stdout/stderr, kill-on-expiry) for the
// subprocess-invocation shape, trimmed to this bridge's much narrower needs
// (no sandboxing, no audit callbacks — just the run-with-timeout core).
package smt

// SolverConfiguration names the external solver binary and its invocation
// flags, yaml-tagged the way rescfg.Budget and the teacher's
// config.CoreLimits are.
type SolverConfiguration struct {
	Binary        string   `yaml:"binary" json:"binary"`
	Args          []string `yaml:"args" json:"args"`
	Logic         string   `yaml:"logic" json:"logic"`
	TimeoutMs     int64    `yaml:"timeout_ms" json:"timeout_ms"`
	RequestModel  bool     `yaml:"request_model" json:"request_model"`
	RequestUnsatCore bool  `yaml:"request_unsat_core" json:"request_unsat_core"`
}

// DefaultConfiguration targets a z3-like CLI reading a script path, with
// AUFLIRA as the default logic per spec.md §4.6.
func DefaultConfiguration() SolverConfiguration {
	return SolverConfiguration{
		Binary:    "z3",
		Args:      []string{"-smt2"},
		Logic:     "AUFLIRA",
		TimeoutMs: 5000,
	}
}
