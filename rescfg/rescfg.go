// Package rescfg defines the resource-limit/budget configuration enforced
// across all five provers and the coordinator: wall-clock limit, step/depth/
// node limit, and a memory ceiling (spec.md §5).
//
// Grounded on the teacher's internal/config.CoreLimits +
// EnforceCoreLimits(): a yaml-tagged struct with a DefaultX constructor and
// a Validate method, read once and then treated as immutable input to a
// proof attempt.
package rescfg

import "fmt"

// Budget bounds a single prover invocation. Zero values are invalid; use
// DefaultBudget and override selectively.
type Budget struct {
	MaxTimeMs    int64 `yaml:"max_time_ms" json:"max_time_ms"`
	MaxSteps     int   `yaml:"max_steps" json:"max_steps"`
	MaxNodes     int   `yaml:"max_nodes" json:"max_nodes"`
	MaxDepth     int   `yaml:"max_depth" json:"max_depth"`
	MaxMemoryMB  int   `yaml:"max_memory_mb" json:"max_memory_mb"`
	MaxBranches  int   `yaml:"max_branches" json:"max_branches"`
	MaxSolutions int   `yaml:"max_solutions" json:"max_solutions"`
}

// DefaultBudget returns conservative production defaults, the way
// config.DefaultConfig() does for CoreLimits.
func DefaultBudget() Budget {
	return Budget{
		MaxTimeMs:    5000,
		MaxSteps:     10000,
		MaxNodes:     50000,
		MaxDepth:     1000,
		MaxMemoryMB:  512,
		MaxBranches:  10000,
		MaxSolutions: 100,
	}
}

// Validate rejects budgets with no usable ceiling at all, mirroring
// config.ValidateCoreLimits's range checks.
func (b Budget) Validate() error {
	if b.MaxTimeMs <= 0 {
		return fmt.Errorf("max_time_ms must be > 0")
	}
	if b.MaxSteps <= 0 && b.MaxNodes <= 0 {
		return fmt.Errorf("at least one of max_steps or max_nodes must be > 0")
	}
	return nil
}

// EnforcementLimits mirrors config.EnforceCoreLimits: a flattened view
// convenient for embedding into ProofObject.Resources.
func (b Budget) EnforcementLimits() map[string]float64 {
	return map[string]float64{
		"max_time_ms":    float64(b.MaxTimeMs),
		"max_steps":      float64(b.MaxSteps),
		"max_nodes":      float64(b.MaxNodes),
		"max_depth":      float64(b.MaxDepth),
		"max_memory_mb":  float64(b.MaxMemoryMB),
		"max_branches":   float64(b.MaxBranches),
		"max_solutions":  float64(b.MaxSolutions),
	}
}
