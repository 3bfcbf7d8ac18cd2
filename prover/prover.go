// Package prover defines the uniform interface every strategy (resolution,
// modal tableau, CLP, SMT bridge, analogical engine) exposes to the
// coordinator (spec.md §6 "To the dispatcher (producer)").
package prover

import (
	"github.com/Steake/godelos-core/ast"
	"github.com/Steake/godelos-core/proof"
	"github.com/Steake/godelos-core/rescfg"
)

// Prover is total: Prove never returns a Go error. Every internal failure
// mode — resource exhaustion, structural failure, an unhandled internal
// error — is converted to a proof.ProofObject with Achieved=false before it
// crosses this boundary (spec.md §7's propagation policy).
type Prover interface {
	// Name returns the engine identifier used in ProofObject.Engine and in
	// coordinator dispatch/strategy-hint matching.
	Name() string
	// Capabilities advertises feature flags the coordinator or callers may
	// inspect (e.g. "modal_systems", "skolemization").
	Capabilities() map[string]bool
	// CanHandle reports whether this prover claims the given goal/context
	// pair. A false result is NotApplicable, never an error.
	CanHandle(goal ast.Node, context []ast.Node) bool
	// Prove attempts to derive goal from context under the given resource
	// budget, returning a ProofObject unconditionally.
	Prove(goal ast.Node, context []ast.Node, budget rescfg.Budget) proof.ProofObject
}
