package smt

import (
	gocontext "context"
	"fmt"
	"time"

	"github.com/Steake/godelos-core/ast"
	"github.com/Steake/godelos-core/obslog"
	"github.com/Steake/godelos-core/proof"
	"github.com/Steake/godelos-core/rescfg"
)

// arithmeticMarkers are operator names whose presence in a goal signals
// "this needs real arithmetic reasoning," the priority-90 "arithmetic/SMT"
// dispatch rule from spec.md §4.8.
var arithmeticMarkers = map[string]bool{
	"+": true, "-": true, "*": true, "/": true,
	"<": true, "≤": true, "<=": true, ">": true, "≥": true, ">=": true,
}

// Prover implements the prover.Prover interface for the SMT bridge (spec.md
// §4.6).
type Prover struct {
	Config SolverConfiguration
}

// New returns an SMT bridge prover using the given solver configuration.
func New(cfg SolverConfiguration) *Prover {
	return &Prover{Config: cfg}
}

func (p *Prover) Name() string { return "smt_interface" }

func (p *Prover) Capabilities() map[string]bool {
	return map[string]bool{
		"arithmetic": true,
		"theories":   true,
		"external":   true,
	}
}

// CanHandle claims goals that mention an arithmetic operator, per spec.md
// §4.8's priority-90 dispatch rule.
func (p *Prover) CanHandle(goal ast.Node, context []ast.Node) bool {
	if hasArithmetic(goal) {
		return true
	}
	for _, c := range context {
		if hasArithmetic(c) {
			return true
		}
	}
	return false
}

func hasArithmetic(n ast.Node) bool {
	found := false
	ast.Walk(n, func(child ast.Node) bool {
		if app, ok := child.(ast.Application); ok && arithmeticMarkers[app.Operator] {
			found = true
		}
		return true
	})
	return found
}

// Prove decides whether Γ entails G by asserting Γ ∪ {¬G} and delegating to
// the external solver: unsat means G is entailed (success), sat means a
// countermodel exists (failure), a timeout fails with "time limit", and
// unknown/error pass their status through as the failure reason (spec.md
// §4.6's result mapping).
func (p *Prover) Prove(goal ast.Node, context []ast.Node, budget rescfg.Budget) proof.ProofObject {
	start := time.Now()
	timer := obslog.StartTimer(obslog.CategorySMT, "smt prove")
	defer timer.Stop()

	cfg := p.Config
	if budget.MaxTimeMs > 0 {
		cfg.TimeoutMs = budget.MaxTimeMs
	}

	script := BuildScript(goal, context, cfg)
	result, err := Run(gocontext.Background(), script, cfg)
	if err != nil {
		return proof.Failure(err.Error(), p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
	}

	switch result.Verdict {
	case VerdictUnsat:
		var steps []proof.ProofStep
		for i, label := range result.UnsatCore {
			rule := "SMT Axiom"
			if label == "negated_goal" {
				rule = "SMT Contradiction"
			}
			steps = append(steps, proof.NewStep(nil, rule, nil, fmt.Sprintf("unsat-core label %s", label)))
			_ = i
		}
		return proof.Success(goal, nil, steps, context, p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
	case VerdictSat:
		return proof.Failure("countermodel exists", p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
	case VerdictTimeout:
		return proof.Failure("time limit", p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
	default:
		return proof.Failure(string(result.Verdict), p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
	}
}
