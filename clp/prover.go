package clp

import (
	"fmt"
	"time"

	"github.com/Steake/godelos-core/ast"
	"github.com/Steake/godelos-core/obslog"
	"github.com/Steake/godelos-core/proof"
	"github.com/Steake/godelos-core/rescfg"
)

// Prover implements the prover.Prover interface for CLP-style SLD resolution
// interleaved with finite-domain propagation (spec.md §4.5, §4.8's
// priority-80 "constraint/CLP" dispatch rule).
type Prover struct {
	Program  Program
	Domains  *DomainStore
	Strategy LabelingStrategy
	gen      *ast.IDGenerator
}

// New returns a CLP prover over the given program and pre-populated domain
// store. gen mints fresh variable IDs for clause standardize-apart.
func New(program Program, domains *DomainStore, strategy LabelingStrategy, gen *ast.IDGenerator) *Prover {
	if domains == nil {
		domains = NewDomainStore()
	}
	if gen == nil {
		gen = ast.NewIDGenerator()
	}
	return &Prover{Program: program, Domains: domains, Strategy: strategy, gen: gen}
}

func (p *Prover) Name() string { return "clp_module" }

func (p *Prover) Capabilities() map[string]bool {
	return map[string]bool{
		"finite_domain": true,
		"sld":           true,
		"labeling":      true,
	}
}

// CanHandle claims a goal if it (or any context formula) mentions a
// constraint predicate, or if a domain has already been declared for one of
// the goal's free variables.
func (p *Prover) CanHandle(goal ast.Node, context []ast.Node) bool {
	if mentionsConstraint(goal) {
		return true
	}
	for _, c := range context {
		if mentionsConstraint(c) {
			return true
		}
	}
	for _, id := range ast.FreeVariableIDs(goal) {
		if _, ok := p.Domains.Get(id); ok {
			return true
		}
	}
	return false
}

func mentionsConstraint(n ast.Node) bool {
	found := false
	ast.Walk(n, func(child ast.Node) bool {
		if app, ok := child.(ast.Application); ok && IsConstraintPredicate(app.Operator) {
			found = true
		}
		return true
	})
	return found
}

// Prove runs the solver to exhaustion (or budget.MaxSolutions/MaxSteps/
// deadline, whichever first), reporting the first solution's bindings on
// success per spec.md §4.5's failure semantics: "the prover's external
// answer is success with first solution if any, otherwise
// failure(\"No solution found\")."
func (p *Prover) Prove(goal ast.Node, context []ast.Node, budget rescfg.Budget) proof.ProofObject {
	start := time.Now()
	timer := obslog.StartTimer(obslog.CategoryCLP, "clp solve")
	defer timer.Stop()

	deadline := start.Add(time.Duration(budget.MaxTimeMs) * time.Millisecond)
	combined := goal
	for _, c := range context {
		combined = ast.NewConnective(ast.AND, []ast.Node{combined, c})
	}

	solver := NewSolver(p.Program, p.Strategy, p.gen)
	maxSolutions := budget.MaxSolutions
	if maxSolutions <= 0 {
		maxSolutions = 1
	}
	solutions, ranToCompletion := solver.Solve(combined, p.Domains, maxSolutions, budget.MaxSteps, deadline)

	if !ranToCompletion {
		return proof.Failure("time limit", p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
	}
	if len(solutions) == 0 {
		return proof.Failure("No solution found", p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
	}

	first := solutions[0]
	bindings := make(map[string]ast.Node, len(first.Bindings))
	var steps []proof.ProofStep
	i := 0
	for id, val := range first.Bindings {
		name := fmt.Sprintf("_%d", id)
		bindings[name] = ast.NewConstant(name, val, ast.TypeUnknown)
		steps = append(steps, proof.NewStep(bindings[name], "CLP Labeling", nil,
			fmt.Sprintf("variable %d labeled %v", id, val)))
		i++
	}
	return proof.Success(goal, bindings, steps, context, p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
}
