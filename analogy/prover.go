package analogy

import (
	"fmt"
	"time"

	"github.com/Steake/godelos-core/ast"
	"github.com/Steake/godelos-core/obslog"
	"github.com/Steake/godelos-core/proof"
	"github.com/Steake/godelos-core/rescfg"
)

// computeOps dispatches to the compute-analogies pipeline; projectOps
// dispatches to projection, per spec.md §4.7's "As a prover" section.
var computeOps = map[string]bool{
	"FindAnalogy": true, "FindMapping": true,
	"StructuralMapping": true, "FindAnalogicalMapping": true,
}
var projectOps = map[string]bool{
	"ProjectInference": true, "ProjectAnalogy": true, "TransferKnowledge": true,
}

// Prover implements the prover.Prover interface for structure-mapping
// analogical reasoning (spec.md §4.7).
type Prover struct {
	Options Options
}

// New returns an analogy prover with the given pipeline options.
func New(opts Options) *Prover {
	return &Prover{Options: opts}
}

func (p *Prover) Name() string { return "analogy_engine" }

func (p *Prover) Capabilities() map[string]bool {
	return map[string]bool{"compute_analogies": true, "projection": true}
}

// CanHandle claims goals whose top-level predicate is one of the
// compute/project dispatch names.
func (p *Prover) CanHandle(goal ast.Node, context []ast.Node) bool {
	app, ok := goal.(ast.Application)
	if !ok {
		return false
	}
	return computeOps[app.Operator] || projectOps[app.Operator]
}

// Prove dispatches to computeAnalogies or projectThroughBestMapping
// depending on the goal's predicate, per spec.md §4.7.
func (p *Prover) Prove(goal ast.Node, context []ast.Node, budget rescfg.Budget) proof.ProofObject {
	start := time.Now()
	timer := obslog.StartTimer(obslog.CategoryAnalogy, "analogy prove")
	defer timer.Stop()

	app, ok := goal.(ast.Application)
	if !ok {
		return proof.Failure("goal is not a dispatchable analogy predicate", p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
	}

	// The AST carries no node-metadata facility for explicit domain tags
	// (see SPEC_FULL.md/DESIGN.md); the fallback split heuristic divides
	// context formulas into a source half and a target half by position.
	sourceFormulas, targetFormulas := splitContext(context)
	source := ExtractDomain(sourceFormulas)
	target := ExtractDomain(targetFormulas)
	opts := p.Options
	if opts.TopK == 0 && opts.MaxMappings == 0 {
		opts = DefaultOptions()
	}
	mappings := ComputeAnalogies(source, target, opts)

	if computeOps[app.Operator] {
		return p.proveCompute(goal, context, mappings, start, budget)
	}
	return p.proveProject(app, mappings, start, budget)
}

func (p *Prover) proveCompute(goal ast.Node, context []ast.Node, mappings []AnalogicalMapping, start time.Time, budget rescfg.Budget) proof.ProofObject {
	if len(mappings) == 0 {
		return proof.Failure("No analogical mappings found", p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
	}
	best := mappings[0]
	bindings := make(map[string]ast.Node)
	var steps []proof.ProofStep
	for s, t := range best.ObjectMapping {
		bindings["object:"+s] = ast.NewConstant(t, t, ast.TypeUnknown)
	}
	for s, t := range best.PredicateMapping {
		bindings["predicate:"+s] = ast.NewConstant(t, t, ast.TypeUnknown)
	}
	for i, rp := range best.RelationPairs {
		steps = append(steps, proof.NewStep(rp.Target, "Structural Alignment", nil,
			fmt.Sprintf("aligned %s to %s", rp.Source.String(), rp.Target.String())))
		_ = i
	}
	return proof.Success(goal, bindings, steps, context, p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
}

func (p *Prover) proveProject(goal ast.Application, mappings []AnalogicalMapping, start time.Time, budget rescfg.Budget) proof.ProofObject {
	if len(mappings) == 0 {
		return proof.Failure("No analogical mappings found", p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
	}
	projected := ProjectAll(goal.Args, mappings[0])
	if len(projected) == 0 {
		return proof.Failure("No analogical mappings found", p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
	}
	conclusion := projected[0]
	for _, n := range projected[1:] {
		conclusion = ast.NewConnective(ast.AND, []ast.Node{conclusion, n})
	}
	var steps []proof.ProofStep
	for i, n := range projected {
		steps = append(steps, proof.NewStep(n, "Analogical Projection", nil, "projected source expression into target domain"))
		_ = i
	}
	return proof.Success(conclusion, nil, steps, goal.Args, p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
}

func splitContext(context []ast.Node) (source, target []ast.Node) {
	mid := (len(context) + 1) / 2
	return context[:mid], context[mid:]
}
