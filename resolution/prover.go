// Package resolution implements the first-order resolution prover: CNF
// conversion with Skolemization followed by binary resolution with
// set-of-support (spec.md §4.3).
//
// Clause storage is grounded on the teacher's factstore.ConcurrentFactStore
// pattern in internal/mangle.Engine — clauses are indexed by a key derived
// from their structure (here, the literal-set key used for subsumption)
// rather than scanned linearly, and the store is owned per proof attempt,
// never shared (spec.md §5).
package resolution

import (
	"time"

	"github.com/Steake/godelos-core/ast"
	"github.com/Steake/godelos-core/clause"
	"github.com/Steake/godelos-core/obslog"
	"github.com/Steake/godelos-core/proof"
	"github.com/Steake/godelos-core/rescfg"
)

// Prover implements the prover.Prover interface for first-order binary
// resolution with set-of-support.
type Prover struct{}

// New returns a resolution prover. It carries no mutable state: every
// Prove call builds fresh clause stores.
func New() *Prover { return &Prover{} }

func (p *Prover) Name() string { return "resolution_prover" }

func (p *Prover) Capabilities() map[string]bool {
	return map[string]bool{
		"first_order":        true,
		"skolemization":      true,
		"set_of_support":     true,
		"modal":              false,
		"arithmetic":         false,
	}
}

// CanHandle is the resolution prover's fallback: it claims any goal, since
// it is the coordinator's priority-10 default (spec.md §4.8).
func (p *Prover) CanHandle(goal ast.Node, context []ast.Node) bool {
	return true
}

func (p *Prover) Prove(goal ast.Node, context []ast.Node, budget rescfg.Budget) proof.ProofObject {
	start := time.Now()
	timer := obslog.StartTimer(obslog.CategoryResolution, "resolution prove")
	defer timer.Stop()

	gen := ast.NewIDGenerator()

	allClauses := make(map[string]*clause.Clause)
	var agenda []*clause.Clause
	indexByID := make(map[int64]*clause.Clause)

	addClause := func(lits []clause.Literal, source clause.SourceTag, parents []int64) (*clause.Clause, bool) {
		c := &clause.Clause{Literals: lits, SourceTag: source, ParentIDs: parents}
		key := c.Key()
		if existing, dup := allClauses[key]; dup {
			return existing, false
		}
		c.ClauseID = gen.Next()
		allClauses[key] = c
		indexByID[c.ClauseID] = c
		return c, true
	}

	// Context clauses.
	for i, ctxFormula := range context {
		for _, lits := range ToCNF(ctxFormula, gen) {
			addClause(lits, clause.SourceTag(contextTag(i)), nil)
		}
	}
	// Negated-goal clauses seed the set of support.
	negatedGoal := ast.NewConnective(ast.NOT, []ast.Node{goal})
	for _, lits := range ToCNF(negatedGoal, gen) {
		c, isNew := addClause(lits, "negated_goal", nil)
		if isNew {
			agenda = append(agenda, c)
		}
	}

	if len(agenda) == 0 {
		// The negated goal produced no clauses at all (e.g. the goal CNF
		// converted to an empty conjunction); nothing to refute from.
		return proof.Failure("No clauses derived from negated goal", p.Name(),
			proof.ElapsedMs(start), budget.EnforcementLimits())
	}

	deadline := start.Add(time.Duration(budget.MaxTimeMs) * time.Millisecond)
	steps := 0

	for len(agenda) > 0 {
		if time.Now().After(deadline) {
			return proof.Failure("time limit", p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
		}
		if budget.MaxSteps > 0 && steps >= budget.MaxSteps {
			return proof.Failure("max iterations", p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
		}
		steps++

		c := agenda[0]
		agenda = agenda[1:]

		// Snapshot the current clause set to resolve against; new
		// resolvents added during this iteration join allClauses but are
		// picked up on later agenda pops, matching the FIFO agenda order
		// spec.md §5 requires for reproducibility.
		var others []*clause.Clause
		for _, d := range allClauses {
			others = append(others, d)
		}
		for _, d := range others {
			for _, resolvent := range Resolve(c.Literals, d.Literals, gen) {
				if len(resolvent) == 0 {
					empty, _ := addClause(resolvent, "derived", []int64{c.ClauseID, d.ClauseID})
					return p.reconstruct(goal, empty, indexByID, start, budget)
				}
				newClause, isNew := addClause(resolvent, "derived", []int64{c.ClauseID, d.ClauseID})
				if isNew {
					agenda = append(agenda, newClause)
				}
			}
		}
	}

	return proof.Failure("No refutation found (agenda exhausted)", p.Name(),
		proof.ElapsedMs(start), budget.EnforcementLimits())
}

func contextTag(i int) string {
	return "context_" + itoa(int64(i))
}

// reconstruct walks parent_ids from the empty clause back to input-sourced
// clauses, emitting one ProofStep per clause on that derivation (input
// clauses and resolvents alike) in dependency order (earliest-derived
// first), satisfying the §8 DAG invariant that
// every step's premise indices are strictly smaller than its own index.
func (p *Prover) reconstruct(goal ast.Node, empty *clause.Clause, byID map[int64]*clause.Clause, start time.Time, budget rescfg.Budget) proof.ProofObject {
	var order []int64
	index := make(map[int64]int)
	var visit func(id int64)
	visited := make(map[int64]bool)
	visit = func(id int64) {
		if visited[id] {
			return
		}
		visited[id] = true
		c := byID[id]
		for _, parent := range c.ParentIDs {
			visit(parent)
		}
		index[id] = len(order)
		order = append(order, id)
	}
	visit(empty.ClauseID)

	steps := make([]proof.ProofStep, len(order))
	var usedPremises []ast.Node
	for i, id := range order {
		c := byID[id]
		premiseIdx := make([]int, len(c.ParentIDs))
		for j, parentID := range c.ParentIDs {
			premiseIdx[j] = index[parentID]
		}
		rule := "input_clause"
		explanation := "premise clause " + string(c.SourceTag)
		if len(c.ParentIDs) > 0 {
			rule = "resolution"
			explanation = "binary resolution"
		} else if c.SourceTag != "" {
			for _, lit := range c.Literals {
				usedPremises = append(usedPremises, lit.Atom)
			}
		}
		var formula ast.Node
		if len(c.Literals) > 0 {
			formula = c.Literals[0].Atom
		}
		steps[i] = proof.NewStep(formula, rule, premiseIdx, explanation)
	}

	return proof.Success(goal, nil, steps, usedPremises, p.Name(),
		proof.ElapsedMs(start), budget.EnforcementLimits())
}
