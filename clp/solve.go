package clp

import (
	"time"

	"github.com/Steake/godelos-core/ast"
	"github.com/Steake/godelos-core/unify"
)

// LabelingStrategy selects which non-singleton variable to label next and in
// what value order, per spec.md §4.5's "pick a non-singleton variable per
// the strategy."
type LabelingStrategy string

const (
	StrategyDefault    LabelingStrategy = "default"
	StrategyFirstFail  LabelingStrategy = "first_fail"
	StrategyMin        LabelingStrategy = "min"
	StrategyMax        LabelingStrategy = "max"
	StrategyMiddleOut  LabelingStrategy = "middle_out"
)

// Solution is one successful leaf: every query variable bound to a single
// domain value, plus the substitution accumulated along the SLD derivation.
type Solution struct {
	Bindings map[int64]interface{}
	Sub      ast.Substitution
}

// searchState is one node of the SLD/labeling search tree.
type searchState struct {
	goals       []ast.Node
	constraints []Constraint
	domains     *DomainStore
	sub         ast.Substitution
}

// Solver runs CLP-style SLD resolution interleaved with finite-domain
// propagation (spec.md §4.5's algorithm), accumulating up to maxSolutions
// solutions within the given step/time budget.
type Solver struct {
	Program  Program
	Strategy LabelingStrategy
	gen      *ast.IDGenerator
	deadline time.Time
	steps    int
	maxSteps int
}

// NewSolver builds a solver over program, using gen to rename clause
// variables apart on every use (standardize-apart, same discipline as
// resolution's renameApart).
func NewSolver(program Program, strategy LabelingStrategy, gen *ast.IDGenerator) *Solver {
	if strategy == "" {
		strategy = StrategyDefault
	}
	return &Solver{Program: program, Strategy: strategy, gen: gen}
}

// Solve runs the algorithm from spec.md §4.5 on the given query, domains
// (pre-populated by the caller per step 1's "assign default domains or
// user-provided domains"), within budget, and returns up to maxSolutions
// solutions.
func (s *Solver) Solve(query ast.Node, domains *DomainStore, maxSolutions int, maxSteps int, deadline time.Time) ([]Solution, bool) {
	s.deadline = deadline
	s.maxSteps = maxSteps

	goals, constraints := PartitionQuery(query)
	initial := searchState{
		goals:       goals,
		constraints: constraints,
		domains:     domains,
		sub:         ast.Empty(),
	}
	if !PropagateAll(initial.constraints, initial.domains) {
		return nil, true // ran to completion, zero solutions: unsatisfiable
	}

	var solutions []Solution
	ok := s.search(initial, maxSolutions, &solutions)
	return solutions, ok
}

// search performs one SLD step (or, if goals are exhausted, enters
// labeling), recursing until maxSolutions are found or the tree is
// exhausted. Returns false if a resource limit was hit before the search
// tree was fully explored (Prover.Prove in prover.go then reports a limit
// failure instead of "no solution").
func (s *Solver) search(st searchState, maxSolutions int, out *[]Solution) bool {
	if len(*out) >= maxSolutions {
		return true
	}
	if time.Now().After(s.deadline) {
		return false
	}
	s.steps++
	if s.maxSteps > 0 && s.steps > s.maxSteps {
		return false
	}

	if len(st.goals) == 0 {
		return s.label(st, maxSolutions, out)
	}

	goal := st.goals[0]
	rest := st.goals[1:]

	app, isApp := goal.(ast.Application)
	if !isApp {
		// Non-application goals (e.g. a bare Constant proposition) are
		// treated as already satisfied; nothing to resolve against.
		return s.search(searchState{rest, st.constraints, st.domains, st.sub}, maxSolutions, out)
	}

	if !s.Program.definesPredicate(app.Operator) {
		// No clause anywhere defines this predicate: per DESIGN.md, treat
		// it as an output-template goal (spec.md scenario 4's
		// ScheduledAt(...) calls) rather than an SLD failure.
		return s.search(searchState{rest, st.constraints, st.domains, st.sub}, maxSolutions, out)
	}

	for _, clause := range s.Program {
		renamed := s.renameClauseApart(clause)
		sub, ok := unify.Unify(ast.Apply(st.sub, goal), renamed.Head)
		if !ok {
			continue
		}
		merged := mergeSubstitutions(st.sub, sub)

		forkDomains := st.domains.Clone()
		forkConstraints := append(append([]Constraint{}, st.constraints...), renamed.Constraints...)
		if !PropagateAll(forkConstraints, forkDomains) {
			continue // propagation failure: abandon this fork silently
		}

		newGoals := append(append([]ast.Node{}, renamed.Goals...), rest...)
		substGoals := make([]ast.Node, len(newGoals))
		for i, g := range newGoals {
			substGoals[i] = ast.Apply(merged, g)
		}

		if !s.search(searchState{substGoals, forkConstraints, forkDomains, merged}, maxSolutions, out) {
			return false
		}
		if len(*out) >= maxSolutions {
			return true
		}
	}
	return true
}

// label implements spec.md §4.5's labeling phase: pick a non-singleton
// variable per s.Strategy, branch over its candidate values in strategy
// order, propagate, and recurse; collect a Solution at every leaf where
// every declared domain has narrowed to a singleton.
func (s *Solver) label(st searchState, maxSolutions int, out *[]Solution) bool {
	if time.Now().After(s.deadline) {
		return false
	}
	varID, found := s.pickVariable(st.domains)
	if !found {
		bindings := make(map[int64]interface{})
		for _, id := range st.domains.VariableIDs() {
			d, _ := st.domains.Get(id)
			v, _ := d.Singleton()
			bindings[id] = v
		}
		*out = append(*out, Solution{Bindings: bindings, Sub: st.sub})
		return true
	}

	d, _ := st.domains.Get(varID)
	for _, val := range s.orderValues(d) {
		if len(*out) >= maxSolutions {
			return true
		}
		forked := st.domains.Clone()
		forked.Set(varID, NewDomain(val))
		if !PropagateAll(st.constraints, forked) {
			continue
		}
		if !s.label(searchState{st.goals, st.constraints, forked, st.sub}, maxSolutions, out) {
			return false
		}
	}
	return true
}

// pickVariable selects the next labeling target per s.Strategy.
// first_fail picks the smallest remaining domain; default/min/max/
// middle_out all pick the first (by ID) non-singleton variable and instead
// vary the VALUE order (see orderValues).
func (s *Solver) pickVariable(store *DomainStore) (int64, bool) {
	if s.Strategy != StrategyFirstFail {
		return store.FirstNonSingleton()
	}
	best := int64(-1)
	bestSize := -1
	for _, id := range store.VariableIDs() {
		d, _ := store.Get(id)
		if _, ok := d.Singleton(); ok {
			continue
		}
		if bestSize == -1 || len(d.Values) < bestSize {
			best, bestSize = id, len(d.Values)
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// orderValues returns d's values in the order s.Strategy's labeling should
// try them.
func (s *Solver) orderValues(d Domain) []interface{} {
	vals := append([]interface{}{}, d.Values...)
	switch s.Strategy {
	case StrategyMax:
		sortByFloat(vals, true)
	case StrategyMin, StrategyFirstFail, StrategyDefault:
		sortByFloat(vals, false)
	case StrategyMiddleOut:
		sortByFloat(vals, false)
		vals = middleOutOrder(vals)
	}
	return vals
}

func sortByFloat(vals []interface{}, descending bool) {
	for i := 1; i < len(vals); i++ {
		for j := i; j > 0; j-- {
			less := toFloat(vals[j]) < toFloat(vals[j-1])
			if descending {
				less = toFloat(vals[j]) > toFloat(vals[j-1])
			}
			if !less {
				break
			}
			vals[j], vals[j-1] = vals[j-1], vals[j]
		}
	}
}

func middleOutOrder(sorted []interface{}) []interface{} {
	out := make([]interface{}, 0, len(sorted))
	lo, hi := len(sorted)/2-1, len(sorted)/2
	if lo < 0 {
		lo = 0
	}
	for lo >= 0 || hi < len(sorted) {
		if hi < len(sorted) {
			out = append(out, sorted[hi])
			hi++
		}
		if lo >= 0 && lo != hi-1 {
			out = append(out, sorted[lo])
			lo--
		} else if lo >= 0 {
			lo--
		}
	}
	return out
}

// renameClauseApart mints fresh variable IDs for every variable in clause,
// so repeated uses of the same program clause across a derivation never
// alias each other's bindings (the same standardize-apart discipline as
// resolution/cnf.go's standardizeApart, and miniKanren's walk/clone
// variable-freshening).
func (s *Solver) renameClauseApart(c Clause) Clause {
	rename := ast.Empty()
	var collect func(ast.Node)
	seen := map[int64]bool{}
	collect = func(n ast.Node) {
		ast.Walk(n, func(child ast.Node) bool {
			if v, ok := child.(ast.Variable); ok && !seen[v.Id] {
				seen[v.Id] = true
				rename = rename.Extend(v.Id, s.gen.FreshVariable(v.Name, v.Typ))
			}
			return true
		})
	}
	collect(c.Head)
	for _, g := range c.Goals {
		collect(g)
	}
	for _, con := range c.Constraints {
		for _, a := range con.Args {
			collect(a)
		}
	}

	out := Clause{Head: ast.Apply(rename, c.Head)}
	for _, g := range c.Goals {
		out.Goals = append(out.Goals, ast.Apply(rename, g))
	}
	for _, con := range c.Constraints {
		args := make([]ast.Node, len(con.Args))
		for i, a := range con.Args {
			args[i] = ast.Apply(rename, a)
		}
		out.Constraints = append(out.Constraints, Constraint{Op: con.Op, Args: args})
	}
	return out
}

// mergeSubstitutions composes base with addition, applying base first.
func mergeSubstitutions(base, addition ast.Substitution) ast.Substitution {
	out := base
	for id, term := range addition {
		out = out.Extend(id, ast.Apply(base, term))
	}
	return out
}
