package clp

import "github.com/Steake/godelos-core/ast"

// constraintPredicates names the predicate operators a registered solver
// claims at body-partitioning time (spec.md §4.5: "constraints (predicates
// whose names a registered solver claims)").
var constraintPredicates = map[string]bool{
	"=":           true,
	"≠":           true,
	"!=":          true,
	"<":           true,
	"≤":           true,
	"<=":          true,
	">":           true,
	"≥":           true,
	">=":          true,
	"AllDifferent": true,
	"SumEquals":    true,
}

// IsConstraintPredicate reports whether name is claimed by a registered
// finite-domain solver rather than resolved as an SLD goal.
func IsConstraintPredicate(name string) bool {
	return constraintPredicates[name]
}

// Constraint wraps one constraint-predicate application with its operand
// terms (each a Variable or a ground Constant), propagating per the rules in
// spec.md §4.5.
type Constraint struct {
	Op   string
	Args []ast.Node
}

// NewConstraint builds a Constraint from an Application node. It does not
// check that Op is a registered constraint predicate; that is what
// IsConstraintPredicate is for.
func NewConstraint(app ast.Application) Constraint {
	return Constraint{Op: app.Operator, Args: app.Args}
}

// Vars returns the variable IDs this constraint mentions, for dependency
// tracking in the propagation worklist.
func (c Constraint) Vars() []int64 {
	var ids []int64
	for _, a := range c.Args {
		if v, ok := a.(ast.Variable); ok {
			ids = append(ids, v.Id)
		}
	}
	return ids
}

// domainOf returns the effective domain of a term: the variable's declared
// domain, or a singleton domain around a ground constant.
func domainOf(n ast.Node, store *DomainStore) (Domain, bool) {
	switch t := n.(type) {
	case ast.Variable:
		return store.Get(t.Id)
	case ast.Constant:
		return NewDomain(t.Value), true
	}
	return Domain{}, false
}

// narrowTo writes d back as n's domain (if n is a variable) and reports
// whether the result is still feasible (non-empty, and consistent with a
// ground constant if n is one).
func narrowTo(n ast.Node, store *DomainStore, d Domain) bool {
	if d.Empty() {
		return false
	}
	switch t := n.(type) {
	case ast.Variable:
		store.Set(t.Id, d)
		return true
	case ast.Constant:
		return d.Contains(t.Value)
	}
	return false
}

// Propagate tightens domains per spec.md §4.5's example rules and reports
// feasibility. It does not loop to a fixed point by itself — callers run it
// inside the worklist in PropagateAll (package-level function below).
func (c Constraint) Propagate(store *DomainStore) bool {
	switch c.Op {
	case "=":
		x, xok := domainOf(c.Args[0], store)
		y, yok := domainOf(c.Args[1], store)
		if !xok || !yok {
			return true
		}
		merged := x.Intersect(y)
		return narrowTo(c.Args[0], store, merged) && narrowTo(c.Args[1], store, merged)

	case "≠", "!=":
		x, xok := domainOf(c.Args[0], store)
		y, yok := domainOf(c.Args[1], store)
		if !xok || !yok {
			return true
		}
		if yv, ok := y.Singleton(); ok {
			if !narrowTo(c.Args[0], store, x.Without(yv)) {
				return false
			}
		}
		x, _ = domainOf(c.Args[0], store)
		if xv, ok := x.Singleton(); ok {
			if !narrowTo(c.Args[1], store, y.Without(xv)) {
				return false
			}
		}
		return true

	case "<", "≤", "<=", ">", "≥", ">=":
		return c.propagateOrder(store)

	case "AllDifferent":
		return c.propagateAllDifferent(store)

	case "SumEquals":
		return c.propagateSumEquals(store)
	}
	return true
}

// propagateOrder implements `x < y` / `x ≤ y` (and their flipped forms) over
// ordered numeric domains: max(x) <- min(max(x), max(y)-bound),
// min(y) <- max(min(y), min(x)+bound), per spec.md §4.5.
func (c Constraint) propagateOrder(store *DomainStore) bool {
	lhs, rhs, strict := c.Args[0], c.Args[1], false
	switch c.Op {
	case "<":
		strict = true
	case ">":
		lhs, rhs, strict = c.Args[1], c.Args[0], true
	case "≥", ">=":
		lhs, rhs = c.Args[1], c.Args[0]
	}
	x, xok := domainOf(lhs, store)
	y, yok := domainOf(rhs, store)
	if !xok || !yok {
		return true
	}
	bound := 0
	if strict {
		bound = 1
	}
	xMin := minOf(x)
	yMax := maxOf(y)
	newX := filterLE(x, toFloat(yMax)-float64(bound))
	newY := filterGE(y, toFloat(xMin)+float64(bound))
	return narrowTo(lhs, store, newX) && narrowTo(rhs, store, newY)
}

// propagateAllDifferent removes every singleton's value from the other
// domains, per spec.md §4.5's AllDifferent rule.
func (c Constraint) propagateAllDifferent(store *DomainStore) bool {
	for i := range c.Args {
		di, ok := domainOf(c.Args[i], store)
		if !ok {
			continue
		}
		v, singleton := di.Singleton()
		if !singleton {
			continue
		}
		for j := range c.Args {
			if i == j {
				continue
			}
			dj, ok := domainOf(c.Args[j], store)
			if !ok {
				continue
			}
			if dj.Contains(v) && len(dj.Values) == 1 {
				return false
			}
			if !narrowTo(c.Args[j], store, dj.Without(v)) {
				return false
			}
		}
	}
	return true
}

// propagateSumEquals enforces that the last argument equals the sum of the
// preceding ones, supported for already-ground addends (a simple bounds
// check rather than full bounds-propagation arithmetic).
func (c Constraint) propagateSumEquals(store *DomainStore) bool {
	if len(c.Args) < 2 {
		return true
	}
	addends := c.Args[:len(c.Args)-1]
	target := c.Args[len(c.Args)-1]

	sum := 0.0
	allGround := true
	for _, a := range addends {
		d, ok := domainOf(a, store)
		if !ok {
			return true
		}
		v, singleton := d.Singleton()
		if !singleton {
			allGround = false
			break
		}
		sum += toFloat(v)
	}
	if !allGround {
		return true
	}
	td, ok := domainOf(target, store)
	if !ok {
		return true
	}
	return narrowTo(target, store, td.Intersect(NewDomain(fromFloat(sum))))
}

func maxOf(d Domain) interface{} {
	var best interface{}
	bestF := 0.0
	for i, v := range d.Values {
		f := toFloat(v)
		if i == 0 || f > bestF {
			best, bestF = v, f
		}
	}
	return best
}

func minOf(d Domain) interface{} {
	var best interface{}
	bestF := 0.0
	for i, v := range d.Values {
		f := toFloat(v)
		if i == 0 || f < bestF {
			best, bestF = v, f
		}
	}
	return best
}

func filterLE(d Domain, bound float64) Domain {
	var out []interface{}
	for _, v := range d.Values {
		if toFloat(v) <= bound {
			out = append(out, v)
		}
	}
	return Domain{Values: out}
}

func filterGE(d Domain, bound float64) Domain {
	var out []interface{}
	for _, v := range d.Values {
		if toFloat(v) >= bound {
			out = append(out, v)
		}
	}
	return Domain{Values: out}
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}

func fromFloat(f float64) interface{} {
	if f == float64(int64(f)) {
		return int64(f)
	}
	return f
}

// PropagateAll runs the constraint worklist to a fixed point: every
// constraint is woken after any domain change, per spec.md §4.5's
// "simple worklist ... re-wake all constraints. Fixed point when the queue
// drains." Returns false as soon as any constraint reports infeasibility.
func PropagateAll(constraints []Constraint, store *DomainStore) bool {
	changed := true
	for changed {
		changed = false
		for _, c := range constraints {
			before := snapshot(store, c.Vars())
			if !c.Propagate(store) {
				return false
			}
			if !sameSnapshot(store, c.Vars(), before) {
				changed = true
			}
		}
	}
	return true
}

func snapshot(store *DomainStore, ids []int64) map[int64]int {
	out := make(map[int64]int, len(ids))
	for _, id := range ids {
		if d, ok := store.Get(id); ok {
			out[id] = len(d.Values)
		}
	}
	return out
}

func sameSnapshot(store *DomainStore, ids []int64, before map[int64]int) bool {
	for _, id := range ids {
		d, ok := store.Get(id)
		if !ok {
			continue
		}
		if len(d.Values) != before[id] {
			return false
		}
	}
	return true
}
