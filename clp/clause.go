package clp

import "github.com/Steake/godelos-core/ast"

// Clause is one program rule `head ⟸ body` (a fact is a clause with an empty
// body), per spec.md §4.5's "Program shape." Body conjuncts are partitioned
// at construction time into logic goals (resolved by SLD) and constraints
// (claimed by a registered finite-domain solver).
type Clause struct {
	Head        ast.Node
	Goals       []ast.Node
	Constraints []Constraint
}

// NewClause partitions a flat body conjunct list into goals and constraints.
func NewClause(head ast.Node, body []ast.Node) Clause {
	c := Clause{Head: head}
	for _, b := range body {
		if app, ok := b.(ast.Application); ok && IsConstraintPredicate(app.Operator) {
			c.Constraints = append(c.Constraints, NewConstraint(app))
			continue
		}
		c.Goals = append(c.Goals, b)
	}
	return c
}

// Program is an ordered list of clauses, tried in input order per spec.md
// §5's ordering guarantee ("program clauses are tried in input order").
type Program []Clause

// definesPredicate reports whether any clause's head uses the given functor
// name — used to distinguish a genuine SLD refutation (predicate defined,
// but nothing unifies) from an output-template goal with no definition at
// all (see DESIGN.md's note on spec.md scenario 4).
func (p Program) definesPredicate(name string) bool {
	for _, c := range p {
		if app, ok := c.Head.(ast.Application); ok && app.Operator == name {
			return true
		}
		if con, ok := c.Head.(ast.Constant); ok && con.Name == name {
			return true
		}
	}
	return false
}

// flattenConjunction splits a goal formula's top-level AND nesting into a
// flat list of conjuncts, matching the resolution CNF pipeline's approach to
// AND-flattening (resolution/cnf.go's flatten helper).
func flattenConjunction(n ast.Node) []ast.Node {
	c, ok := n.(ast.Connective)
	if !ok || c.Kind != ast.AND {
		return []ast.Node{n}
	}
	var out []ast.Node
	for _, o := range c.Operands {
		out = append(out, flattenConjunction(o)...)
	}
	return out
}

// PartitionQuery splits a query formula into logic goals and constraints the
// same way a clause body is split, per spec.md §4.5 step 1.
func PartitionQuery(query ast.Node) (goals []ast.Node, constraints []Constraint) {
	for _, b := range flattenConjunction(query) {
		if app, ok := b.(ast.Application); ok && IsConstraintPredicate(app.Operator) {
			constraints = append(constraints, NewConstraint(app))
			continue
		}
		goals = append(goals, b)
	}
	return goals, constraints
}
