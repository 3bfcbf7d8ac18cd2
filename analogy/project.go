package analogy

import "github.com/Steake/godelos-core/ast"

// Project walks expr per spec.md §4.7's projection rule: constants map via
// mapping.ObjectMapping, predicates map via mapping.PredicateMapping,
// applications recurse. Any unmapped symbol aborts projection for this
// expression (returns ok=false).
func Project(expr ast.Node, mapping AnalogicalMapping) (ast.Node, bool) {
	switch t := expr.(type) {
	case ast.Constant:
		mapped, ok := mapping.ObjectMapping[t.Name]
		if !ok {
			return nil, false
		}
		return ast.NewConstant(mapped, t.Value, t.Typ), true
	case ast.Variable:
		return t, true
	case ast.Application:
		mappedOp, ok := mapping.PredicateMapping[t.Operator]
		if !ok {
			return nil, false
		}
		args := make([]ast.Node, len(t.Args))
		for i, a := range t.Args {
			projected, ok := Project(a, mapping)
			if !ok {
				return nil, false
			}
			args[i] = projected
		}
		return ast.NewApplication(mappedOp, args, t.Typ), true
	case ast.Connective:
		operands := make([]ast.Node, len(t.Operands))
		for i, o := range t.Operands {
			projected, ok := Project(o, mapping)
			if !ok {
				return nil, false
			}
			operands[i] = projected
		}
		return ast.NewConnective(t.Kind, operands), true
	case ast.Quantifier:
		scope, ok := Project(t.Scope, mapping)
		if !ok {
			return nil, false
		}
		return ast.NewQuantifier(t.Kind, t.BoundVars, scope), true
	case ast.ModalOp:
		prop, ok := Project(t.Proposition, mapping)
		if !ok {
			return nil, false
		}
		return ast.NewModalOp(t.Op, t.Agent, prop), true
	}
	return nil, false
}

// ProjectAll projects every expression in exprs, returning only the ones
// that succeeded (spec.md §4.7: "Any unmapped symbol aborts projection for
// that expression" — not the whole batch).
func ProjectAll(exprs []ast.Node, mapping AnalogicalMapping) []ast.Node {
	var out []ast.Node
	for _, e := range exprs {
		if projected, ok := Project(e, mapping); ok {
			out = append(out, projected)
		}
	}
	return out
}
