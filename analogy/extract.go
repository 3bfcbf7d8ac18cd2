package analogy

import "github.com/Steake/godelos-core/ast"

// ExtractDomain builds a Domain from a set of context formulas, per spec.md
// §4.7 step 1: "the set of objects (constants), the set of predicates
// (application operators), and the set of ground relations (application
// nodes)."
func ExtractDomain(formulas []ast.Node) Domain {
	d := Domain{
		Objects:    make(map[string]ast.Constant),
		Predicates: make(map[string]predicateInfo),
	}
	for _, f := range formulas {
		ast.Walk(f, func(n ast.Node) bool {
			switch t := n.(type) {
			case ast.Constant:
				d.Objects[t.Name] = t
			case ast.Application:
				if isGround(t) {
					d.Relations = append(d.Relations, t)
				}
				types := make([]ast.Type, len(t.Args))
				for i, a := range t.Args {
					types[i] = a.Type()
				}
				d.Predicates[t.Operator] = predicateInfo{Arity: len(t.Args), Types: types}
			}
			return true
		})
	}
	return d
}

// isGround reports whether an application contains no free variables — the
// "ground relation" condition from spec.md §4.7.
func isGround(app ast.Application) bool {
	return len(ast.FreeVariableIDs(app)) == 0
}
