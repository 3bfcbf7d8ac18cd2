package modal

import "github.com/Steake/godelos-core/ast"

// formulaClass is the tableau rule category a signed formula falls into,
// per spec.md §4.4's classification table.
type formulaClass int

const (
	classLiteral formulaClass = iota
	classAlpha
	classBeta
	classPi // universal modal
	classNu // existential modal
)

// isBoxLike reports whether a modal operator behaves like □ (true in every
// accessible world). NECESSARY, KNOWS, and BELIEVES are all modeled as
// box-like universal modalities; POSSIBLE is the dual (see DESIGN.md for
// the KNOWS/BELIEVES modeling decision — the reference spec only gives
// explicit classification rules for □/◇, so epistemic operators are folded
// into the same π/ν treatment as NECESSARY/POSSIBLE).
func isBoxLike(op ast.ModalKind) bool {
	return op == ast.NECESSARY || op == ast.KNOWS || op == ast.BELIEVES
}

// eliminateEquiv rewrites every EQUIV(A,B) node into AND(IMPLIES(A,B),
// IMPLIES(B,A)) throughout the formula, so the tableau classifier only ever
// needs to handle AND/OR/IMPLIES/NOT, matching spec.md §4.4's table exactly.
// This is a structure-preserving truth-equivalent rewrite regardless of the
// sign under which the formula is later asserted.
func eliminateEquiv(n ast.Node) ast.Node {
	switch t := n.(type) {
	case ast.Connective:
		operands := make([]ast.Node, len(t.Operands))
		for i, o := range t.Operands {
			operands[i] = eliminateEquiv(o)
		}
		if t.Kind == ast.EQUIV {
			a, b := operands[0], operands[1]
			return ast.NewConnective(ast.AND, []ast.Node{
				ast.NewConnective(ast.IMPLIES, []ast.Node{a, b}),
				ast.NewConnective(ast.IMPLIES, []ast.Node{b, a}),
			})
		}
		return ast.NewConnective(t.Kind, operands)
	case ast.ModalOp:
		return ast.NewModalOp(t.Op, t.Agent, eliminateEquiv(t.Proposition))
	case ast.Quantifier:
		// Quantified sub-formulas under modal operators are treated as
		// opaque atoms by this tableau (spec.md §9 open question: FOL
		// inside modal ops is ad hoc / out of scope for this
		// implementation), so we do not descend into quantifier scopes.
		return t
	default:
		return n
	}
}

// classify determines the tableau rule category of a signed formula.
func classify(sf SignedFormula) formulaClass {
	switch f := sf.Formula.(type) {
	case ast.Connective:
		switch f.Kind {
		case ast.NOT:
			return classAlpha // negation elimination: (¬A,σ) -> (A,¬σ)
		case ast.AND:
			if sf.Sign {
				return classAlpha
			}
			return classBeta
		case ast.OR:
			if sf.Sign {
				return classBeta
			}
			return classAlpha
		case ast.IMPLIES:
			if sf.Sign {
				return classBeta
			}
			return classAlpha
		default:
			return classLiteral
		}
	case ast.ModalOp:
		box := isBoxLike(f.Op)
		if (box && sf.Sign) || (!box && !sf.Sign) {
			return classPi
		}
		return classNu
	default:
		return classLiteral
	}
}
