package modal

import "github.com/Steake/godelos-core/ast"

// alphaComponents returns the one or two signed formulas an alpha rule adds
// to the same world.
func alphaComponents(sf SignedFormula) []SignedFormula {
	switch f := sf.Formula.(type) {
	case ast.Connective:
		switch f.Kind {
		case ast.NOT:
			return []SignedFormula{{Formula: f.Operands[0], Sign: !sf.Sign}}
		case ast.AND: // T:A∧B
			return []SignedFormula{{Formula: f.Operands[0], Sign: true}, {Formula: f.Operands[1], Sign: true}}
		case ast.OR: // F:A∨B
			return []SignedFormula{{Formula: f.Operands[0], Sign: false}, {Formula: f.Operands[1], Sign: false}}
		case ast.IMPLIES: // F:A→B ⇒ A true, B false
			return []SignedFormula{{Formula: f.Operands[0], Sign: true}, {Formula: f.Operands[1], Sign: false}}
		}
	}
	return nil
}

// betaComponents returns the two alternative signed formulas a β rule
// splits into, one per resulting branch.
func betaComponents(sf SignedFormula) (left, right SignedFormula) {
	f := sf.Formula.(ast.Connective)
	switch f.Kind {
	case ast.AND: // F:A∧B ⇒ ¬A | ¬B
		return SignedFormula{Formula: f.Operands[0], Sign: false}, SignedFormula{Formula: f.Operands[1], Sign: false}
	case ast.OR: // T:A∨B ⇒ A | B
		return SignedFormula{Formula: f.Operands[0], Sign: true}, SignedFormula{Formula: f.Operands[1], Sign: true}
	case ast.IMPLIES: // T:A→B ⇒ ¬A | B
		return SignedFormula{Formula: f.Operands[0], Sign: false}, SignedFormula{Formula: f.Operands[1], Sign: true}
	}
	return SignedFormula{}, SignedFormula{}
}

// innerProposition returns the modal operator's proposition, the formula a
// π or ν rule places into a world.
func innerProposition(sf SignedFormula) ast.Node {
	return sf.Formula.(ast.ModalOp).Proposition
}
