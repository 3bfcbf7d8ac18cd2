package resolution

import (
	"github.com/Steake/godelos-core/ast"
	"github.com/Steake/godelos-core/clause"
)

// ToCNF runs the seven-pass CNF conversion pipeline from spec.md §4.3 and
// returns the resulting clauses. gen mints fresh variable IDs for
// standardization-apart and fresh Skolem function names.
func ToCNF(formula ast.Node, gen *ast.IDGenerator) []clause.Literal2D {
	f := eliminateImpliesEquiv(formula)
	f = pushNegationsInward(f)
	f = standardizeApart(f, gen)
	f = skolemize(f, gen, nil)
	f = dropUniversals(f)
	f = distributeOrOverAnd(f)
	return extractClauses(f)
}

// eliminateImpliesEquiv rewrites A->B as ¬A∨B and A<->B as (¬A∨B)∧(A∨¬B).
func eliminateImpliesEquiv(n ast.Node) ast.Node {
	switch t := n.(type) {
	case ast.Connective:
		operands := mapOperands(t.Operands, eliminateImpliesEquiv)
		switch t.Kind {
		case ast.IMPLIES:
			a, b := operands[0], operands[1]
			return ast.NewConnective(ast.OR, []ast.Node{negate(a), b})
		case ast.EQUIV:
			a, b := operands[0], operands[1]
			left := ast.NewConnective(ast.OR, []ast.Node{negate(a), b})
			right := ast.NewConnective(ast.OR, []ast.Node{a, negate(b)})
			return ast.NewConnective(ast.AND, []ast.Node{left, right})
		default:
			return ast.NewConnective(t.Kind, operands)
		}
	case ast.Quantifier:
		return ast.NewQuantifier(t.Kind, t.BoundVars, eliminateImpliesEquiv(t.Scope))
	case ast.ModalOp:
		return ast.NewModalOp(t.Op, t.Agent, eliminateImpliesEquiv(t.Proposition))
	default:
		return n
	}
}

func negate(n ast.Node) ast.Node {
	return ast.NewConnective(ast.NOT, []ast.Node{n})
}

func mapOperands(ops []ast.Node, f func(ast.Node) ast.Node) []ast.Node {
	out := make([]ast.Node, len(ops))
	for i, o := range ops {
		out[i] = f(o)
	}
	return out
}

// pushNegationsInward applies De Morgan and quantifier duality, eliminating
// double negation as it goes.
func pushNegationsInward(n ast.Node) ast.Node {
	switch t := n.(type) {
	case ast.Connective:
		if t.Kind == ast.NOT {
			return pushNegation(t.Operands[0])
		}
		return ast.NewConnective(t.Kind, mapOperands(t.Operands, pushNegationsInward))
	case ast.Quantifier:
		return ast.NewQuantifier(t.Kind, t.BoundVars, pushNegationsInward(t.Scope))
	case ast.ModalOp:
		return ast.NewModalOp(t.Op, t.Agent, pushNegationsInward(t.Proposition))
	default:
		return n
	}
}

// pushNegation computes NOT(inner) with negation pushed as far inward as
// possible.
func pushNegation(inner ast.Node) ast.Node {
	switch t := inner.(type) {
	case ast.Connective:
		switch t.Kind {
		case ast.NOT:
			// Double negation: ¬¬A ⇒ A.
			return pushNegationsInward(t.Operands[0])
		case ast.AND:
			negated := make([]ast.Node, len(t.Operands))
			for i, o := range t.Operands {
				negated[i] = pushNegation(o)
			}
			return ast.NewConnective(ast.OR, negated)
		case ast.OR:
			negated := make([]ast.Node, len(t.Operands))
			for i, o := range t.Operands {
				negated[i] = pushNegation(o)
			}
			return ast.NewConnective(ast.AND, negated)
		default:
			// IMPLIES/EQUIV should already be eliminated by this stage.
			return negate(pushNegationsInward(inner))
		}
	case ast.Quantifier:
		dual := ast.EXISTS
		if t.Kind == ast.EXISTS {
			dual = ast.FORALL
		}
		return ast.NewQuantifier(dual, t.BoundVars, pushNegation(t.Scope))
	default:
		return negate(pushNegationsInward(inner))
	}
}

// standardizeApart rebinds every quantifier's variables to fresh IDs,
// propagating the renaming substitution through the scope.
func standardizeApart(n ast.Node, gen *ast.IDGenerator) ast.Node {
	return standardizeWith(n, gen, ast.Empty())
}

func standardizeWith(n ast.Node, gen *ast.IDGenerator, renaming ast.Substitution) ast.Node {
	switch t := n.(type) {
	case ast.Variable:
		if replacement, ok := renaming.Lookup(t.Id); ok {
			return replacement
		}
		return t
	case ast.Connective:
		operands := make([]ast.Node, len(t.Operands))
		for i, o := range t.Operands {
			operands[i] = standardizeWith(o, gen, renaming)
		}
		return ast.NewConnective(t.Kind, operands)
	case ast.Quantifier:
		newRenaming := renaming
		newBound := make([]ast.Variable, len(t.BoundVars))
		for i, v := range t.BoundVars {
			fresh := gen.FreshVariable(v.Name, v.Typ)
			newBound[i] = fresh
			newRenaming = newRenaming.Extend(v.Id, fresh)
		}
		return ast.NewQuantifier(t.Kind, newBound, standardizeWith(t.Scope, gen, newRenaming))
	case ast.ModalOp:
		return ast.NewModalOp(t.Op, t.Agent, standardizeWith(t.Proposition, gen, renaming))
	case ast.Application:
		args := make([]ast.Node, len(t.Args))
		for i, a := range t.Args {
			args[i] = standardizeWith(a, gen, renaming)
		}
		return ast.Application{Operator: t.Operator, Args: args, Typ: t.Typ}
	default:
		return n
	}
}

// skolemize replaces each existentially-bound variable with a fresh Skolem
// function over the enclosing universals. universals accumulates the
// currently-in-scope universally quantified variables as we descend.
func skolemize(n ast.Node, gen *ast.IDGenerator, universals []ast.Variable) ast.Node {
	switch t := n.(type) {
	case ast.Connective:
		operands := make([]ast.Node, len(t.Operands))
		for i, o := range t.Operands {
			operands[i] = skolemize(o, gen, universals)
		}
		return ast.NewConnective(t.Kind, operands)
	case ast.Quantifier:
		if t.Kind == ast.FORALL {
			newUniversals := append(append([]ast.Variable{}, universals...), t.BoundVars...)
			return ast.NewQuantifier(ast.FORALL, t.BoundVars, skolemize(t.Scope, gen, newUniversals))
		}
		// EXISTS: replace each bound variable with a Skolem function/constant
		// over the enclosing universals.
		sub := ast.Empty()
		for _, v := range t.BoundVars {
			sub = sub.Extend(v.Id, skolemTerm(v, universals, gen))
		}
		scope := ast.Apply(sub, t.Scope)
		return skolemize(scope, gen, universals)
	case ast.ModalOp:
		return ast.NewModalOp(t.Op, t.Agent, skolemize(t.Proposition, gen, universals))
	default:
		return n
	}
}

func skolemTerm(v ast.Variable, universals []ast.Variable, gen *ast.IDGenerator) ast.Node {
	name := "sk" + itoa(gen.Next())
	if len(universals) == 0 {
		return ast.NewConstant(name, nil, v.Typ)
	}
	args := make([]ast.Node, len(universals))
	for i, u := range universals {
		args[i] = u
	}
	return ast.NewApplication(name, args, v.Typ)
}

// dropUniversals strips all remaining (universal, post-Skolemization)
// quantifiers; they are implicit from here on.
func dropUniversals(n ast.Node) ast.Node {
	switch t := n.(type) {
	case ast.Quantifier:
		return dropUniversals(t.Scope)
	case ast.Connective:
		operands := make([]ast.Node, len(t.Operands))
		for i, o := range t.Operands {
			operands[i] = dropUniversals(o)
		}
		return ast.NewConnective(t.Kind, operands)
	default:
		return n
	}
}

// distributeOrOverAnd repeatedly applies the OR/AND distribution law until
// the formula is in pure CNF.
func distributeOrOverAnd(n ast.Node) ast.Node {
	c, ok := n.(ast.Connective)
	if !ok {
		return n
	}
	operands := make([]ast.Node, len(c.Operands))
	for i, o := range c.Operands {
		operands[i] = distributeOrOverAnd(o)
	}
	switch c.Kind {
	case ast.AND:
		return flatten(ast.AND, operands)
	case ast.OR:
		flat := flatten(ast.OR, operands).(ast.Connective)
		return distributeOrList(flat.Operands)
	default:
		return ast.NewConnective(c.Kind, operands)
	}
}

// distributeOrList distributes OR over any AND operand in a (possibly
// multi-way) disjunction, one pairwise step at a time, re-running
// distribution on the result until fixed point.
func distributeOrList(operands []ast.Node) ast.Node {
	for i, o := range operands {
		if conj, ok := o.(ast.Connective); ok && conj.Kind == ast.AND {
			rest := append(append([]ast.Node{}, operands[:i]...), operands[i+1:]...)
			newConjuncts := make([]ast.Node, len(conj.Operands))
			for j, conjunct := range conj.Operands {
				disjunction := append(append([]ast.Node{}, rest...), conjunct)
				newConjuncts[j] = distributeOrOverAnd(ast.NewConnective(ast.OR, disjunction))
			}
			return flatten(ast.AND, newConjuncts)
		}
	}
	return ast.NewConnective(ast.OR, operands)
}

// flatten merges nested connectives of the same kind into one n-ary node.
func flatten(kind ast.ConnectiveKind, operands []ast.Node) ast.Node {
	var out []ast.Node
	for _, o := range operands {
		if c, ok := o.(ast.Connective); ok && c.Kind == kind {
			out = append(out, c.Operands...)
		} else {
			out = append(out, o)
		}
	}
	return ast.NewConnective(kind, out)
}

// extractClauses reads off one clause per top-level conjunct of a CNF
// formula (or a single clause if the formula has no top-level AND).
func extractClauses(n ast.Node) []clause.Literal2D {
	conjuncts := []ast.Node{n}
	if c, ok := n.(ast.Connective); ok && c.Kind == ast.AND {
		conjuncts = c.Operands
	}
	out := make([]clause.Literal2D, 0, len(conjuncts))
	for _, conjunct := range conjuncts {
		out = append(out, literalsOf(conjunct))
	}
	return out
}

func literalsOf(n ast.Node) clause.Literal2D {
	disjuncts := []ast.Node{n}
	if c, ok := n.(ast.Connective); ok && c.Kind == ast.OR {
		disjuncts = c.Operands
	}
	lits := make([]clause.Literal, 0, len(disjuncts))
	for _, d := range disjuncts {
		lits = append(lits, literalOf(d))
	}
	return lits
}

func literalOf(n ast.Node) clause.Literal {
	if c, ok := n.(ast.Connective); ok && c.Kind == ast.NOT {
		return clause.Literal{Atom: c.Operands[0], Negated: true}
	}
	return clause.Literal{Atom: n, Negated: false}
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
