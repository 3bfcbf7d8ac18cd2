// Package unify implements most-general-unification over the ast term
// language: variable-to-term binding with an occurs-check and type
// compatibility, constant-constant equality, and pairwise application
// unification under an accumulating substitution.
//
// This package is grounded on the substitution/Walk discipline of the
// pack's miniKanren implementation (clone-on-bind, follow-the-chain lookup)
// but is built entirely on the standard library: unification over a typed
// first-order term algebra is pure term-graph algebra with no I/O, storage,
// or wire format, so none of the pack's third-party libraries have a seam to
// attach to here.
package unify

import "github.com/Steake/godelos-core/ast"

// Unify computes the most general unifier of a and b, if one exists.
func Unify(a, b ast.Node) (ast.Substitution, bool) {
	return unify(a, b, ast.Empty())
}

func unify(a, b ast.Node, sub ast.Substitution) (ast.Substitution, bool) {
	a = walk(a, sub)
	b = walk(b, sub)

	if av, ok := a.(ast.Variable); ok {
		return bindVariable(av, b, sub)
	}
	if bv, ok := b.(ast.Variable); ok {
		return bindVariable(bv, a, sub)
	}

	switch at := a.(type) {
	case ast.Constant:
		bt, ok := b.(ast.Constant)
		if !ok || !at.Typ.Compatible(bt.Typ) {
			return nil, false
		}
		if at.Name != bt.Name {
			return nil, false
		}
		if at.Value != nil || bt.Value != nil {
			if at.Value != bt.Value {
				return nil, false
			}
		}
		return sub, true
	case ast.Application:
		bt, ok := b.(ast.Application)
		if !ok || at.Operator != bt.Operator || len(at.Args) != len(bt.Args) {
			return nil, false
		}
		if !at.Typ.Compatible(bt.Typ) {
			return nil, false
		}
		cur := sub
		for i := range at.Args {
			next, ok := unify(at.Args[i], bt.Args[i], cur)
			if !ok {
				return nil, false
			}
			cur = next
		}
		return cur, true
	default:
		// Connectives, quantifiers, and modal operators are not unified as
		// first-order terms by this engine; resolution/tableau operate on
		// their literal atoms only, which are always Constant or
		// Application nodes.
		return nil, false
	}
}

func bindVariable(v ast.Variable, term ast.Node, sub ast.Substitution) (ast.Substitution, bool) {
	if tv, ok := term.(ast.Variable); ok && tv.Id == v.Id {
		return sub, true
	}
	if !v.Typ.Compatible(term.Type()) {
		return nil, false
	}
	if occurs(v.Id, term, sub) {
		return nil, false
	}
	return sub.Extend(v.Id, term), true
}

// occurs implements the occurs-check: does v.Id appear free in term once
// term is walked through sub?
func occurs(id int64, term ast.Node, sub ast.Substitution) bool {
	term = walk(term, sub)
	switch t := term.(type) {
	case ast.Variable:
		return t.Id == id
	case ast.Application:
		for _, a := range t.Args {
			if occurs(id, a, sub) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// walk follows the chain of variable bindings in sub until it reaches a
// non-variable or an unbound variable, the way miniKanren's
// Substitution.Walk does, without recursing into compound structure.
func walk(term ast.Node, sub ast.Substitution) ast.Node {
	for {
		v, ok := term.(ast.Variable)
		if !ok {
			return term
		}
		bound, ok := sub.Lookup(v.Id)
		if !ok {
			return term
		}
		term = bound
	}
}

// Apply is a convenience re-export so callers of this package do not need to
// import ast solely to finish a unification.
func Apply(sub ast.Substitution, term ast.Node) ast.Node {
	return ast.Apply(sub, term)
}
