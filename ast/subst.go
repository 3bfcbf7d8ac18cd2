package ast

// Substitution maps variable IDs to replacement terms. It is a pure value:
// Apply never mutates the input term or the substitution itself.
type Substitution map[int64]Node

// Empty returns a fresh, empty substitution.
func Empty() Substitution { return Substitution{} }

// Extend returns a new substitution equal to s plus the binding id -> term,
// leaving s unmodified.
func (s Substitution) Extend(id int64, term Node) Substitution {
	out := make(Substitution, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[id] = term
	return out
}

// Lookup returns the term bound to id, if any.
func (s Substitution) Lookup(id int64) (Node, bool) {
	n, ok := s[id]
	return n, ok
}

// Apply walks term, replacing every free occurrence of a bound variable ID
// with its substitution, recursively, until no further replacement applies.
// Because variable IDs are unique process-wide, this is capture-avoiding:
// quantifiers and modal operators are descended into unconditionally (their
// bound variables carry distinct IDs from any substitution key by
// construction).
func Apply(sub Substitution, term Node) Node {
	if len(sub) == 0 {
		return term
	}
	switch t := term.(type) {
	case Variable:
		if bound, ok := sub[t.Id]; ok {
			return Apply(sub, bound)
		}
		return t
	case Constant:
		return t
	case Application:
		newArgs := make([]Node, len(t.Args))
		changed := false
		for i, a := range t.Args {
			na := Apply(sub, a)
			newArgs[i] = na
			if !na.Equal(a) {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return Application{Operator: t.Operator, Args: newArgs, Typ: t.Typ}
	case Connective:
		newOperands := make([]Node, len(t.Operands))
		for i, o := range t.Operands {
			newOperands[i] = Apply(sub, o)
		}
		return Connective{Kind: t.Kind, Operands: newOperands, Typ: t.Typ}
	case Quantifier:
		return Quantifier{Kind: t.Kind, BoundVars: t.BoundVars, Scope: Apply(sub, t.Scope), Typ: t.Typ}
	case ModalOp:
		return ModalOp{Op: t.Op, Agent: t.Agent, Proposition: Apply(sub, t.Proposition), Typ: t.Typ}
	default:
		return term
	}
}

// IDGenerator mints globally-unique, monotonically increasing IDs for fresh
// variables, Skolem functions, clause IDs, and tableau world IDs within one
// proof attempt. Per spec.md §9's "global counter" redesign note, this is an
// owned value rather than package-level mutable state: the resolution prover
// and the modal tableau create their own per Prove call, and the CLP prover
// receives one at construction.
type IDGenerator struct {
	next int64
}

// NewIDGenerator returns a generator starting at 1 (0 is reserved to mean
// "unset" in zero-value structs).
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{next: 1}
}

// Next returns the next unused ID.
func (g *IDGenerator) Next() int64 {
	id := g.next
	g.next++
	return id
}

// FreshVariable mints a new Variable with the given cosmetic name and type,
// using the next ID from g.
func (g *IDGenerator) FreshVariable(name string, typ Type) Variable {
	return NewVariable(name, g.Next(), typ)
}
