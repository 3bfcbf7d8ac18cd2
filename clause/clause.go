// Package clause defines the Literal and Clause value types used by the
// resolution prover.
package clause

import (
	"sort"
	"strings"

	"github.com/Steake/godelos-core/ast"
)

// Literal2D is a bare literal set, the shape CNF extraction produces before
// a clause ID and source tag are assigned.
type Literal2D = []Literal

// Literal is a signed atom: a predicate application or constant, together
// with whether it is negated.
type Literal struct {
	Atom    ast.Node
	Negated bool
}

// Complement returns the literal with the opposite polarity over the same
// atom.
func (l Literal) Complement() Literal {
	return Literal{Atom: l.Atom, Negated: !l.Negated}
}

func (l Literal) String() string {
	if l.Negated {
		return "¬" + l.Atom.String()
	}
	return l.Atom.String()
}

// key returns a canonical string for literal-set deduplication; it does not
// need to be collision-proof across unrelated atoms, only stable for the
// same atom structure.
func (l Literal) key() string {
	sign := "+"
	if l.Negated {
		sign = "-"
	}
	return sign + l.Atom.String()
}

// SourceTag identifies where a clause originated, for proof reconstruction
// (spec.md §4.3: distinguish "context_i" from "negated_goal").
type SourceTag string

// Clause is a disjunction of literals plus bookkeeping for proof
// reconstruction. The empty clause (no literals) represents ⊥.
type Clause struct {
	Literals  []Literal
	ClauseID  int64
	ParentIDs []int64
	SourceTag SourceTag
}

// IsEmpty reports whether c is the empty clause (⊥).
func (c Clause) IsEmpty() bool { return len(c.Literals) == 0 }

// Key returns a canonical, order-independent representation of c's literal
// set, used to detect duplicate resolvents (spec.md §4.3's subsumption
// approximation: "duplicate resolvents ... are skipped").
func (c Clause) Key() string {
	keys := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		keys[i] = l.key()
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

func (c Clause) String() string {
	if c.IsEmpty() {
		return "⊥"
	}
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ∨ ")
}

// Without returns a new literal slice holding c's literals except the one at
// index i.
func (c Clause) Without(i int) []Literal {
	out := make([]Literal, 0, len(c.Literals)-1)
	for j, l := range c.Literals {
		if j != i {
			out = append(out, l)
		}
	}
	return out
}

// ApplySubstitution returns a copy of the literal slice with sub applied to
// every atom.
func ApplySubstitution(sub ast.Substitution, lits []Literal) []Literal {
	out := make([]Literal, len(lits))
	for i, l := range lits {
		out[i] = Literal{Atom: ast.Apply(sub, l.Atom), Negated: l.Negated}
	}
	return out
}
