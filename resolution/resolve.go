package resolution

import (
	"github.com/Steake/godelos-core/ast"
	"github.com/Steake/godelos-core/clause"
	"github.com/Steake/godelos-core/unify"
)

// renameApart returns a copy of lits with every variable replaced by a
// fresh one, using the given name prefix purely for readability; gen
// guarantees the new IDs are disjoint from every other clause in play.
// Distinct renaming prefixes per clause per call is "critical" per
// spec.md §4.3 — each call to resolve gets its own fresh copies of both
// input clauses so resolving the same clause against itself twice never
// aliases variables across attempts.
func renameApart(lits []clause.Literal, gen *ast.IDGenerator, prefix string) []clause.Literal {
	renaming := ast.Empty()
	seen := make(map[int64]bool)
	for _, l := range lits {
		for id, v := range ast.FreeVariables(l.Atom) {
			if seen[id] {
				continue
			}
			seen[id] = true
			renaming = renaming.Extend(id, gen.FreshVariable(prefix+v.Name, v.Typ))
		}
	}
	return clause.ApplySubstitution(renaming, lits)
}

// Resolve attempts every pair of opposite-polarity literals between c and d
// and returns all resolvents produced.
func Resolve(c, d []clause.Literal, gen *ast.IDGenerator) [][]clause.Literal {
	rc := renameApart(c, gen, "c")
	rd := renameApart(d, gen, "d")

	var resolvents [][]clause.Literal
	for i, l := range rc {
		for j, m := range rd {
			if l.Negated == m.Negated {
				continue
			}
			sub, ok := unify.Unify(l.Atom, m.Atom)
			if !ok {
				continue
			}
			remaining := append(append([]clause.Literal{}, rc[:i]...), rc[i+1:]...)
			remaining = append(remaining, rd[:j]...)
			remaining = append(remaining, rd[j+1:]...)
			resolvents = append(resolvents, clause.ApplySubstitution(sub, remaining))
		}
	}
	return resolvents
}
