package analogy

import (
	"strings"

	"github.com/Steake/godelos-core/ast"
)

// predicateSimilarity combines name similarity (equality 1.0, substring
// overlap 0.5) with a +0.3 bonus for matching arity and argument types, per
// spec.md §4.7 step 2.
func predicateSimilarity(sourceName string, source predicateInfo, targetName string, target predicateInfo) float64 {
	score := nameSimilarity(sourceName, targetName)
	if source.Arity == target.Arity && typesCompatible(source.Types, target.Types) {
		score += 0.3
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func nameSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a != "" && b != "" && (strings.Contains(a, b) || strings.Contains(b, a)) {
		return 0.5
	}
	return 0.0
}

func typesCompatible(a, b []ast.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Compatible(b[i]) {
			return false
		}
	}
	return true
}

// objectSimilarity combines name match, type match, and value equality, per
// spec.md §4.7 step 2's "object-pair similarity combines name match, type
// match, and value equality."
func objectSimilarity(a, b ast.Constant) float64 {
	score := 0.0
	if a.Name == b.Name {
		score += 0.5
	}
	if a.Typ.Compatible(b.Typ) {
		score += 0.3
	}
	if a.Value != nil && b.Value != nil && a.Value == b.Value {
		score += 0.2
	}
	return score
}
