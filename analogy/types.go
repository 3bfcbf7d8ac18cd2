// Package analogy implements structure-mapping analogical reasoning
// (spec.md §4.7): given a source and target domain, find correspondences
// between their objects, predicates, and ground relations, score them, and
// use a chosen mapping to project source expressions into the target.
//
// Grounded on the teacher's candidate-then-score-then-rank shape used
// throughout its retrieval/ranking code (score candidates, keep top-K, sort
// descending) — the same shape this package's compute-analogies pipeline
// follows, adapted to structural alignment over ast.Node relations instead
// of text/embedding similarity.
package analogy

import "github.com/Steake/godelos-core/ast"

// Domain is one side of an analogy: the objects, predicates, and ground
// relations extracted from a set of context formulas (spec.md §4.7 step 1).
type Domain struct {
	Objects    map[string]ast.Constant
	Predicates map[string]predicateInfo
	Relations  []ast.Application
}

type predicateInfo struct {
	Arity int
	Types []ast.Type
}

// AnalogicalMapping is one candidate correspondence between a source and
// target domain.
type AnalogicalMapping struct {
	ObjectMapping    map[string]string
	PredicateMapping map[string]string
	RelationPairs    []RelationPair
	StructuralScore  float64
	SemanticScore    float64
	OverallScore     float64
}

// RelationPair records that a source ground relation was aligned to a
// target ground relation.
type RelationPair struct {
	Source ast.Application
	Target ast.Application
}

// ObjectPair is a scored candidate object correspondence.
type ObjectPair struct {
	Source, Target string
	Score          float64
}

// PredicatePair is a scored candidate predicate correspondence.
type PredicatePair struct {
	Source, Target string
	Score          float64
}
