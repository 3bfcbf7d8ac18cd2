package analogy

import "github.com/Steake/godelos-core/ast"

// score computes structural_score, semantic_score, and overall per spec.md
// §4.7 step 4: structural_score is the fraction of source relations for
// which both predicate and all arguments are mapped; semantic_score is the
// mean similarity across the object and predicate pairings actually used;
// overall = 0.7*structural + 0.3*semantic.
func score(source Domain, m *AnalogicalMapping, predPairs []PredicatePair, objPairs []ObjectPair) {
	if len(source.Relations) == 0 {
		m.StructuralScore = 0
	} else {
		fullyMapped := 0
		for _, rel := range source.Relations {
			if relationFullyMapped(rel, *m) {
				fullyMapped++
			}
		}
		m.StructuralScore = float64(fullyMapped) / float64(len(source.Relations))
	}

	total, count := 0.0, 0
	predScore := map[string]float64{}
	for _, pp := range predPairs {
		predScore[pp.Source+"->"+pp.Target] = pp.Score
	}
	objScore := map[string]float64{}
	for _, op := range objPairs {
		objScore[op.Source+"->"+op.Target] = op.Score
	}
	for s, t := range m.PredicateMapping {
		if v, ok := predScore[s+"->"+t]; ok {
			total += v
			count++
		}
	}
	for s, t := range m.ObjectMapping {
		if v, ok := objScore[s+"->"+t]; ok {
			total += v
			count++
		}
	}
	if count > 0 {
		m.SemanticScore = total / float64(count)
	}

	m.OverallScore = 0.7*m.StructuralScore + 0.3*m.SemanticScore
}

func relationFullyMapped(rel ast.Application, m AnalogicalMapping) bool {
	if _, ok := m.PredicateMapping[rel.Operator]; !ok {
		return false
	}
	for _, a := range rel.Args {
		name := argName(a)
		if name == "" {
			return false
		}
		if _, ok := m.ObjectMapping[name]; !ok {
			return false
		}
	}
	return true
}
