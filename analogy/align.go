package analogy

import (
	"sort"

	"github.com/Steake/godelos-core/ast"
)

// candidatePredicatePairs scores every source x target predicate pair and
// keeps the top-K, per spec.md §4.7 step 2.
func candidatePredicatePairs(source, target Domain, topK int) []PredicatePair {
	var pairs []PredicatePair
	for sName, sInfo := range source.Predicates {
		for tName, tInfo := range target.Predicates {
			score := predicateSimilarity(sName, sInfo, tName, tInfo)
			if score <= 0 {
				continue
			}
			pairs = append(pairs, PredicatePair{Source: sName, Target: tName, Score: score})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Score != pairs[j].Score {
			return pairs[i].Score > pairs[j].Score
		}
		return pairs[i].Source+pairs[i].Target < pairs[j].Source+pairs[j].Target
	})
	if topK > 0 && len(pairs) > topK {
		pairs = pairs[:topK]
	}
	return pairs
}

func candidateObjectPairs(source, target Domain, topK int) []ObjectPair {
	var pairs []ObjectPair
	for sName, sObj := range source.Objects {
		for tName, tObj := range target.Objects {
			score := objectSimilarity(sObj, tObj)
			if score <= 0 {
				continue
			}
			pairs = append(pairs, ObjectPair{Source: sName, Target: tName, Score: score})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Score != pairs[j].Score {
			return pairs[i].Score > pairs[j].Score
		}
		return pairs[i].Source+pairs[i].Target < pairs[j].Source+pairs[j].Target
	})
	if topK > 0 && len(pairs) > topK {
		pairs = pairs[:topK]
	}
	return pairs
}

// argName returns the identifying name of an argument node (a constant's
// name or a variable's cosmetic name), used to induce object-mapping
// entries from aligned relation-pair argument positions. Non-leaf
// arguments (nested applications) have no single name and are skipped.
func argName(n ast.Node) string {
	switch t := n.(type) {
	case ast.Constant:
		return t.Name
	case ast.Variable:
		return t.Name
	}
	return ""
}

// buildMapping runs structural alignment (spec.md §4.7 step 3) starting
// from a seed predicate pair: repeatedly, for each not-yet-paired source
// relation whose predicate is mapped (directly or via the candidate-pair
// prior), find the best-scoring target relation sharing that predicate, add
// the relation pair, and induce object mappings for any unmapped argument
// positions. Runs to a fixed point since inducing an object mapping can
// make a previously-unscored target relation the new best match.
func buildMapping(source, target Domain, predPairs []PredicatePair, objPairs []ObjectPair, seed PredicatePair) AnalogicalMapping {
	m := AnalogicalMapping{
		ObjectMapping:    make(map[string]string),
		PredicateMapping: map[string]string{seed.Source: seed.Target},
	}
	objPrior := make(map[string]string, len(objPairs))
	for _, op := range objPairs {
		if _, taken := objPrior[op.Source]; !taken {
			objPrior[op.Source] = op.Target
		}
	}
	predPrior := make(map[string]string, len(predPairs))
	for _, pp := range predPairs {
		if _, taken := predPrior[pp.Source]; !taken {
			predPrior[pp.Source] = pp.Target
		}
	}

	changed := true
	for changed {
		changed = false
		for _, rel := range source.Relations {
			if relationAlreadyPaired(m, rel) {
				continue
			}
			mappedPred, ok := m.PredicateMapping[rel.Operator]
			if !ok {
				mappedPred, ok = predPrior[rel.Operator]
				if !ok {
					continue
				}
			}
			best, found := findBestTargetRelation(rel, mappedPred, target, m, objPrior)
			if !found {
				continue
			}
			m.PredicateMapping[rel.Operator] = mappedPred
			m.RelationPairs = append(m.RelationPairs, RelationPair{Source: rel, Target: best})
			changed = true
			for i := range rel.Args {
				if i >= len(best.Args) {
					break
				}
				sObjName, tObjName := argName(rel.Args[i]), argName(best.Args[i])
				if sObjName == "" || tObjName == "" {
					continue
				}
				if _, mapped := m.ObjectMapping[sObjName]; !mapped {
					m.ObjectMapping[sObjName] = tObjName
				}
			}
		}
	}
	return m
}

func relationAlreadyPaired(m AnalogicalMapping, rel ast.Application) bool {
	for _, rp := range m.RelationPairs {
		if rp.Source.Equal(rel) {
			return true
		}
	}
	return false
}

// findBestTargetRelation scores every target relation sharing mappedPred's
// operator by how many argument positions are already consistently mapped
// (either by m.ObjectMapping or, failing that, the object-similarity
// prior), per spec.md §4.7 step 3.
func findBestTargetRelation(rel ast.Application, mappedPred string, target Domain, m AnalogicalMapping, prior map[string]string) (ast.Application, bool) {
	var best ast.Application
	bestScore := -1.0
	found := false
	for _, cand := range target.Relations {
		if cand.Operator != mappedPred || len(cand.Args) != len(rel.Args) {
			continue
		}
		score := 0.0
		for i := range rel.Args {
			sName := argName(rel.Args[i])
			tName := argName(cand.Args[i])
			if sName == "" || tName == "" {
				continue
			}
			if mapped, ok := m.ObjectMapping[sName]; ok {
				if mapped == tName {
					score += 1.0
				}
				continue
			}
			if p, ok := prior[sName]; ok && p == tName {
				score += 0.5
			}
		}
		if score > bestScore {
			best, bestScore, found = cand, score, true
		}
	}
	return best, found
}
