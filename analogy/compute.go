package analogy

import "sort"

// Options tunes the compute-analogies pipeline (spec.md §4.7 step 2's
// top-K pruning and step 5's max_mappings truncation).
type Options struct {
	TopK        int
	MaxMappings int
}

// DefaultOptions mirrors the pipeline's implied defaults: keep a modest
// candidate pool and report a handful of ranked mappings.
func DefaultOptions() Options {
	return Options{TopK: 10, MaxMappings: 5}
}

// ComputeAnalogies runs the full pipeline from spec.md §4.7: extract both
// domains, generate candidate predicate/object pairings, seed one candidate
// mapping per top-scoring predicate pair, run structural alignment and
// scoring on each, and return the results sorted by overall score,
// truncated to opts.MaxMappings.
func ComputeAnalogies(source, target Domain, opts Options) []AnalogicalMapping {
	predPairs := candidatePredicatePairs(source, target, opts.TopK)
	objPairs := candidateObjectPairs(source, target, opts.TopK)

	var mappings []AnalogicalMapping
	seen := map[string]bool{}
	for _, seed := range predPairs {
		m := buildMapping(source, target, predPairs, objPairs, seed)
		score(source, &m, predPairs, objPairs)
		key := mappingKey(m)
		if seen[key] {
			continue
		}
		seen[key] = true
		mappings = append(mappings, m)
	}

	sort.Slice(mappings, func(i, j int) bool {
		return mappings[i].OverallScore > mappings[j].OverallScore
	})
	if opts.MaxMappings > 0 && len(mappings) > opts.MaxMappings {
		mappings = mappings[:opts.MaxMappings]
	}
	return mappings
}

// mappingKey dedups mappings that different seeds converged to; two mappings
// with the same predicate mapping share a key whatever their object mappings.
func mappingKey(m AnalogicalMapping) string {
	key := ""
	preds := make([]string, 0, len(m.PredicateMapping))
	for s, t := range m.PredicateMapping {
		preds = append(preds, s+"="+t)
	}
	sort.Strings(preds)
	for _, p := range preds {
		key += p + ";"
	}
	return key
}
