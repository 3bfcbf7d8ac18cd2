// Package clp implements the constraint-logic-programming module (spec.md
// §4.5): CLP-style SLD resolution over program clauses interleaved with
// finite-domain constraint propagation and labeling.
//
// Grounded on the teacher's internal/mangle package for the "engine wraps a
// declarative store, queries narrow it" shape (engine.go's fact store plus
// incremental query evaluation), though Mangle itself is a bottom-up Datalog
// evaluator and cannot run top-down SLD with constraint propagation, so the
// SLD/labeling control flow here is hand-rolled; see DESIGN.md.
package clp

import "sort"

// Domain is a finite set of candidate values for one variable. Values are
// compared with ==, so callers should stick to comparable Go values (string,
// int, float64) — the same values ast.Constant carries in its Value field.
type Domain struct {
	Values []interface{}
}

// NewDomain builds a domain from an explicit value list, deduplicating.
func NewDomain(values ...interface{}) Domain {
	seen := make(map[interface{}]bool, len(values))
	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return Domain{Values: out}
}

// Empty reports whether the domain has no remaining candidates — the
// propagation failure condition throughout §4.5.
func (d Domain) Empty() bool { return len(d.Values) == 0 }

// Singleton returns the domain's sole value, if it has been narrowed to one.
func (d Domain) Singleton() (interface{}, bool) {
	if len(d.Values) == 1 {
		return d.Values[0], true
	}
	return nil, false
}

// Contains reports whether v is still a candidate.
func (d Domain) Contains(v interface{}) bool {
	for _, x := range d.Values {
		if x == v {
			return true
		}
	}
	return false
}

// Without returns a domain with v removed, per the `x ≠ c` propagation rule.
func (d Domain) Without(v interface{}) Domain {
	out := make([]interface{}, 0, len(d.Values))
	for _, x := range d.Values {
		if x != v {
			out = append(out, x)
		}
	}
	return Domain{Values: out}
}

// Intersect returns the domain holding only values present in both, per the
// `x = y` propagation rule.
func (d Domain) Intersect(other Domain) Domain {
	out := make([]interface{}, 0, len(d.Values))
	for _, x := range d.Values {
		if other.Contains(x) {
			out = append(out, x)
		}
	}
	return Domain{Values: out}
}

// DomainStore maps query-variable IDs to their current domain. It is forked
// (deep-copied) on every SLD branch and every labeling candidate, per
// spec.md §4.5 step 4's "copy the constraint and domain stores."
type DomainStore struct {
	domains map[int64]Domain
}

// NewDomainStore returns an empty store.
func NewDomainStore() *DomainStore {
	return &DomainStore{domains: make(map[int64]Domain)}
}

// Get returns the domain for a variable ID, if one has been declared.
func (s *DomainStore) Get(id int64) (Domain, bool) {
	d, ok := s.domains[id]
	return d, ok
}

// Set (re)assigns a variable's domain.
func (s *DomainStore) Set(id int64, d Domain) {
	s.domains[id] = d
}

// Clone deep-copies the store for a fork.
func (s *DomainStore) Clone() *DomainStore {
	cp := NewDomainStore()
	for id, d := range s.domains {
		vals := make([]interface{}, len(d.Values))
		copy(vals, d.Values)
		cp.domains[id] = Domain{Values: vals}
	}
	return cp
}

// VariableIDs returns every variable with a declared domain, sorted for
// deterministic labeling order (spec.md §5: "reproducible proof traces").
func (s *DomainStore) VariableIDs() []int64 {
	ids := make([]int64, 0, len(s.domains))
	for id := range s.domains {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// AllSingleton reports whether every declared domain has narrowed to exactly
// one value — the labeling termination condition.
func (s *DomainStore) AllSingleton() bool {
	for _, d := range s.domains {
		if _, ok := d.Singleton(); !ok {
			return false
		}
	}
	return true
}

// FirstNonSingleton returns the first (by sorted ID) variable whose domain
// has more than one candidate; every labeling strategy except `first_fail`
// picks its variable this way.
func (s *DomainStore) FirstNonSingleton() (int64, bool) {
	for _, id := range s.VariableIDs() {
		if _, ok := s.domains[id].Singleton(); !ok {
			return id, true
		}
	}
	return 0, false
}
