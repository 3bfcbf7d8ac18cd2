package modal

// relation is an ordered pair of world IDs: an accessibility edge w -> w'.
type relation struct {
	from, to int64
}

// Branch is one candidate model under construction: a set of worlds plus
// the accessibility relation between them. A branch is closed once any
// world contains a formula and its polarity complement.
type Branch struct {
	Worlds    map[int64]*WorldData
	Relations map[relation]bool
	Closed    bool
}

func newBranch() *Branch {
	return &Branch{
		Worlds:    make(map[int64]*WorldData),
		Relations: make(map[relation]bool),
	}
}

// Clone deep-copies a branch for a β-split: every world's formula set is
// copied eagerly (see WorldData.Clone), and the relation set — which
// is small and append-only — is copied wholesale.
func (b *Branch) Clone() *Branch {
	cp := newBranch()
	cp.Closed = b.Closed
	for id, w := range b.Worlds {
		cp.Worlds[id] = w.Clone()
	}
	for r := range b.Relations {
		cp.Relations[r] = true
	}
	return cp
}

// CreateWorld allocates a new world in the branch and, per spec.md §4.4's
// "applied eagerly on every world creation", immediately adds a reflexive
// self-loop if the system requires one — independent of whether any
// accessibility edge to this world is ever added explicitly.
func (b *Branch) CreateWorld(id int64, props accessibilityProperties) *WorldData {
	w := newWorldData(id)
	b.Worlds[id] = w
	if props.Reflexive {
		b.addRaw(id, id)
	}
	return w
}

// AddRelation records w -> w' and then eagerly closes it under the given
// system's accessibility properties (reflexive/symmetric/transitive), per
// spec.md §4.4: "Accessibility properties applied eagerly on every world
// creation." Seriality is not handled here; expandOneStep creates the
// successor world for it.
func (b *Branch) AddRelation(from, to int64, props accessibilityProperties) {
	b.addRaw(from, to)
	if props.Reflexive {
		b.addRaw(from, from)
		b.addRaw(to, to)
	}
	b.closeUnderProperties(props)
}

func (b *Branch) addRaw(from, to int64) {
	b.Relations[relation{from, to}] = true
}

// closeUnderProperties repeatedly applies symmetry and transitivity until a
// fixed point, since adding an edge to satisfy one property can enable
// another.
func (b *Branch) closeUnderProperties(props accessibilityProperties) {
	changed := true
	for changed {
		changed = false
		if props.Symmetric {
			for r := range b.Relations {
				if !b.Relations[relation{r.to, r.from}] {
					b.Relations[relation{r.to, r.from}] = true
					changed = true
				}
			}
		}
		if props.Transitive {
			for r1 := range b.Relations {
				for r2 := range b.Relations {
					if r1.to != r2.from {
						continue
					}
					r3 := relation{r1.from, r2.to}
					if !b.Relations[r3] {
						b.Relations[r3] = true
						changed = true
					}
				}
			}
		}
	}
}

// AccessibleFrom returns the IDs of all worlds reachable from w via a
// single recorded accessibility edge.
func (b *Branch) AccessibleFrom(w int64) []int64 {
	var out []int64
	for r := range b.Relations {
		if r.from == w {
			out = append(out, r.to)
		}
	}
	return out
}

// HasSuccessor reports whether w has at least one outgoing accessibility
// edge, used to enforce seriality (spec.md §4.4: "Seriality is enforced by
// creating a successor for any world without one.").
func (b *Branch) HasSuccessor(w int64) bool {
	return len(b.AccessibleFrom(w)) > 0
}

// CheckClosed scans every world for a polarity-complement pair and updates
// b.Closed accordingly, returning the result.
func (b *Branch) CheckClosed() bool {
	for _, w := range b.Worlds {
		for _, sf := range w.Formulas {
			if w.HasComplement(sf) {
				b.Closed = true
				return true
			}
		}
	}
	return b.Closed
}
