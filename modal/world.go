package modal

import "github.com/Steake/godelos-core/ast"

// SignedFormula pairs a formula with the truth sign under which the
// tableau asserts it.
type SignedFormula struct {
	Formula ast.Node
	Sign    bool
}

func (s SignedFormula) key() string {
	prefix := "F:"
	if s.Sign {
		prefix = "T:"
	}
	return prefix + s.Formula.String()
}

// Complement returns the same formula under the opposite sign.
func (s SignedFormula) Complement() SignedFormula {
	return SignedFormula{Formula: s.Formula, Sign: !s.Sign}
}

// WorldData is the mutable, per-branch payload of a world: the signed
// formulas placed in it so far, and (for proof reconstruction) which rule
// and parent formula produced each one.
//
// SUPPLEMENTED per SPEC_FULL.md §4.4: original_source/'s Python tableau
// tracks a justification trail per formula; derivedFrom mirrors that. The
// trail is recorded but not read by proof reconstruction.
type WorldData struct {
	ID       int64
	Formulas map[string]SignedFormula
	// derivedFrom maps a formula's key to the key of the formula it was
	// derived from via a tableau rule, empty for formulas placed directly
	// from the goal/context.
	derivedFrom map[string]string
	// expanded tracks which formula keys have already had their tableau
	// rule applied in this world, so the search loop's "fully expanded"
	// check (spec.md §4.4) is a flag lookup rather than a fixed-point scan.
	expanded map[string]bool
}

func newWorldData(id int64) *WorldData {
	return &WorldData{
		ID:          id,
		Formulas:    make(map[string]SignedFormula),
		derivedFrom: make(map[string]string),
		expanded:    make(map[string]bool),
	}
}

// Clone deep-copies a world's formula set, used when a branch is cloned on
// a β-split (spec.md §3's ownership rule: "Tableau branches are cloned on
// β-splits; clones share world storage by id and copy-on-write the formula
// sets").
func (w *WorldData) Clone() *WorldData {
	cp := newWorldData(w.ID)
	for k, v := range w.Formulas {
		cp.Formulas[k] = v
	}
	for k, v := range w.derivedFrom {
		cp.derivedFrom[k] = v
	}
	for k, v := range w.expanded {
		cp.expanded[k] = v
	}
	return cp
}

// Add places a signed formula into the world, recording its derivation
// parent (empty string for root formulas). Returns false if the formula
// was already present.
func (w *WorldData) Add(sf SignedFormula, parentKey string) bool {
	k := sf.key()
	if _, exists := w.Formulas[k]; exists {
		return false
	}
	w.Formulas[k] = sf
	if parentKey != "" {
		w.derivedFrom[k] = parentKey
	}
	return true
}

// HasComplement reports whether w contains both sf and its polarity
// complement — the branch-closure condition from spec.md §4.4.
func (w *WorldData) HasComplement(sf SignedFormula) bool {
	_, ok := w.Formulas[sf.Complement().key()]
	return ok
}
