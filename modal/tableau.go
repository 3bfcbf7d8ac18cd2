package modal

import "github.com/Steake/godelos-core/ast"

// Tableau is a proof attempt in progress: a list of branches (alternative
// partial models) plus the monotone world-ID counter shared across all of
// them.
type Tableau struct {
	Branches []*Branch
	nextID   *ast.IDGenerator
}

// newTableau seeds a tableau with a single branch containing one root
// world holding the given signed formulas, with accessibility properties
// applied eagerly to that first world per spec.md §4.4.
func newTableau(formulas []SignedFormula, props accessibilityProperties) *Tableau {
	t := &Tableau{nextID: ast.NewIDGenerator()}
	root := newBranch()
	w := root.CreateWorld(t.nextID.Next(), props)
	for _, sf := range formulas {
		w.Add(sf, "")
	}
	t.Branches = []*Branch{root}
	return t
}

// newWorld allocates a fresh world ID, shared across the whole tableau (not
// per-branch), matching spec.md §3: "Tableau — list of branches plus a
// monotone next_world_id counter."
func (t *Tableau) newWorld() int64 {
	return t.nextID.Next()
}

// AllClosed reports whether every branch in the tableau is closed — the
// overall tableau-closure condition from spec.md §4.4.
func (t *Tableau) AllClosed() bool {
	for _, b := range t.Branches {
		if !b.Closed {
			return false
		}
	}
	return true
}

// FirstOpenBranch returns the index of the first branch with Closed=false,
// or -1 if all branches are closed. Deterministic branch order keeps
// tableau search reproducible per spec.md §5.
func (t *Tableau) FirstOpenBranch() int {
	for i, b := range t.Branches {
		if !b.Closed {
			return i
		}
	}
	return -1
}

// TotalNodes counts formulas across every world of every branch, used for
// the node resource limit.
func (t *Tableau) TotalNodes() int {
	total := 0
	for _, b := range t.Branches {
		for _, w := range b.Worlds {
			total += len(w.Formulas)
		}
	}
	return total
}
