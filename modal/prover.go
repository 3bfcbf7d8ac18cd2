package modal

import (
	"time"

	"github.com/Steake/godelos-core/ast"
	"github.com/Steake/godelos-core/obslog"
	"github.com/Steake/godelos-core/proof"
	"github.com/Steake/godelos-core/rescfg"
)

// Prover implements the prover.Prover interface for the modal tableau.
// System selects which of K/T/D/B/S4/S5 governs accessibility.
type Prover struct {
	System System
}

// New returns a modal tableau prover for the given system. Defaults to K
// (no accessibility properties) if system is empty.
func New(system System) *Prover {
	if system == "" {
		system = SystemK
	}
	return &Prover{System: system}
}

func (p *Prover) Name() string { return "modal_tableau_prover" }

func (p *Prover) Capabilities() map[string]bool {
	return map[string]bool{
		"modal":         true,
		"systems_k_t_d_b_s4_s5": true,
		"first_order":   false,
	}
}

// CanHandle claims goals containing at least one ModalOp node, per
// spec.md §4.8's priority-100 dispatch rule.
func (p *Prover) CanHandle(goal ast.Node, context []ast.Node) bool {
	return ast.IsModal(goal)
}

// Prove attempts to close a tableau for {Γ, ¬G} (validity): if every branch
// closes, G is entailed by Γ under p.System; otherwise G is not entailed.
func (p *Prover) Prove(goal ast.Node, context []ast.Node, budget rescfg.Budget) proof.ProofObject {
	start := time.Now()
	timer := obslog.StartTimer(obslog.CategoryModal, "modal tableau prove")
	defer timer.Stop()

	var initial []SignedFormula
	for _, c := range context {
		initial = append(initial, SignedFormula{Formula: eliminateEquiv(c), Sign: true})
	}
	// Asserting F:goal is tableau-equivalent to T:¬goal but skips a
	// spurious negation-elimination step; see DESIGN.md.
	initial = append(initial, SignedFormula{Formula: eliminateEquiv(goal), Sign: false})

	props := PropertiesFor(p.System)
	tab := newTableau(initial, props)
	deadline := start.Add(time.Duration(budget.MaxTimeMs) * time.Millisecond)
	steps := 0

	for {
		if time.Now().After(deadline) {
			return proof.Failure("time limit", p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
		}
		if budget.MaxBranches > 0 && len(tab.Branches) > budget.MaxBranches {
			return proof.Failure("max branches", p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
		}
		if budget.MaxNodes > 0 && tab.TotalNodes() > budget.MaxNodes {
			return proof.Failure("max nodes", p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
		}
		if budget.MaxSteps > 0 && steps >= budget.MaxSteps {
			return proof.Failure("max iterations", p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
		}

		branchIdx := tab.FirstOpenBranch()
		if branchIdx == -1 {
			return p.reconstructClosed(goal, tab, start, budget)
		}

		applied := p.expandOneStep(tab, branchIdx, props)
		steps++
		if !applied {
			// Branch is fully expanded and still open: G is not entailed.
			return proof.Failure("No entailment: open branch found in fully expanded tableau",
				p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
		}
		tab.Branches[branchIdx].CheckClosed()
	}
}

// expandOneStep finds the first un-expanded formula in the given branch, in
// α, then ν, then β preference order (spec.md §4.4: "ν (creates new
// worlds — do before π to maximise π's effect), then β (branching last)"),
// applies its rule, and returns whether any rule was applied.
func (p *Prover) expandOneStep(tab *Tableau, branchIdx int, props accessibilityProperties) bool {
	branch := tab.Branches[branchIdx]

	// Propagate any already-placed π (universal modal) formulas to worlds
	// reachable since the last step, so π's effect is visible before we
	// decide there is nothing left to expand.
	if p.expandPiPropagation(branch) {
		return true
	}

	// Enforce seriality before looking for more formulas to expand: every
	// world must have a successor.
	if props.Serial {
		for id, w := range branch.Worlds {
			if !branch.HasSuccessor(id) {
				newID := tab.newWorld()
				branch.CreateWorld(newID, props)
				branch.AddRelation(id, newID, props)
				return true
			}
			_ = w
		}
	}

	if applied := p.applyFirstMatching(tab, branch, props, classAlpha); applied {
		return true
	}
	if applied := p.applyFirstMatching(tab, branch, props, classNu); applied {
		return true
	}
	if applied := p.applyFirstMatching(tab, branch, props, classBeta); applied {
		return true
	}
	return false
}

func (p *Prover) applyFirstMatching(tab *Tableau, branch *Branch, props accessibilityProperties, want formulaClass) bool {
	for worldID, w := range branch.Worlds {
		for key, sf := range w.Formulas {
			if w.expanded[key] {
				continue
			}
			if classify(sf) != want {
				continue
			}
			w.expanded[key] = true
			switch want {
			case classAlpha:
				for _, comp := range alphaComponents(sf) {
					w.Add(comp, key)
				}
			case classBeta:
				p.applyBeta(tab, branch, worldID, sf, key)
			case classNu:
				p.applyNu(tab, branch, worldID, sf, key, props)
			}
			return true
		}
	}
	return false
}

// applyBeta replaces branch's slot in tab.Branches with two clones, one per
// disjunct, mutating tab.Branches in place.
func (p *Prover) applyBeta(tab *Tableau, branch *Branch, worldID int64, sf SignedFormula, key string) {
	left, right := betaComponents(sf)

	leftBranch := branch.Clone()
	leftBranch.Worlds[worldID].Add(left, key)

	rightBranch := branch.Clone()
	rightBranch.Worlds[worldID].Add(right, key)

	idx := -1
	for i, b := range tab.Branches {
		if b == branch {
			idx = i
			break
		}
	}
	tab.Branches[idx] = leftBranch
	tab.Branches = append(tab.Branches, rightBranch)
}

// applyNu creates a fresh world accessible from worldID and places the
// modal operator's inner proposition there under the same sign.
func (p *Prover) applyNu(tab *Tableau, branch *Branch, worldID int64, sf SignedFormula, key string, props accessibilityProperties) {
	newID := tab.newWorld()
	branch.CreateWorld(newID, props)
	branch.AddRelation(worldID, newID, props)
	branch.Worlds[newID].Add(SignedFormula{Formula: innerProposition(sf), Sign: sf.Sign}, key)
}

// expandPiPropagation applies the π rule: every π formula in a world adds
// its inner formula, under the same sign, to every world accessible from
// it, repeated until nothing changes. applyFirstMatching's alpha/beta/nu
// scan does not handle π, since π must also reach worlds created after it
// was first seen; expandOneStep calls this at the start of every step so a
// π formula already present in a world reaches newly accessible worlds too.
func (p *Prover) expandPiPropagation(branch *Branch) bool {
	anyChange := false
	changed := true
	for changed {
		changed = false
		for worldID, w := range branch.Worlds {
			for key, sf := range w.Formulas {
				if classify(sf) != classPi {
					continue
				}
				for _, accessibleID := range branch.AccessibleFrom(worldID) {
					target := branch.Worlds[accessibleID]
					if target.Add(SignedFormula{Formula: innerProposition(sf), Sign: sf.Sign}, key) {
						changed = true
						anyChange = true
					}
				}
			}
		}
	}
	return anyChange
}

// reconstructClosed builds a ProofObject once every branch has closed,
// with one "branch_closure" ProofStep for each world, in each branch, that
// holds a complementary pair of signed formulas. The derivedFrom trail is
// not read here, so individual rule applications do not appear as steps.
func (p *Prover) reconstructClosed(goal ast.Node, tab *Tableau, start time.Time, budget rescfg.Budget) proof.ProofObject {
	var steps []proof.ProofStep
	for i, b := range tab.Branches {
		for _, w := range b.Worlds {
			for _, sf := range w.Formulas {
				if w.HasComplement(sf) {
					steps = append(steps, proof.NewStep(sf.Formula, "branch_closure",
						nil, "branch closed: complementary signed formulas in world"))
					break
				}
			}
		}
		_ = i
	}
	return proof.Success(goal, nil, steps, nil, p.Name(), proof.ElapsedMs(start), budget.EnforcementLimits())
}
