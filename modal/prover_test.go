package modal

import (
	"testing"

	"github.com/Steake/godelos-core/ast"
	"github.com/Steake/godelos-core/rescfg"
)

// TestModalReflexivityScenario mirrors spec.md §8 end-to-end scenario 3:
// Γ=∅, G=□P→P. Expected achieved=true under T, achieved=false under K.
func TestModalReflexivityScenario(t *testing.T) {
	P := ast.NewConstant("P", nil, ast.TypeBoolean)
	boxP := ast.NewModalOp(ast.NECESSARY, nil, P)
	goal := ast.NewConnective(ast.IMPLIES, []ast.Node{boxP, P})

	tProver := New(SystemT)
	result := tProver.Prove(goal, nil, rescfg.DefaultBudget())
	if !result.Achieved {
		t.Fatalf("expected □P->P to be valid under T, got status=%q", result.Status)
	}

	kProver := New(SystemK)
	result = kProver.Prove(goal, nil, rescfg.DefaultBudget())
	if result.Achieved {
		t.Fatal("expected □P->P to NOT be valid under K")
	}
}

func TestCanHandleRequiresModalOp(t *testing.T) {
	p := New(SystemK)
	P := ast.NewConstant("P", nil, ast.TypeBoolean)
	if p.CanHandle(P, nil) {
		t.Fatal("expected non-modal goal to be rejected")
	}
	modalGoal := ast.NewModalOp(ast.POSSIBLE, nil, P)
	if !p.CanHandle(modalGoal, nil) {
		t.Fatal("expected modal goal to be accepted")
	}
}

func TestS5AccessibilityIsEquivalenceRelation(t *testing.T) {
	props := PropertiesFor(SystemS5)
	branch := newBranch()
	branch.CreateWorld(1, props)
	branch.CreateWorld(2, props)
	branch.AddRelation(1, 2, props)

	if !branch.Relations[relation{1, 1}] {
		t.Error("expected S5 reflexivity on world 1")
	}
	if !branch.Relations[relation{2, 1}] {
		t.Error("expected S5 symmetry: 1->2 should imply 2->1")
	}
	if !branch.Relations[relation{2, 2}] {
		t.Error("expected S5 reflexivity on world 2 from its reflexive self-loop")
	}
}

func TestSystemDCreateWorldAddsNoSuccessor(t *testing.T) {
	props := PropertiesFor(SystemD)
	branch := newBranch()
	branch.CreateWorld(1, props)
	if branch.HasSuccessor(1) {
		t.Fatal("freshly created world should have no successor yet")
	}
}

func TestBranchClosesOnComplementaryLiterals(t *testing.T) {
	props := PropertiesFor(SystemK)
	branch := newBranch()
	w := branch.CreateWorld(1, props)
	P := ast.NewConstant("P", nil, ast.TypeBoolean)
	w.Add(SignedFormula{Formula: P, Sign: true}, "")
	w.Add(SignedFormula{Formula: P, Sign: false}, "")

	if !branch.CheckClosed() {
		t.Fatal("expected branch with P and ¬P in the same world to close")
	}
}

func TestModalProveIsWellFormedDAG(t *testing.T) {
	P := ast.NewConstant("P", nil, ast.TypeBoolean)
	boxP := ast.NewModalOp(ast.NECESSARY, nil, P)
	goal := ast.NewConnective(ast.IMPLIES, []ast.Node{boxP, P})

	result := New(SystemT).Prove(goal, nil, rescfg.DefaultBudget())
	if _, ok := result.ValidateStepDAG(); !ok {
		t.Fatal("expected a well-formed proof step DAG")
	}
}
