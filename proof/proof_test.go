package proof

import (
	"testing"

	"github.com/Steake/godelos-core/ast"
)

func TestSuccessSetsAchievedAndStatus(t *testing.T) {
	p := ast.NewConstant("P", nil, ast.TypeBoolean)
	obj := Success(p, nil, nil, nil, "resolution_prover", 1.5, nil)
	if !obj.Achieved {
		t.Fatal("expected Achieved=true")
	}
	if obj.Status != "Proved" {
		t.Fatalf("expected status Proved, got %s", obj.Status)
	}
	if obj.TraceID == "" {
		t.Fatal("expected a non-empty TraceID")
	}
}

func TestFailureSetsAchievedFalse(t *testing.T) {
	obj := Failure("time limit exceeded", "modal_tableau_prover", 100, nil)
	if obj.Achieved {
		t.Fatal("expected Achieved=false")
	}
	if obj.Status != "time limit exceeded" {
		t.Fatalf("unexpected status: %s", obj.Status)
	}
}

func TestWithTimeAndResourcesDoesNotMutateOriginal(t *testing.T) {
	original := Success(nil, nil, nil, nil, "clp_module", 10, map[string]float64{"nodes": 3})
	updated := original.WithTimeAndResources(20, map[string]float64{"time_taken_ms": 20})

	if original.TimeMs != 10 {
		t.Fatalf("original mutated: TimeMs=%v", original.TimeMs)
	}
	if updated.TimeMs != 20 {
		t.Fatalf("expected updated TimeMs=20, got %v", updated.TimeMs)
	}
	if updated.Resources["nodes"] != 3 {
		t.Fatalf("expected merged resource map to retain nodes=3, got %v", updated.Resources)
	}
}

func TestValidateStepDAGRejectsForwardReference(t *testing.T) {
	obj := ProofObject{
		Achieved: true,
		Steps: []ProofStep{
			NewStep(nil, "r1", []int{1}, "bad: references a later step"),
			NewStep(nil, "r2", nil, "base"),
		},
	}
	if _, ok := obj.ValidateStepDAG(); ok {
		t.Fatal("expected forward reference to fail validation")
	}
}

func TestValidateStepDAGAcceptsWellFormedTrail(t *testing.T) {
	obj := ProofObject{
		Achieved: true,
		Steps: []ProofStep{
			NewStep(nil, "premise", nil, "base"),
			NewStep(nil, "resolve", []int{0}, "derived"),
		},
	}
	if _, ok := obj.ValidateStepDAG(); !ok {
		t.Fatal("expected well-formed trail to pass validation")
	}
}
