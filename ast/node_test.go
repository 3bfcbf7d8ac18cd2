package ast

import "testing"

func TestApplyPreservesTypeTag(t *testing.T) {
	gen := NewIDGenerator()
	x := gen.FreshVariable("x", TypeInteger)
	term := NewApplication("Total", []Node{x}, TypeInteger)

	sub := Empty().Extend(x.Id, NewConstant("", int64(42), TypeInteger))
	result := Apply(sub, term)

	if result.Type().String() != term.Type().String() {
		t.Fatalf("Apply changed type tag: got %v, want %v", result.Type(), term.Type())
	}
}

func TestApplyIsIdempotentWhenNoBindings(t *testing.T) {
	gen := NewIDGenerator()
	x := gen.FreshVariable("x", TypeInteger)
	out := Apply(Empty(), x)
	if !out.Equal(x) {
		t.Fatalf("Apply with empty substitution should be identity, got %v", out)
	}
}

func TestApplyChainsBindings(t *testing.T) {
	gen := NewIDGenerator()
	x := gen.FreshVariable("x", TypeInteger)
	y := gen.FreshVariable("y", TypeInteger)

	sub := Empty().Extend(x.Id, y).Extend(y.Id, NewConstant("", int64(7), TypeInteger))
	got := Apply(sub, x)
	want := NewConstant("", int64(7), TypeInteger)
	if !got.Equal(want) {
		t.Fatalf("expected chained binding to resolve to %v, got %v", want, got)
	}
}

func TestFreeVariablesExcludesBound(t *testing.T) {
	gen := NewIDGenerator()
	x := gen.FreshVariable("x", TypeInteger)
	y := gen.FreshVariable("y", TypeInteger)

	scope := NewApplication("P", []Node{x, y}, TypeBoolean)
	quant := NewQuantifier(FORALL, []Variable{x}, scope)

	free := FreeVariables(quant)
	if _, boundStillFree := free[x.Id]; boundStillFree {
		t.Fatalf("bound variable %v leaked into free set", x)
	}
	if _, ok := free[y.Id]; !ok {
		t.Fatalf("free variable %v missing from free set", y)
	}
}

func TestIsModalDetectsModalOp(t *testing.T) {
	gen := NewIDGenerator()
	p := NewConstant("P", nil, TypeBoolean)
	modal := NewModalOp(NECESSARY, nil, p)
	if !IsModal(modal) {
		t.Fatal("expected IsModal to detect top-level ModalOp")
	}
	conj := NewConnective(AND, []Node{modal, p})
	if !IsModal(conj) {
		t.Fatal("expected IsModal to detect nested ModalOp")
	}
	if IsModal(p) {
		t.Fatal("expected IsModal(p) to be false for a plain constant")
	}
	_ = gen
}
