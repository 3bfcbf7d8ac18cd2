package unify

import (
	"testing"

	"github.com/Steake/godelos-core/ast"
)

func TestUnifyVariableToConstant(t *testing.T) {
	gen := ast.NewIDGenerator()
	x := gen.FreshVariable("x", ast.TypeInteger)
	c := ast.NewConstant("", int64(5), ast.TypeInteger)

	sub, ok := Unify(x, c)
	if !ok {
		t.Fatal("expected unification to succeed")
	}
	bound, ok := sub.Lookup(x.Id)
	if !ok || !bound.Equal(c) {
		t.Fatalf("expected x bound to %v, got %v", c, bound)
	}
}

func TestUnifyOccursCheckFails(t *testing.T) {
	gen := ast.NewIDGenerator()
	x := gen.FreshVariable("x", ast.TypeUnknown)
	app := ast.NewApplication("f", []ast.Node{x}, ast.TypeUnknown)

	if _, ok := Unify(x, app); ok {
		t.Fatal("expected occurs-check to reject x = f(x)")
	}
}

func TestUnifyApplicationPairwise(t *testing.T) {
	gen := ast.NewIDGenerator()
	x := gen.FreshVariable("x", ast.TypeUnknown)
	y := gen.FreshVariable("y", ast.TypeUnknown)
	a := ast.NewApplication("P", []ast.Node{x, ast.NewConstant("b", nil, ast.TypeUnknown)}, ast.TypeBoolean)
	b := ast.NewApplication("P", []ast.Node{ast.NewConstant("a", nil, ast.TypeUnknown), y}, ast.TypeBoolean)

	sub, ok := Unify(a, b)
	if !ok {
		t.Fatal("expected P(x,b) and P(a,y) to unify")
	}
	if bx, _ := sub.Lookup(x.Id); bx.String() != "a" {
		t.Fatalf("expected x -> a, got %v", bx)
	}
	if by, _ := sub.Lookup(y.Id); by.String() != "b" {
		t.Fatalf("expected y -> b, got %v", by)
	}
}

func TestUnifyDifferentOperatorsFail(t *testing.T) {
	a := ast.NewApplication("P", nil, ast.TypeBoolean)
	b := ast.NewApplication("Q", nil, ast.TypeBoolean)
	if _, ok := Unify(a, b); ok {
		t.Fatal("expected different operators to fail unification")
	}
}

func TestUnifyTypeIncompatibility(t *testing.T) {
	gen := ast.NewIDGenerator()
	x := gen.FreshVariable("x", ast.TypeInteger)
	s := ast.NewConstant("hello", "hello", ast.TypeString)
	if _, ok := Unify(x, s); ok {
		t.Fatal("expected Integer variable to reject String constant")
	}
}
