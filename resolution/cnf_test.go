package resolution

import (
	"testing"

	"github.com/Steake/godelos-core/ast"
)

func TestToCNFEliminatesImplies(t *testing.T) {
	gen := ast.NewIDGenerator()
	A := ast.NewConstant("A", nil, ast.TypeBoolean)
	B := ast.NewConstant("B", nil, ast.TypeBoolean)
	formula := ast.NewConnective(ast.IMPLIES, []ast.Node{A, B})

	clauses := ToCNF(formula, gen)
	if len(clauses) != 1 || len(clauses[0]) != 2 {
		t.Fatalf("expected a single 2-literal clause for A->B, got %v", clauses)
	}
	foundNegA, foundB := false, false
	for _, lit := range clauses[0] {
		if lit.Negated && lit.Atom.Equal(A) {
			foundNegA = true
		}
		if !lit.Negated && lit.Atom.Equal(B) {
			foundB = true
		}
	}
	if !foundNegA || !foundB {
		t.Fatalf("expected clause {¬A, B}, got %v", clauses[0])
	}
}

func TestToCNFSkolemizesExistentialUnderUniversal(t *testing.T) {
	gen := ast.NewIDGenerator()
	x := gen.FreshVariable("x", ast.TypeUnknown)
	y := gen.FreshVariable("y", ast.TypeUnknown)
	// forall x. exists y. P(x, y)
	inner := ast.NewApplication("P", []ast.Node{x, y}, ast.TypeBoolean)
	exists := ast.NewQuantifier(ast.EXISTS, []ast.Variable{y}, inner)
	formula := ast.NewQuantifier(ast.FORALL, []ast.Variable{x}, exists)

	clauses := ToCNF(formula, gen)
	if len(clauses) != 1 || len(clauses[0]) != 1 {
		t.Fatalf("expected a single unit clause, got %v", clauses)
	}
	app, ok := clauses[0][0].Atom.(ast.Application)
	if !ok || app.Operator != "P" {
		t.Fatalf("expected P(...) atom, got %v", clauses[0][0].Atom)
	}
	skolemArg, ok := app.Args[1].(ast.Application)
	if !ok {
		t.Fatalf("expected second argument to be a Skolem function application over x, got %v", app.Args[1])
	}
	// Standardizing apart renames x to a fresh variable, which is the one
	// that appears as P's first argument.
	renamedX, isVar := app.Args[0].(ast.Variable)
	if len(skolemArg.Args) != 1 || !isVar || renamedX.Name != x.Name || !skolemArg.Args[0].Equal(renamedX) {
		t.Fatalf("expected Skolem function to take the enclosing universal x, got %v", skolemArg.Args)
	}
}

func TestToCNFSkolemConstantWhenNoEnclosingUniversal(t *testing.T) {
	gen := ast.NewIDGenerator()
	y := gen.FreshVariable("y", ast.TypeUnknown)
	formula := ast.NewQuantifier(ast.EXISTS, []ast.Variable{y},
		ast.NewApplication("P", []ast.Node{y}, ast.TypeBoolean))

	clauses := ToCNF(formula, gen)
	app := clauses[0][0].Atom.(ast.Application)
	if _, ok := app.Args[0].(ast.Constant); !ok {
		t.Fatalf("expected a Skolem constant with no enclosing universals, got %T", app.Args[0])
	}
}

func TestToCNFDistributesOrOverAnd(t *testing.T) {
	gen := ast.NewIDGenerator()
	A := ast.NewConstant("A", nil, ast.TypeBoolean)
	B := ast.NewConstant("B", nil, ast.TypeBoolean)
	C := ast.NewConstant("C", nil, ast.TypeBoolean)
	// A OR (B AND C)  =>  (A OR B) AND (A OR C)
	formula := ast.NewConnective(ast.OR, []ast.Node{A, ast.NewConnective(ast.AND, []ast.Node{B, C})})

	clauses := ToCNF(formula, gen)
	if len(clauses) != 2 {
		t.Fatalf("expected two clauses after distribution, got %d: %v", len(clauses), clauses)
	}
	for _, c := range clauses {
		if len(c) != 2 {
			t.Fatalf("expected each clause to have 2 literals, got %v", c)
		}
	}
}

func TestToCNFIdempotentOnCNFInput(t *testing.T) {
	gen := ast.NewIDGenerator()
	A := ast.NewConstant("A", nil, ast.TypeBoolean)
	B := ast.NewConstant("B", nil, ast.TypeBoolean)
	cnf := ast.NewConnective(ast.AND, []ast.Node{
		ast.NewConnective(ast.OR, []ast.Node{A, B}),
		A,
	})

	first := ToCNF(cnf, gen)
	// Re-running CNF conversion on an already-CNF formula should yield the
	// same number of clauses with the same shapes (up to the fresh
	// variable renaming standardize-apart always performs).
	second := ToCNF(cnf, gen)
	if len(first) != len(second) {
		t.Fatalf("expected idempotent clause count, got %d vs %d", len(first), len(second))
	}
}
