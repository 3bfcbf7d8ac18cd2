package smt

import (
	"strings"
	"testing"

	"github.com/Steake/godelos-core/ast"
)

func TestTranslateConnectives(t *testing.T) {
	P := ast.NewConstant("P", nil, ast.TypeBoolean)
	Q := ast.NewConstant("Q", nil, ast.TypeBoolean)
	cases := []struct {
		name string
		n    ast.Node
		want string
	}{
		{"not", ast.NewConnective(ast.NOT, []ast.Node{P}), "(not P)"},
		{"and", ast.NewConnective(ast.AND, []ast.Node{P, Q}), "(and P Q)"},
		{"or", ast.NewConnective(ast.OR, []ast.Node{P, Q}), "(or P Q)"},
		{"implies", ast.NewConnective(ast.IMPLIES, []ast.Node{P, Q}), "(=> P Q)"},
		{"equiv", ast.NewConnective(ast.EQUIV, []ast.Node{P, Q}), "(= P Q)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Translate(tc.n)
			if got != tc.want {
				t.Errorf("Translate(%s) = %q, want %q", tc.name, got, tc.want)
			}
		})
	}
}

func TestTranslateVariableRenaming(t *testing.T) {
	v := ast.NewVariable("x", 42, ast.TypeInteger)
	got := Translate(v)
	if got != "x_42" {
		t.Errorf("got %q, want x_42", got)
	}
}

func TestTranslateArithmeticPassthrough(t *testing.T) {
	x := ast.NewVariable("x", 1, ast.TypeInteger)
	y := ast.NewVariable("y", 2, ast.TypeInteger)
	app := ast.NewApplication("<", []ast.Node{x, y}, ast.TypeBoolean)
	got := Translate(app)
	want := "(< x_1 y_2)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSortOfMapping(t *testing.T) {
	cases := []struct {
		typ  ast.Type
		want string
	}{
		{ast.TypeBoolean, "Bool"},
		{ast.TypeInteger, "Int"},
		{ast.TypeReal, "Real"},
		{ast.TypeString, "String"},
	}
	for _, tc := range cases {
		if got := SortOf(tc.typ); got != tc.want {
			t.Errorf("SortOf(%v) = %q, want %q", tc.typ, got, tc.want)
		}
	}
}

func TestBuildScriptAssertsNegatedGoal(t *testing.T) {
	P := ast.NewConstant("P", nil, ast.TypeBoolean)
	cfg := DefaultConfiguration()
	script := BuildScript(P, nil, cfg)
	if !strings.Contains(script, "(assert (not P))") {
		t.Errorf("expected negated-goal assertion, got:\n%s", script)
	}
	if !strings.Contains(script, "(set-logic AUFLIRA)") {
		t.Errorf("expected set-logic line, got:\n%s", script)
	}
	if !strings.Contains(script, "(check-sat)") {
		t.Errorf("expected check-sat, got:\n%s", script)
	}
}

func TestBuildScriptDeclaresFreeVariableNotBoundOnes(t *testing.T) {
	gen := ast.NewIDGenerator()
	x := gen.FreshVariable("x", ast.TypeInteger)
	y := gen.FreshVariable("y", ast.TypeInteger)
	// forall x. P(x,y): x is bound, y is free.
	body := ast.NewApplication("P", []ast.Node{x, y}, ast.TypeBoolean)
	goal := ast.NewQuantifier(ast.FORALL, []ast.Variable{x}, body)

	cfg := DefaultConfiguration()
	script := BuildScript(goal, nil, cfg)
	if strings.Contains(script, "declare-const x_") {
		t.Errorf("bound variable x should not get its own declare-const:\n%s", script)
	}
	if !strings.Contains(script, "declare-const y_") {
		t.Errorf("free variable y should get a declare-const:\n%s", script)
	}
}

func TestParseResponseSat(t *testing.T) {
	v, _, _ := ParseResponse("sat\n")
	if v != VerdictSat {
		t.Errorf("got %v, want sat", v)
	}
}

func TestParseResponseUnsatWithCore(t *testing.T) {
	v, _, core := ParseResponse("unsat\n(unsat-core premise_0 negated_goal)\n")
	if v != VerdictUnsat {
		t.Errorf("got %v, want unsat", v)
	}
	if len(core) != 2 || core[0] != "premise_0" || core[1] != "negated_goal" {
		t.Errorf("got core %v, want [premise_0 negated_goal]", core)
	}
}

func TestParseResponseUnknown(t *testing.T) {
	v, _, _ := ParseResponse("unknown\n")
	if v != VerdictUnknown {
		t.Errorf("got %v, want unknown", v)
	}
}
