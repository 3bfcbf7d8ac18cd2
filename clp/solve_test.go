package clp

import (
	"testing"

	"github.com/Steake/godelos-core/ast"
	"github.com/Steake/godelos-core/rescfg"
)

// TestSchedulingAllDifferent mirrors spec.md §8 scenario 4: three time
// variables over a shared domain, AllDifferent constrained, no logic
// program — a pure constraint+labeling query.
func TestSchedulingAllDifferent(t *testing.T) {
	gen := ast.NewIDGenerator()
	tv := gen.FreshVariable("tv_time", ast.TypeString)
	lights := gen.FreshVariable("lights_time", ast.TypeString)
	oven := gen.FreshVariable("oven_time", ast.TypeString)

	domains := NewDomainStore()
	slot := NewDomain("8AM", "12PM", "6PM")
	domains.Set(tv.Id, slot)
	domains.Set(lights.Id, slot)
	domains.Set(oven.Id, slot)

	allDiff := ast.NewApplication("AllDifferent", []ast.Node{tv, lights, oven}, ast.TypeBoolean)
	scheduled := ast.NewConnective(ast.AND, []ast.Node{
		ast.NewApplication("ScheduledAt", []ast.Node{ast.NewConstant("TV", nil, ast.TypeString), tv}, ast.TypeBoolean),
		ast.NewConnective(ast.AND, []ast.Node{
			ast.NewApplication("ScheduledAt", []ast.Node{ast.NewConstant("Lights", nil, ast.TypeString), lights}, ast.TypeBoolean),
			ast.NewApplication("ScheduledAt", []ast.Node{ast.NewConstant("Oven", nil, ast.TypeString), oven}, ast.TypeBoolean),
		}),
	})
	query := ast.NewConnective(ast.AND, []ast.Node{allDiff, scheduled})

	p := New(nil, domains, StrategyDefault, gen)
	result := p.Prove(query, nil, rescfg.DefaultBudget())

	if !result.Achieved {
		t.Fatalf("expected a satisfying schedule, got status=%q", result.Status)
	}
	seen := map[interface{}]bool{}
	for _, binding := range result.Bindings {
		c := binding.(ast.Constant)
		if seen[c.Value] {
			t.Fatalf("expected all three time slots to differ, duplicate value %v", c.Value)
		}
		seen[c.Value] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 distinct bound values, got %d", len(seen))
	}
}

func TestAllDifferentPropagationDetectsInfeasibility(t *testing.T) {
	gen := ast.NewIDGenerator()
	x := gen.FreshVariable("x", ast.TypeString)
	y := gen.FreshVariable("y", ast.TypeString)
	domains := NewDomainStore()
	domains.Set(x.Id, NewDomain("A"))
	domains.Set(y.Id, NewDomain("A"))

	c := Constraint{Op: "AllDifferent", Args: []ast.Node{x, y}}
	if c.Propagate(domains) {
		t.Fatal("expected AllDifferent over two singleton-A domains to be infeasible")
	}
}

func TestNotEqualNarrowsSingleton(t *testing.T) {
	gen := ast.NewIDGenerator()
	x := gen.FreshVariable("x", ast.TypeString)
	domains := NewDomainStore()
	domains.Set(x.Id, NewDomain("A", "B"))

	c := Constraint{Op: "≠", Args: []ast.Node{x, ast.NewConstant("A", "A", ast.TypeString)}}
	if !c.Propagate(domains) {
		t.Fatal("expected propagation to succeed")
	}
	d, _ := domains.Get(x.Id)
	if d.Contains("A") {
		t.Fatal("expected A removed from x's domain")
	}
}

func TestOrderConstraintNarrowsBounds(t *testing.T) {
	gen := ast.NewIDGenerator()
	x := gen.FreshVariable("x", ast.TypeInteger)
	y := gen.FreshVariable("y", ast.TypeInteger)
	domains := NewDomainStore()
	domains.Set(x.Id, NewDomain(int64(1), int64(2), int64(3), int64(4), int64(5)))
	domains.Set(y.Id, NewDomain(int64(1), int64(2), int64(3), int64(4), int64(5)))

	c := Constraint{Op: "<", Args: []ast.Node{x, y}}
	if !c.Propagate(domains) {
		t.Fatal("expected propagation to succeed")
	}
	dx, _ := domains.Get(x.Id)
	dy, _ := domains.Get(y.Id)
	if dx.Contains(int64(5)) {
		t.Fatal("expected 5 removed from x (nothing left for y to exceed it)")
	}
	if dy.Contains(int64(1)) {
		t.Fatal("expected 1 removed from y (nothing left for x to be less than)")
	}
}

func TestOutputTemplateGoalSucceedsWithoutProgram(t *testing.T) {
	gen := ast.NewIDGenerator()
	x := gen.FreshVariable("x", ast.TypeString)
	domains := NewDomainStore()
	domains.Set(x.Id, NewDomain("only"))

	goal := ast.NewApplication("Reported", []ast.Node{x}, ast.TypeBoolean)
	p := New(nil, domains, StrategyDefault, gen)
	result := p.Prove(goal, nil, rescfg.DefaultBudget())
	if !result.Achieved {
		t.Fatalf("expected undefined-predicate goal to succeed as an output template, got %q", result.Status)
	}
}
