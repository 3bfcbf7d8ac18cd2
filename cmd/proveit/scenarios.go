package main

import (
	"github.com/Steake/godelos-core/analogy"
	"github.com/Steake/godelos-core/ast"
	"github.com/Steake/godelos-core/clp"
	"github.com/Steake/godelos-core/coordinator"
	"github.com/Steake/godelos-core/modal"
	"github.com/Steake/godelos-core/resolution"
	"github.com/Steake/godelos-core/rescfg"
	"github.com/Steake/godelos-core/smt"
)

// scenario is a canned goal/context pair the CLI can submit, standing in for
// a user-typed logic query (this module has no surface-syntax parser; goals
// are ast.Node values built in code). Named after spec.md §8's worked
// examples.
type scenario struct {
	Name         string
	Description  string
	Goal         ast.Node
	Context      []ast.Node
	StrategyHint string
	Budget       rescfg.Budget
}

func allScenarios() []scenario {
	return []scenario{
		modusPonensScenario(),
		modalReflexivityScenario(),
		schedulingScenario(),
		arithmeticScenario(),
		solarSystemAnalogyScenario(),
	}
}

// modusPonensScenario: Γ={P, P⇒Q}, G=Q. Resolution closes in two steps
// (¬Q with ¬P∨Q gives ¬P, then ¬P with P gives the empty clause).
func modusPonensScenario() scenario {
	p := ast.NewConstant("P", nil, ast.TypeBoolean)
	q := ast.NewConstant("Q", nil, ast.TypeBoolean)
	pImpliesQ := ast.NewConnective(ast.IMPLIES, []ast.Node{p, q})
	return scenario{
		Name:        "modus-ponens",
		Description: "Γ={P, P⇒Q}, G=Q — resolution_prover",
		Goal:        q,
		Context:     []ast.Node{p, pImpliesQ},
		Budget:      rescfg.DefaultBudget(),
	}
}

// modalReflexivityScenario: Γ=∅, G=□P→P, valid under T (reflexive access).
func modalReflexivityScenario() scenario {
	p := ast.NewConstant("P", nil, ast.TypeBoolean)
	boxP := ast.NewModalOp(ast.NECESSARY, nil, p)
	goal := ast.NewConnective(ast.IMPLIES, []ast.Node{boxP, p})
	return scenario{
		Name:        "modal-reflexivity",
		Description: "□P→P, valid under system T — modal_tableau_prover",
		Goal:        goal,
		Budget:      rescfg.DefaultBudget(),
	}
}

// schedulingScenario mirrors spec.md §8 scenario 4: three appliances need
// distinct time slots.
func schedulingScenario() scenario {
	gen := ast.NewIDGenerator()
	tv := gen.FreshVariable("tv_time", ast.TypeString)
	lights := gen.FreshVariable("lights_time", ast.TypeString)
	oven := gen.FreshVariable("oven_time", ast.TypeString)

	slot := clp.NewDomain("8AM", "12PM", "6PM")
	domains := clp.NewDomainStore()
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
	goal := ast.NewConnective(ast.AND, []ast.Node{allDiff, scheduled})

	// carried on the scenario via a package-level registry hook below, since
	// the CLP prover needs the same gen/domains instance used to build the
	// goal's variables.
	registerCLPFixture("scheduling", gen, domains)

	return scenario{
		Name:        "scheduling",
		Description: "three appliances, AllDifferent time slots — clp_module",
		Goal:        goal,
		Budget:      rescfg.DefaultBudget(),
	}
}

// arithmeticScenario: G = x < 10 ∧ x > 3 ∧ x = 7, satisfiable arithmetic the
// modal prover doesn't claim; CLP also claims it, but smt_interface outranks
// CLP in dispatch priority, so it dispatches to smt_interface.
func arithmeticScenario() scenario {
	x := ast.NewVariable("X", 1, ast.TypeInteger)
	seven := ast.NewConstant("7", 7, ast.TypeInteger)
	ten := ast.NewConstant("10", 10, ast.TypeInteger)
	three := ast.NewConstant("3", 3, ast.TypeInteger)
	goal := ast.NewConnective(ast.AND, []ast.Node{
		ast.NewApplication("<", []ast.Node{x, ten}, ast.TypeBoolean),
		ast.NewConnective(ast.AND, []ast.Node{
			ast.NewApplication(">", []ast.Node{x, three}, ast.TypeBoolean),
			ast.NewApplication("=", []ast.Node{x, seven}, ast.TypeBoolean),
		}),
	})
	return scenario{
		Name:        "arithmetic",
		Description: "X<10 ∧ X>3 ∧ X=7 — smt_interface",
		Goal:        goal,
		Budget:      rescfg.DefaultBudget(),
	}
}

// solarSystemAnalogyScenario asks the analogy engine to find the structural
// mapping between the solar system and the atom (spec.md §4.7's textbook
// example), via context-splitting: the first half of context is the source
// domain, the second half the target.
func solarSystemAnalogyScenario() scenario {
	sun := ast.NewConstant("Sun", nil, ast.TypeString)
	planet := ast.NewConstant("Planet", nil, ast.TypeString)
	nucleus := ast.NewConstant("Nucleus", nil, ast.TypeString)
	electron := ast.NewConstant("Electron", nil, ast.TypeString)

	context := []ast.Node{
		ast.NewApplication("Orbits", []ast.Node{planet, sun}, ast.TypeBoolean),
		ast.NewApplication("Attracts", []ast.Node{sun, planet}, ast.TypeBoolean),
		ast.NewApplication("Orbits", []ast.Node{electron, nucleus}, ast.TypeBoolean),
		ast.NewApplication("Attracts", []ast.Node{nucleus, electron}, ast.TypeBoolean),
	}
	goal := ast.NewApplication("FindAnalogicalMapping", nil, ast.TypeBoolean)
	return scenario{
		Name:        "solar-atom-analogy",
		Description: "solar system ↔ atom structure mapping — analogy_engine",
		Goal:        goal,
		Context:     context,
		// analogy_engine has no row in spec.md §4.8's priority table — it is
		// reachable only by naming it as a strategy_hint, never by default
		// dispatch (which would otherwise fall through to resolution_prover,
		// whose CanHandle claims everything).
		StrategyHint: "analogy_engine",
		Budget:       rescfg.DefaultBudget(),
	}
}

// clpFixtures holds the (gen, domains) pair each CLP scenario's goal
// variables were minted from, keyed by scenario name, so buildCoordinator
// can hand the CLP prover the exact store its variable IDs refer to.
var clpFixtures = map[string]struct {
	gen     *ast.IDGenerator
	domains *clp.DomainStore
}{}

func registerCLPFixture(name string, gen *ast.IDGenerator, domains *clp.DomainStore) {
	clpFixtures[name] = struct {
		gen     *ast.IDGenerator
		domains *clp.DomainStore
	}{gen, domains}
}

// buildCoordinator wires all five provers behind a coordinator. The CLP
// prover is built against the scheduling fixture's domain store, since that
// is the only scenario this CLI exercises it with; a host embedding this
// module for real would construct one CLP prover per active domain store
// instead of a process-wide singleton.
func buildCoordinator() *coordinator.Coordinator {
	coord := coordinator.New()
	coord.Register(resolution.New())
	coord.Register(modal.New(modal.SystemT))
	coord.Register(smt.New(smt.DefaultConfiguration()))
	coord.Register(analogy.New(analogy.DefaultOptions()))

	if fixture, ok := clpFixtures["scheduling"]; ok {
		coord.Register(clp.New(nil, fixture.domains, clp.StrategyDefault, fixture.gen))
	} else {
		coord.Register(clp.New(nil, clp.NewDomainStore(), clp.StrategyDefault, ast.NewIDGenerator()))
	}
	return coord
}
