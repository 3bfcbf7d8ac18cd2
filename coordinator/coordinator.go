// Package coordinator implements the dispatch/orchestration layer (spec.md
// §4.8): a priority-ordered rule table picks which registered prover
// handles a goal, a strategy hint can override that choice, and the
// coordinator enforces resource limits and timing uniformly across every
// prover, converting panics into failures the way the teacher's top-level
// command handlers convert panics into error results rather than crashing
// the process.
package coordinator

import (
	"fmt"
	"time"

	"github.com/Steake/godelos-core/ast"
	"github.com/Steake/godelos-core/obslog"
	"github.com/Steake/godelos-core/proof"
	"github.com/Steake/godelos-core/prover"
	"github.com/Steake/godelos-core/rescfg"
)

// rule pairs a dispatch priority with a prover name; the prover's own
// CanHandle acts as the predicate on the goal. Priority 100
// is modal, 90 is SMT, 80 is CLP, 10 is the resolution-prover default, per
// spec.md §4.8's table.
type rule struct {
	Priority  int
	ProverName string
}

// Coordinator holds the registered provers and dispatches submit_goal calls
// to the right one, per spec.md §4.8's contract
// `submit_goal(G, Γ, strategy_hint?, resources?) → ProofObject`.
type Coordinator struct {
	provers map[string]prover.Prover
	rules   []rule
}

// New returns a coordinator with no provers registered; call Register for
// each of the five provers before submitting goals.
func New() *Coordinator {
	return &Coordinator{provers: make(map[string]prover.Prover)}
}

// Register adds a prover under its own Name(), inferring its dispatch
// priority from a fixed table matching spec.md §4.8 (a prover whose name
// isn't recognized gets the resolution default's priority, 10, so that a
// custom/test prover still participates in dispatch without needing a
// coordinator code change).
func (c *Coordinator) Register(p prover.Prover) {
	c.provers[p.Name()] = p
	priority := priorityFor(p.Name())
	c.rules = append(c.rules, rule{Priority: priority, ProverName: p.Name()})
}

func priorityFor(name string) int {
	switch name {
	case "modal_tableau_prover":
		return 100
	case "smt_interface":
		return 90
	case "clp_module":
		return 80
	case "resolution_prover":
		return 10
	case "analogy_engine":
		// Not in spec.md §4.8's priority table at all: reachable only via an
		// explicit strategy_hint, never by default dispatch. Priority 0 (below
		// resolution_prover's catch-all 10) documents that intent even though
		// resolution_prover's unconditional CanHandle would shadow it anyway.
		return 0
	default:
		return 10
	}
}

// SubmitGoal is the coordinator's contract method. It resolves strategyHint
// first (if set and available and willing), otherwise walks the rule table
// in descending priority order, skipping any prover whose CanHandle
// declines. Resource enforcement, panic recovery, and the authoritative
// time_ms/resources overwrite all happen here, uniformly, regardless of
// which prover actually ran.
func (c *Coordinator) SubmitGoal(goal ast.Node, context []ast.Node, strategyHint string, budget rescfg.Budget) (result proof.ProofObject) {
	start := time.Now()
	timer := obslog.StartTimer(obslog.CategoryCoordinator, "submit_goal")
	defer timer.Stop()

	defer func() {
		if r := recover(); r != nil {
			obslog.Error(obslog.CategoryCoordinator, "prover panicked: %v", r)
			result = proof.Failure(fmt.Sprintf("Error: %v", r), "coordinator", proof.ElapsedMs(start), budget.EnforcementLimits())
		}
		elapsed := proof.ElapsedMs(start)
		resources := budget.EnforcementLimits()
		resources["time_taken_ms"] = elapsed
		result = result.WithTimeAndResources(elapsed, resources)
	}()

	chosen := c.dispatch(goal, context, strategyHint)
	if chosen == nil {
		return proof.Failure("No suitable prover found for this goal", "coordinator", proof.ElapsedMs(start), budget.EnforcementLimits())
	}

	obslog.Info(obslog.CategoryCoordinator, "dispatching goal to %s (strategy_hint=%q)", chosen.Name(), strategyHint)
	return chosen.Prove(goal, context, budget)
}

// dispatch picks the prover per spec.md §4.8's rule: strategy hint wins if
// it names an available, willing prover; otherwise rules are tried in
// descending priority, skipping any whose CanHandle declines.
func (c *Coordinator) dispatch(goal ast.Node, context []ast.Node, strategyHint string) prover.Prover {
	if strategyHint != "" {
		if p, ok := c.provers[strategyHint]; ok && p.CanHandle(goal, context) {
			return p
		}
	}

	ordered := make([]rule, len(c.rules))
	copy(ordered, c.rules)
	sortRulesByPriorityDesc(ordered)

	for _, r := range ordered {
		p := c.provers[r.ProverName]
		if p == nil {
			continue
		}
		if p.CanHandle(goal, context) {
			return p
		}
	}
	return nil
}

func sortRulesByPriorityDesc(rules []rule) {
	for i := 1; i < len(rules); i++ {
		for j := i; j > 0 && rules[j].Priority > rules[j-1].Priority; j-- {
			rules[j], rules[j-1] = rules[j-1], rules[j]
		}
	}
}
