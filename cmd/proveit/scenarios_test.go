package main

import "testing"

// TestScenariosDispatchToExpectedEngine locks each built-in scenario to the
// prover spec.md §4.8's dispatch table would pick for it, so a future
// dispatch-table edit that silently reroutes a scenario gets caught here.
func TestScenariosDispatchToExpectedEngine(t *testing.T) {
	want := map[string]string{
		"modus-ponens":       "resolution_prover",
		"modal-reflexivity":  "modal_tableau_prover",
		"scheduling":         "clp_module",
		"arithmetic":         "smt_interface",
		"solar-atom-analogy": "analogy_engine",
	}

	for _, s := range allScenarios() {
		coord := buildCoordinator()
		hint := s.StrategyHint
		result := coord.SubmitGoal(s.Goal, s.Context, hint, s.Budget)
		if result.Engine != want[s.Name] {
			t.Errorf("scenario %s: expected engine %s, got %s (status=%q)", s.Name, want[s.Name], result.Engine, result.Status)
		}
	}
}
