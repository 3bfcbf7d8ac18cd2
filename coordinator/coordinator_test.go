package coordinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Steake/godelos-core/ast"
	"github.com/Steake/godelos-core/modal"
	"github.com/Steake/godelos-core/proof"
	"github.com/Steake/godelos-core/resolution"
	"github.com/Steake/godelos-core/rescfg"
)

// stubProver is a minimal fake for exercising dispatch edge cases that the
// five real provers don't conveniently hit (declining everything, or
// panicking), the way the teacher's internal tests stub out a dependency
// rather than exercise it through a real implementation.
type stubProver struct {
	name    string
	handles bool
	panics  bool
	result  proof.ProofObject
}

func (s *stubProver) Name() string                       { return s.name }
func (s *stubProver) Capabilities() map[string]bool       { return nil }
func (s *stubProver) CanHandle(ast.Node, []ast.Node) bool { return s.handles }
func (s *stubProver) Prove(goal ast.Node, context []ast.Node, budget rescfg.Budget) proof.ProofObject {
	if s.panics {
		panic("stub blew up")
	}
	return s.result
}

func modalGoal() ast.Node {
	p := ast.NewConstant("P", nil, ast.TypeBoolean)
	return ast.NewConnective(ast.IMPLIES, []ast.Node{ast.NewModalOp(ast.NECESSARY, nil, p), p})
}

func plainGoal() ast.Node {
	return ast.NewConstant("P", nil, ast.TypeBoolean)
}

func TestDispatchFallsBackToResolutionByDefault(t *testing.T) {
	c := New()
	c.Register(resolution.New())

	result := c.SubmitGoal(plainGoal(), nil, "", rescfg.DefaultBudget())
	assert.Equal(t, "resolution_prover", result.Engine)
}

func TestDispatchPrefersHigherPriorityModalProver(t *testing.T) {
	c := New()
	c.Register(resolution.New())
	c.Register(modal.New(modal.SystemT))

	result := c.SubmitGoal(modalGoal(), nil, "", rescfg.DefaultBudget())
	assert.Equal(t, "modal_tableau_prover", result.Engine,
		"modal_tableau_prover (priority 100) should win over resolution_prover (priority 10)")
}

func TestStrategyHintOverridesPriorityOrder(t *testing.T) {
	c := New()
	c.Register(resolution.New())
	c.Register(modal.New(modal.SystemT))

	// Goal is not modal, but the hint names a willing prover that would
	// otherwise lose to resolution_prover's blanket CanHandle.
	willing := &stubProver{name: "custom_prover", handles: true,
		result: proof.Success(plainGoal(), nil, nil, nil, "custom_prover", 0, nil)}
	c.Register(willing)

	result := c.SubmitGoal(plainGoal(), nil, "custom_prover", rescfg.DefaultBudget())
	require.Equal(t, "custom_prover", result.Engine)
}

func TestStrategyHintIgnoredWhenProverDeclines(t *testing.T) {
	c := New()
	c.Register(resolution.New())
	unwilling := &stubProver{name: "picky_prover", handles: false}
	c.Register(unwilling)

	result := c.SubmitGoal(plainGoal(), nil, "picky_prover", rescfg.DefaultBudget())
	assert.Equal(t, "resolution_prover", result.Engine,
		"a declining hinted prover should fall back to priority dispatch")
}

func TestNoSuitableProverReturnsFailure(t *testing.T) {
	c := New()
	c.Register(&stubProver{name: "never", handles: false})

	result := c.SubmitGoal(plainGoal(), nil, "", rescfg.DefaultBudget())
	require.False(t, result.Achieved)
	assert.Equal(t, "No suitable prover found for this goal", result.Status)
}

func TestProverPanicBecomesFailure(t *testing.T) {
	c := New()
	c.Register(&stubProver{name: "exploder", handles: true, panics: true})

	result := c.SubmitGoal(plainGoal(), nil, "", rescfg.DefaultBudget())
	require.False(t, result.Achieved, "a panicking prover must surface as a failed ProofObject, not a crash")
	assert.Equal(t, "Error: stub blew up", result.Status)
}

func TestCoordinatorOverwritesTiming(t *testing.T) {
	c := New()
	// Sub-prover reports an implausible self-timed value; the coordinator
	// must overwrite it with its own measurement.
	stub := &stubProver{name: "slow_reporter", handles: true,
		result: proof.Success(plainGoal(), nil, nil, nil, "slow_reporter", 999999, map[string]float64{"time_taken_ms": 999999})}
	c.Register(stub)

	result := c.SubmitGoal(plainGoal(), nil, "", rescfg.DefaultBudget())
	assert.NotEqual(t, float64(999999), result.TimeMs,
		"coordinator must overwrite the sub-prover's self-reported time_ms")
}
