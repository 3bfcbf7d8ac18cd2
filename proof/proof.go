// Package proof defines ProofObject, the uniform immutable result value
// returned by every prover, and ProofStep, its DAG-shaped justification
// trail.
//
// Grounded on the teacher's internal/mangle proof-tree tracer
// (DerivationNode/DerivationTrace/ProofTreeTracer): a ProofStep is a
// flattened DerivationNode (formula + rule name + parent indices in place of
// parent pointers), and ProofObject.Steps plays the role of
// DerivationTrace.AllNodes. JSON tags mirror the teacher's
// json-for-audit-logging convention.
package proof

import (
	"time"

	"github.com/Steake/godelos-core/ast"
	"github.com/google/uuid"
)

// ProofStep records one inference: the formula it produced, the rule that
// produced it, and the (strictly smaller) indices of the steps it depends
// on. explanation is a short human-readable gloss, not a format contract.
type ProofStep struct {
	Formula     ast.Node `json:"-"`
	FormulaText string   `json:"formula"`
	RuleName    string   `json:"rule_name"`
	Premises    []int    `json:"premises"`
	Explanation string   `json:"explanation"`
}

// NewStep builds a ProofStep, capturing the formula's textual rendering for
// JSON serialization alongside the structured ast.Node used in-process.
func NewStep(formula ast.Node, ruleName string, premises []int, explanation string) ProofStep {
	text := ""
	if formula != nil {
		text = formula.String()
	}
	return ProofStep{
		Formula:     formula,
		FormulaText: text,
		RuleName:    ruleName,
		Premises:    premises,
		Explanation: explanation,
	}
}

// ProofObject is the uniform, immutable return value of every prover's
// Prove method. Instances are values: construct with Success/Failure and
// derive updated copies with WithTimeAndResources; never mutate a
// ProofObject in place.
type ProofObject struct {
	Achieved      bool               `json:"achieved"`
	Conclusion    ast.Node           `json:"-"`
	ConclusionText string            `json:"conclusion,omitempty"`
	Bindings      map[string]ast.Node `json:"-"`
	BindingsText  map[string]string  `json:"bindings,omitempty"`
	Status        string             `json:"status"`
	Steps         []ProofStep        `json:"steps,omitempty"`
	UsedPremises  []ast.Node         `json:"-"`
	Engine        string             `json:"engine"`
	TimeMs        float64            `json:"time_ms"`
	Resources     map[string]float64 `json:"resources,omitempty"`
	// TraceID correlates this ProofObject with external audit logs; minted
	// once per Success/Failure construction via google/uuid, mirroring the
	// teacher's audit-event UUIDs.
	TraceID string `json:"trace_id"`
}

// Success builds an achieved ProofObject with status "Proved".
func Success(conclusion ast.Node, bindings map[string]ast.Node, steps []ProofStep, usedPremises []ast.Node, engine string, timeMs float64, resources map[string]float64) ProofObject {
	bindingsText := make(map[string]string, len(bindings))
	for k, v := range bindings {
		bindingsText[k] = v.String()
	}
	conclusionText := ""
	if conclusion != nil {
		conclusionText = conclusion.String()
	}
	return ProofObject{
		Achieved:       true,
		Conclusion:     conclusion,
		ConclusionText: conclusionText,
		Bindings:       bindings,
		BindingsText:   bindingsText,
		Status:         "Proved",
		Steps:          steps,
		UsedPremises:   usedPremises,
		Engine:         engine,
		TimeMs:         timeMs,
		Resources:      resources,
		TraceID:        uuid.NewString(),
	}
}

// Failure builds a non-achieved ProofObject carrying a human-readable
// status describing why the prover did not succeed.
func Failure(status, engine string, timeMs float64, resources map[string]float64) ProofObject {
	return ProofObject{
		Achieved:  false,
		Status:    status,
		Engine:    engine,
		TimeMs:    timeMs,
		Resources: resources,
		TraceID:   uuid.NewString(),
	}
}

// WithTimeAndResources returns a copy of p with Time/Resources fields
// replaced, used by the coordinator to inject authoritative dispatch timing
// without disturbing the rest of a prover-returned ProofObject. p itself is
// never mutated.
func (p ProofObject) WithTimeAndResources(timeMs float64, resources map[string]float64) ProofObject {
	cp := p
	cp.TimeMs = timeMs
	merged := make(map[string]float64, len(p.Resources)+len(resources))
	for k, v := range p.Resources {
		merged[k] = v
	}
	for k, v := range resources {
		merged[k] = v
	}
	cp.Resources = merged
	return cp
}

// ValidateStepDAG checks the §8 testable invariant that, for an achieved
// ProofObject, every step's premise indices are strictly smaller than the
// step's own index (so Steps forms a DAG with no forward or self
// references). It returns the offending step index and false on violation.
func (p ProofObject) ValidateStepDAG() (badStep int, ok bool) {
	for i, step := range p.Steps {
		for _, premise := range step.Premises {
			if premise >= i {
				return i, false
			}
		}
	}
	return -1, true
}

// ElapsedMs is a small helper for provers timing their own main loop: it
// returns the milliseconds elapsed since start as a float64 suitable for
// ProofObject.TimeMs / Resources["time_taken_ms"].
func ElapsedMs(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
