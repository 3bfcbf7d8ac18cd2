// Package modal implements the signed-formula semantic tableau prover for
// modal logic over Kripke worlds (spec.md §4.4): K, T, D, B, S4, S5 are
// distinguished only by which accessibility properties are enforced eagerly
// on every world creation.
package modal

// System names a modal logic by the accessibility properties it imposes.
type System string

const (
	SystemK  System = "K"
	SystemT  System = "T"
	SystemD  System = "D"
	SystemB  System = "B"
	SystemS4 System = "S4"
	SystemS5 System = "S5"
)

// accessibilityProperties mirrors spec.md §4.4's table exactly.
type accessibilityProperties struct {
	Reflexive  bool
	Symmetric  bool
	Transitive bool
	Serial     bool
}

var systemProperties = map[System]accessibilityProperties{
	SystemK:  {},
	SystemT:  {Reflexive: true},
	SystemD:  {Serial: true},
	SystemB:  {Reflexive: true, Symmetric: true},
	SystemS4: {Reflexive: true, Transitive: true},
	SystemS5: {Reflexive: true, Symmetric: true, Transitive: true},
}

// PropertiesFor returns the accessibility properties for a system, defaulting
// to K's (no properties) for unrecognized system names.
func PropertiesFor(s System) accessibilityProperties {
	if props, ok := systemProperties[s]; ok {
		return props
	}
	return systemProperties[SystemK]
}
