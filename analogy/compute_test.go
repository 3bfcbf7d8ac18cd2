package analogy

import (
	"testing"

	"github.com/Steake/godelos-core/ast"
)

// solarSystemAndAtom builds the classic structure-mapping textbook example:
// source = solar system (Sun, Planet orbiting/attracting), target = atom
// (Nucleus, Electron orbiting/attracting).
func solarSystemAndAtom() (source, target []ast.Node) {
	sun := ast.NewConstant("Sun", nil, ast.TypeString)
	planet := ast.NewConstant("Planet", nil, ast.TypeString)
	nucleus := ast.NewConstant("Nucleus", nil, ast.TypeString)
	electron := ast.NewConstant("Electron", nil, ast.TypeString)

	source = []ast.Node{
		ast.NewApplication("Orbits", []ast.Node{planet, sun}, ast.TypeBoolean),
		ast.NewApplication("Attracts", []ast.Node{sun, planet}, ast.TypeBoolean),
	}
	target = []ast.Node{
		ast.NewApplication("Orbits", []ast.Node{electron, nucleus}, ast.TypeBoolean),
		ast.NewApplication("Attracts", []ast.Node{nucleus, electron}, ast.TypeBoolean),
	}
	return source, target
}

func TestComputeAnalogiesFindsStructuralMapping(t *testing.T) {
	srcFormulas, tgtFormulas := solarSystemAndAtom()
	source := ExtractDomain(srcFormulas)
	target := ExtractDomain(tgtFormulas)

	mappings := ComputeAnalogies(source, target, DefaultOptions())
	if len(mappings) == 0 {
		t.Fatal("expected at least one mapping")
	}
	best := mappings[0]
	if best.ObjectMapping["Sun"] != "Nucleus" {
		t.Errorf("expected Sun -> Nucleus, got %v", best.ObjectMapping["Sun"])
	}
	if best.ObjectMapping["Planet"] != "Electron" {
		t.Errorf("expected Planet -> Electron, got %v", best.ObjectMapping["Planet"])
	}
	if best.StructuralScore != 1.0 {
		t.Errorf("expected a fully-mapped structural score of 1.0, got %v", best.StructuralScore)
	}
}

func TestProjectWalksMappedExpression(t *testing.T) {
	srcFormulas, tgtFormulas := solarSystemAndAtom()
	source := ExtractDomain(srcFormulas)
	target := ExtractDomain(tgtFormulas)
	mappings := ComputeAnalogies(source, target, DefaultOptions())
	if len(mappings) == 0 {
		t.Fatal("expected a mapping to project through")
	}

	sun := ast.NewConstant("Sun", nil, ast.TypeString)
	planet := ast.NewConstant("Planet", nil, ast.TypeString)
	expr := ast.NewApplication("Attracts", []ast.Node{sun, planet}, ast.TypeBoolean)

	projected, ok := Project(expr, mappings[0])
	if !ok {
		t.Fatal("expected projection to succeed")
	}
	app := projected.(ast.Application)
	if app.Operator != "Attracts" {
		t.Errorf("expected predicate to stay Attracts, got %s", app.Operator)
	}
	if app.Args[0].(ast.Constant).Name != "Nucleus" || app.Args[1].(ast.Constant).Name != "Electron" {
		t.Errorf("expected [Nucleus Electron], got %v", app.Args)
	}
}

func TestProjectAbortsOnUnmappedSymbol(t *testing.T) {
	m := AnalogicalMapping{
		ObjectMapping:    map[string]string{"Sun": "Nucleus"},
		PredicateMapping: map[string]string{"Attracts": "Attracts"},
	}
	unknown := ast.NewConstant("Comet", nil, ast.TypeString)
	expr := ast.NewApplication("Attracts", []ast.Node{unknown, unknown}, ast.TypeBoolean)
	if _, ok := Project(expr, m); ok {
		t.Fatal("expected projection to abort on unmapped constant")
	}
}

func TestPredicateSimilarityExactNameMatch(t *testing.T) {
	info := predicateInfo{Arity: 2}
	s := predicateSimilarity("Orbits", info, "Orbits", info)
	if s != 1.0 {
		t.Errorf("expected exact-name similarity 1.0, got %v", s)
	}
}
