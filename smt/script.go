package smt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Steake/godelos-core/ast"
)

// symbol is a declared SMT-LIB identifier: a free variable (ArgSorts empty)
// or an uninterpreted function/predicate (ArgSorts from its Application
// arguments).
type symbol struct {
	Name      string
	ArgSorts  []string
	RetSort   string
}

// BuildScript lays out a full SMT-LIB 2 script for prove(G, Γ) per spec.md
// §4.6: `(set-logic L)` · sort declarations · constant/function
// declarations · one `(assert ...)` per context formula ·
// `(assert (not G))` for validity · `(check-sat)` · optional
// `(get-model)` / `(get-unsat-core)`. When unsatCore is requested every
// assertion is `:named` so the solver can report which premises were
// essential.
func BuildScript(goal ast.Node, context []ast.Node, cfg SolverConfiguration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(set-logic %s)\n", cfg.Logic)

	sorts := collectUserSorts(append(append([]ast.Node{}, context...), goal))
	for _, s := range sorts {
		fmt.Fprintf(&b, "(declare-sort %s 0)\n", s)
	}

	syms := collectSymbols(append(append([]ast.Node{}, context...), goal))
	for _, s := range syms {
		if len(s.ArgSorts) == 0 {
			fmt.Fprintf(&b, "(declare-const %s %s)\n", s.Name, s.RetSort)
		} else {
			fmt.Fprintf(&b, "(declare-fun %s (%s) %s)\n", s.Name, strings.Join(s.ArgSorts, " "), s.RetSort)
		}
	}

	for i, c := range context {
		if cfg.RequestUnsatCore {
			fmt.Fprintf(&b, "(assert (! %s :named premise_%d))\n", Translate(c), i)
		} else {
			fmt.Fprintf(&b, "(assert %s)\n", Translate(c))
		}
	}
	if cfg.RequestUnsatCore {
		fmt.Fprintf(&b, "(assert (! (not %s) :named negated_goal))\n", Translate(goal))
	} else {
		fmt.Fprintf(&b, "(assert (not %s))\n", Translate(goal))
	}

	b.WriteString("(check-sat)\n")
	if cfg.RequestModel {
		b.WriteString("(get-model)\n")
	}
	if cfg.RequestUnsatCore {
		b.WriteString("(get-unsat-core)\n")
	}
	return b.String()
}

// BuildSatisfiabilityScript lays out a script asserting G directly (rather
// than ¬G), for plain satisfiability queries instead of entailment.
func BuildSatisfiabilityScript(goal ast.Node, context []ast.Node, cfg SolverConfiguration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(set-logic %s)\n", cfg.Logic)
	for _, s := range collectUserSorts(append(append([]ast.Node{}, context...), goal)) {
		fmt.Fprintf(&b, "(declare-sort %s 0)\n", s)
	}
	for _, s := range collectSymbols(append(append([]ast.Node{}, context...), goal)) {
		if len(s.ArgSorts) == 0 {
			fmt.Fprintf(&b, "(declare-const %s %s)\n", s.Name, s.RetSort)
		} else {
			fmt.Fprintf(&b, "(declare-fun %s (%s) %s)\n", s.Name, strings.Join(s.ArgSorts, " "), s.RetSort)
		}
	}
	for _, c := range context {
		fmt.Fprintf(&b, "(assert %s)\n", Translate(c))
	}
	fmt.Fprintf(&b, "(assert %s)\n", Translate(goal))
	b.WriteString("(check-sat)\n")
	if cfg.RequestModel {
		b.WriteString("(get-model)\n")
	}
	return b.String()
}

func collectUserSorts(formulas []ast.Node) []string {
	seen := map[string]bool{}
	var out []string
	var visitType func(ast.Type)
	visitType = func(t ast.Type) {
		switch t.Name {
		case "Boolean", "Integer", "Real", "String", "":
			return
		}
		if !seen[t.Name] {
			seen[t.Name] = true
			out = append(out, t.Name)
		}
		for _, a := range t.Args {
			visitType(a)
		}
	}
	for _, f := range formulas {
		ast.Walk(f, func(n ast.Node) bool {
			visitType(n.Type())
			return true
		})
	}
	sort.Strings(out)
	return out
}

func collectSymbols(formulas []ast.Node) []symbol {
	seen := map[string]symbol{}
	var order []string

	// Free variables only: a bound variable's occurrences inside a
	// Quantifier's scope are declared by that quantifier's own binder list,
	// not by a top-level declare-const (that would shadow the binder).
	for _, f := range formulas {
		for _, v := range ast.FreeVariables(f) {
			name := fmt.Sprintf("%s_%d", v.Name, v.Id)
			if _, ok := seen[name]; !ok {
				seen[name] = symbol{Name: name, RetSort: SortOf(v.Typ)}
				order = append(order, name)
			}
		}
	}

	for _, f := range formulas {
		ast.Walk(f, func(n ast.Node) bool {
			switch t := n.(type) {
			case ast.Application:
				if _, isArith := arithmeticOps[t.Operator]; isArith {
					return true
				}
				if _, ok := seen[t.Operator]; !ok {
					argSorts := make([]string, len(t.Args))
					for i, a := range t.Args {
						argSorts[i] = SortOf(a.Type())
					}
					seen[t.Operator] = symbol{Name: t.Operator, ArgSorts: argSorts, RetSort: SortOf(t.Typ)}
					order = append(order, t.Operator)
				}
			case ast.Constant:
				if t.Value == nil {
					if _, ok := seen[t.Name]; !ok {
						seen[t.Name] = symbol{Name: t.Name, RetSort: SortOf(t.Typ)}
						order = append(order, t.Name)
					}
				}
			}
			return true
		})
	}
	out := make([]symbol, 0, len(order))
	for _, name := range order {
		out = append(out, seen[name])
	}
	return out
}
