package smt

import (
	"fmt"
	"strings"

	"github.com/Steake/godelos-core/ast"
)

// arithmeticOps pass through to SMT-LIB unchanged (spec.md §4.6: "Arithmetic
// application nodes with operators + - * / < ≤ > ≥ = pass through").
var arithmeticOps = map[string]string{
	"+": "+", "-": "-", "*": "*", "/": "/",
	"<": "<", "≤": "<=", "<=": "<=",
	">": ">", "≥": ">=", ">=": ">=",
	"=": "=",
}

// Translate renders an ast.Node as an SMT-LIB 2 S-expression. Variables are
// renamed `name_id` to guarantee global uniqueness (spec.md §4.6).
func Translate(n ast.Node) string {
	switch t := n.(type) {
	case ast.Constant:
		return translateConstant(t)
	case ast.Variable:
		return fmt.Sprintf("%s_%d", t.Name, t.Id)
	case ast.Application:
		return translateApplication(t)
	case ast.Connective:
		return translateConnective(t)
	case ast.Quantifier:
		return translateQuantifier(t)
	case ast.ModalOp:
		// Modal operators have no SMT-LIB counterpart; the coordinator never
		// routes modal goals here (dispatch priority 100 claims them first),
		// but translate the inner proposition defensively rather than panic.
		return Translate(t.Proposition)
	default:
		return "true"
	}
}

func translateConstant(c ast.Constant) string {
	if c.Value != nil {
		switch v := c.Value.(type) {
		case string:
			return fmt.Sprintf("%q", v)
		case bool:
			if v {
				return "true"
			}
			return "false"
		default:
			return fmt.Sprintf("%v", v)
		}
	}
	return c.Name
}

func translateApplication(a ast.Application) string {
	if op, ok := arithmeticOps[a.Operator]; ok {
		return wrapParen(op, a.Args)
	}
	return wrapParen(a.Operator, a.Args)
}

func wrapParen(op string, args []ast.Node) string {
	if len(args) == 0 {
		return op
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Translate(a)
	}
	return fmt.Sprintf("(%s %s)", op, strings.Join(parts, " "))
}

func translateConnective(c ast.Connective) string {
	parts := make([]string, len(c.Operands))
	for i, o := range c.Operands {
		parts[i] = Translate(o)
	}
	switch c.Kind {
	case ast.NOT:
		return fmt.Sprintf("(not %s)", parts[0])
	case ast.AND:
		return fmt.Sprintf("(and %s)", strings.Join(parts, " "))
	case ast.OR:
		return fmt.Sprintf("(or %s)", strings.Join(parts, " "))
	case ast.IMPLIES:
		return fmt.Sprintf("(=> %s %s)", parts[0], parts[1])
	case ast.EQUIV:
		return fmt.Sprintf("(= %s %s)", parts[0], parts[1])
	}
	return "true"
}

func translateQuantifier(q ast.Quantifier) string {
	bindings := make([]string, len(q.BoundVars))
	for i, v := range q.BoundVars {
		bindings[i] = fmt.Sprintf("(%s_%d %s)", v.Name, v.Id, SortOf(v.Typ))
	}
	keyword := "forall"
	if q.Kind == ast.EXISTS {
		keyword = "exists"
	}
	return fmt.Sprintf("(%s (%s) %s)", keyword, strings.Join(bindings, " "), Translate(q.Scope))
}

// SortOf maps an ast.Type to its SMT-LIB sort name, per spec.md §4.6's type
// table: Boolean→Bool, Integer→Int, Real→Real, String→String; user atomic
// types pass their name through (and must have been declared via a
// `declare-sort` emitted by BuildScript).
func SortOf(t ast.Type) string {
	switch t.Name {
	case "Boolean":
		return "Bool"
	case "Integer":
		return "Int"
	case "Real":
		return "Real"
	case "String":
		return "String"
	case "":
		return "Int" // TypeUnknown defaults to Int, the common arithmetic case
	default:
		return t.Name
	}
}
