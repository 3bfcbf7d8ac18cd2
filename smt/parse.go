package smt

import "strings"

// ParseResponse reads a solver's stdout per spec.md §4.6: "First output
// token is one of sat | unsat | unknown. Parse model/unsat-core as follow-on
// S-expressions when present."
func ParseResponse(stdout string) (verdict Verdict, model string, unsatCore []string) {
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return VerdictUnknown, "", nil
	}

	first := strings.TrimSpace(lines[0])
	switch first {
	case "sat":
		verdict = VerdictSat
	case "unsat":
		verdict = VerdictUnsat
	default:
		verdict = VerdictUnknown
	}

	rest := strings.Join(lines[1:], "\n")
	if strings.Contains(rest, "(model") || strings.Contains(rest, "(define-fun") {
		model = extractSExpr(rest, "(model")
		if model == "" {
			model = rest
		}
	}
	if idx := strings.Index(rest, "(unsat-core"); idx >= 0 || strings.HasPrefix(strings.TrimSpace(rest), "(") {
		unsatCore = extractUnsatCoreLabels(rest)
	}
	return verdict, model, unsatCore
}

// extractSExpr returns the balanced-parenthesis S-expression in s starting
// at the first occurrence of prefix, or "" if prefix is absent.
func extractSExpr(s, prefix string) string {
	start := strings.Index(s, prefix)
	if start < 0 {
		return ""
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return s[start:]
}

// extractUnsatCoreLabels pulls the space-separated :named labels out of an
// `(unsat-core label1 label2 ...)` response.
func extractUnsatCoreLabels(s string) []string {
	expr := extractSExpr(s, "(unsat-core")
	if expr == "" {
		return nil
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(expr, "(unsat-core"), ")")
	fields := strings.Fields(inner)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
