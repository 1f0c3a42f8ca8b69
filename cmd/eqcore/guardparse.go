package eqcore

import (
	"fmt"
	"strings"

	"github.com/nominal-types/eqcore/syntax"
)

// parseGuard reads a tiny textual guard grammar so "explain" has
// something to exercise occurrence.ExplainGuard with, without pulling
// in a real expression parser: is_atom(V), is_tuple(V),
// is_record(V,name), V=='atom', V=/='atom', not(G), and(G,G,...),
// or(G,G,...).
func parseGuard(src string) (syntax.Guard, error) {
	src = strings.TrimSpace(src)
	switch {
	case strings.HasPrefix(src, "not(") && strings.HasSuffix(src, ")"):
		inner, err := parseGuard(src[len("not(") : len(src)-1])
		if err != nil {
			return nil, err
		}
		return syntax.Not{Guard: inner}, nil

	case strings.HasPrefix(src, "and(") && strings.HasSuffix(src, ")"):
		parts, err := splitArgs(src[len("and(") : len(src)-1])
		if err != nil {
			return nil, err
		}
		guards := make([]syntax.Guard, len(parts))
		for i, p := range parts {
			g, err := parseGuard(p)
			if err != nil {
				return nil, err
			}
			guards[i] = g
		}
		return syntax.AndGuard{Guards: guards}, nil

	case strings.HasPrefix(src, "or(") && strings.HasSuffix(src, ")"):
		parts, err := splitArgs(src[len("or(") : len(src)-1])
		if err != nil {
			return nil, err
		}
		guards := make([]syntax.Guard, len(parts))
		for i, p := range parts {
			g, err := parseGuard(p)
			if err != nil {
				return nil, err
			}
			guards[i] = g
		}
		return syntax.OrGuard{Guards: guards}, nil

	case strings.HasPrefix(src, "is_record(") && strings.HasSuffix(src, ")"):
		parts, err := splitArgs(src[len("is_record(") : len(src)-1])
		if err != nil || len(parts) < 2 {
			return nil, fmt.Errorf("eqcore: malformed is_record guard %q", src)
		}
		return syntax.IsRecordTest{Var: parts[0], RecordName: parts[1]}, nil

	case strings.Contains(src, "==") || strings.Contains(src, "=/="):
		negated := strings.Contains(src, "=/=")
		sep := "=="
		if negated {
			sep = "=/="
		}
		parts := strings.SplitN(src, sep, 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("eqcore: malformed comparison guard %q", src)
		}
		return syntax.CompareEq{
			Var:     strings.TrimSpace(parts[0]),
			Atom:    strings.Trim(strings.TrimSpace(parts[1]), "'"),
			Negated: negated,
		}, nil

	default:
		for kind, name := range guardKindNames {
			prefix := name + "("
			if strings.HasPrefix(src, prefix) && strings.HasSuffix(src, ")") {
				v := strings.TrimSpace(src[len(prefix) : len(src)-1])
				return syntax.IsType{Kind: kind, Var: v}, nil
			}
		}
		return nil, fmt.Errorf("eqcore: unrecognized guard %q", src)
	}
}

var guardKindNames = map[syntax.GuardKind]string{
	syntax.GuardIsAtom:      "is_atom",
	syntax.GuardIsBinary:    "is_binary",
	syntax.GuardIsFloat:     "is_float",
	syntax.GuardIsFunction:  "is_function",
	syntax.GuardIsInteger:   "is_integer",
	syntax.GuardIsList:      "is_list",
	syntax.GuardIsMap:       "is_map",
	syntax.GuardIsNumber:    "is_number",
	syntax.GuardIsPid:       "is_pid",
	syntax.GuardIsPort:      "is_port",
	syntax.GuardIsReference: "is_reference",
	syntax.GuardIsTuple:     "is_tuple",
}

// splitArgs splits a comma-separated argument list, respecting nested
// parentheses so "and(is_atom(V), is_tuple(W))" splits into two parts.
func splitArgs(src string) ([]string, error) {
	var parts []string
	depth := 0
	start := 0
	for i, r := range src {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("eqcore: unbalanced parentheses in %q", src)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(src[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(src[start:]))
	return parts, nil
}
