package embed

import (
	"fmt"
	"strings"
)

// ArgKind distinguishes the two argument forms the call grammar admits.
type ArgKind int

const (
	// ArgLiteral is a quoted string; its value is spliced verbatim with the
	// matched quote characters stripped and no further escape processing.
	ArgLiteral ArgKind = iota
	// ArgParamRef names a key to resolve from the containing template
	// context's parameter mapping.
	ArgParamRef
)

// Arg is a single argument token of an embedded call.
type Arg struct {
	Kind  ArgKind
	Value string
}

// Call is one parsed embedded invocation. Target is the first argument of the
// call and resolves to the handler name; Args are the remaining arguments in
// source order.
type Call struct {
	Raw    string
	Target Arg
	Args   []Arg
}

// ValidIdentifier reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
func ValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// ParseCall parses a full call expression of the form
// `marker.embed(arg, ...)`. The marker comparison is case-sensitive and
// whitespace between tokens is insignificant. Any syntax violation returns a
// MalformedCallError.
func ParseCall(expr, marker string) (*Call, error) {
	s := strings.TrimSpace(expr)
	p := 0

	name, p := readIdentifier(s, p)
	if name != marker {
		return nil, &MalformedCallError{Call: s, Reason: fmt.Sprintf("call marker %q does not match configured marker %q", name, marker)}
	}
	p = skipSpace(s, p)
	if p >= len(s) || s[p] != '.' {
		return nil, &MalformedCallError{Call: s, Reason: "expected '.' after call marker"}
	}
	p = skipSpace(s, p+1)

	method, p := readIdentifier(s, p)
	if method != "embed" {
		return nil, &MalformedCallError{Call: s, Reason: fmt.Sprintf("expected embed method, found %q", method)}
	}
	p = skipSpace(s, p)
	if p >= len(s) || s[p] != '(' {
		return nil, &MalformedCallError{Call: s, Reason: "expected '(' to open the argument list"}
	}

	args, p, err := parseArgs(s, p+1)
	if err != nil {
		return nil, err
	}
	if p = skipSpace(s, p); p != len(s) {
		return nil, &MalformedCallError{Call: s, Reason: "trailing characters after the argument list"}
	}
	if len(args) == 0 {
		return nil, &MalformedCallError{Call: s, Reason: "target handler name is required"}
	}

	var rest []Arg
	if len(args) > 1 {
		rest = args[1:]
	}
	call := &Call{Raw: s, Target: args[0], Args: rest}
	if call.Target.Kind == ArgLiteral && !ValidIdentifier(call.Target.Value) {
		return nil, &MalformedCallError{Call: s, Reason: fmt.Sprintf("target handler name %q is not a valid identifier", call.Target.Value)}
	}
	return call, nil
}

// parseArgs consumes the argument list starting just after '(' and returns
// the parsed arguments along with the position just past the closing ')'.
func parseArgs(s string, p int) ([]Arg, int, error) {
	p = skipSpace(s, p)
	if p < len(s) && s[p] == ')' {
		return nil, p + 1, nil
	}

	var args []Arg
	for {
		p = skipSpace(s, p)
		if p >= len(s) {
			return nil, p, &MalformedCallError{Call: s, Reason: "unterminated argument list"}
		}

		switch c := s[p]; {
		case c == '\'' || c == '"':
			end := strings.IndexByte(s[p+1:], c)
			if end < 0 {
				return nil, p, &MalformedCallError{Call: s, Reason: "unterminated string literal"}
			}
			args = append(args, Arg{Kind: ArgLiteral, Value: s[p+1 : p+1+end]})
			p += end + 2
		default:
			name, next := readIdentifier(s, p)
			if name == "" {
				return nil, p, &MalformedCallError{Call: s, Reason: fmt.Sprintf("unexpected character %q in argument list", string(c))}
			}
			args = append(args, Arg{Kind: ArgParamRef, Value: name})
			p = next
		}

		p = skipSpace(s, p)
		if p >= len(s) {
			return nil, p, &MalformedCallError{Call: s, Reason: "unterminated argument list"}
		}
		switch s[p] {
		case ',':
			p++
		case ')':
			return args, p + 1, nil
		default:
			return nil, p, &MalformedCallError{Call: s, Reason: fmt.Sprintf("expected ',' or ')', found %q", string(s[p]))}
		}
	}
}

func readIdentifier(s string, p int) (string, int) {
	start := p
	for p < len(s) && isIdentChar(s[p]) {
		p++
	}
	ident := s[start:p]
	if !ValidIdentifier(ident) {
		return "", start
	}
	return ident, p
}

func isIdentChar(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func skipSpace(s string, p int) int {
	for p < len(s) {
		switch s[p] {
		case ' ', '\t', '\r', '\n':
			p++
		default:
			return p
		}
	}
	return p
}
