package embed

import "strings"

// Token is one call occurrence located in raw template source. Start and End
// are byte offsets delimiting the full call expression, marker through the
// closing parenthesis.
type Token struct {
	Start int
	End   int
	Call  *Call
}

// Scan locates every embedded call in source whose marker matches the
// configured one. Text resembling a call under a different marker is left
// alone; a matching call whose argument list cannot be parsed is a hard
// error.
func Scan(source, marker string) ([]Token, error) {
	var tokens []Token
	for i := 0; i < len(source); {
		rel := strings.Index(source[i:], marker)
		if rel < 0 {
			break
		}
		start := i + rel
		i = start + len(marker)

		// Word boundaries keep markers like "app" from matching "webapp".
		if start > 0 && isIdentChar(source[start-1]) {
			continue
		}
		p := skipSpace(source, start+len(marker))
		if p >= len(source) || source[p] != '.' {
			continue
		}
		p = skipSpace(source, p+1)
		method, next := readIdentifier(source, p)
		if method != "embed" {
			continue
		}
		p = skipSpace(source, next)
		if p >= len(source) || source[p] != '(' {
			continue
		}

		end, ok := closingParen(source, p+1)
		if !ok {
			return nil, &MalformedCallError{Call: excerpt(source, start), Reason: "unterminated argument list"}
		}
		call, err := ParseCall(source[start:end], marker)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, Token{Start: start, End: end, Call: call})
		i = end
	}
	return tokens, nil
}

// closingParen returns the offset just past the ')' matching the one opened
// before p, treating quoted spans as opaque.
func closingParen(s string, p int) (int, bool) {
	for p < len(s) {
		switch c := s[p]; c {
		case ')':
			return p + 1, true
		case '\'', '"':
			end := strings.IndexByte(s[p+1:], c)
			if end < 0 {
				return 0, false
			}
			p += end + 2
		default:
			p++
		}
	}
	return 0, false
}

func excerpt(s string, start int) string {
	const width = 40
	if len(s)-start > width {
		return s[start : start+width]
	}
	return s[start:]
}
