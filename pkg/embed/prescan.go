package embed

import (
	"strings"

	"github.com/google/uuid"
)

// Prescan evaluates every embedded call in source before the native engine
// runs, for backends that only support flat string substitution. Each call
// token is replaced with a synthesized parameter key, and the handler output
// is recorded under that key in the returned map for the driver to merge into
// the native render payload. The containing context is never mutated.
//
// Argument references resolve strictly from the parameters present in params
// when Prescan runs. A value bound only later, during the native render,
// never reaches these calls; that ordering limitation is part of the
// emulation contract, not a defect to paper over.
func Prescan(source, marker string, invoker *Invoker, params Params) (string, map[string]string, error) {
	tokens, err := Scan(source, marker)
	if err != nil {
		return "", nil, err
	}
	if len(tokens) == 0 {
		return source, nil, nil
	}

	values := make(map[string]string, len(tokens))
	var out strings.Builder
	out.Grow(len(source))

	last := 0
	for _, token := range tokens {
		rendered, err := invoker.Eval(token.Call, params)
		if err != nil {
			return "", nil, err
		}
		key := synthesizedKey()
		values[key] = rendered

		out.WriteString(source[last:token.Start])
		out.WriteString(key)
		last = token.End
	}
	out.WriteString(source[last:])

	return out.String(), values, nil
}

// synthesizedKey names one pre-scanned call result. Random keys keep the
// injected entries from colliding with caller parameters.
func synthesizedKey() string {
	return "embedded_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
