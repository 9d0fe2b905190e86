package embed

import "fmt"

// Params is the read-only view of a template context's parameter mapping that
// argument resolution and component handlers receive. Handlers inherit shared
// values through it but cannot mutate the caller's context.
type Params interface {
	Param(name string) (any, bool)
}

// ResolveArg produces the value of a single call argument. Literals pass
// through unchanged; parameter references resolve against params, with an
// unset key yielding the empty string rather than an error.
func ResolveArg(arg Arg, params Params) string {
	if arg.Kind == ArgLiteral {
		return arg.Value
	}
	if params == nil {
		return ""
	}
	value, ok := params.Param(arg.Value)
	if !ok {
		return ""
	}
	return Stringify(value)
}

// ResolveArgs resolves an argument list strictly left to right. Resolution
// never mutates params.
func ResolveArgs(args []Arg, params Params) []string {
	resolved := make([]string, 0, len(args))
	for _, arg := range args {
		resolved = append(resolved, ResolveArg(arg, params))
	}
	return resolved
}

// Stringify renders a parameter value the way drivers splice it into output.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
