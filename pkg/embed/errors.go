package embed

import "fmt"

// MalformedCallError reports an embedded call whose syntax cannot be parsed
// or whose target handler name is not a valid identifier. It is fatal to the
// render that encountered it; partial output is discarded.
type MalformedCallError struct {
	Call   string
	Reason string
}

func (e *MalformedCallError) Error() string {
	return fmt.Sprintf("embed: malformed call %q: %s", e.Call, e.Reason)
}

// UnknownHandlerError reports an embedded call naming a handler the host
// dispatch table cannot resolve. It aborts the render that raised it.
type UnknownHandlerError struct {
	Handler string
}

func (e *UnknownHandlerError) Error() string {
	return fmt.Sprintf("embed: no handler registered for %q", e.Handler)
}
