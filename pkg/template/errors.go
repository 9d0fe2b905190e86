package template

import "fmt"

// ConfigurationError reports invalid or contradictory setup, such as giving
// both a file path and inline source, or a malformed call-marker name. It is
// fatal to the load attempt and never retried.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "template: configuration: " + e.Reason
}

// RenderError wraps a failure raised by a native template engine, tagged with
// the backend that produced it.
type RenderError struct {
	Backend string
	Err     error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("template: %s render: %v", e.Backend, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
