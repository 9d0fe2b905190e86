package template

import "github.com/goliatone/go-anytemplate/pkg/embed"

// Driver is the uniform contract every template backend satisfies. Whether a
// backend routes embedded calls through a native callback or through pre-scan
// emulation is fixed per backend type, never per render.
type Driver interface {
	// Backend identifies the driver, matching its registry key.
	Backend() string
	// Initialize validates the context and constructs the native template
	// instance. Exactly one of the context's path or inline source must be
	// set; anything else is a ConfigurationError.
	Initialize(ctx *Context) error
	// SetParameters merges values into the context's parameter mapping,
	// last write wins per key. Keys absent from values are untouched.
	SetParameters(values map[string]any)
	// ClearParameters empties the parameter mapping and resets any parameter
	// state the native instance has cached.
	ClearParameters()
	// Render produces the fully substituted output. Embedded-call failures
	// and native engine failures abort the render; no partial output is
	// returned.
	Render() (string, error)
}

// Factory constructs an uninitialized driver bound to the host's component
// dispatch table.
type Factory func(dispatch embed.Dispatcher) Driver
