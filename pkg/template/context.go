package template

import (
	"fmt"

	"github.com/goliatone/go-anytemplate/pkg/embed"
)

// DefaultMarker scopes the embedding tag namespace when no marker is
// configured.
const DefaultMarker = "cgiapp"

// Context carries one load/render cycle: the backend to use, the template
// source (file path or inline text, exactly one), include-search directories,
// the call-marker name, driver-specific options, and the parameter mapping
// visible to embedded-call resolution. A Context is owned by a single render
// call chain and must not be shared across concurrent renders.
type Context struct {
	Backend      string
	Path         string
	Source       string
	IncludePaths []string
	Marker       string
	// Extension overrides the driver's default template filename suffix.
	Extension string
	// Options holds flat driver-specific configuration; each driver documents
	// the keys it honors.
	Options map[string]string

	params map[string]any
}

// NewContext creates a context for the named backend with the default call
// marker.
func NewContext(backend string) *Context {
	return &Context{
		Backend: backend,
		Marker:  DefaultMarker,
		params:  make(map[string]any),
	}
}

// Validate checks the invariants drivers rely on during Initialize.
func (c *Context) Validate() error {
	if c.Path == "" && c.Source == "" {
		return &ConfigurationError{Reason: "either a template path or inline source is required"}
	}
	if c.Path != "" && c.Source != "" {
		return &ConfigurationError{Reason: "template path and inline source are mutually exclusive"}
	}
	if !embed.ValidIdentifier(c.Marker) {
		return &ConfigurationError{Reason: fmt.Sprintf("call marker %q is not a valid identifier", c.Marker)}
	}
	return nil
}

// SetParam stores one parameter, replacing any previous value under name.
func (c *Context) SetParam(name string, value any) {
	if c.params == nil {
		c.params = make(map[string]any)
	}
	c.params[name] = value
}

// SetParams merges values into the parameter mapping. Existing keys absent
// from values are kept; colliding keys take the new value.
func (c *Context) SetParams(values map[string]any) {
	for name, value := range values {
		c.SetParam(name, value)
	}
}

// ClearParams empties the parameter mapping. Calling it again on an already
// empty context is a no-op.
func (c *Context) ClearParams() {
	if len(c.params) == 0 {
		return
	}
	c.params = make(map[string]any)
}

// Param implements embed.Params.
func (c *Context) Param(name string) (any, bool) {
	value, ok := c.params[name]
	return value, ok
}

// ParamMap returns a copy of the parameter mapping for drivers to hand to
// their native engines without exposing the context to mutation.
func (c *Context) ParamMap() map[string]any {
	out := make(map[string]any, len(c.params))
	for name, value := range c.params {
		out[name] = value
	}
	return out
}

// SetOption stores one driver-specific option.
func (c *Context) SetOption(key, value string) {
	if c.Options == nil {
		c.Options = make(map[string]string)
	}
	c.Options[key] = value
}

// Option reads a driver-specific option, falling back when unset.
func (c *Context) Option(key, fallback string) string {
	if value, ok := c.Options[key]; ok && value != "" {
		return value
	}
	return fallback
}

var _ embed.Params = (*Context)(nil)
