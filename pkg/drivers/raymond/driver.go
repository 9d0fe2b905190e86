// Package raymond drives handlebars templates via aymerick/raymond. Like
// mustache, handlebars expressions cannot reach an opaque callable, so
// embedded calls use pre-scan emulation with the same documented ordering
// limitation: parameter-reference arguments resolve from the parameters
// present when Render begins.
//
// Handlebars escaping applies to the spliced output; use triple staches for
// verbatim insertion.
package raymond

import (
	"github.com/aymerick/raymond"

	"github.com/goliatone/go-anytemplate/pkg/embed"
	"github.com/goliatone/go-anytemplate/pkg/template"
)

// BackendName is the registry key for this driver.
const BackendName = "raymond"

const defaultExtension = ".hbs"

// Driver renders through a handlebars template after pre-scanning for
// embedded calls.
type Driver struct {
	ctx     *template.Context
	invoker *embed.Invoker
	source  string
}

// New constructs an uninitialized handlebars driver.
func New(dispatch embed.Dispatcher) template.Driver {
	return &Driver{invoker: embed.NewInvoker(dispatch)}
}

// Backend implements template.Driver.
func (d *Driver) Backend() string { return BackendName }

// Initialize implements template.Driver.
func (d *Driver) Initialize(ctx *template.Context) error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	source, err := template.ResolveSource(ctx, defaultExtension)
	if err != nil {
		return err
	}
	d.ctx = ctx
	d.source = source
	return nil
}

// SetParameters implements template.Driver.
func (d *Driver) SetParameters(values map[string]any) {
	if d.ctx != nil {
		d.ctx.SetParams(values)
	}
}

// ClearParameters implements template.Driver.
func (d *Driver) ClearParameters() {
	if d.ctx != nil {
		d.ctx.ClearParams()
	}
}

// Render implements template.Driver.
func (d *Driver) Render() (string, error) {
	if d.ctx == nil {
		return "", &template.ConfigurationError{Reason: "raymond driver is not initialized"}
	}

	rewritten, injected, err := embed.Prescan(d.source, d.ctx.Marker, d.invoker, d.ctx)
	if err != nil {
		return "", err
	}

	tpl, err := raymond.Parse(rewritten)
	if err != nil {
		return "", &template.RenderError{Backend: BackendName, Err: err}
	}

	payload := d.ctx.ParamMap()
	for key, value := range injected {
		payload[key] = value
	}

	out, err := tpl.Exec(payload)
	if err != nil {
		return "", &template.RenderError{Backend: BackendName, Err: err}
	}
	return out, nil
}
