// Package mustache drives hoisie/mustache templates. Mustache only supports
// flat tag substitution, so embedded calls are resolved by pre-scan
// emulation: call tokens are evaluated before the native render and replaced
// with synthesized parameter keys.
//
// Known limitation of the emulation: a parameter-reference argument resolves
// from the parameters present when Render begins. A value bound only during
// the native render never reaches an embedded call and resolves to the empty
// string.
//
// Mustache's own escaping rules apply to the spliced output: write the call
// inside triple staches ({{{cgiapp.embed('name')}}}) for verbatim insertion.
package mustache

import (
	"github.com/hoisie/mustache"

	"github.com/goliatone/go-anytemplate/pkg/embed"
	"github.com/goliatone/go-anytemplate/pkg/template"
)

// BackendName is the registry key for this driver.
const BackendName = "mustache"

const defaultExtension = ".mustache"

// Driver renders through hoisie/mustache after pre-scanning for embedded
// calls.
type Driver struct {
	ctx     *template.Context
	invoker *embed.Invoker
	source  string
}

// New constructs an uninitialized mustache driver.
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

// Render implements template.Driver. The pre-scan runs against the raw
// source on every render so parameters set since the last render are honored.
func (d *Driver) Render() (string, error) {
	if d.ctx == nil {
		return "", &template.ConfigurationError{Reason: "mustache driver is not initialized"}
	}

	rewritten, injected, err := embed.Prescan(d.source, d.ctx.Marker, d.invoker, d.ctx)
	if err != nil {
		return "", err
	}

	tpl, err := mustache.ParseString(rewritten)
	if err != nil {
		return "", &template.RenderError{Backend: BackendName, Err: err}
	}

	payload := d.ctx.ParamMap()
	for key, value := range injected {
		payload[key] = value
	}
	return tpl.Render(payload), nil
}
