// Package gotemplate drives Go's text/template. The engine evaluates method
// calls on values in the data map, so embedded calls are wired by binding an
// invocable under the marker key: templates write
// {{.cgiapp.Embed "handler" .param}} and the engine resolves arguments
// natively.
package gotemplate

import (
	"bytes"
	texttemplate "text/template"

	"github.com/goliatone/go-anytemplate/pkg/embed"
	"github.com/goliatone/go-anytemplate/pkg/template"
)

// BackendName is the registry key for this driver.
const BackendName = "gotemplate"

const defaultExtension = ".tpl"

// Driver renders through a parsed text/template.
type Driver struct {
	ctx     *template.Context
	invoker *embed.Invoker
	tpl     *texttemplate.Template

	embedErr error
}

// New constructs an uninitialized text/template driver.
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

	tpl, err := texttemplate.New(ctx.Backend).Parse(source)
	if err != nil {
		return &template.RenderError{Backend: BackendName, Err: err}
	}
	d.ctx = ctx
	d.tpl = tpl
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
	if d.tpl == nil || d.ctx == nil {
		return "", &template.ConfigurationError{Reason: "gotemplate driver is not initialized"}
	}
	d.embedErr = nil

	data := d.ctx.ParamMap()
	data[d.ctx.Marker] = invocable{driver: d}

	var buf bytes.Buffer
	err := d.tpl.Execute(&buf, data)
	if d.embedErr != nil {
		return "", d.embedErr
	}
	if err != nil {
		return "", &template.RenderError{Backend: BackendName, Err: err}
	}
	return buf.String(), nil
}

// invocable is the value bound under the marker key; the native engine calls
// its Embed method with already resolved arguments.
type invocable struct {
	driver *Driver
}

// Embed routes an embedded call to the component handler. Returning the error
// also halts template execution, so no partial output survives.
func (iv invocable) Embed(args ...any) (string, error) {
	d := iv.driver
	if len(args) == 0 {
		err := &embed.MalformedCallError{
			Call:   d.ctx.Marker + ".Embed",
			Reason: "target handler name is required",
		}
		d.embedErr = err
		return "", err
	}

	target := embed.Stringify(args[0])
	resolved := make([]string, 0, len(args)-1)
	for _, arg := range args[1:] {
		resolved = append(resolved, embed.Stringify(arg))
	}

	out, err := d.invoker.Invoke(target, resolved, d.ctx)
	if err != nil {
		d.embedErr = err
		return "", err
	}
	return out, nil
}
