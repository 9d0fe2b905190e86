// Package pongo drives pongo2 templates. pongo2 parses method-call-like
// expressions natively, so embedded calls are wired by binding a callable
// under the marker name in the render context and letting the engine resolve
// arguments itself.
package pongo

import (
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-anytemplate/pkg/embed"
	"github.com/goliatone/go-anytemplate/pkg/template"
)

// BackendName is the registry key for this driver.
const BackendName = "pongo"

const defaultExtension = ".html"

// Driver renders through a pongo2 template set.
type Driver struct {
	ctx     *template.Context
	invoker *embed.Invoker
	set     *pongo2.TemplateSet
	tpl     *pongo2.Template

	// embedErr records the first embedded-call failure so the render can be
	// aborted with the typed error rather than pongo2's wrapping of it.
	embedErr error
}

// New constructs an uninitialized pongo driver.
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
	d.ctx = ctx

	var loaders []pongo2.TemplateLoader
	for _, dir := range ctx.IncludePaths {
		loader, err := pongo2.NewLocalFileSystemLoader(dir)
		if err != nil {
			return &template.ConfigurationError{Reason: fmt.Sprintf("pongo include path %q: %v", dir, err)}
		}
		loaders = append(loaders, loader)
	}
	if len(loaders) == 0 {
		loader, err := pongo2.NewLocalFileSystemLoader("")
		if err != nil {
			return &template.ConfigurationError{Reason: fmt.Sprintf("pongo loader: %v", err)}
		}
		loaders = append(loaders, loader)
	}
	d.set = pongo2.NewSet("anytemplate", loaders...)

	if ctx.Source != "" {
		tpl, err := d.set.FromString(ctx.Source)
		if err != nil {
			return &template.RenderError{Backend: BackendName, Err: err}
		}
		d.tpl = tpl
		return nil
	}

	path, err := template.ResolvePath(ctx, defaultExtension)
	if err != nil {
		return err
	}
	tpl, err := d.set.FromFile(path)
	if err != nil {
		return &template.RenderError{Backend: BackendName, Err: err}
	}
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
		return "", &template.ConfigurationError{Reason: "pongo driver is not initialized"}
	}
	d.embedErr = nil

	renderCtx := pongo2.Context(d.ctx.ParamMap())
	renderCtx[d.ctx.Marker] = map[string]any{"embed": d.embedFn}

	out, err := d.tpl.Execute(renderCtx)
	if d.embedErr != nil {
		return "", d.embedErr
	}
	if err != nil {
		return "", &template.RenderError{Backend: BackendName, Err: err}
	}
	return out, nil
}

// embedFn is the callable pongo2 invokes for marker.embed(...) expressions.
// The engine resolves the arguments natively before we see them.
func (d *Driver) embedFn(args ...*pongo2.Value) *pongo2.Value {
	if d.embedErr != nil {
		return pongo2.AsValue("")
	}
	if len(args) == 0 {
		d.embedErr = &embed.MalformedCallError{
			Call:   d.ctx.Marker + ".embed()",
			Reason: "target handler name is required",
		}
		return pongo2.AsValue("")
	}

	target := args[0].String()
	resolved := make([]string, 0, len(args)-1)
	for _, arg := range args[1:] {
		resolved = append(resolved, arg.String())
	}

	out, err := d.invoker.Invoke(target, resolved, d.ctx)
	if err != nil {
		d.embedErr = err
		return pongo2.AsValue("")
	}
	return pongo2.AsSafeValue(out)
}
