// Package fasttemplate drives valyala/fasttemplate. The engine hands every
// tag to a callback during the native render, so embedded calls are parsed
// from the tag text and routed to the component handler on the spot; there is
// no pre-scan and no ordering hazard. Plain tags substitute parameters, and
// unknown tags are written back unchanged.
package fasttemplate

import (
	"io"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/goliatone/go-anytemplate/pkg/embed"
	"github.com/goliatone/go-anytemplate/pkg/template"
)

// BackendName is the registry key for this driver.
const BackendName = "fasttemplate"

// Driver-specific option keys honored in Context.Options.
const (
	OptionStartTag = "start_tag"
	OptionEndTag   = "end_tag"
)

const (
	defaultExtension = ".ft"
	defaultStartTag  = "{"
	defaultEndTag    = "}"
)

// Driver renders through fasttemplate's tag callback.
type Driver struct {
	ctx     *template.Context
	invoker *embed.Invoker
	source  string
	start   string
	end     string

	embedErr error
}

// New constructs an uninitialized fasttemplate driver.
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
	d.start = ctx.Option(OptionStartTag, defaultStartTag)
	d.end = ctx.Option(OptionEndTag, defaultEndTag)
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
		return "", &template.ConfigurationError{Reason: "fasttemplate driver is not initialized"}
	}
	d.embedErr = nil

	out, err := fasttemplate.ExecuteFuncStringWithErr(d.source, d.start, d.end, d.tag)
	if d.embedErr != nil {
		return "", d.embedErr
	}
	if err != nil {
		return "", &template.RenderError{Backend: BackendName, Err: err}
	}
	return out, nil
}

// tag evaluates one native tag. Call tokens under the configured marker go
// through the embedding protocol; anything else is treated as a parameter
// name, with unknown names written back as literal tag text.
func (d *Driver) tag(w io.Writer, tag string) (int, error) {
	expr := strings.TrimSpace(tag)

	tokens, err := embed.Scan(expr, d.ctx.Marker)
	if err != nil {
		d.embedErr = err
		return 0, err
	}
	if len(tokens) == 1 && tokens[0].Start == 0 && tokens[0].End == len(expr) {
		out, err := d.invoker.Eval(tokens[0].Call, d.ctx)
		if err != nil {
			d.embedErr = err
			return 0, err
		}
		return io.WriteString(w, out)
	}
	if len(tokens) > 0 {
		err := &embed.MalformedCallError{Call: expr, Reason: "embedded call must be the entire tag"}
		d.embedErr = err
		return 0, err
	}

	if value, ok := d.ctx.Param(expr); ok {
		return io.WriteString(w, embed.Stringify(value))
	}
	return io.WriteString(w, d.start+tag+d.end)
}
