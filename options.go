package anytemplate

import "github.com/goliatone/go-anytemplate/pkg/template"

// LoadOption configures the context for a single load/render cycle.
type LoadOption func(*template.Context)

// WithPath points the context at a template file, resolved against the
// include paths with the driver's extension appended when missing.
func WithPath(path string) LoadOption {
	return func(ctx *template.Context) {
		ctx.Path = path
	}
}

// WithSource supplies inline template text instead of a file path.
func WithSource(source string) LoadOption {
	return func(ctx *template.Context) {
		ctx.Source = source
	}
}

// WithIncludePaths sets the ordered include-search directories.
func WithIncludePaths(paths ...string) LoadOption {
	return func(ctx *template.Context) {
		ctx.IncludePaths = append([]string(nil), paths...)
	}
}

// WithMarker overrides the call-marker name for this context.
func WithMarker(marker string) LoadOption {
	return func(ctx *template.Context) {
		ctx.Marker = marker
	}
}

// WithExtension overrides the driver's default template filename suffix.
func WithExtension(ext string) LoadOption {
	return func(ctx *template.Context) {
		ctx.Extension = ext
	}
}

// WithParams seeds the context's parameter mapping.
func WithParams(values map[string]any) LoadOption {
	return func(ctx *template.Context) {
		ctx.SetParams(values)
	}
}

// WithDriverOption sets one driver-specific option key.
func WithDriverOption(key, value string) LoadOption {
	return func(ctx *template.Context) {
		ctx.SetOption(key, value)
	}
}
