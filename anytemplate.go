// Package anytemplate renders templates through interchangeable backends
// while supporting embedded component calls: template-level directives that
// invoke a named host handler mid-render and splice its output into the
// surrounding template.
package anytemplate

import (
	"io"

	"github.com/goliatone/go-anytemplate/pkg/drivers/fasttemplate"
	"github.com/goliatone/go-anytemplate/pkg/drivers/gotemplate"
	"github.com/goliatone/go-anytemplate/pkg/drivers/mustache"
	"github.com/goliatone/go-anytemplate/pkg/drivers/pongo"
	"github.com/goliatone/go-anytemplate/pkg/drivers/raymond"
	"github.com/goliatone/go-anytemplate/pkg/embed"
	"github.com/goliatone/go-anytemplate/pkg/template"
)

// Handler aliases the component handler signature for callers building
// dispatch tables.
type Handler = embed.Handler

// DispatchMap aliases the map-backed dispatcher.
type DispatchMap = embed.DispatchMap

// Config aliases the template-layer configuration surface.
type Config = template.Config

// Manager owns a driver registry and the host's component dispatch table. It
// is constructed once at process start; there is no ambient global registry.
type Manager struct {
	registry *template.Registry
	dispatch embed.Dispatcher
	config   template.Config
}

// Option configures a Manager.
type Option func(*Manager)

// WithConfig applies a parsed configuration to every context the manager
// creates.
func WithConfig(cfg template.Config) Option {
	return func(m *Manager) {
		m.config = cfg
	}
}

// WithRegistry replaces the builtin driver registry.
func WithRegistry(registry *template.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// WithDriver registers an additional backend driver.
func WithDriver(backend string, factory template.Factory) Option {
	return func(m *Manager) {
		m.registry.MustRegister(backend, factory)
	}
}

// New creates a manager wired to the host dispatch table with the builtin
// drivers registered.
func New(dispatch embed.Dispatcher, options ...Option) *Manager {
	m := &Manager{
		registry: Builtin(),
		dispatch: dispatch,
	}
	for _, option := range options {
		if option != nil {
			option(m)
		}
	}
	return m
}

// Builtin returns a registry with the bundled backend drivers registered.
func Builtin() *template.Registry {
	registry := template.NewRegistry()
	registry.MustRegister(pongo.BackendName, pongo.New)
	registry.MustRegister(gotemplate.BackendName, gotemplate.New)
	registry.MustRegister(mustache.BackendName, mustache.New)
	registry.MustRegister(raymond.BackendName, raymond.New)
	registry.MustRegister(fasttemplate.BackendName, fasttemplate.New)
	return registry
}

// Backends lists the registered backend identifiers.
func (m *Manager) Backends() []string {
	return m.registry.List()
}

// Load builds a context for the named backend (falling back to the
// configured default when backend is empty), applies the manager
// configuration and per-load options, and returns an initialized driver.
func (m *Manager) Load(backend string, options ...LoadOption) (template.Driver, error) {
	if backend == "" {
		backend = m.config.DefaultBackend
	}
	factory, err := m.registry.Get(backend)
	if err != nil {
		return nil, err
	}

	ctx := template.NewContext(backend)
	m.config.Apply(ctx)
	for _, option := range options {
		if option != nil {
			option(ctx)
		}
	}

	driver := factory(m.dispatch)
	if err := driver.Initialize(ctx); err != nil {
		return nil, err
	}
	return driver, nil
}

// Render loads and renders in one call.
func (m *Manager) Render(backend string, options ...LoadOption) (string, error) {
	driver, err := m.Load(backend, options...)
	if err != nil {
		return "", err
	}
	return driver.Render()
}

// RenderTo renders into w for callers that prefer streaming the output over
// holding the string.
func (m *Manager) RenderTo(w io.Writer, backend string, options ...LoadOption) error {
	out, err := m.Render(backend, options...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
