package template

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-anytemplate/pkg/embed"
)

// Config is the declarative configuration surface for the template layer:
// which backend renders by default, the call-marker name, the shared include
// paths, and per-backend overrides.
type Config struct {
	DefaultBackend string                   `yaml:"default_backend" json:"default_backend"`
	Marker         string                   `yaml:"marker" json:"marker"`
	IncludePaths   []string                 `yaml:"include_paths" json:"include_paths"`
	Backends       map[string]BackendConfig `yaml:"backends" json:"backends"`
}

// BackendConfig overrides driver behavior for one backend.
type BackendConfig struct {
	Extension string            `yaml:"extension" json:"extension"`
	Options   map[string]string `yaml:"options" json:"options"`
}

// ParseConfig parses a YAML configuration document and validates the fields
// the core depends on.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("template: parse config: %w", err)
	}
	if cfg.Marker != "" && !embed.ValidIdentifier(cfg.Marker) {
		return Config{}, &ConfigurationError{Reason: fmt.Sprintf("call marker %q is not a valid identifier", cfg.Marker)}
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration document.
func LoadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("template: read config: %w", err)
	}
	return ParseConfig(data)
}

// Apply stamps the configuration onto a context before per-load options run.
func (c Config) Apply(ctx *Context) {
	if ctx == nil {
		return
	}
	if c.Marker != "" {
		ctx.Marker = c.Marker
	}
	if len(c.IncludePaths) > 0 {
		ctx.IncludePaths = append([]string(nil), c.IncludePaths...)
	}
	backend, ok := c.Backends[ctx.Backend]
	if !ok {
		return
	}
	if backend.Extension != "" {
		ctx.Extension = backend.Extension
	}
	for key, value := range backend.Options {
		ctx.SetOption(key, value)
	}
}
