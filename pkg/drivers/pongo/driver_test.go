package pongo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-anytemplate/pkg/embed"
	"github.com/goliatone/go-anytemplate/pkg/template"
)

func testDispatch() embed.DispatchMap {
	return embed.DispatchMap{
		"header": func(embed.Params, ...string) (string, error) {
			return "HI", nil
		},
		"greet": func(params embed.Params, args ...string) (string, error) {
			return "Hi, " + args[0], nil
		},
	}
}

func load(t *testing.T, dispatch embed.Dispatcher, source string, params map[string]any) template.Driver {
	t.Helper()
	ctx := template.NewContext(BackendName)
	ctx.Source = source
	ctx.SetParams(params)

	driver := New(dispatch)
	if err := driver.Initialize(ctx); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	return driver
}

func TestRender_EmbeddedHandler(t *testing.T) {
	driver := load(t, testDispatch(), `Hello {{ cgiapp.embed("header") }}!`, nil)

	out, err := driver.Render()
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if out != "Hello HI!" {
		t.Fatalf("Render output = %q, want %q", out, "Hello HI!")
	}
}

func TestRender_NativeArgumentResolution(t *testing.T) {
	driver := load(t, testDispatch(), `{{ cgiapp.embed("greet", name) }}`, map[string]any{"name": "Ada"})

	out, err := driver.Render()
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if out != "Hi, Ada" {
		t.Fatalf("Render output = %q, want %q", out, "Hi, Ada")
	}
}

func TestRender_UnknownHandlerAborts(t *testing.T) {
	driver := load(t, testDispatch(), `before {{ cgiapp.embed("missing") }} after`, nil)

	out, err := driver.Render()
	var unknown *embed.UnknownHandlerError
	if !errors.As(err, &unknown) {
		t.Fatalf("Render = %v, want UnknownHandlerError", err)
	}
	if out != "" {
		t.Fatalf("partial output returned alongside error: %q", out)
	}
}

func TestRender_CustomMarker(t *testing.T) {
	ctx := template.NewContext(BackendName)
	ctx.Source = `{{ widgets.embed("header") }}`
	ctx.Marker = "widgets"

	driver := New(testDispatch())
	if err := driver.Initialize(ctx); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	out, err := driver.Render()
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if out != "HI" {
		t.Fatalf("Render output = %q, want %q", out, "HI")
	}
}

func TestRender_HandlerReadsContextParams(t *testing.T) {
	dispatch := embed.DispatchMap{
		"site": func(params embed.Params, _ ...string) (string, error) {
			v, _ := params.Param("site")
			return embed.Stringify(v), nil
		},
	}
	driver := load(t, dispatch, `{{ cgiapp.embed("site") }}`, map[string]any{"site": "example"})

	out, err := driver.Render()
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if out != "example" {
		t.Fatalf("Render output = %q, want %q", out, "example")
	}
}

func TestClearParameters_MatchesFreshContext(t *testing.T) {
	const source = `A:{{ a }}`

	driver := load(t, testDispatch(), source, map[string]any{"a": "set"})
	driver.ClearParameters()
	driver.ClearParameters() // second clear is a no-op

	cleared, err := driver.Render()
	if err != nil {
		t.Fatalf("Render after clear returned error: %v", err)
	}

	fresh := load(t, testDispatch(), source, nil)
	baseline, err := fresh.Render()
	if err != nil {
		t.Fatalf("fresh Render returned error: %v", err)
	}

	if cleared != baseline {
		t.Fatalf("cleared render %q differs from fresh render %q", cleared, baseline)
	}
}

func TestInitialize_FromFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "page.html"), []byte(`file {{ cgiapp.embed("header") }}`), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	ctx := template.NewContext(BackendName)
	ctx.Path = "page"
	ctx.IncludePaths = []string{dir}

	driver := New(testDispatch())
	if err := driver.Initialize(ctx); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	out, err := driver.Render()
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if out != "file HI" {
		t.Fatalf("Render output = %q, want %q", out, "file HI")
	}
}

func TestInitialize_RejectsAmbiguousSource(t *testing.T) {
	ctx := template.NewContext(BackendName)
	ctx.Source = "inline"
	ctx.Path = "page"

	err := New(testDispatch()).Initialize(ctx)
	var cfgErr *template.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Initialize = %v, want ConfigurationError", err)
	}
}
