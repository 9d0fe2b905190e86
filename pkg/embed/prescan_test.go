package embed

import (
	"errors"
	"strings"
	"testing"
)

func TestPrescan_RewritesCallsToSynthesizedKeys(t *testing.T) {
	invoker := NewInvoker(DispatchMap{
		"header": func(Params, ...string) (string, error) { return "HI", nil },
	})
	source := "Hello {{cgiapp.embed('header')}}!"

	rewritten, values, err := Prescan(source, "cgiapp", invoker, nil)
	if err != nil {
		t.Fatalf("Prescan returned error: %v", err)
	}
	if strings.Contains(rewritten, "embed(") {
		t.Fatalf("call token survived the rewrite: %q", rewritten)
	}
	if len(values) != 1 {
		t.Fatalf("expected 1 synthesized value, got %d", len(values))
	}
	for key, value := range values {
		if value != "HI" {
			t.Fatalf("synthesized value = %q, want %q", value, "HI")
		}
		if !strings.Contains(rewritten, "{{"+key+"}}") {
			t.Fatalf("rewritten source %q does not reference key %q", rewritten, key)
		}
	}
}

func TestPrescan_ResolvesParamsPresentAtScanTime(t *testing.T) {
	invoker := NewInvoker(DispatchMap{
		"greet": func(params Params, args ...string) (string, error) {
			return "Hi, " + args[0], nil
		},
	})

	_, values, err := Prescan("{{cgiapp.embed('greet', name)}}", "cgiapp", invoker, paramMap{"name": "Ada"})
	if err != nil {
		t.Fatalf("Prescan returned error: %v", err)
	}
	for _, value := range values {
		if value != "Hi, Ada" {
			t.Fatalf("synthesized value = %q, want %q", value, "Hi, Ada")
		}
	}
}

// A parameter that is not bound when the pre-scan runs resolves to the empty
// string. This is the documented emulation limitation for flat-substitution
// backends, not a defect.
func TestPrescan_UnboundParamResolvesEmpty(t *testing.T) {
	invoker := NewInvoker(DispatchMap{
		"greet": func(params Params, args ...string) (string, error) {
			return "Hi, " + args[0], nil
		},
	})

	_, values, err := Prescan("{{cgiapp.embed('greet', name)}}", "cgiapp", invoker, paramMap{})
	if err != nil {
		t.Fatalf("Prescan returned error: %v", err)
	}
	for _, value := range values {
		if value != "Hi, " {
			t.Fatalf("synthesized value = %q, want %q", value, "Hi, ")
		}
	}
}

func TestPrescan_NoCallsLeavesSourceUntouched(t *testing.T) {
	source := "nothing embedded here, not even {{name}}"

	rewritten, values, err := Prescan(source, "cgiapp", NewInvoker(nil), nil)
	if err != nil {
		t.Fatalf("Prescan returned error: %v", err)
	}
	if rewritten != source {
		t.Fatalf("source was rewritten: %q", rewritten)
	}
	if len(values) != 0 {
		t.Fatalf("expected no synthesized values, got %d", len(values))
	}
}

func TestPrescan_HandlerErrorAborts(t *testing.T) {
	invoker := NewInvoker(DispatchMap{})

	_, _, err := Prescan("{{cgiapp.embed('missing')}}", "cgiapp", invoker, nil)
	var unknown *UnknownHandlerError
	if !errors.As(err, &unknown) {
		t.Fatalf("Prescan = %v, want UnknownHandlerError", err)
	}
}

func TestPrescan_SynthesizedKeysAreUnique(t *testing.T) {
	invoker := NewInvoker(DispatchMap{
		"x": func(Params, ...string) (string, error) { return "out", nil },
	})

	_, values, err := Prescan("{{cgiapp.embed('x')}} {{cgiapp.embed('x')}}", "cgiapp", invoker, nil)
	if err != nil {
		t.Fatalf("Prescan returned error: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("expected 2 distinct synthesized keys, got %d", len(values))
	}
}
