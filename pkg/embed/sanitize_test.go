package embed

import (
	"strings"
	"testing"
)

func TestSanitized_StripsScriptContent(t *testing.T) {
	handler := Sanitized(func(Params, ...string) (string, error) {
		return `<p>hello</p><script>alert(1)</script>`, nil
	})

	out, err := handler(nil)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if strings.Contains(out, "script") {
		t.Fatalf("script content survived sanitization: %q", out)
	}
	if !strings.Contains(out, "<p>hello</p>") {
		t.Fatalf("benign markup was removed: %q", out)
	}
}

func TestSanitized_PropagatesHandlerError(t *testing.T) {
	handler := Sanitized(func(Params, ...string) (string, error) {
		return "", &UnknownHandlerError{Handler: "inner"}
	})

	if _, err := handler(nil); err == nil {
		t.Fatal("expected the wrapped handler's error")
	}
}
