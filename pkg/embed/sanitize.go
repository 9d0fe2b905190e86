package embed

import "github.com/microcosm-cc/bluemonday"

// Sanitized wraps a handler so its output passes through a bluemonday UGC
// policy before being spliced. The component layer itself imposes no escaping;
// this decorator is for hosts that want an escaping policy at the handler.
func Sanitized(handler Handler) Handler {
	policy := bluemonday.UGCPolicy()
	return func(params Params, args ...string) (string, error) {
		out, err := handler(params, args...)
		if err != nil {
			return "", err
		}
		return policy.Sanitize(out), nil
	}
}
