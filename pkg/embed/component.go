package embed

// Handler is a host request handler reachable from templates. It receives the
// containing context's parameters and the resolved call arguments in source
// order; its return value becomes the substitution text at the call site,
// spliced verbatim.
type Handler func(params Params, args ...string) (string, error)

// Dispatcher is the host's dispatch table. Resolve reports false when no
// handler is registered under name.
type Dispatcher interface {
	Resolve(name string) (Handler, bool)
}

// DispatchMap is the simplest Dispatcher, a plain name-to-handler map.
type DispatchMap map[string]Handler

// Resolve implements Dispatcher.
func (m DispatchMap) Resolve(name string) (Handler, bool) {
	handler, ok := m[name]
	return handler, ok
}

// Invoker is the component handler: it routes a parsed embedded call to the
// host dispatch table and captures the handler's rendered output.
type Invoker struct {
	dispatch Dispatcher
}

// NewInvoker wires an invoker to the host dispatch table.
func NewInvoker(dispatch Dispatcher) *Invoker {
	return &Invoker{dispatch: dispatch}
}

// Invoke validates the target handler name, resolves it against the dispatch
// table, and runs it. A missing handler is an UnknownHandlerError; the render
// that triggered the call must abort rather than keep partial output.
func (iv *Invoker) Invoke(name string, args []string, params Params) (string, error) {
	if !ValidIdentifier(name) {
		return "", &MalformedCallError{Call: name, Reason: "target handler name must be a non-empty identifier"}
	}
	if iv == nil || iv.dispatch == nil {
		return "", &UnknownHandlerError{Handler: name}
	}
	handler, ok := iv.dispatch.Resolve(name)
	if !ok || handler == nil {
		return "", &UnknownHandlerError{Handler: name}
	}
	return handler(params, args...)
}

// Eval resolves a parsed call's target and arguments against params, then
// invokes it.
func (iv *Invoker) Eval(call *Call, params Params) (string, error) {
	target := ResolveArg(call.Target, params)
	return iv.Invoke(target, ResolveArgs(call.Args, params), params)
}
