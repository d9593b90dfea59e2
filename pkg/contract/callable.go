package contract

// Target is the underlying function invoked once validation or
// transformation has run. Positional arguments arrive in declaration
// order; keyword arguments carry everything addressed by name.
type Target func(args []any, kwargs map[string]any) (any, error)

// Callable is a function together with the metadata the engine needs to
// bind positional arguments back to parameter names. Every decorator in
// this package both accepts and returns a Callable, and forwards the
// innermost function's Name and Params unchanged, so stacked decorators
// always see the original parameter list.
type Callable interface {
	Name() string
	Params() []string
	Call(args []any, kwargs map[string]any) (any, error)
}

// Func adapts a plain function into a Callable.
type Func struct {
	name   string
	params []string
	fn     Target
}

// NewFunc wraps fn with its name and declared parameter names in
// declaration order. Parameters reachable only through kwargs need not
// be listed.
func NewFunc(name string, params []string, fn Target) *Func {
	return &Func{name: name, params: params, fn: fn}
}

func (f *Func) Name() string { return f.name }

func (f *Func) Params() []string { return f.params }

func (f *Func) Call(args []any, kwargs map[string]any) (any, error) {
	return f.fn(args, kwargs)
}
