// Package contract provides lightweight design-by-contract wrappers for
// plain functions: argument validation, one-of/exclusive constraint
// groups, argument transformation, and call hooks.
//
// A function is adapted into a Callable carrying its name and declared
// parameter names, then wrapped by one or more decorators. Each
// decorator returns a new Callable with an identical calling
// convention, so decorators stack freely; the parameter metadata of the
// innermost function stays visible through every layer.
//
// # Architecture
//
// The engine has three moving parts:
//   - Constraint        – a named validator (predicate or pattern) with an
//     optional custom violation message
//   - binding/resolution – maps the caller's positional and keyword
//     arguments back to declared parameter names
//   - Report            – the structured error produced by a failed call,
//     mapping argument names to violation messages
//
// Decorators never share state: the rule set is captured at decoration
// time and read-only afterwards, and every failed call allocates a
// fresh Report. The package is goroutine-safe for concurrent calls to
// the same wrapped function.
//
// # Usage
//
//	fn := contract.NewFunc("fn", []string{"a", "b"},
//	    func(args []any, kwargs map[string]any) (any, error) {
//	        return []any{args[0], args[1]}, nil
//	    })
//
//	wrapped := contract.MustEnsureArgs(fn, []contract.Rule{
//	    contract.Arg("a", contract.That("greater than 10", func(v any) bool {
//	        return v.(int) > 10
//	    }).WithMessage("must be greater than 10")),
//	    contract.Arg("b", contract.Matches(`^-?\d+(\.\d+)?$`)),
//	})
//
//	res, err := wrapped.Call([]any{11, "42"}, nil)
//
// # Error Handling
//
// A failed call returns a *Report, which implements the error
// interface and exposes the per-argument violation messages through
// Has, Get, Fields and Messages. Use AsReport or errors.As to recover
// it from a wrapped error chain. Supplying an ErrorHandler via
// WithErrorHandler replaces the error return entirely: the handler's
// result becomes the call's result.
//
// Misconfigured decorations (nil target, duplicate argument names,
// malformed constraints) are rejected at construction time, never at
// call time.
package contract
