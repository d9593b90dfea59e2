package contract

import (
	"fmt"
	"maps"
)

// Transform rewrites one named argument's value before the target runs.
type Transform struct {
	Name  string
	Apply func(value any) any
}

// Map builds a Transform for the named argument.
func Map(name string, apply func(value any) any) Transform {
	return Transform{Name: name, Apply: apply}
}

type transformed struct {
	inner      Callable
	transforms []Transform
	cfg        config
}

// TransformArgs wraps fn so that each named argument present in a call
// is rewritten by its transformation before fn runs. Absent arguments
// are skipped; there is no error path. The caller's argument slice and
// kwarg map are never mutated — substitution happens on copies.
func TransformArgs(fn Callable, transforms []Transform, opts ...Option) (Callable, error) {
	if fn == nil {
		return nil, ErrNilTarget
	}
	seen := make(map[string]struct{}, len(transforms))
	for _, t := range transforms {
		if _, ok := seen[t.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateArg, t.Name)
		}
		seen[t.Name] = struct{}{}
		if t.Apply == nil {
			return nil, fmt.Errorf("%w: nil transformation for %q", ErrMalformedConstraint, t.Name)
		}
	}
	return &transformed{inner: fn, transforms: transforms, cfg: newConfig(opts)}, nil
}

// MustTransformArgs is TransformArgs that panics on a misconfigured
// decoration.
func MustTransformArgs(fn Callable, transforms []Transform, opts ...Option) Callable {
	wrapped, err := TransformArgs(fn, transforms, opts...)
	if err != nil {
		panic(fmt.Sprintf("contract: TransformArgs: %v", err))
	}
	return wrapped
}

func (t *transformed) Name() string { return t.inner.Name() }

func (t *transformed) Params() []string { return t.inner.Params() }

func (t *transformed) Call(args []any, kwargs map[string]any) (any, error) {
	params := t.inner.Params()
	outArgs := args
	outKwargs := kwargs
	argsCopied, kwargsCopied := false, false

	for _, tr := range t.transforms {
		if kwargs != nil {
			if v, ok := kwargs[tr.Name]; ok {
				if t.cfg.legacyPresence && falsy(v) {
					continue
				}
				if !kwargsCopied {
					outKwargs = maps.Clone(kwargs)
					kwargsCopied = true
				}
				outKwargs[tr.Name] = tr.Apply(v)
				continue
			}
		}
		idx := paramIndex(params, tr.Name)
		if idx < 0 || idx >= len(args) {
			continue
		}
		if t.cfg.legacyPresence && falsy(args[idx]) {
			continue
		}
		if !argsCopied {
			outArgs = make([]any, len(args))
			copy(outArgs, args)
			argsCopied = true
		}
		outArgs[idx] = tr.Apply(outArgs[idx])
	}
	return t.inner.Call(outArgs, outKwargs)
}
