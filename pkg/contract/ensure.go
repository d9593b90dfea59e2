package contract

import "fmt"

type ensured struct {
	inner Callable
	rules []Rule
	cfg   config
}

// EnsureArgs wraps fn so that every constrained argument supplied by a
// call is validated before fn runs. All failures are aggregated into a
// single Report; fn is invoked exactly once, with the original
// arguments, only when no constraint fails. Arguments absent from the
// call are skipped, not reported as missing.
func EnsureArgs(fn Callable, rules []Rule, opts ...Option) (Callable, error) {
	if fn == nil {
		return nil, ErrNilTarget
	}
	if err := checkRules(rules); err != nil {
		return nil, err
	}
	return &ensured{inner: fn, rules: rules, cfg: newConfig(opts)}, nil
}

// MustEnsureArgs is EnsureArgs that panics on a misconfigured decoration.
func MustEnsureArgs(fn Callable, rules []Rule, opts ...Option) Callable {
	wrapped, err := EnsureArgs(fn, rules, opts...)
	if err != nil {
		panic(fmt.Sprintf("contract: EnsureArgs: %v", err))
	}
	return wrapped
}

func (e *ensured) Name() string { return e.inner.Name() }

func (e *ensured) Params() []string { return e.inner.Params() }

func (e *ensured) Call(args []any, kwargs map[string]any) (any, error) {
	report := &Report{Fn: e.inner.Name()}
	for _, r := range resolve(e.inner.Params(), e.rules, args, kwargs, e.cfg.legacyPresence) {
		if !r.rule.Constraint.holds(r.value) {
			report.Add(Violation{
				Arg:     r.rule.Name,
				Value:   r.value,
				Message: r.rule.Constraint.messageFor(r.rule.Name, r.value),
			})
		}
	}
	if report.Len() > 0 {
		return e.cfg.deliver(report)
	}
	return e.inner.Call(args, kwargs)
}
