package contract

import "fmt"

type oneOf struct {
	inner Callable
	rules []Rule
	cfg   config
}

// EnsureOneOf wraps fn so that a call is accepted when at least one of
// the group's constraints validates, or exactly one when the Exclusive
// option is set. Absent arguments contribute no outcome; a call where
// nothing in the group resolves therefore fails, in exclusive mode too.
func EnsureOneOf(fn Callable, rules []Rule, opts ...Option) (Callable, error) {
	if fn == nil {
		return nil, ErrNilTarget
	}
	if err := checkRules(rules); err != nil {
		return nil, err
	}
	return &oneOf{inner: fn, rules: rules, cfg: newConfig(opts)}, nil
}

// MustEnsureOneOf is EnsureOneOf that panics on a misconfigured decoration.
func MustEnsureOneOf(fn Callable, rules []Rule, opts ...Option) Callable {
	wrapped, err := EnsureOneOf(fn, rules, opts...)
	if err != nil {
		panic(fmt.Sprintf("contract: EnsureOneOf: %v", err))
	}
	return wrapped
}

func (o *oneOf) Name() string { return o.inner.Name() }

func (o *oneOf) Params() []string { return o.inner.Params() }

func (o *oneOf) Call(args []any, kwargs map[string]any) (any, error) {
	report := &Report{Fn: o.inner.Name()}
	validCount := 0
	for _, r := range resolve(o.inner.Params(), o.rules, args, kwargs, o.cfg.legacyPresence) {
		if r.rule.Constraint.holds(r.value) {
			validCount++
			report.Passed = append(report.Passed, r.rule.Name)
			continue
		}
		report.Failed = append(report.Failed, r.rule.Name)
		report.Add(Violation{
			Arg:     r.rule.Name,
			Value:   r.value,
			Message: r.rule.Constraint.messageFor(r.rule.Name, r.value),
		})
	}
	switch {
	case validCount < 1:
		report.summary = fmt.Sprintf("one of %v must validate", groupNames(o.rules))
		return o.cfg.deliver(report)
	case o.cfg.exclusive && validCount > 1:
		report.summary = fmt.Sprintf("only one of %v must validate", groupNames(o.rules))
		return o.cfg.deliver(report)
	}
	return o.inner.Call(args, kwargs)
}

func groupNames(rules []Rule) []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	return names
}
