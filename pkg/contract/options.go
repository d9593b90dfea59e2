package contract

// ErrorHandler receives the Report of a failed call and decides the
// outcome: its return values become the wrapped call's result, and the
// default error return is suppressed entirely.
type ErrorHandler func(report *Report) (any, error)

type config struct {
	handler        ErrorHandler
	legacyPresence bool
	exclusive      bool
}

// Option configures a decorator at decoration time.
type Option func(*config)

// WithErrorHandler routes failed calls to handler instead of returning
// the Report as an error.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(c *config) {
		c.handler = handler
	}
}

// WithLegacyPresence restores the historical resolution quirk: an
// explicitly supplied falsy value (nil, zero, empty) is skipped as if
// the argument were absent. The default is strict presence, validating
// every supplied value.
func WithLegacyPresence() Option {
	return func(c *config) {
		c.legacyPresence = true
	}
}

// Exclusive makes EnsureOneOf require exactly one group member to
// validate instead of at least one.
func Exclusive() Option {
	return func(c *config) {
		c.exclusive = true
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// deliver reports a failed call: through the handler when one is set,
// otherwise as the Report itself. The target function is never invoked
// on this path.
func (c config) deliver(report *Report) (any, error) {
	if c.handler != nil {
		return c.handler(report)
	}
	return nil, report
}
