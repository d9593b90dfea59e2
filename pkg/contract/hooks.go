package contract

import "log/slog"

// Hook is an auxiliary function spliced around a wrapped call. It
// receives the wrapped function's name and the call's arguments, and
// cannot alter them or the result.
type Hook func(fn string, args []any, kwargs map[string]any)

type hooked struct {
	inner  Callable
	before Hook
	after  Hook
}

// Enter runs hook before every call to fn.
func Enter(fn Callable, hook Hook) Callable {
	return &hooked{inner: fn, before: hook}
}

// Leave runs hook after every call to fn, whether or not fn returned an
// error.
func Leave(fn Callable, hook Hook) Callable {
	return &hooked{inner: fn, after: hook}
}

// Around runs hook both before and after every call to fn.
func Around(fn Callable, hook Hook) Callable {
	return &hooked{inner: fn, before: hook, after: hook}
}

func (h *hooked) Name() string { return h.inner.Name() }

func (h *hooked) Params() []string { return h.inner.Params() }

func (h *hooked) Call(args []any, kwargs map[string]any) (any, error) {
	if h.before != nil {
		h.before(h.inner.Name(), args, kwargs)
	}
	res, err := h.inner.Call(args, kwargs)
	if h.after != nil {
		h.after(h.inner.Name(), args, kwargs)
	}
	return res, err
}

// LogCalls returns a Hook that logs each call at debug level. A nil
// logger falls back to slog.Default.
func LogCalls(logger *slog.Logger) Hook {
	if logger == nil {
		logger = slog.Default()
	}
	return func(fn string, args []any, kwargs map[string]any) {
		logger.Debug("function call",
			slog.String("fn", fn),
			slog.Int("args", len(args)),
			slog.Int("kwargs", len(kwargs)),
		)
	}
}
