package contract

import "errors"

var (
	// ErrNilTarget is returned when a decorator is applied to a nil Callable.
	ErrNilTarget = errors.New("target callable is nil")

	// ErrMalformedConstraint is returned when a constraint specification does
	// not match an accepted shape (nil predicate, invalid pattern, nil
	// transformation).
	ErrMalformedConstraint = errors.New("malformed constraint")

	// ErrDuplicateArg is returned when a rule set names the same argument twice.
	ErrDuplicateArg = errors.New("duplicate argument name")
)
