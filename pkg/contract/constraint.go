package contract

import (
	"fmt"
	"regexp"
)

// Check tests a single argument value.
type Check func(value any) bool

// Constraint pairs a validator with an optional custom violation message.
// A validator is either a predicate over the raw value or a pattern
// matched against the value's string form. Construct one with That or
// Matches; the zero value is malformed and rejected at decoration time.
type Constraint struct {
	check   Check
	pattern *regexp.Regexp
	desc    string
	message string
	err     error
}

// That builds a predicate constraint. The description is embedded in the
// generated violation message when no custom message is set.
func That(desc string, check Check) Constraint {
	if check == nil {
		return Constraint{err: fmt.Errorf("%w: nil check for %q", ErrMalformedConstraint, desc)}
	}
	return Constraint{check: check, desc: desc}
}

// Matches builds a pattern constraint. The pattern is matched against the
// start of the value's string form, so `^` anchoring is implicit; use
// `$` to require a full match.
func Matches(pattern string) Constraint {
	re, err := regexp.Compile("^(?:" + pattern + ")")
	if err != nil {
		return Constraint{err: fmt.Errorf("%w: pattern %q: %v", ErrMalformedConstraint, pattern, err)}
	}
	return Constraint{pattern: re, desc: fmt.Sprintf("pattern %q", pattern)}
}

// WithMessage sets the custom violation message reported when the
// constraint fails, replacing the generated one.
func (c Constraint) WithMessage(msg string) Constraint {
	c.message = msg
	return c
}

// validate reports a deferred construction error, if any. Called once at
// decoration time so a malformed constraint never reaches a call.
func (c Constraint) validate() error {
	if c.err != nil {
		return c.err
	}
	if c.check == nil && c.pattern == nil {
		return fmt.Errorf("%w: no validator", ErrMalformedConstraint)
	}
	return nil
}

func (c Constraint) holds(value any) bool {
	if c.check != nil {
		return c.check(value)
	}
	return c.pattern.MatchString(fmt.Sprint(value))
}

// messageFor renders the violation message for a failing value.
func (c Constraint) messageFor(name string, value any) string {
	if c.message != "" {
		return c.message
	}
	if c.desc != "" {
		return fmt.Sprintf("'%s = %v' violates constraint: %s", name, value, c.desc)
	}
	return fmt.Sprintf("'%s = %v' violates constraint", name, value)
}

// Rule attaches a Constraint to one argument name.
type Rule struct {
	Name       string
	Constraint Constraint
}

// Arg builds a Rule for the named argument.
func Arg(name string, c Constraint) Rule {
	return Rule{Name: name, Constraint: c}
}

// checkRules validates a rule set once at decoration time: unique names,
// well-formed constraints.
func checkRules(rules []Rule) error {
	seen := make(map[string]struct{}, len(rules))
	for _, r := range rules {
		if _, ok := seen[r.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateArg, r.Name)
		}
		seen[r.Name] = struct{}{}
		if err := r.Constraint.validate(); err != nil {
			return fmt.Errorf("argument %q: %w", r.Name, err)
		}
	}
	return nil
}
