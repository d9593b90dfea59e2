package contract

import (
	"errors"
	"fmt"
	"strings"
)

// Violation is a single failed constraint: the argument name, the
// offending value, and the rendered message.
type Violation struct {
	Arg     string
	Value   any
	Message string
}

// Report is the structured error produced by a failed call. It maps
// argument names to ordered violation messages and carries a summary
// line naming the wrapped function. For cardinality groups the
// per-argument pass/fail outcomes are recorded in Passed and Failed.
//
// A Report is local to one failed call and never reused.
type Report struct {
	Fn     string
	Passed []string
	Failed []string

	violations []Violation
	summary    string
}

// Add appends a violation, preserving insertion order.
func (r *Report) Add(v Violation) {
	r.violations = append(r.violations, v)
}

// Has reports whether the argument has at least one violation.
func (r *Report) Has(arg string) bool {
	for _, v := range r.violations {
		if v.Arg == arg {
			return true
		}
	}
	return false
}

// Get returns the ordered violation messages for one argument.
func (r *Report) Get(arg string) []string {
	var messages []string
	for _, v := range r.violations {
		if v.Arg == arg {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// Fields returns the violated argument names, first-seen order, unique.
func (r *Report) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, v := range r.violations {
		if !seen[v.Arg] {
			fields = append(fields, v.Arg)
			seen[v.Arg] = true
		}
	}
	return fields
}

// Messages returns the full argument-to-messages mapping.
func (r *Report) Messages() map[string][]string {
	out := make(map[string][]string, len(r.violations))
	for _, v := range r.violations {
		out[v.Arg] = append(out[v.Arg], v.Message)
	}
	return out
}

// Violations returns the raw violation records in insertion order.
func (r *Report) Violations() []Violation {
	return r.violations
}

func (r *Report) Len() int { return len(r.violations) }

// Summary returns the synthesized summary line: either the cardinality
// group's verdict or a violation count for plain validation.
func (r *Report) Summary() string {
	if r.summary != "" {
		return r.summary
	}
	return fmt.Sprintf("%d constraint violation(s) in %q", len(r.violations), r.Fn)
}

func (r *Report) Error() string {
	if len(r.violations) == 0 {
		return fmt.Sprintf("errors in %q: %s", r.Fn, r.Summary())
	}
	parts := make([]string, 0, len(r.violations))
	for _, v := range r.violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Arg, v.Message))
	}
	return fmt.Sprintf("errors in %q: %s", r.Fn, strings.Join(parts, "; "))
}

// AsReport extracts a *Report from an error chain, or nil.
func AsReport(err error) *Report {
	if err == nil {
		return nil
	}
	var report *Report
	if errors.As(err, &report) {
		return report
	}
	return nil
}

// IsViolation reports whether the error carries a contract Report.
func IsViolation(err error) bool {
	return AsReport(err) != nil
}
