package transform

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Strings lifts a plain string transformation into the `func(any) any`
// shape the contract engine consumes. Non-string values pass through
// unchanged.
func Strings(f func(string) string) func(any) any {
	return func(v any) any {
		if s, ok := v.(string); ok {
			return f(s)
		}
		return v
	}
}

// Trim removes leading and trailing whitespace from a string argument.
func Trim(v any) any {
	return Strings(strings.TrimSpace)(v)
}

// Lower converts a string argument to lowercase.
func Lower(v any) any {
	return Strings(strings.ToLower)(v)
}

// Upper converts a string argument to uppercase.
func Upper(v any) any {
	return Strings(strings.ToUpper)(v)
}

// Title converts a string argument to title case using Unicode casing
// rules.
func Title(v any) any {
	return Strings(cases.Title(language.English).String)(v)
}

// CollapseWhitespace trims a string argument and replaces every
// internal whitespace run with a single space.
func CollapseWhitespace(v any) any {
	return Strings(func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	})(v)
}
