package checks

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/augment/pkg/contract"
)

func stringly(desc string, test func(string) bool) contract.Constraint {
	return contract.That(desc, func(v any) bool {
		s, ok := v.(string)
		return ok && test(s)
	})
}

// NonEmpty validates that a string value has non-whitespace content.
func NonEmpty() contract.Constraint {
	return stringly("non-empty", func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
}

// MinLen validates that a string value has at least n bytes.
func MinLen(n int) contract.Constraint {
	return stringly(fmt.Sprintf("at least %d characters", n), func(s string) bool {
		return len(s) >= n
	})
}

// MaxLen validates that a string value has at most n bytes.
func MaxLen(n int) contract.Constraint {
	return stringly(fmt.Sprintf("at most %d characters", n), func(s string) bool {
		return len(s) <= n
	})
}

// InSet validates that a string value is one of the allowed choices.
func InSet(choices ...string) contract.Constraint {
	allowed := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		allowed[c] = struct{}{}
	}
	return stringly(fmt.Sprintf("one of %v", choices), func(s string) bool {
		_, ok := allowed[s]
		return ok
	})
}

// HasPrefix validates that a string value starts with prefix.
func HasPrefix(prefix string) contract.Constraint {
	return stringly(fmt.Sprintf("prefix %q", prefix), func(s string) bool {
		return strings.HasPrefix(s, prefix)
	})
}

// HasSuffix validates that a string value ends with suffix.
func HasSuffix(suffix string) contract.Constraint {
	return stringly(fmt.Sprintf("suffix %q", suffix), func(s string) bool {
		return strings.HasSuffix(s, suffix)
	})
}

// Numeric validates that a value's string form is a decimal number,
// optionally signed, optionally fractional.
func Numeric() contract.Constraint {
	return contract.Matches(`-?\d+(\.\d+)?$`)
}
