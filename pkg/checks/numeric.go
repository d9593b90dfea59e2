package checks

import (
	"fmt"

	"github.com/dmitrymomot/augment/pkg/contract"
)

// toFloat coerces any built-in numeric value to float64. Non-numeric
// values report false and fail the constraint.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func numeric(desc string, test func(float64) bool) contract.Constraint {
	return contract.That(desc, func(v any) bool {
		n, ok := toFloat(v)
		return ok && test(n)
	})
}

// GreaterThan validates that a numeric value is strictly greater than n.
func GreaterThan(n float64) contract.Constraint {
	return numeric(fmt.Sprintf("greater than %v", n), func(v float64) bool { return v > n })
}

// LessThan validates that a numeric value is strictly less than n.
func LessThan(n float64) contract.Constraint {
	return numeric(fmt.Sprintf("less than %v", n), func(v float64) bool { return v < n })
}

// AtLeast validates that a numeric value is greater than or equal to n.
func AtLeast(n float64) contract.Constraint {
	return numeric(fmt.Sprintf("at least %v", n), func(v float64) bool { return v >= n })
}

// AtMost validates that a numeric value is less than or equal to n.
func AtMost(n float64) contract.Constraint {
	return numeric(fmt.Sprintf("at most %v", n), func(v float64) bool { return v <= n })
}

// Between validates that a numeric value lies in [min, max].
func Between(min, max float64) contract.Constraint {
	return numeric(fmt.Sprintf("between %v and %v", min, max), func(v float64) bool {
		return v >= min && v <= max
	})
}

// Positive validates that a numeric value is strictly greater than zero.
func Positive() contract.Constraint {
	return numeric("positive", func(v float64) bool { return v > 0 })
}

// NonZero validates that a numeric value is not zero.
func NonZero() contract.Constraint {
	return numeric("non-zero", func(v float64) bool { return v != 0 })
}
