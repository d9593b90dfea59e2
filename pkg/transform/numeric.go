package transform

// Ints lifts a plain int transformation into the `func(any) any` shape
// the contract engine consumes. Non-int values pass through unchanged.
func Ints(f func(int) int) func(any) any {
	return func(v any) any {
		if n, ok := v.(int); ok {
			return f(n)
		}
		return v
	}
}

// Floats lifts a plain float64 transformation into the `func(any) any`
// shape the contract engine consumes. Non-float64 values pass through
// unchanged.
func Floats(f func(float64) float64) func(any) any {
	return func(v any) any {
		if n, ok := v.(float64); ok {
			return f(n)
		}
		return v
	}
}

// Square squares an int or float64 argument.
func Square(v any) any {
	switch n := v.(type) {
	case int:
		return n * n
	case float64:
		return n * n
	}
	return v
}

// Scale multiplies an int or float64 argument by factor. Int values
// stay ints: the scaled value is truncated.
func Scale(factor float64) func(any) any {
	return func(v any) any {
		switch n := v.(type) {
		case int:
			return int(float64(n) * factor)
		case float64:
			return n * factor
		}
		return v
	}
}

// Clamp constrains an int or float64 argument to [min, max].
func Clamp(min, max float64) func(any) any {
	return func(v any) any {
		switch n := v.(type) {
		case int:
			if float64(n) < min {
				return int(min)
			}
			if float64(n) > max {
				return int(max)
			}
			return n
		case float64:
			if n < min {
				return min
			}
			if n > max {
				return max
			}
			return n
		}
		return v
	}
}
