package transform

// Apply runs value through each transformation in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose builds a reusable pipeline from the given transformations.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Chain is Compose specialized to the `func(any) any` shape the
// contract engine consumes.
func Chain(transforms ...func(any) any) func(any) any {
	return Compose(transforms...)
}
