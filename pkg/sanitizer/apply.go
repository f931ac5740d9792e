package sanitizer

import "github.com/kaleidos/skame/pkg/schema"

// Apply runs transforms over value in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose creates a reusable transform chain.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Steps lifts transforms into pipe steps, one per transform. Each step
// rejects input that is not a T with a conversion error.
func Steps[T any](transforms ...func(T) T) []schema.Step {
	steps := make([]schema.Step, len(transforms))
	for i, transform := range transforms {
		steps[i] = schema.Transform(transform)
	}
	return steps
}
