// Package fp provides thin wrappers around fp-go used when flattening
// nested API payloads into display rows.
package fp

import (
	"github.com/IBM/fp-go/option"
)

// Option represents an optional value (Some or None).
type Option[T any] = option.Option[T]

// Some wraps a value in an Option.
func Some[T any](value T) Option[T] {
	return option.Some(value)
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return option.None[T]()
}

// FromPointer converts a pointer to an Option.
// Returns None if the pointer is nil, otherwise returns Some with the dereferenced value.
func FromPointer[T any](ptr *T) Option[T] {
	if ptr == nil {
		return option.None[T]()
	}
	return option.Some(*ptr)
}

// ToPointer converts an Option to a pointer, nil for None.
func ToPointer[T any](opt Option[T]) *T {
	return option.Fold(
		func() *T { return nil },
		func(v T) *T { return &v },
	)(opt)
}

// First returns the first element of a slice, or None for an empty slice.
func First[T any](items []T) Option[T] {
	if len(items) == 0 {
		return option.None[T]()
	}
	return option.Some(items[0])
}

// IsSome checks if an Option contains a value.
func IsSome[T any](opt Option[T]) bool {
	return option.IsSome(opt)
}

// GetOrElse returns the value if Some, or a default value if None.
func GetOrElse[T any](defaultValue T) func(Option[T]) T {
	return option.GetOrElse(func() T { return defaultValue })
}

// Map applies a function to the value inside an Option.
func Map[A, B any](f func(A) B) func(Option[A]) Option[B] {
	return option.Map[A, B](f)
}

// Chain chains operations that return Options.
func Chain[A, B any](f func(A) Option[B]) func(Option[A]) Option[B] {
	return option.Chain[A, B](f)
}

// Filter returns None if the predicate returns false.
func Filter[T any](predicate func(T) bool) func(Option[T]) Option[T] {
	return option.Filter(predicate)
}
