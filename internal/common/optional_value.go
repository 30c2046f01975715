// Package common provides shared data types used throughout the module.
//
//nolint:revive // "common" is an appropriate name for shared utilities package
package common

// OptionalValue represents a value that is either set or absent:
// - Unset (nil) - the underlying data carried no such value
// - Set - the value was present, including zero values
//
// This type provides explicit semantics compared to using *T directly.
// The zero value is unset.
type OptionalValue[T any] struct {
	value *T
}

// NewOptionalValue creates an OptionalValue with the specified value.
func NewOptionalValue[T any](value T) OptionalValue[T] {
	return OptionalValue[T]{value: &value}
}

// NewUnsetOptionalValue creates an unset OptionalValue.
func NewUnsetOptionalValue[T any]() OptionalValue[T] {
	return OptionalValue[T]{}
}

// IsSet returns true if the value has been explicitly set (non-nil).
func (o OptionalValue[T]) IsSet() bool {
	return o.value != nil
}

// Value returns the value.
// Panics if the value is not set (IsSet() == false).
// Callers must check IsSet() before calling Value().
func (o OptionalValue[T]) Value() T {
	if o.value == nil {
		panic("OptionalValue.Value() called on unset value: use IsSet() to check if the value is set before calling Value()")
	}
	return *o.value
}

// Ptr returns the underlying pointer (can be nil). This is useful for
// serialization or when a nullable representation is needed.
func (o OptionalValue[T]) Ptr() *T {
	return o.value
}
