// Package zero provides helpers for producing the zero value of a generic
// type, primarily for the error paths of functions that return (T, error).
package zero

// ZeroValue returns the zero value of the given type.
func ZeroValue[T any]() T {
	var t T
	return t
}

// ZeroValuePtr returns a pointer to a new zero value of the given type.
func ZeroValuePtr[T any]() *T {
	var t T
	return &t
}
