// Package dequeerr defines the error taxonomy produced by the container
// packages in this module. Every error carries a Kind, a diagnostic
// message, and the stack traces captured by stackerr.
package dequeerr

import (
	"errors"

	"github.com/Invicton-Labs/go-stackerr"
)

// Kind identifies the category of a container error.
type Kind int

const (
	// KindRuntime is an internal failure that does not fit any of the
	// other categories.
	KindRuntime Kind = iota
	// KindIndexOutOfBound is a positional or iterator-arithmetic access
	// beyond the valid range.
	KindIndexOutOfBound
	// KindInvalidIterator is an operation given an iterator that belongs
	// to a different container, references an erased position, or is the
	// non-dereferenceable end position where a dereference was required.
	KindInvalidIterator
	// KindContainerEmpty is a boundary access or pop on an empty container.
	KindContainerEmpty
)

func (k Kind) String() string {
	switch k {
	case KindIndexOutOfBound:
		return "index out of bound"
	case KindInvalidIterator:
		return "invalid iterator"
	case KindContainerEmpty:
		return "container is empty"
	default:
		return "runtime error"
	}
}

// Error is the error type returned by all fallible container operations.
type Error interface {
	stackerr.Error
	// Kind returns the category of the error.
	Kind() Kind
}

// stackError aliases stackerr.Error so it can be embedded without the
// field name colliding with the promoted Error method.
type stackError = stackerr.Error

type kindError struct {
	stackError
	kind Kind
}

func (e *kindError) Kind() Kind {
	return e.kind
}

// New creates an Error of the given kind with a formatted diagnostic message.
func New(kind Kind, format string, args ...any) Error {
	return &kindError{
		stackError: stackerr.Errorf(format, args...),
		kind:       kind,
	}
}

// IndexOutOfBound creates a KindIndexOutOfBound error.
func IndexOutOfBound(format string, args ...any) Error {
	return New(KindIndexOutOfBound, format, args...)
}

// InvalidIterator creates a KindInvalidIterator error.
func InvalidIterator(format string, args ...any) Error {
	return New(KindInvalidIterator, format, args...)
}

// ContainerEmpty creates a KindContainerEmpty error.
func ContainerEmpty(format string, args ...any) Error {
	return New(KindContainerEmpty, format, args...)
}

// Runtime creates a KindRuntime error.
func Runtime(format string, args ...any) Error {
	return New(KindRuntime, format, args...)
}

// KindOf returns the Kind of the error, if the error (or any error it
// wraps) was produced by this package.
func KindOf(err error) (Kind, bool) {
	var kerr Error
	if errors.As(err, &kerr) {
		return kerr.Kind(), true
	}
	return KindRuntime, false
}

// HasKind returns whether the error was produced by this package and
// carries the given Kind.
func HasKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
