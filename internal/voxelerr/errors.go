// Package voxelerr defines the error kinds surfaced across the voxelblocks
// core, mirroring the wrap-with-context pattern used throughout the rest of
// the module.
package voxelerr

import "fmt"

// Kind classifies the family of failure an Error represents.
type Kind uint8

const (
	// CorruptedBlob signals a compressed header magic/version mismatch, or
	// a codec reporting a decode error. The backend that produced it is
	// left unmutated.
	CorruptedBlob Kind = iota + 1
	// CodecFailure signals the underlying byte codec reported an error.
	// Callers may retry with a different codec.
	CodecFailure
	// CacheCapacityZero signals a compressible backend was built with
	// capacity 0.
	CacheCapacityZero
	// OutOfBounds signals a point outside the world extent, or a LOD >=
	// num_lods.
	OutOfBounds
)

func (k Kind) String() string {
	switch k {
	case CorruptedBlob:
		return "corrupted blob"
	case CodecFailure:
		return "codec failure"
	case CacheCapacityZero:
		return "cache capacity zero"
	case OutOfBounds:
		return "out of bounds"
	default:
		return "unknown"
	}
}

// Error is a structured, contextual error. It mirrors the
// context+cause shape the module uses everywhere else.
type Error struct {
	Kind    Kind
	Context string
	Cause   error
}

// New builds an Error with no wrapped cause.
func New(kind Kind, context string) *Error {
	return &Error{Kind: kind, Context: context}
}

// Wrap builds an Error wrapping cause. If cause is nil, Wrap returns nil, so
// callers can write `return voxelerr.Wrap(...)` unconditionally after a
// fallible call without a separate nil check.
func Wrap(kind Kind, context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Context: context, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Context)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Context, e.Cause)
}

// Unwrap supports errors.Is/errors.As composition.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind, so callers can
// do errors.Is(err, voxelerr.New(voxelerr.OutOfBounds, "")) ... in practice
// callers use Kind via errors.As and compare e.Kind directly; Is is provided
// for convenience against a kind sentinel built with New.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
