package g3d

import (
	"errors"
	"fmt"
)

var (
	// ErrNullBuffer is returned when an attribute is constructed over a nil
	// buffer.
	ErrNullBuffer = errors.New("nil attribute buffer")
)

// ErrUnknownName indicates a name that is not in the fixed enumeration table
// it was parsed against (data type, association, or attribute type).
type ErrUnknownName struct {
	Kind string
	Name string
}

func (e *ErrUnknownName) Error() string {
	return fmt.Sprintf("unknown %s name: %q", e.Kind, e.Name)
}

// ErrOutOfRange indicates a descriptor field whose numeric value lies outside
// its closed enumeration (the invalid sentinel included).
type ErrOutOfRange struct {
	Field string
	Value int32
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("%s out of range: %d", e.Field, e.Value)
}

// ErrInvalidArity indicates a descriptor arity that is not positive.
type ErrInvalidArity struct {
	Arity int32
}

func (e *ErrInvalidArity) Error() string {
	return fmt.Sprintf("data arity must be positive, got %d", e.Arity)
}

// ErrMalformedDescriptor indicates a descriptor string that violates the
// canonical grammar (wrong token count, wrong magic, unknown enum name,
// non-integer index or arity).
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMalformedDescriptor struct {
	Input  string
	Reason string
	cause  error
}

func (e *ErrMalformedDescriptor) Error() string {
	return fmt.Sprintf("malformed descriptor %q: %s", e.Input, e.Reason)
}

func (e *ErrMalformedDescriptor) Unwrap() error { return e.cause }

// ErrRoundTripMismatch indicates a descriptor string that parsed but is not
// canonical: re-encoding the parsed descriptor produced a different string
// (e.g. a leading zero in the channel index). Such input is rejected rather
// than silently normalized.
type ErrRoundTripMismatch struct {
	Input     string
	Canonical string
}

func (e *ErrRoundTripMismatch) Error() string {
	return fmt.Sprintf("descriptor %q is not canonical (canonical form is %q)", e.Input, e.Canonical)
}

// ErrMisalignedBuffer indicates an attribute buffer whose byte length is not
// an exact multiple of the descriptor's element size.
type ErrMisalignedBuffer struct {
	ByteSize    int
	ElementSize int
}

func (e *ErrMisalignedBuffer) Error() string {
	return fmt.Sprintf("buffer of %d bytes is not a multiple of the %d byte element size", e.ByteSize, e.ElementSize)
}

// ErrDuplicateAttribute indicates an attribute whose canonical descriptor
// string is already present in the document.
type ErrDuplicateAttribute struct {
	Key string
}

func (e *ErrDuplicateAttribute) Error() string {
	return fmt.Sprintf("duplicate attribute: %s", e.Key)
}

// ErrCorruptDescriptorTable indicates a container whose descriptor table
// cannot be decoded: its length is not a multiple of the fixed record size,
// a record fails validation, or the attribute buffer arrays do not pair up
// with the table.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrCorruptDescriptorTable struct {
	Length int
	cause  error
}

func (e *ErrCorruptDescriptorTable) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("corrupt descriptor table (%d bytes): %v", e.Length, e.cause)
	}
	return fmt.Sprintf("corrupt descriptor table: %d bytes is not a multiple of %d", e.Length, DescriptorSize)
}

func (e *ErrCorruptDescriptorTable) Unwrap() error { return e.cause }
