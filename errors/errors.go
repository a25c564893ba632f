package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseFormat Phase = "format" // walking the format string
	PhaseArgs   Phase = "args"   // extracting from the argument block
	PhaseMemory Phase = "memory" // raw memory access
	PhaseHost   Phase = "host"   // guest host-call handling
)

// Kind categorizes the error
type Kind string

const (
	KindBadSpecifier  Kind = "bad_specifier"
	KindOutOfBounds   Kind = "out_of_bounds"
	KindTruncated     Kind = "truncated"
	KindStringTooLong Kind = "string_too_long"
)

// Error is the structured error type used throughout the engine
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Spec   byte   // offending specifier character, 0 if not applicable
	Offset uint64 // format-string or memory offset, when known
	HasOff bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Spec != 0 {
		b.WriteString(" '%")
		b.WriteByte(e.Spec)
		b.WriteByte('\'')
	}

	if e.HasOff {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Spec sets the offending specifier character
func (b *Builder) Spec(c byte) *Builder {
	b.err.Spec = c
	return b
}

// Offset sets the format-string or memory offset
func (b *Builder) Offset(off uint64) *Builder {
	b.err.Offset = off
	b.err.HasOff = true
	return b
}

// Detail sets a formatted detail message
func (b *Builder) Detail(format string, args ...any) *Builder {
	b.err.Detail = fmt.Sprintf(format, args...)
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// BadSpecifier constructs a strict-mode unknown-specifier error.
func BadSpecifier(spec byte, offset uint64) *Error {
	return New(PhaseFormat, KindBadSpecifier).
		Spec(spec).
		Offset(offset).
		Detail("unrecognized format specifier").
		Build()
}

// OutOfBounds constructs a memory-access error for a read of n bytes at addr.
func OutOfBounds(phase Phase, addr uint64, n uint32, cause error) *Error {
	return New(phase, KindOutOfBounds).
		Offset(addr).
		Detail("cannot read %d bytes", n).
		Cause(cause).
		Build()
}

// Truncated constructs an error for a format string with no null terminator
// reachable in its memory.
func Truncated(addr uint64, cause error) *Error {
	return New(PhaseFormat, KindTruncated).
		Offset(addr).
		Detail("format string has no terminator in readable memory").
		Cause(cause).
		Build()
}
