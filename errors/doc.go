// Package errors provides structured error types for the bootfmt engine.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The engine is a best-effort debug facility, so errors
// appear only on paths that genuinely cannot proceed: unreadable memory,
// or an unrecognized specifier when strict mode is enabled.
//
// Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseFormat, errors.KindBadSpecifier).
//		Spec('q').
//		Offset(3).
//		Build()
//
// Or the convenience constructors:
//
//	err := errors.BadSpecifier('q', 3)
//	err := errors.OutOfBounds(errors.PhaseArgs, addr, 8, cause)
//
// All errors implement the standard error interface and support
// errors.Is/As; Is matches on Phase and Kind.
package errors
