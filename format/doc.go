// Package format implements the printf-style driver of the bootfmt engine
// and the argument-list builder that feeds it.
//
// The driver walks a format string left to right in a single pass, copies
// literal runs straight to the sink, and for each recognized specifier
// computes the argument's stride and alignment padding before reading it
// from the untyped argument block. The specifier set is fixed:
//
//	%d  32-bit signed decimal       %x  32-bit hex
//	%D  64-bit signed decimal       %X  64-bit hex
//	%p  pointer (hex)               %s  null-terminated string
//	%S  length-prefixed string
//
// An unrecognized specifier consumes no argument and emits nothing; with
// WithStrict it returns a structured error instead. A literal '%' cannot
// be escaped.
//
// Callers on the Go side never lay out argument blocks by hand; ArgList
// packs typed values with the same layout rules the driver reads with:
//
//	p := format.New(bootfmt.NewSink(os.Stderr))
//	err := p.Print("pc=%p n=%d\n", format.HostArgs().Ptr(pc).Int32(n))
//
// Guest-side callers hand the driver raw addresses in a Memory instead;
// see Printf and the guest package.
package format
