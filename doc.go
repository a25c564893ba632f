// Package bootfmt provides a minimal, allocation-free text-formatting
// engine for bring-up environments where no general-purpose formatting
// library is available yet: the earliest layer of a language runtime, a
// wasm guest before its runtime links, or any context where heap
// allocation and buffered I/O cannot be assumed.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	bootfmt/         Root package with the Sink and Memory interfaces
//	├── convert/     Pure value converters (decimal, hex, float, bool, strings)
//	├── format/      printf-style driver and typed argument-list builder
//	├── errors/      Structured error types for the strict paths
//	├── guest/       wazero host module exposing the engine to wasm guests
//	└── cmd/bootfmt  CLI front end with an interactive playground
//
// # Quick Start
//
// Render values directly:
//
//	sink := bootfmt.NewSink(os.Stdout)
//	convert.Int(sink, -5)
//	convert.Space(sink)
//	convert.Hex(sink, 255)
//	convert.Newline(sink)
//
// Or drive the formatter with a typed argument list:
//
//	p := format.New(sink)
//	args := format.NewArgs(format.HostLayout).Int32(-5).Uint32(255)
//	err := p.Print("%d-%x", args)  // "-5-0xff"
//
// # Format Specifiers
//
// The driver recognizes a fixed set: %d (32-bit signed), %x (32-bit hex),
// %D (64-bit signed), %X (64-bit hex), %p (pointer), %s (null-terminated
// string), %S (length-prefixed string). Any other character after '%'
// consumes no argument and emits nothing unless strict mode is enabled.
// A literal '%' cannot be escaped.
//
// # Memory Model
//
// Arguments live in an untyped, byte-addressable block described by the
// Memory interface. The driver computes each specifier's stride and
// alignment padding itself, exactly as a C varargs walker would; the
// format.ArgList builder packs values with the same rules so the two sides
// always agree. In guest mode the block is wasm linear memory.
//
// # Thread Safety
//
// Converters and the driver keep all scratch state on the stack, so the
// only shared resource is the sink. By default concurrent calls may
// interleave their output at sink-write granularity; wrap the sink with
// Locked or configure the printer with WithSerialized to make each call's
// output contiguous.
package bootfmt
