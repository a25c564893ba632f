// Package convert implements the value converters of the bootfmt engine.
//
// Each converter is a pure function from one typed value to a byte
// sequence written directly to a Sink. Integer and hex output is built
// back-to-front in a fixed stack buffer and flushed in a single write;
// the float converter assembles its fixed 14-byte scientific form left to
// right. Nothing here allocates, so the converters stay usable when the
// surrounding system's allocator is unavailable.
//
// These are the composable primitives callers use to build custom debug
// lines without the format-string driver:
//
//	convert.Int(sink, pid)
//	convert.Space(sink)
//	convert.Hex(sink, addr)
//	convert.Newline(sink)
package convert
