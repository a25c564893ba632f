package bootfmt

import (
	"io"
	"sync"
)

// Sink receives finished bytes. A Sink never reports failure: byte counts
// handed to it are trusted to be fully written, and whatever error policy
// the underlying stream has belongs to the stream, not to this engine.
type Sink interface {
	Write(p []byte)
}

// Memory is a byte-addressable argument space. Format strings, argument
// blocks and string data are all read through it. Implementations return
// an error for addresses outside the space; they never panic.
type Memory interface {
	Read(addr uint64, n uint32) ([]byte, error)
	ReadU8(addr uint64) (uint8, error)
	ReadU32(addr uint64) (uint32, error)
	ReadU64(addr uint64) (uint64, error)
}

// DefaultMaxString is the maximum byte length a length-prefixed string may
// claim before it is considered corrupt and rendered as the invalid-string
// sentinel instead of being dereferenced.
const DefaultMaxString = 1 << 30 // 1 GB

type writerSink struct {
	w io.Writer
}

// NewSink adapts an io.Writer to a Sink. Write errors are dropped: the
// engine is a best-effort debug facility and has no channel to report
// them (short writes included).
func NewSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) Write(p []byte) {
	if len(p) == 0 {
		return
	}
	_, _ = s.w.Write(p)
}

type lockedSink struct {
	mu    sync.Mutex
	inner Sink
}

// Locked wraps a Sink so each Write is mutually exclusive. This serializes
// individual writes, not whole formatting calls; for call-level atomicity
// use format.WithSerialized.
func Locked(inner Sink) Sink {
	return &lockedSink{inner: inner}
}

func (s *lockedSink) Write(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Write(p)
}
