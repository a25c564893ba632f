package bootfmt

// Buffer is an in-memory Sink that accumulates everything written to it.
// Used by tests and by callers that want to capture a rendering before
// deciding where it goes. The zero value is ready to use.
type Buffer struct {
	buf []byte
}

func (b *Buffer) Write(p []byte) {
	b.buf = append(b.buf, p...)
}

// Bytes returns the accumulated output. The slice aliases the buffer's
// storage and is invalidated by the next Write or Reset.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

func (b *Buffer) String() string {
	return string(b.buf)
}

func (b *Buffer) Len() int {
	return len(b.buf)
}

func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}
