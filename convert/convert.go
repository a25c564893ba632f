package convert

import (
	"runtime"

	"github.com/wippyai/bootfmt"
)

type Sink = bootfmt.Sink
type Memory = bootfmt.Memory

const hexDigits = "0123456789abcdef"

var (
	minus         = []byte{'-'}
	space         = []byte{' '}
	newline       = []byte{'\n'}
	trueText      = []byte("true")
	falseText     = []byte("false")
	invalidString = []byte("[invalid string]")
	pcPrefix      = []byte("PC=")
)

// Uint renders v as decimal ASCII, most significant digit first, no
// leading zeros. Zero renders as a single '0'.
func Uint(s Sink, v uint64) {
	var buf [20]byte // max uint64 is 20 digits

	i := len(buf) - 1
	for {
		buf[i] = byte(v%10) + '0'
		if v < 10 {
			break
		}
		v /= 10
		i--
	}
	s.Write(buf[i:])
}

// Int renders v as signed decimal. The minimum value negates cleanly
// through uint64, so it renders correctly rather than reproducing the
// C-era negation overflow.
func Int(s Sink, v int64) {
	u := uint64(v)
	if v < 0 {
		s.Write(minus)
		u = -u
	}
	Uint(s, u)
}

// Hex renders v as "0x" followed by lowercase hex digits. Zero renders
// as "0x0".
func Hex(s Sink, v uint64) {
	var buf [18]byte // "0x" + 16 digits

	i := len(buf)
	for ; v > 0; v /= 16 {
		i--
		buf[i] = hexDigits[v%16]
	}
	if i == len(buf) {
		i--
		buf[i] = '0'
	}
	i--
	buf[i] = 'x'
	i--
	buf[i] = '0'
	s.Write(buf[i:])
}

// Pointer renders a pointer's bit pattern in hex.
func Pointer(s Sink, p uint64) {
	Hex(s, p)
}

// Bool renders "true" or "false".
func Bool(s Sink, v bool) {
	if v {
		s.Write(trueText)
		return
	}
	s.Write(falseText)
}

// Space writes a single ' '.
func Space(s Sink) {
	s.Write(space)
}

// Newline writes a single '\n'.
func Newline(s Sink) {
	s.Write(newline)
}

// CString writes the bytes at addr up to, not including, the first null
// byte, in one write. A memory fault ends the scan as if a terminator had
// been found, so the readable prefix is still written.
func CString(s Sink, mem Memory, addr uint64) {
	n := uint32(0)
	for {
		c, err := mem.ReadU8(addr + uint64(n))
		if err != nil || c == 0 {
			break
		}
		n++
	}
	if n == 0 {
		return
	}
	b, err := mem.Read(addr, n)
	if err != nil {
		return
	}
	s.Write(b)
}

// String writes the n bytes of a length-prefixed string at addr. A length
// above max marks the value as corrupt: the sentinel "[invalid string]"
// is written and addr is never dereferenced. A zero length writes
// nothing. An unreadable addr also renders the sentinel.
func String(s Sink, mem Memory, addr uint64, n, max uint32) {
	if n > max {
		s.Write(invalidString)
		return
	}
	if n == 0 {
		return
	}
	b, err := mem.Read(addr, n)
	if err != nil {
		s.Write(invalidString)
		return
	}
	s.Write(b)
}

// Dump renders p as a nibble dump, 16 bytes per line, each byte as its
// high and low nibble in hex.
func Dump(s Sink, p []byte) {
	for i, b := range p {
		Pointer(s, uint64(b>>4))
		Pointer(s, uint64(b&0xf))
		if i&15 == 15 {
			Newline(s)
		} else {
			Space(s)
		}
	}
	if len(p)&15 != 0 {
		Newline(s)
	}
}

// PC writes "PC=" followed by the caller's program counter in hex.
func PC(s Sink) {
	s.Write(pcPrefix)
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		pc = 0
	}
	Hex(s, uint64(pc))
}
