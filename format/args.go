package format

import (
	"encoding/binary"
	"fmt"

	"github.com/wippyai/bootfmt/format/internal/abi"
)

// heapBase is where the string region starts in an ArgList's address
// space. The block grows from 0; string bytes referenced by pointer live
// above this line so both regions can grow independently. It fits a
// 32-bit pointer so Layout32 blocks can address the heap too.
const heapBase = 0x8000_0000

// ArgList packs typed values into an untyped argument block using the
// same layout rules the driver reads with, so padding is agreed on both
// sides. It implements bootfmt.Memory over its block and string region.
// Methods chain:
//
//	format.NewArgs(format.Layout64).Int32(-5).Uint32(255).CString("hi")
//
// An ArgList is not safe for concurrent mutation.
type ArgList struct {
	layout abi.Layout
	block  []byte
	heap   []byte
}

// NewArgs creates an empty argument list for the given layout.
func NewArgs(layout Layout) *ArgList {
	return &ArgList{layout: layout}
}

// HostArgs creates an empty argument list with the host's word model.
func HostArgs() *ArgList {
	return NewArgs(HostLayout)
}

// Block exposes the raw argument block, base address 0.
func (a *ArgList) Block() []byte {
	return a.block
}

// padWord applies the multi-word alignment rule to the block tail.
func (a *ArgList) padWord() {
	if a.layout.PtrSize == 8 && len(a.block)&4 != 0 {
		a.block = append(a.block, 0, 0, 0, 0)
	}
}

func (a *ArgList) appendU32(v uint32) {
	a.block = binary.LittleEndian.AppendUint32(a.block, v)
}

func (a *ArgList) appendU64(v uint64) {
	a.block = binary.LittleEndian.AppendUint64(a.block, v)
}

func (a *ArgList) appendPtr(p uint64) {
	if a.layout.PtrSize == 8 {
		a.appendU64(p)
		return
	}
	a.appendU32(uint32(p))
}

// reserve copies b into the string region and returns its address.
func (a *ArgList) reserve(b []byte) uint64 {
	addr := heapBase + uint64(len(a.heap))
	a.heap = append(a.heap, b...)
	return addr
}

// Int32 appends a %d argument.
func (a *ArgList) Int32(v int32) *ArgList {
	a.appendU32(uint32(v))
	return a
}

// Uint32 appends a %x argument.
func (a *ArgList) Uint32(v uint32) *ArgList {
	a.appendU32(v)
	return a
}

// Int64 appends a %D argument.
func (a *ArgList) Int64(v int64) *ArgList {
	a.padWord()
	a.appendU64(uint64(v))
	return a
}

// Uint64 appends a %X argument.
func (a *ArgList) Uint64(v uint64) *ArgList {
	a.padWord()
	a.appendU64(v)
	return a
}

// Ptr appends a %p argument. On 32-bit layouts the value truncates to the
// pointer width, as it would in the block being modeled.
func (a *ArgList) Ptr(p uint64) *ArgList {
	a.padWord()
	a.appendPtr(p)
	return a
}

// CString appends a %s argument: the bytes of s plus a null terminator go
// to the string region, the block gets the pointer.
func (a *ArgList) CString(s string) *ArgList {
	addr := a.reserve(append([]byte(s), 0))
	a.padWord()
	a.appendPtr(addr)
	return a
}

// String appends a %S argument as a pointer+length pair, padded out to
// the layout's string value size.
func (a *ArgList) String(s string) *ArgList {
	addr := a.reserve([]byte(s))
	return a.RawString(addr, uint32(len(s)))
}

// RawString appends a %S argument with an explicit, possibly invalid
// pointer and length. This is how corrupt length-prefixed values are
// modeled: the driver must render the sentinel without dereferencing ptr.
func (a *ArgList) RawString(ptr uint64, n uint32) *ArgList {
	a.padWord()
	a.appendPtr(ptr)
	a.appendU32(n)
	for uint64(len(a.block)) != abi.AlignTo(uint64(len(a.block)), a.layout.PtrSize) {
		a.block = append(a.block, 0)
	}
	return a
}

func (a *ArgList) region(addr uint64) ([]byte, uint64) {
	if addr >= heapBase {
		return a.heap, addr - heapBase
	}
	return a.block, addr
}

func (a *ArgList) Read(addr uint64, n uint32) ([]byte, error) {
	r, off := a.region(addr)
	end := off + uint64(n)
	if end < off || end > uint64(len(r)) {
		return nil, fmt.Errorf("format: read [%d,%d) out of bounds (size %d)", addr, addr+uint64(n), len(r))
	}
	return r[off:end], nil
}

func (a *ArgList) ReadU8(addr uint64) (uint8, error) {
	b, err := a.Read(addr, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (a *ArgList) ReadU32(addr uint64) (uint32, error) {
	b, err := a.Read(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (a *ArgList) ReadU64(addr uint64) (uint64, error) {
	b, err := a.Read(addr, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}
