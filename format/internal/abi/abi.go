// Package abi holds the argument-block layout rules the format driver and
// the argument-list builder must agree on: per-specifier strides and the
// alignment padding applied before multi-word reads.
package abi

// Layout describes the target word model of an argument block.
type Layout struct {
	PtrSize uint32 // 4 or 8
}

var (
	Layout32 = Layout{PtrSize: 4}
	Layout64 = Layout{PtrSize: 8}
)

// AlignTo rounds offset up to the next multiple of align (a power of two).
func AlignTo(offset uint64, align uint32) uint64 {
	if align == 0 {
		return offset
	}
	return (offset + uint64(align) - 1) &^ (uint64(align) - 1)
}

// Pad returns addr adjusted for an 8-byte-or-pointer-sized read. On 8-byte
// pointer layouts an address that is 4-byte-aligned but not 8-byte-aligned
// moves forward 4 bytes; everything else is unchanged. Addresses are
// assumed to stay 4-byte-aligned, so checking bit 2 is sufficient.
func (l Layout) Pad(addr uint64) uint64 {
	if l.PtrSize == 8 && addr&4 != 0 {
		addr += 4
	}
	return addr
}

// StringSize is the size of a length-prefixed string value in the block: a
// pointer word followed by a 32-bit length, rounded up to pointer
// alignment (8 on 32-bit layouts, 16 on 64-bit).
func (l Layout) StringSize() uint32 {
	return uint32(AlignTo(uint64(l.PtrSize)+4, l.PtrSize))
}

// Stride returns the number of bytes one specifier consumes from the
// argument cursor, not counting alignment padding, and whether padding
// applies before the read. Unknown specifiers consume nothing.
func (l Layout) Stride(spec byte) (n uint32, padded bool, ok bool) {
	switch spec {
	case 'd', 'x': // 32-bit
		return 4, false, true
	case 'D', 'X': // 64-bit
		return 8, true, true
	case 'p', 's': // pointer-sized
		return l.PtrSize, true, true
	case 'S': // pointer-aligned but bigger
		return l.StringSize(), true, true
	}
	return 0, false, false
}
