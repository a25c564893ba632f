package bootfmt

import (
	"encoding/binary"
	"fmt"
)

// ByteMemory is a Memory backed by a byte slice, with address 0 at the
// start of the slice. Multi-byte reads are little-endian, matching both
// wasm linear memory and the argument blocks format.ArgList builds.
type ByteMemory struct {
	Data []byte
}

func (m *ByteMemory) Read(addr uint64, n uint32) ([]byte, error) {
	end := addr + uint64(n)
	if end < addr || end > uint64(len(m.Data)) {
		return nil, fmt.Errorf("bootfmt: read [%d,%d) out of bounds (size %d)", addr, end, len(m.Data))
	}
	return m.Data[addr:end], nil
}

func (m *ByteMemory) ReadU8(addr uint64) (uint8, error) {
	b, err := m.Read(addr, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (m *ByteMemory) ReadU32(addr uint64) (uint32, error) {
	b, err := m.Read(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (m *ByteMemory) ReadU64(addr uint64) (uint64, error) {
	b, err := m.Read(addr, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}
