package guest

import (
	"fmt"
	"math"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/bootfmt"
)

// guestMemory adapts wazero linear memory to the engine's Memory
// interface. Reads return views into linear memory, not copies; the
// engine writes them to the sink before the guest runs again, so the
// aliasing is safe.
type guestMemory struct {
	mem api.Memory
}

// WrapMemory adapts a module's linear memory. A nil memory (module
// declared none) yields a Memory whose reads all fail.
func WrapMemory(mem api.Memory) bootfmt.Memory {
	return &guestMemory{mem: mem}
}

func (g *guestMemory) Read(addr uint64, n uint32) ([]byte, error) {
	if g.mem == nil || addr > math.MaxUint32 {
		return nil, fmt.Errorf("guest: read [%d,%d) outside linear memory", addr, addr+uint64(n))
	}
	b, ok := g.mem.Read(uint32(addr), n)
	if !ok {
		return nil, fmt.Errorf("guest: read [%d,%d) outside linear memory", addr, addr+uint64(n))
	}
	return b, nil
}

func (g *guestMemory) ReadU8(addr uint64) (uint8, error) {
	if g.mem == nil || addr > math.MaxUint32 {
		return 0, fmt.Errorf("guest: read byte at %d outside linear memory", addr)
	}
	b, ok := g.mem.ReadByte(uint32(addr))
	if !ok {
		return 0, fmt.Errorf("guest: read byte at %d outside linear memory", addr)
	}
	return b, nil
}

func (g *guestMemory) ReadU32(addr uint64) (uint32, error) {
	if g.mem == nil || addr > math.MaxUint32 {
		return 0, fmt.Errorf("guest: read u32 at %d outside linear memory", addr)
	}
	v, ok := g.mem.ReadUint32Le(uint32(addr))
	if !ok {
		return 0, fmt.Errorf("guest: read u32 at %d outside linear memory", addr)
	}
	return v, nil
}

func (g *guestMemory) ReadU64(addr uint64) (uint64, error) {
	if g.mem == nil || addr > math.MaxUint32 {
		return 0, fmt.Errorf("guest: read u64 at %d outside linear memory", addr)
	}
	v, ok := g.mem.ReadUint64Le(uint32(addr))
	if !ok {
		return 0, fmt.Errorf("guest: read u64 at %d outside linear memory", addr)
	}
	return v, nil
}
