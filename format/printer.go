package format

import (
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/bootfmt"
	"github.com/wippyai/bootfmt/convert"
	"github.com/wippyai/bootfmt/errors"
	"github.com/wippyai/bootfmt/format/internal/abi"
)

// Layout selects the word model of the argument block.
type Layout = abi.Layout

var (
	Layout32 = abi.Layout32
	Layout64 = abi.Layout64

	// HostLayout matches the pointer width of the host process.
	HostLayout = hostLayout()
)

func hostLayout() Layout {
	if ^uintptr(0)>>63 != 0 {
		return Layout64
	}
	return Layout32
}

// Printer drives the converters from a format string and an argument
// block. The zero value is not usable; construct with New.
type Printer struct {
	sink   bootfmt.Sink
	log    *zap.Logger
	mu     *sync.Mutex
	layout abi.Layout
	max    uint32
	strict bool
}

// Option configures a Printer.
type Option func(*Printer)

// WithLayout sets the word model used to walk argument blocks in Printf.
// Print takes its layout from the ArgList instead.
func WithLayout(l Layout) Option {
	return func(p *Printer) { p.layout = l }
}

// WithMaxString sets the maximum valid length for %S values; longer
// values render the invalid-string sentinel.
func WithMaxString(max uint32) Option {
	return func(p *Printer) { p.max = max }
}

// WithStrict makes unrecognized specifiers a formatting error instead of
// a silent no-op.
func WithStrict() Option {
	return func(p *Printer) { p.strict = true }
}

// WithSerialized wraps each formatting call in a mutex so a whole call's
// output reaches the sink contiguously even under concurrent callers.
func WithSerialized() Option {
	return func(p *Printer) { p.mu = &sync.Mutex{} }
}

// WithLogger sets a logger for anomalies the compat path swallows, such
// as unrecognized specifiers. Defaults to a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *Printer) { p.log = log }
}

// New creates a Printer writing to sink.
func New(sink bootfmt.Sink, opts ...Option) *Printer {
	p := &Printer{
		sink:   sink,
		log:    zap.NewNop(),
		layout: HostLayout,
		max:    bootfmt.DefaultMaxString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print formats with a caller-built argument list. The list's layout
// governs the walk, since the block was packed with it. A nil list is
// valid for format strings without specifiers.
func (p *Printer) Print(format string, args *ArgList) error {
	var mem bootfmt.Memory
	layout := p.layout
	if args != nil {
		mem = args
		layout = args.layout
	} else {
		mem = &bootfmt.ByteMemory{}
	}
	f := unsafe.Slice(unsafe.StringData(format), len(format))
	return p.print(f, layout, mem, 0)
}

// Printf formats from raw addresses: a null-terminated format string at
// fmtAddr and an argument block at argAddr, both inside mem. This is the
// guest-side entry point, where the block was laid out by foreign code.
func (p *Printer) Printf(mem bootfmt.Memory, fmtAddr, argAddr uint64) error {
	n := uint32(0)
	for {
		c, err := mem.ReadU8(fmtAddr + uint64(n))
		if err != nil {
			return errors.Truncated(fmtAddr+uint64(n), err)
		}
		if c == 0 {
			break
		}
		n++
	}
	if n == 0 {
		return nil
	}
	f, err := mem.Read(fmtAddr, n)
	if err != nil {
		return errors.OutOfBounds(errors.PhaseFormat, fmtAddr, n, err)
	}
	return p.print(f, p.layout, mem, argAddr)
}

// print is the single-pass driver. lp tracks the start of the current
// literal segment; arg is the cursor into the argument block.
func (p *Printer) print(f []byte, layout abi.Layout, mem bootfmt.Memory, arg uint64) error {
	if p.mu != nil {
		p.mu.Lock()
		defer p.mu.Unlock()
	}

	lp := 0
	i := 0
	n := len(f)
	for i < n {
		c := f[i]
		if c == 0 {
			// embedded terminator ends the format string
			n = i
			break
		}
		if c != '%' {
			i++
			continue
		}

		if i > lp {
			p.sink.Write(f[lp:i])
		}
		i++
		if i >= n || f[i] == 0 {
			// trailing '%' selects nothing and emits nothing
			if i < n {
				n = i
			}
			lp = i
			break
		}

		spec := f[i]
		stride, padded, ok := layout.Stride(spec)
		if !ok {
			if p.strict {
				return errors.BadSpecifier(spec, uint64(i))
			}
			p.log.Debug("unrecognized format specifier",
				zap.String("spec", string(spec)),
				zap.Int("offset", i))
			i++
			lp = i
			continue
		}

		if padded {
			arg = layout.Pad(arg)
		}
		if err := p.dispatch(spec, layout, mem, arg); err != nil {
			return err
		}
		arg += uint64(stride)
		i++
		lp = i
	}
	if n > lp {
		p.sink.Write(f[lp:n])
	}
	return nil
}

func (p *Printer) dispatch(spec byte, layout abi.Layout, mem bootfmt.Memory, arg uint64) error {
	switch spec {
	case 'd':
		v, err := mem.ReadU32(arg)
		if err != nil {
			return errors.OutOfBounds(errors.PhaseArgs, arg, 4, err)
		}
		convert.Int(p.sink, int64(int32(v)))

	case 'x':
		v, err := mem.ReadU32(arg)
		if err != nil {
			return errors.OutOfBounds(errors.PhaseArgs, arg, 4, err)
		}
		convert.Hex(p.sink, uint64(v))

	case 'D':
		v, err := mem.ReadU64(arg)
		if err != nil {
			return errors.OutOfBounds(errors.PhaseArgs, arg, 8, err)
		}
		convert.Int(p.sink, int64(v))

	case 'X':
		v, err := mem.ReadU64(arg)
		if err != nil {
			return errors.OutOfBounds(errors.PhaseArgs, arg, 8, err)
		}
		convert.Hex(p.sink, v)

	case 'p':
		v, err := readPtr(layout, mem, arg)
		if err != nil {
			return errors.OutOfBounds(errors.PhaseArgs, arg, layout.PtrSize, err)
		}
		convert.Pointer(p.sink, v)

	case 's':
		v, err := readPtr(layout, mem, arg)
		if err != nil {
			return errors.OutOfBounds(errors.PhaseArgs, arg, layout.PtrSize, err)
		}
		convert.CString(p.sink, mem, v)

	case 'S':
		ptr, err := readPtr(layout, mem, arg)
		if err != nil {
			return errors.OutOfBounds(errors.PhaseArgs, arg, layout.PtrSize, err)
		}
		length, err := mem.ReadU32(arg + uint64(layout.PtrSize))
		if err != nil {
			return errors.OutOfBounds(errors.PhaseArgs, arg+uint64(layout.PtrSize), 4, err)
		}
		convert.String(p.sink, mem, ptr, length, p.max)
	}
	return nil
}

func readPtr(layout abi.Layout, mem bootfmt.Memory, arg uint64) (uint64, error) {
	if layout.PtrSize == 8 {
		return mem.ReadU64(arg)
	}
	v, err := mem.ReadU32(arg)
	return uint64(v), err
}
