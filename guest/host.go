package guest

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/bootfmt"
	"github.com/wippyai/bootfmt/convert"
	"github.com/wippyai/bootfmt/format"
)

// ModuleName is the import namespace guests link against.
const ModuleName = "bootfmt:debug/print"

// Host implements the debug-print host calls over a sink. Faults never
// propagate to the guest; they are logged and the call renders nothing or
// the defined sentinel.
type Host struct {
	sink    bootfmt.Sink
	printer *format.Printer
	log     *zap.Logger
	max     uint32
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger used for swallowed faults. Defaults to nop.
func WithLogger(log *zap.Logger) Option {
	return func(h *Host) { h.log = log }
}

// WithMaxString sets the maximum valid %S length.
func WithMaxString(max uint32) Option {
	return func(h *Host) { h.max = max }
}

// NewHost creates a Host writing guest debug output to sink. The format
// driver runs with 32-bit layout rules (wasm32).
func NewHost(sink bootfmt.Sink, opts ...Option) *Host {
	h := &Host{
		sink: sink,
		log:  zap.NewNop(),
		max:  bootfmt.DefaultMaxString,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.printer = format.New(sink,
		format.WithLayout(format.Layout32),
		format.WithMaxString(h.max),
		format.WithLogger(h.log),
	)
	return h
}

// Printf runs the format driver over guest memory: a null-terminated
// format string at fmtPtr and an argument block at argPtr.
func (h *Host) Printf(mem bootfmt.Memory, fmtPtr, argPtr uint32) {
	if err := h.printer.Printf(mem, uint64(fmtPtr), uint64(argPtr)); err != nil {
		h.log.Warn("guest printf fault",
			zap.Uint32("fmt_ptr", fmtPtr),
			zap.Uint32("arg_ptr", argPtr),
			zap.Error(err))
	}
}

func (h *Host) PrintInt(v int64) {
	convert.Int(h.sink, v)
}

func (h *Host) PrintUint(v uint64) {
	convert.Uint(h.sink, v)
}

func (h *Host) PrintHex(v uint64) {
	convert.Hex(h.sink, v)
}

func (h *Host) PrintFloat(v float64) {
	convert.Float(h.sink, v)
}

func (h *Host) PrintBool(v bool) {
	convert.Bool(h.sink, v)
}

// PrintString renders a length-prefixed guest string; lengths above the
// configured maximum render the invalid-string sentinel.
func (h *Host) PrintString(mem bootfmt.Memory, ptr, n uint32) {
	convert.String(h.sink, mem, uint64(ptr), n, h.max)
}

// PrintCString renders a null-terminated guest string.
func (h *Host) PrintCString(mem bootfmt.Memory, ptr uint32) {
	convert.CString(h.sink, mem, uint64(ptr))
}

func (h *Host) Space() {
	convert.Space(h.sink)
}

func (h *Host) Newline() {
	convert.Newline(h.sink)
}

// Dump renders n bytes of guest memory as a nibble dump.
func (h *Host) Dump(mem bootfmt.Memory, ptr, n uint32) {
	b, err := mem.Read(uint64(ptr), n)
	if err != nil {
		h.log.Warn("guest dump fault",
			zap.Uint32("ptr", ptr),
			zap.Uint32("len", n),
			zap.Error(err))
		return
	}
	convert.Dump(h.sink, b)
}

// Register instantiates the host module into rt. Guests import its
// exports as ("bootfmt:debug/print", name).
func Register(ctx context.Context, rt wazero.Runtime, h *Host) (api.Module, error) {
	i32 := api.ValueTypeI32
	i64 := api.ValueTypeI64
	f64 := api.ValueTypeF64

	b := rt.NewHostModuleBuilder(ModuleName)

	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, mod api.Module, stack []uint64) {
			h.Printf(WrapMemory(mod.Memory()), uint32(stack[0]), uint32(stack[1]))
		}), []api.ValueType{i32, i32}, nil).
		Export("printf")

	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			h.PrintInt(int64(stack[0]))
		}), []api.ValueType{i64}, nil).
		Export("print_int")

	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			h.PrintUint(stack[0])
		}), []api.ValueType{i64}, nil).
		Export("print_uint")

	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			h.PrintHex(stack[0])
		}), []api.ValueType{i64}, nil).
		Export("print_hex")

	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			h.PrintFloat(api.DecodeF64(stack[0]))
		}), []api.ValueType{f64}, nil).
		Export("print_float")

	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			h.PrintBool(uint32(stack[0]) != 0)
		}), []api.ValueType{i32}, nil).
		Export("print_bool")

	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, mod api.Module, stack []uint64) {
			h.PrintString(WrapMemory(mod.Memory()), uint32(stack[0]), uint32(stack[1]))
		}), []api.ValueType{i32, i32}, nil).
		Export("print_str")

	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, mod api.Module, stack []uint64) {
			h.PrintCString(WrapMemory(mod.Memory()), uint32(stack[0]))
		}), []api.ValueType{i32}, nil).
		Export("print_cstr")

	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, _ []uint64) {
			h.Space()
		}), nil, nil).
		Export("print_sp")

	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, _ []uint64) {
			h.Newline()
		}), nil, nil).
		Export("print_nl")

	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, mod api.Module, stack []uint64) {
			h.Dump(WrapMemory(mod.Memory()), uint32(stack[0]), uint32(stack[1]))
		}), []api.ValueType{i32, i32}, nil).
		Export("dump")

	return b.Instantiate(ctx)
}
