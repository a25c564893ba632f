package format

import (
	"encoding/binary"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/wippyai/bootfmt"
	"github.com/wippyai/bootfmt/errors"
)

func TestPrintBasic(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   *ArgList
		want   string
	}{
		{
			name:   "signed_and_hex",
			format: "%d-%x",
			args:   NewArgs(Layout64).Int32(-5).Uint32(255),
			want:   "-5-0xff",
		},
		{
			name:   "cstring_with_literal",
			format: "%s end",
			args:   NewArgs(Layout64).CString("hi"),
			want:   "hi end",
		},
		{
			name:   "literal_only",
			format: "no specifiers here",
			args:   nil,
			want:   "no specifiers here",
		},
		{
			name:   "empty",
			format: "",
			args:   nil,
			want:   "",
		},
		{
			name:   "wide_values",
			format: "%D %X",
			args:   NewArgs(Layout64).Int64(-1).Uint64(1 << 40),
			want:   "-1 0x10000000000",
		},
		{
			name:   "pointer",
			format: "at %p",
			args:   NewArgs(Layout64).Ptr(0x1000),
			want:   "at 0x1000",
		},
		{
			name:   "length_prefixed",
			format: "[%S]",
			args:   NewArgs(Layout64).String("abc"),
			want:   "[abc]",
		},
		{
			name:   "trailing_percent",
			format: "abc%",
			args:   nil,
			want:   "abc",
		},
		{
			name:   "embedded_terminator",
			format: "ab\x00cd",
			args:   nil,
			want:   "ab",
		},
		{
			name:   "many_segments",
			format: "a %d b %d c %d d",
			args:   NewArgs(Layout64).Int32(1).Int32(2).Int32(3),
			want:   "a 1 b 2 c 3 d",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bootfmt.Buffer
			p := New(&buf)
			if err := p.Print(tc.format, tc.args); err != nil {
				t.Fatalf("Print: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPrintIdempotent(t *testing.T) {
	render := func() string {
		var buf bootfmt.Buffer
		p := New(&buf)
		args := NewArgs(Layout64).Int32(7).CString("x").Uint64(9)
		if err := p.Print("<%d|%s|%X>", args); err != nil {
			t.Fatalf("Print: %v", err)
		}
		return buf.String()
	}

	first := render()
	for i := 0; i < 5; i++ {
		if got := render(); got != first {
			t.Fatalf("call %d: got %q, want %q", i, got, first)
		}
	}
	if first != "<7|x|0x9>" {
		t.Errorf("got %q, want %q", first, "<7|x|0x9>")
	}
}

func TestPrintLayoutAgreement(t *testing.T) {
	// The same append sequence must render identically on both layouts
	// even though the 64-bit block carries alignment padding.
	for _, layout := range []Layout{Layout32, Layout64} {
		t.Run(fmt.Sprintf("ptr%d", layout.PtrSize), func(t *testing.T) {
			var buf bootfmt.Buffer
			p := New(&buf)
			args := NewArgs(layout).Int32(1).Int64(-2).Uint32(3).String("hey")
			if err := p.Print("%d %D %x %S", args); err != nil {
				t.Fatalf("Print: %v", err)
			}
			if got := buf.String(); got != "1 -2 0x3 hey" {
				t.Errorf("got %q, want %q", got, "1 -2 0x3 hey")
			}
		})
	}
}

func TestPrintfRawBlock(t *testing.T) {
	// Hand-built memory: the driver must apply the exact stride and
	// padding rules to a block it did not pack itself.
	data := make([]byte, 64)
	copy(data, "=%d:%D:%x=\x00")

	const argBase = 16
	binary.LittleEndian.PutUint32(data[argBase:], uint32(0xFFFFFFF9)) // -7
	// cursor lands at 20: 4-aligned but not 8-aligned, pads to 24
	binary.LittleEndian.PutUint64(data[argBase+8:], 1<<40)
	binary.LittleEndian.PutUint32(data[argBase+16:], 0xff)

	var buf bootfmt.Buffer
	p := New(&buf, WithLayout(Layout64))
	if err := p.Printf(&bootfmt.ByteMemory{Data: data}, 0, argBase); err != nil {
		t.Fatalf("Printf: %v", err)
	}
	want := "=-7:1099511627776:0xff="
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintfRawBlock32(t *testing.T) {
	// No padding on 32-bit layouts: the u64 sits right after the u32.
	data := make([]byte, 64)
	copy(data, "%d,%D\x00")

	const argBase = 32
	binary.LittleEndian.PutUint32(data[argBase:], 5)
	binary.LittleEndian.PutUint64(data[argBase+4:], 6)

	var buf bootfmt.Buffer
	p := New(&buf, WithLayout(Layout32))
	if err := p.Printf(&bootfmt.ByteMemory{Data: data}, 0, argBase); err != nil {
		t.Fatalf("Printf: %v", err)
	}
	if got := buf.String(); got != "5,6" {
		t.Errorf("got %q, want %q", got, "5,6")
	}
}

func TestPrintUnknownSpecifier(t *testing.T) {
	t.Run("compat_no_op", func(t *testing.T) {
		// %q emits nothing and consumes nothing; %d still reads the
		// first argument.
		var buf bootfmt.Buffer
		p := New(&buf)
		args := NewArgs(Layout64).Int32(9)
		if err := p.Print("a%qb%d", args); err != nil {
			t.Fatalf("Print: %v", err)
		}
		if got := buf.String(); got != "ab9" {
			t.Errorf("got %q, want %q", got, "ab9")
		}
	})

	t.Run("double_percent_is_not_an_escape", func(t *testing.T) {
		var buf bootfmt.Buffer
		p := New(&buf)
		if err := p.Print("%%d", NewArgs(Layout64).Int32(5)); err != nil {
			t.Fatalf("Print: %v", err)
		}
		// first '%' eats the second as an unknown specifier; 'd' is a
		// literal and the argument goes unused
		if got := buf.String(); got != "d" {
			t.Errorf("got %q, want %q", got, "d")
		}
	})

	t.Run("strict_errors", func(t *testing.T) {
		var buf bootfmt.Buffer
		p := New(&buf, WithStrict())
		err := p.Print("a%qb", NewArgs(Layout64))
		if err == nil {
			t.Fatal("expected error")
		}
		if !stderrors.Is(err, errors.New(errors.PhaseFormat, errors.KindBadSpecifier).Build()) {
			t.Fatalf("wrong error: %v", err)
		}
		var e *errors.Error
		if !stderrors.As(err, &e) || e.Spec != 'q' {
			t.Fatalf("expected spec 'q' in %v", err)
		}
	})
}

func TestPrintInvalidString(t *testing.T) {
	var buf bootfmt.Buffer
	p := New(&buf, WithMaxString(16))
	// garbage pointer with an oversized length: must render the sentinel
	// without dereferencing anything
	args := NewArgs(Layout64).RawString(0xdeadbeefdeadbeef, 1<<20)
	if err := p.Print("got %S", args); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if got := buf.String(); got != "got [invalid string]" {
		t.Errorf("got %q, want %q", got, "got [invalid string]")
	}
}

func TestPrintMissingArgument(t *testing.T) {
	var buf bootfmt.Buffer
	p := New(&buf)
	err := p.Print("%d", NewArgs(Layout64))
	if err == nil {
		t.Fatal("expected error for empty argument block")
	}
	if !stderrors.Is(err, errors.New(errors.PhaseArgs, errors.KindOutOfBounds).Build()) {
		t.Fatalf("wrong error: %v", err)
	}
}

func TestPrintfUnterminatedFormat(t *testing.T) {
	var buf bootfmt.Buffer
	p := New(&buf)
	// no null terminator anywhere in memory
	err := p.Printf(&bootfmt.ByteMemory{Data: []byte("%d")}, 0, 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if !stderrors.Is(err, errors.New(errors.PhaseFormat, errors.KindTruncated).Build()) {
		t.Fatalf("wrong error: %v", err)
	}
}

func TestPrintSerialized(t *testing.T) {
	var buf bootfmt.Buffer
	p := New(&buf, WithSerialized())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int32) {
			defer wg.Done()
			args := NewArgs(Layout64).Int32(n).Int32(n)
			if err := p.Print("<%d=%d>\n", args); err != nil {
				t.Errorf("Print: %v", err)
			}
		}(int32(i))
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8", len(lines))
	}
	for _, line := range lines {
		var a, b int32
		if _, err := fmt.Sscanf(line, "<%d=%d>", &a, &b); err != nil || a != b {
			t.Errorf("interleaved line %q", line)
		}
	}
}
