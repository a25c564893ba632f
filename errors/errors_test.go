package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "phase_and_kind",
			err:  New(PhaseArgs, KindOutOfBounds).Build(),
			want: "[args] out_of_bounds",
		},
		{
			name: "with_spec",
			err:  New(PhaseFormat, KindBadSpecifier).Spec('q').Build(),
			want: "[format] bad_specifier '%q'",
		},
		{
			name: "with_offset_and_detail",
			err:  New(PhaseMemory, KindOutOfBounds).Offset(16).Detail("cannot read %d bytes", 8).Build(),
			want: "[memory] out_of_bounds at offset 16: cannot read 8 bytes",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := BadSpecifier('z', 7)

	if !stderrors.Is(err, New(PhaseFormat, KindBadSpecifier).Build()) {
		t.Error("expected match on same phase and kind")
	}
	if stderrors.Is(err, New(PhaseArgs, KindBadSpecifier).Build()) {
		t.Error("unexpected match on different phase")
	}
	if stderrors.Is(err, New(PhaseFormat, KindOutOfBounds).Build()) {
		t.Error("unexpected match on different kind")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := OutOfBounds(PhaseArgs, 32, 4, cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected cause to be reachable through Unwrap")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("cause missing from message: %q", err.Error())
	}
}

func TestBadSpecifierOffset(t *testing.T) {
	err := BadSpecifier('q', 3)
	if err.Spec != 'q' {
		t.Errorf("spec: got %q, want 'q'", err.Spec)
	}
	if !err.HasOff || err.Offset != 3 {
		t.Errorf("offset: got (%v, %d), want (true, 3)", err.HasOff, err.Offset)
	}
}
