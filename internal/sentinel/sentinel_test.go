package sentinel

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  Error
		want string
	}{
		"simple message": {err: Error("port is unavailable"), want: "port is unavailable"},
		"empty message":  {err: Error(""), want: ""},
		"with spaces":    {err: Error("out of range"), want: "out of range"},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestError_ErrorsIs(t *testing.T) {
	t.Parallel()

	const sentinel = Error("port is unavailable")

	t.Run("direct match", func(t *testing.T) {
		t.Parallel()

		if !errors.Is(sentinel, sentinel) {
			t.Error("errors.Is should match identical sentinel errors")
		}
	})

	t.Run("wrapped match", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("reserve port 8080: %w", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Error("errors.Is should match sentinel error through wrapping")
		}
	})

	t.Run("different sentinel no match", func(t *testing.T) {
		t.Parallel()

		const other = Error("out of range")
		if errors.Is(sentinel, other) {
			t.Error("errors.Is should not match different sentinel errors")
		}
	})

	t.Run("same text different type no match", func(t *testing.T) {
		t.Parallel()

		stdErr := errors.New("port is unavailable")
		if errors.Is(sentinel, stdErr) {
			t.Error("errors.Is should not match against errors.New with the same text")
		}
	})
}

func TestError_CanDeclareAsConst(t *testing.T) {
	t.Parallel()

	// Compile-time property: Error is usable in a const declaration.
	const errConst = Error("constant error")
	if errConst.Error() != "constant error" {
		t.Error("const Error should return its string value")
	}
}
