package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestRecover(t *testing.T) {
	t.Run("converts panic to error", func(t *testing.T) {
		fn := func() (err error) {
			defer Recover(&err, "delegate fit")
			panic("index out of range")
		}

		err := fn()
		if err == nil {
			t.Fatal("expected error from recovered panic")
		}

		var panicErr *PanicError
		if !As(err, &panicErr) {
			t.Fatalf("expected *PanicError, got %T", err)
		}
		if panicErr.Operation != "delegate fit" {
			t.Errorf("Operation = %v, want 'delegate fit'", panicErr.Operation)
		}
		if !strings.Contains(panicErr.StackTrace, "recovery_test.go") {
			t.Error("stack trace should reference the panicking test file")
		}
	})

	t.Run("keeps existing error and notes the panic", func(t *testing.T) {
		fn := func() (err error) {
			defer Recover(&err, "delegate fit")
			err = fmt.Errorf("original failure")
			panic("secondary panic")
		}

		err := fn()
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "original failure") {
			t.Errorf("original error lost: %v", err)
		}
		if !strings.Contains(err.Error(), "secondary panic") {
			t.Errorf("panic information lost: %v", err)
		}
	})

	t.Run("no panic leaves error untouched", func(t *testing.T) {
		fn := func() (err error) {
			defer Recover(&err, "delegate fit")
			return nil
		}
		if err := fn(); err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
	})
}

func TestSafeExecute(t *testing.T) {
	tests := []struct {
		name    string
		fn      func() error
		wantErr bool
		wantSub string
	}{
		{
			name:    "successful execution",
			fn:      func() error { return nil },
			wantErr: false,
		},
		{
			name:    "function returns error",
			fn:      func() error { return fmt.Errorf("fit failed") },
			wantErr: true,
			wantSub: "fit failed",
		},
		{
			name:    "function panics",
			fn:      func() error { panic("slice bounds out of range") },
			wantErr: true,
			wantSub: "slice bounds out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SafeExecute("forest training", tt.fn)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SafeExecute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantSub != "" && !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantSub)
			}
		})
	}
}
