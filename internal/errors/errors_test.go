package apperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("invalid points value: %d", -1)
	if err.Error() != "invalid points value: -1" {
		t.Errorf("Error() = %q", err.Error())
	}

	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) {
		t.Error("errors.As should recognize ConfigError")
	}
}

func TestEvaluationError(t *testing.T) {
	cause := errors.New("grid sweep failed")
	err := EvaluationError{Cause: cause}

	if err.Error() != cause.Error() {
		t.Errorf("Error() = %q, want cause message", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should unwrap to the cause")
	}
}

func TestTimeoutError(t *testing.T) {
	err := TimeoutError{Operation: "evaluate-grid", Limit: 5 * time.Second}
	want := `operation "evaluate-grid" timed out after 5s`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError{Field: "h1", Message: "must be positive"}
	if !strings.Contains(err.Error(), `"h1"`) || !strings.Contains(err.Error(), "must be positive") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestMismatchError(t *testing.T) {
	err := MismatchError{Coefficient: "b2", Theta: 0.02, Deviation: 1.5e-3, Tolerance: 1e-4}
	msg := err.Error()
	for _, want := range []string{"b2", "0.02", "1.500e-03", "1.000e-04"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestWrapError(t *testing.T) {
	t.Run("wraps with context", func(t *testing.T) {
		cause := errors.New("boom")
		err := WrapError(cause, "evaluating %s", "b1")
		if err.Error() != "evaluating b1: boom" {
			t.Errorf("Error() = %q", err.Error())
		}
		if !errors.Is(err, cause) {
			t.Error("wrapped error should unwrap to cause")
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil) should be nil")
		}
	})
}

func TestIsContextError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("run: %w", context.Canceled), true},
		{"other", errors.New("other"), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsContextError(tc.err); got != tc.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestHandleEvaluationError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{"nil", nil, ExitSuccess, ""},
		{"timeout", context.DeadlineExceeded, ExitErrorTimeout, "timed out"},
		{"canceled", context.Canceled, ExitErrorCanceled, "canceled"},
		{"generic", errors.New("bad"), ExitErrorGeneric, "bad"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			code := HandleEvaluationError(tc.err, time.Second, &buf, nil)
			if code != tc.wantCode {
				t.Errorf("exit code = %d, want %d", code, tc.wantCode)
			}
			if tc.wantOut != "" && !strings.Contains(buf.String(), tc.wantOut) {
				t.Errorf("output = %q, want substring %q", buf.String(), tc.wantOut)
			}
		})
	}
}
