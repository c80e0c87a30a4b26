package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeWriteFailed, cause, "write plots/a.png")

	if err.Code != ErrCodeWriteFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeWriteFailed)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	want := "WRITE_FAILED: write plots/a.png: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeLengthMismatch, "test"), ErrCodeLengthMismatch, true},
		{"non-matching code", New(ErrCodeInvalidInput, "test"), ErrCodeWriteFailed, false},
		{"outer code wins", Wrap(ErrCodeRenderFailed, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeRenderFailed, true},
		{"fmt wrapped", fmt.Errorf("chart x: %w", New(ErrCodeLengthMismatch, "inner")), ErrCodeLengthMismatch, true},
		{"non-Error type", errors.New("plain error"), ErrCodeInvalidInput, false},
		{"nil error", nil, ErrCodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidFormat, "x")); got != ErrCodeInvalidFormat {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidFormat)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidPath, "bad stem")); got != "bad stem" {
		t.Errorf("UserMessage() = %q, want %q", got, "bad stem")
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q, want %q", got, "plain")
	}
}

func TestCheckLength(t *testing.T) {
	if err := CheckLength("series a", 3, 3); err != nil {
		t.Errorf("CheckLength(3, 3) = %v, want nil", err)
	}
	err := CheckLength("series a", 2, 3)
	if !Is(err, ErrCodeLengthMismatch) {
		t.Fatalf("CheckLength(2, 3) = %v, want LENGTH_MISMATCH", err)
	}
	if UserMessage(err) != "series a has 2 values, want 3" {
		t.Errorf("message = %q", UserMessage(err))
	}
}

func TestValidateStem(t *testing.T) {
	tests := []struct {
		stem    string
		wantErr bool
	}{
		{"summary_pre_vs_post_visual", false},
		{"variants_pre_vs_post_visual__color_at_position", false},
		{"", true},
		{"../escape", true},
		{"a/b", true},
		{`a\b`, true},
		{".hidden", true},
		{"bad\x00stem", true},
	}

	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			err := ValidateStem(tt.stem)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStem(%q) error = %v, wantErr %v", tt.stem, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateStem(%q) code = %q, want INVALID_PATH", tt.stem, GetCode(err))
			}
		})
	}
}
