package errors

import (
	stderrors "errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnknownTiles, "unknown tileset %q", "watercolor")

	if err.Code != ErrCodeUnknownTiles {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeUnknownTiles)
	}
	want := `UNKNOWN_TILESET: unknown tileset "watercolor"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("no renderer registered")
	err := Wrap(ErrCodeRendererUnavailable, cause, "cannot plot graph")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause with errors.Is")
	}
	want := "RENDERER_UNAVAILABLE: cannot plot graph: no renderer registered"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"MatchingCode", New(ErrCodeAttributeNotFound, "missing"), ErrCodeAttributeNotFound, true},
		{"DifferentCode", New(ErrCodeAttributeNotFound, "missing"), ErrCodeUnknownTiles, false},
		{"PlainError", stderrors.New("plain"), ErrCodeInternal, false},
		{"WrappedInPlain", stderrorsWrap(New(ErrCodeUnsupported, "layer")), ErrCodeUnsupported, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidInput, "bad")); got != ErrCodeInvalidInput {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeInvalidInput)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInternal, "boom")); got != "boom" {
		t.Errorf("UserMessage = %q, want %q", got, "boom")
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage on plain error = %q, want %q", got, "plain")
	}
}

func stderrorsWrap(err error) error {
	return stderrors.Join(stderrors.New("context"), err)
}
