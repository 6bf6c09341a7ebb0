package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorMessageFallsBackToKind(t *testing.T) {
	t.Parallel()

	err := E(KindUnknown, "")
	if err.Error() != "unknown" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestErrorRendersMessage(t *testing.T) {
	t.Parallel()

	err := E(KindInvalidInput, "email is required")
	if err.Error() != "email is required" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	err := EK(KindInvalidInput, " contact.form.error ", "validation failed")
	if got := LocalizationKey(err); got != "contact.form.error" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := LocalizationKey(stderrors.New("plain")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q", got)
	}
	if got := LocalizationKey(nil); got != "" {
		t.Fatalf("LocalizationKey(nil) = %q", got)
	}
}

func TestLocalizationKeySurvivesWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("submit: %w", EK(KindUnknown, "contact.form.error_server", "store down"))
	if got := LocalizationKey(wrapped); got != "contact.form.error_server" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid input", err: E(KindInvalidInput, "bad"), want: http.StatusBadRequest},
		{name: "unknown kind", err: E(KindUnknown, "boom"), want: http.StatusInternalServerError},
		{name: "untyped", err: stderrors.New("boom"), want: http.StatusInternalServerError},
		{name: "wrapped typed", err: fmt.Errorf("outer: %w", E(KindInvalidInput, "bad")), want: http.StatusBadRequest},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tc.want)
			}
		})
	}
}
