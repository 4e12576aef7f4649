package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{input: "", want: LevelInfo},
		{input: "debug", want: LevelDebug},
		{input: "WARN", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "verbose", want: LevelInfo, wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseLevel(tc.input)
		if tc.wantErr != (err != nil) {
			t.Fatalf("input %q: unexpected error state: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("input %q: expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestSlogLevel(t *testing.T) {
	if got := SlogLevel(LevelDebug); got != slog.LevelDebug {
		t.Fatalf("expected slog debug, got %v", got)
	}
	if got := SlogLevel(LevelError); got != slog.LevelError {
		t.Fatalf("expected slog error, got %v", got)
	}
}
