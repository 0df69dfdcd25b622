package xslog

import (
	"log/slog"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: LevelDebug},
		{name: "upper case", input: "WARN", want: LevelWarn},
		{name: "padded", input: " error ", want: LevelError},
		{name: "invalid", input: "verbose", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvKey, "nonsense")
	if got := FromEnv(); got != Default {
		t.Errorf("FromEnv() with invalid value = %q, want %q", got, Default)
	}

	t.Setenv(EnvKey, "debug")
	if got := FromEnv(); got != LevelDebug {
		t.Errorf("FromEnv() = %q, want %q", got, LevelDebug)
	}
}

func TestToSlog(t *testing.T) {
	t.Parallel()

	if LevelWarn.ToSlog() != slog.LevelWarn {
		t.Error("warn should map to slog.LevelWarn")
	}
	if Level("bogus").ToSlog() != slog.LevelInfo {
		t.Error("unknown level should map to slog.LevelInfo")
	}
}
