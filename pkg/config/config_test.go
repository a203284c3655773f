package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseValidConfig(t *testing.T) {
	yaml := `
version: 1
limit: 50
output: json
log_level: debug
`
	c, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if c.Limit != 50 {
		t.Errorf("limit: got %d, want 50", c.Limit)
	}
	if c.Output != OutputJSON {
		t.Errorf("output: got %q", c.Output)
	}
	lv, err := c.Level()
	if err != nil {
		t.Fatal(err)
	}
	if lv != slog.LevelDebug {
		t.Errorf("level: got %v, want debug", lv)
	}
	if errs := Validate(c); len(errs) != 0 {
		t.Errorf("unexpected validation errors: %v", errs)
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	c, err := Parse([]byte("output: json\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Version != 1 || c.Limit != 20 || c.LogLevel != "warn" {
		t.Errorf("defaults not kept: %+v", c)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("limit: [1, 2")); err == nil {
		t.Error("expected parse error")
	}
}

func TestDefaultIsValid(t *testing.T) {
	if errs := Validate(Default()); len(errs) != 0 {
		t.Errorf("default config invalid: %v", errs)
	}
}

func TestValidateVersionMustBe1(t *testing.T) {
	c := Default()
	c.Version = 2
	assertHasError(t, Validate(c), "version must be 1")
}

func TestValidateLimit(t *testing.T) {
	c := Default()
	c.Limit = 0
	assertHasError(t, Validate(c), "limit must be positive")
}

func TestValidateOutput(t *testing.T) {
	c := Default()
	c.Output = "xml"
	assertHasError(t, Validate(c), "output must be table or json")

	c.Output = ""
	assertHasError(t, Validate(c), "output is required")
}

func TestValidateLogLevel(t *testing.T) {
	c := Default()
	c.LogLevel = "loud"
	assertHasError(t, Validate(c), "invalid log level")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	c := Default()
	c.Limit = 7

	if err := Save(c, path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *c {
		t.Errorf("round-trip: got %+v, want %+v", loaded, c)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func assertHasError(t *testing.T, errs []error, substr string) {
	t.Helper()
	for _, e := range errs {
		if strings.Contains(e.Error(), substr) {
			return
		}
	}
	t.Errorf("expected error containing %q, got %v", substr, errs)
}
