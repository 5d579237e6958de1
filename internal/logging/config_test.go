package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevelKnownNames(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":    zerolog.DebugLevel,
		"INFO":     zerolog.InfoLevel,
		" warn ":   zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"disabled": zerolog.Disabled,
	}
	for raw, want := range cases {
		got, ok := parseLevel(raw)
		if !ok {
			t.Fatalf("parseLevel(%q): expected ok", raw)
		}
		if got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestParseLevelUnknownIsNotOk(t *testing.T) {
	if _, ok := parseLevel("verbose"); ok {
		t.Fatal("expected unknown level name to report not ok")
	}
	if _, ok := parseLevel(""); ok {
		t.Fatal("expected empty level name to report not ok")
	}
}

func TestParseBool(t *testing.T) {
	if v, ok := parseBool("true"); !ok || !v {
		t.Fatalf("parseBool(true) = %v, %v", v, ok)
	}
	if v, ok := parseBool("0"); !ok || v {
		t.Fatalf("parseBool(0) = %v, %v", v, ok)
	}
	if _, ok := parseBool(""); ok {
		t.Fatal("expected empty string to report not ok")
	}
	if _, ok := parseBool("maybe"); ok {
		t.Fatal("expected unparseable string to report not ok")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogNoColor, "true")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)

	if cfg.Level != zerolog.WarnLevel {
		t.Fatalf("level override not applied: %v", cfg.Level)
	}
	if !cfg.NoColor {
		t.Fatal("nocolor override not applied")
	}
}
