package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "console" || cfg.CacheSize != 256 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BINDBRIDGE_LOG_LEVEL", "debug")
	t.Setenv("BINDBRIDGE_CACHE_SIZE", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.CacheSize != 8 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("BINDBRIDGE_CACHE_SIZE", "not-an-int")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		logger, err := NewLogger(Config{LogLevel: "warn", LogFormat: format})
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if logger.Core().Enabled(-1) {
			t.Fatalf("%s: debug must be disabled at warn level", format)
		}
	}

	if _, err := NewLogger(Config{LogLevel: "loud"}); err == nil {
		t.Fatal("expected level error")
	}
	if _, err := NewLogger(Config{LogLevel: "info", LogFormat: "xml"}); err == nil {
		t.Fatal("expected format error")
	}
}
