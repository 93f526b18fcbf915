package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("expected default env %s, got %s", EnvDev, cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default http addr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.DraftDebounce != 2500*time.Millisecond {
		t.Fatalf("expected default draft debounce 2.5s, got %s", cfg.DraftDebounce)
	}
	if cfg.DraftHydrationGrace != time.Second {
		t.Fatalf("expected default hydration grace 1s, got %s", cfg.DraftHydrationGrace)
	}
	if !cfg.CacheEnabled {
		t.Fatal("expected cache enabled by default")
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid APP_ENV")
	}
}

func TestLoad_DebounceOverride(t *testing.T) {
	t.Setenv("DRAFT_AUTOSAVE_DEBOUNCE", "4s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DraftDebounce != 4*time.Second {
		t.Fatalf("expected overridden debounce 4s, got %s", cfg.DraftDebounce)
	}
}

func TestLoad_RejectsZeroDebounce(t *testing.T) {
	t.Setenv("DRAFT_AUTOSAVE_DEBOUNCE", "0s")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero debounce")
	}
}
