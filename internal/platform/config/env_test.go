package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Backend string `env:"RECORDSTORE_TEST_BACKEND" envDefault:"hash"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Backend != "hash" {
		t.Fatalf("expected default backend hash, got %q", cfg.Backend)
	}
}

func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("RECORDSTORE_TEST_BACKEND", "ordered")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Backend != "ordered" {
		t.Fatalf("expected backend ordered, got %q", cfg.Backend)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg struct {
		Count int `env:"RECORDSTORE_TEST_COUNT"`
	}
	t.Setenv("RECORDSTORE_TEST_COUNT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
