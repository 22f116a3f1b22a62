package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port == "" {
		t.Error("Port default missing")
	}
	if cfg.MaxFileSizeBytes != 10<<20 {
		t.Errorf("MaxFileSizeBytes = %d, want 10MiB default", cfg.MaxFileSizeBytes)
	}
	if cfg.ParseTimeout != 30*time.Second {
		t.Errorf("ParseTimeout = %s", cfg.ParseTimeout)
	}
	if cfg.CoordinatorBudget != 20*time.Second {
		t.Errorf("CoordinatorBudget = %s", cfg.CoordinatorBudget)
	}
	if len(cfg.AllowedContentTypes) != 2 {
		t.Errorf("AllowedContentTypes = %v", cfg.AllowedContentTypes)
	}
	if cfg.LLMMaxRetries != 2 {
		t.Errorf("LLMMaxRetries = %d", cfg.LLMMaxRetries)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE_BYTES", "1024")
	t.Setenv("PARSE_TIMEOUT_SECONDS", "5")
	t.Setenv("COORDINATOR_TIMEOUT_SECONDS", "3")
	t.Setenv("LLM_MAX_RETRIES", "0")

	cfg := Load()
	if cfg.MaxFileSizeBytes != 1024 {
		t.Errorf("MaxFileSizeBytes = %d", cfg.MaxFileSizeBytes)
	}
	if cfg.ParseTimeout != 5*time.Second {
		t.Errorf("ParseTimeout = %s", cfg.ParseTimeout)
	}
	if cfg.CoordinatorBudget != 3*time.Second {
		t.Errorf("CoordinatorBudget = %s", cfg.CoordinatorBudget)
	}
	if cfg.LLMMaxRetries != 0 {
		t.Errorf("LLMMaxRetries = %d", cfg.LLMMaxRetries)
	}
}

func TestLoadIgnoresGarbageValues(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE_BYTES", "not-a-number")
	t.Setenv("PARSE_TIMEOUT_SECONDS", "-5")

	cfg := Load()
	if cfg.MaxFileSizeBytes != 10<<20 {
		t.Errorf("MaxFileSizeBytes = %d, want default on garbage input", cfg.MaxFileSizeBytes)
	}
	if cfg.ParseTimeout != 30*time.Second {
		t.Errorf("ParseTimeout = %s, want default on negative input", cfg.ParseTimeout)
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":       "production",
		"PRODUCTION": "production",
		"staging":    "staging",
		"local":      "local",
		"anything":   "dev",
		"":           "dev",
	}
	for in, want := range cases {
		if got := normalizeEnv(in); got != want {
			t.Errorf("normalizeEnv(%q) = %q, want %q", in, got, want)
		}
	}
}
