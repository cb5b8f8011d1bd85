package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aviadshiber/wows/pkg/wows"
)

func newTestConfig(t *testing.T) *Config {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfg, err := New()
	if err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}
	return cfg
}

func TestNewCreatesDirectory(t *testing.T) {
	cfg := newTestConfig(t)

	dir := filepath.Dir(cfg.FilePath())
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Expected config directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("Expected %s to be a directory", dir)
	}
	if filepath.Base(cfg.FilePath()) != "config.yaml" {
		t.Errorf("Expected config.yaml, got %s", cfg.FilePath())
	}
}

func TestSetAndGet(t *testing.T) {
	cfg := newTestConfig(t)

	if err := cfg.Set(KeyApplicationID, "abcdef123456"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := cfg.Get(KeyApplicationID); got != "abcdef123456" {
		t.Errorf("Expected 'abcdef123456', got '%s'", got)
	}

	// Values survive a reload from disk.
	reloaded, err := New()
	if err != nil {
		t.Fatalf("Failed to reload config: %v", err)
	}
	if got := reloaded.Get(KeyApplicationID); got != "abcdef123456" {
		t.Errorf("Expected persisted 'abcdef123456', got '%s'", got)
	}
}

func TestSetRegionNormalizes(t *testing.T) {
	cfg := newTestConfig(t)

	if err := cfg.Set(KeyRegion, "COM"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := cfg.Get(KeyRegion); got != "na" {
		t.Errorf("Expected region 'na', got '%s'", got)
	}

	err := cfg.Set(KeyRegion, "us")
	if !errors.Is(err, wows.ErrInvalidRegion) {
		t.Errorf("Expected ErrInvalidRegion, got %v", err)
	}
}

func TestSetUnknownKey(t *testing.T) {
	cfg := newTestConfig(t)

	if err := cfg.Set("project_id", "1"); err == nil {
		t.Error("Expected error for unknown key")
	}
}

func TestListMasksSensitiveValues(t *testing.T) {
	cfg := newTestConfig(t)

	if entries := cfg.List(); len(entries) != 0 {
		t.Errorf("Expected no entries, got %v", entries)
	}

	_ = cfg.Set(KeyApplicationID, "abcdef123456")
	_ = cfg.Set(KeyLanguage, "EN")

	entries := cfg.List()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	values := make(map[string]string)
	for _, e := range entries {
		values[e.Key] = e.Value
	}
	if values[KeyApplicationID] != "abcd****" {
		t.Errorf("Expected masked application ID, got '%s'", values[KeyApplicationID])
	}
	if values[KeyLanguage] != "en" {
		t.Errorf("Expected language 'en', got '%s'", values[KeyLanguage])
	}
}

func TestMask(t *testing.T) {
	testCases := map[string]string{
		"":          "****",
		"abc":       "****",
		"abcd":      "****",
		"abcde":     "abcd****",
		"123456789": "1234****",
	}
	for input, expected := range testCases {
		if got := mask(input); got != expected {
			t.Errorf("mask(%q): expected %q, got %q", input, expected, got)
		}
	}
}
