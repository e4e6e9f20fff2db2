package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadExplicitPath(t *testing.T) {
	path := writeConfig(t, "journal_dir: /data/journal\nmemory_dir: /data/memory\n")

	cfg := Load(path)
	if cfg.JournalDir != "/data/journal" {
		t.Errorf("JournalDir = %q", cfg.JournalDir)
	}
	if cfg.MemoryDir != "/data/memory" {
		t.Errorf("MemoryDir = %q", cfg.MemoryDir)
	}
	if cfg.PromptsDir != "" {
		t.Errorf("PromptsDir = %q, want empty", cfg.PromptsDir)
	}
}

func TestLoadEnvFallback(t *testing.T) {
	path := writeConfig(t, "prompts_dir: /data/prompts\n")
	t.Setenv("EA_MCP_CONFIG", path)

	cfg := Load("")
	if cfg.PromptsDir != "/data/prompts" {
		t.Errorf("PromptsDir = %q", cfg.PromptsDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("EA_MCP_CONFIG", "")
	t.Setenv("HOME", t.TempDir())

	cfg := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if cfg != (Config{}) {
		t.Fatalf("cfg = %+v, want zero", cfg)
	}
}

func TestLoadUnparsableFileFallsBack(t *testing.T) {
	path := writeConfig(t, ":\n\t- not yaml")

	cfg := Load(path)
	if cfg != (Config{}) {
		t.Fatalf("cfg = %+v, want zero", cfg)
	}
}

func TestExplicitPathWinsOverEnv(t *testing.T) {
	explicit := writeConfig(t, "journal_dir: /explicit\n")
	env := writeConfig(t, "journal_dir: /env\n")
	t.Setenv("EA_MCP_CONFIG", env)

	cfg := Load(explicit)
	if cfg.JournalDir != "/explicit" {
		t.Errorf("JournalDir = %q, want /explicit", cfg.JournalDir)
	}
}
