package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvFillsUnsetVariables(t *testing.T) {
	const key = "NBA_STATS_DL_DOTENV_TEST"
	const kept = "NBA_STATS_DL_DOTENV_KEPT"
	t.Cleanup(func() { _ = os.Unsetenv(key) })
	t.Setenv(kept, "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"+kept+"=from-file\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv(key); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
	if got := os.Getenv(kept); got != "from-env" {
		t.Fatalf("expected existing value to win, got %q", got)
	}
}

func TestLoadDotEnvIgnoresMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}
