package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// swapFs points AppFs at fs for the duration of the test.
func swapFs(t *testing.T, fs afero.Fs) {
	t.Helper()

	previous := AppFs
	AppFs = fs
	t.Cleanup(func() { AppFs = previous })
}

// clearEnv unsets a variable while registering its restoration, so values
// written by dotenv loading do not leak into other tests.
func clearEnv(t *testing.T, key string) {
	t.Helper()

	t.Setenv(key, os.Getenv(key))
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	swapFs(t, afero.NewMemMapFs())
	clearEnv(t, "LOOM_SCHEMA")
	clearEnv(t, "LOOM_OUTPUT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SchemaPath != DefaultSchemaPath {
		t.Errorf("Expected schema %q, got %q", DefaultSchemaPath, cfg.SchemaPath)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("Expected output %q, got %q", DefaultOutputDir, cfg.OutputDir)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	swapFs(t, afero.NewMemMapFs())
	t.Setenv("LOOM_SCHEMA", "schemas/main.loom")
	t.Setenv("LOOM_OUTPUT", "dist")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SchemaPath != "schemas/main.loom" {
		t.Errorf("Expected the environment schema path, got %q", cfg.SchemaPath)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("Expected the environment output dir, got %q", cfg.OutputDir)
	}
}

func TestLoadFromConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	swapFs(t, fs)
	clearEnv(t, "LOOM_SCHEMA")
	clearEnv(t, "LOOM_OUTPUT")

	// The working directory search path is resolved against the real cwd.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	content := "schema: blog.loom\noutput: artifacts\n"
	if err := afero.WriteFile(fs, filepath.Join(wd, "loom.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SchemaPath != "blog.loom" {
		t.Errorf("Expected the configured schema path, got %q", cfg.SchemaPath)
	}
	if cfg.OutputDir != "artifacts" {
		t.Errorf("Expected the configured output dir, got %q", cfg.OutputDir)
	}
}

func TestEnvironmentWinsOverConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	swapFs(t, fs)
	clearEnv(t, "LOOM_SCHEMA")
	t.Setenv("LOOM_OUTPUT", "dist")

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := afero.WriteFile(fs, filepath.Join(wd, "loom.yaml"), []byte("output: artifacts\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OutputDir != "dist" {
		t.Errorf("Expected the environment to win, got %q", cfg.OutputDir)
	}
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	// godotenv reads straight from disk, so this test uses the real
	// filesystem rooted in a temporary directory.
	swapFs(t, afero.NewOsFs())
	clearEnv(t, "LOOM_OUTPUT")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOOM_OUTPUT=from-dotenv\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OutputDir != "from-dotenv" {
		t.Errorf("Expected the .env value, got %q", cfg.OutputDir)
	}
}

func TestLoadDotenvLocalOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	swapFs(t, afero.NewOsFs())
	clearEnv(t, "LOOM_OUTPUT")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOOM_OUTPUT=from-dotenv\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env.local"), []byte("LOOM_OUTPUT=from-local\n"), 0644); err != nil {
		t.Fatalf("write .env.local: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OutputDir != "from-local" {
		t.Errorf("Expected .env.local to win, got %q", cfg.OutputDir)
	}
}
