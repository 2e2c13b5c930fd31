package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
	"github.com/startproject-labs/startproject/internal/project"
)

// setupHome points the config directory at a temp dir and resets Viper.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func mustLoad(t *testing.T) {
	t.Helper()
	if err := Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
}

func TestFilePath(t *testing.T) {
	home := setupHome(t)

	want := filepath.Join(home, ".startproject", "config.yaml")
	if got := FilePath(); got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}

func TestSetAndGet(t *testing.T) {
	setupHome(t)
	mustLoad(t)

	if err := Set(KeyAuthor, "Jane Doe"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if got := Get(KeyAuthor); got != "Jane Doe" {
		t.Errorf("Get(%q) = %q, want %q", KeyAuthor, got, "Jane Doe")
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "author: Jane Doe") {
		t.Errorf("config file does not contain author:\n%s", data)
	}

	// A fresh Viper instance sees the persisted value.
	viper.Reset()
	mustLoad(t)
	if got := Get(KeyAuthor); got != "Jane Doe" {
		t.Errorf("after reload Get(%q) = %q, want %q", KeyAuthor, got, "Jane Doe")
	}
}

func TestSetUnknownKey(t *testing.T) {
	setupHome(t)
	mustLoad(t)

	err := Set("license", "MIT")
	if err == nil {
		t.Fatal("expected error for unknown key, got nil")
	}
	if _, statErr := os.Stat(FilePath()); !os.IsNotExist(statErr) {
		t.Errorf("config file should not be created for an unknown key")
	}
}

func TestEnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("STARTPROJECT_AUTHOR_EMAIL", "env@example.com")
	mustLoad(t)

	if got := Get(KeyAuthorEmail); got != "env@example.com" {
		t.Errorf("Get(%q) = %q, want %q", KeyAuthorEmail, got, "env@example.com")
	}
}

func TestProjectDefaults(t *testing.T) {
	setupHome(t)
	mustLoad(t)

	if err := Set(KeyVersion, "1.0.0"); err != nil {
		t.Fatal(err)
	}
	if err := Set(KeyAuthor, "Jane Doe"); err != nil {
		t.Fatal(err)
	}

	want := project.Options{Version: project.String("1.0.0"), Author: project.String("Jane Doe")}
	if diff := cmp.Diff(want, ProjectDefaults()); diff != "" {
		t.Errorf("ProjectDefaults() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	setupHome(t)

	if err := Load(); err != nil {
		t.Errorf("Load() without a config file error: %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	setupHome(t)
	if err := EnsureDir(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(FilePath(), []byte("author: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Load(); err == nil {
		t.Fatal("expected error for malformed config file, got nil")
	}
}

func TestEnvVars(t *testing.T) {
	want := []string{
		"STARTPROJECT_AUTHOR",
		"STARTPROJECT_AUTHOR_EMAIL",
		"STARTPROJECT_VERSION",
		"STARTPROJECT_DESCRIPTION",
	}
	if diff := cmp.Diff(want, EnvVars()); diff != "" {
		t.Errorf("EnvVars() mismatch (-want +got):\n%s", diff)
	}
}
