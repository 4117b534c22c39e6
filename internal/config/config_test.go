package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"DefinitionsDir", cfg.DefinitionsDir, ""},
		{"SnapshotPath", cfg.SnapshotPath, ""},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("DefaultConfig().%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestSaveAndLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &Config{
		DefinitionsDir: "/data/definitions",
		Verbose:        true,
	}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if loaded.DefinitionsDir != "/data/definitions" {
		t.Errorf("DefinitionsDir = %q, want %q", loaded.DefinitionsDir, "/data/definitions")
	}
	if !loaded.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LINGUIST_DEFINITIONS_DIR", "/env/definitions")
	t.Setenv("LINGUIST_SNAPSHOT", "/env/snapshot")
	t.Setenv("LINGUIST_VERBOSE", "true")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.DefinitionsDir != "/env/definitions" {
		t.Errorf("DefinitionsDir = %q, want %q", cfg.DefinitionsDir, "/env/definitions")
	}
	if cfg.SnapshotPath != "/env/snapshot" {
		t.Errorf("SnapshotPath = %q, want %q", cfg.SnapshotPath, "/env/snapshot")
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}
