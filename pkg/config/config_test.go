package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range []string{"BITKERNEL_METRIC", "BITKERNEL_FORMAT", "BITKERNEL_PRECISION"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Metric != "tanimoto" {
		t.Errorf("expected metric 'tanimoto', got %q", cfg.Metric)
	}
	if cfg.Format != "bits" {
		t.Errorf("expected format 'bits', got %q", cfg.Format)
	}
	if cfg.Precision != 4 {
		t.Errorf("expected precision 4, got %d", cfg.Precision)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitkernel.yaml")
	content := "metric: tanimoto\nformat: counts\nprecision: 6\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if cfg.Format != "counts" {
		t.Errorf("expected format 'counts', got %q", cfg.Format)
	}
	if cfg.Precision != 6 {
		t.Errorf("expected precision 6, got %d", cfg.Precision)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config file should fall back to defaults, got %v", err)
	}
	if cfg.Metric != "tanimoto" {
		t.Errorf("expected default metric, got %q", cfg.Metric)
	}
}

func TestLoadFromFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitkernel.yaml")
	if err := os.WriteFile(path, []byte("metric: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestApplyEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("BITKERNEL_FORMAT", "hex")
	t.Setenv("BITKERNEL_PRECISION", "2")

	cfg := Default()
	cfg.ApplyEnv()
	if cfg.Format != "hex" {
		t.Errorf("expected format 'hex', got %q", cfg.Format)
	}
	if cfg.Precision != 2 {
		t.Errorf("expected precision 2, got %d", cfg.Precision)
	}
	if cfg.Metric != "tanimoto" {
		t.Errorf("unset env var should not override metric, got %q", cfg.Metric)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad metric", func(c *Config) { c.Metric = "euclidean" }, true},
		{"bad format", func(c *Config) { c.Format = "smiles" }, true},
		{"negative precision", func(c *Config) { c.Precision = -1 }, true},
		{"excessive precision", func(c *Config) { c.Precision = 30 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
