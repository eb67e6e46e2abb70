package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name" json:"name"`
	Count int    `yaml:"count" json:"count"`
}

type validated struct {
	Name string `yaml:"name"`
}

func (v *validated) Validate() error {
	if v.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "name: demo\ncount: 3\n")

	var cfg sample
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Name != "demo" || cfg.Count != 3 {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"name": "demo", "count": 7}`)

	var cfg sample
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Name != "demo" || cfg.Count != 7 {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("SAMPLE_NAME", "expanded")
	path := writeFile(t, "config.yaml", "name: ${SAMPLE_NAME}\n")

	var cfg sample
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Name != "expanded" {
		t.Errorf("Name = %q, want %q", cfg.Name, "expanded")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "config.toml", "name = \"demo\"\n")

	var cfg sample
	err := Load(path, &cfg)
	if err == nil || !strings.Contains(err.Error(), "unsupported config file format") {
		t.Errorf("Load() error = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	var cfg sample
	if err := Load(filepath.Join(t.TempDir(), "absent.yaml"), &cfg); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadRunsValidator(t *testing.T) {
	path := writeFile(t, "config.yaml", "name: \"\"\n")

	var cfg validated
	err := Load(path, &cfg)
	if err == nil || !strings.Contains(err.Error(), "name is required") {
		t.Errorf("Load() error = %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	in := sample{Name: "demo", Count: 42}
	if err := Save(path, &in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var out sample
	if err := Load(path, &out); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
