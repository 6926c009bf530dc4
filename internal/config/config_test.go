package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewConfigDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if c.Project.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", c.Project.Version)
	}
	if len(c.Rules()) != 0 {
		t.Fatalf("expected no extra rules by default, got %d", len(c.Rules()))
	}
}

func TestNewConfigParsesYaml(t *testing.T) {
	projectDir := t.TempDir()
	fieldlintDir := filepath.Join(projectDir, FieldlintDir)
	if err := os.MkdirAll(fieldlintDir, 0755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
rules:
  - id: log-level
    field: DefaultLogLevel
    root: services
  - field: RetryBudget
    root: workers
`)
	if err := os.WriteFile(filepath.Join(fieldlintDir, "config.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if len(c.Rules()) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(c.Rules()))
	}
	if c.Rules()[0].ID != "log-level" {
		t.Fatalf("unexpected first rule: %+v", c.Rules()[0])
	}
	// A rule without an explicit id takes its field name.
	if c.Rules()[1].ID != "RetryBudget" {
		t.Fatalf("unexpected second rule id: %+v", c.Rules()[1])
	}
}

func TestNewConfigRejectsDuplicateRuleIDs(t *testing.T) {
	projectDir := t.TempDir()
	fieldlintDir := filepath.Join(projectDir, FieldlintDir)
	if err := os.MkdirAll(fieldlintDir, 0755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
rules:
  - id: dup
    field: A
    root: a
  - id: dup
    field: B
    root: b
`)
	if err := os.WriteFile(filepath.Join(fieldlintDir, "config.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewConfig(projectDir); err == nil {
		t.Fatalf("expected duplicate rule ids to fail")
	}
}

func TestInitFieldlintDir(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitFieldlintDir(projectDir); err != nil {
		t.Fatalf("InitFieldlintDir returned error: %v", err)
	}
	for _, dir := range []string{"logs", "rules"} {
		path := filepath.Join(projectDir, FieldlintDir, dir)
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s to exist", path)
		}
	}
	configPath := filepath.Join(projectDir, FieldlintDir, "config.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("expected default config to be written: %v", err)
	}
	if !strings.Contains(string(data), "version: 1") {
		t.Fatalf("default config missing version: %s", data)
	}

	// A second init must not clobber an edited config.
	if err := os.WriteFile(configPath, []byte("version: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := InitFieldlintDir(projectDir); err != nil {
		t.Fatalf("re-init returned error: %v", err)
	}
	data, err = os.ReadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "version: 2") {
		t.Fatalf("re-init overwrote existing config: %s", data)
	}
}
