// internal/config/config.go
//
// This package handles configuration and the .fieldlint directory structure.
// Projects that declare extra consistency rules get a .fieldlint/ folder in
// their root; projects without one run with the builtin rule only.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/fieldlint/internal/rules"
)

const (
	// FieldlintDir is the name of the directory we look for in each project
	FieldlintDir = ".fieldlint"
)

const defaultProjectConfigYAML = `# fieldlint project configuration
version: 1

# Extra consistency rules. Each rule names a field whose assigned literal
# must be identical at every site under the given root.
# strip defaults to " ," (spaces and commas are ignored when comparing).
rules: []
#  - id: log-level
#    field: DefaultLogLevel
#    root: services
`

// ProjectConfig models .fieldlint/config.yaml.
type ProjectConfig struct {
	Version int          `yaml:"version"`
	Rules   []rules.Rule `yaml:"rules"`
}

// Config holds the runtime configuration for fieldlint.
type Config struct {
	// ProjectDir is the directory the user ran `fieldlint` from
	ProjectDir string

	// FieldlintProjectDir is ProjectDir/.fieldlint
	FieldlintProjectDir string

	Project ProjectConfig
}

// InitFieldlintDir creates the .fieldlint directory structure in the given
// project directory.
//
// Structure created:
// .fieldlint/
// ├── logs/     <- run logs
// └── rules/    <- rule plugins (*.yaml and *.go)
func InitFieldlintDir(projectDir string) error {
	fieldlintDir := filepath.Join(projectDir, FieldlintDir)

	dirs := []string{
		filepath.Join(fieldlintDir, "logs"),
		filepath.Join(fieldlintDir, "rules"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return ensureProjectConfig(filepath.Join(fieldlintDir, "config.yaml"))
}

// NewConfig creates a Config populated from .fieldlint/config.yaml when it
// exists, or defaults when it does not. A missing .fieldlint directory is
// not an error.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:          projectDir,
		FieldlintProjectDir: filepath.Join(projectDir, FieldlintDir),
		Project:             defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.FieldlintProjectDir, "logs")
}

// RulesDir returns the directory scanned for rule plugins.
func (c *Config) RulesDir() string {
	return filepath.Join(c.FieldlintProjectDir, "rules")
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.FieldlintProjectDir, "config.yaml")
}

// Rules returns the extra rules declared in the project config.
func (c *Config) Rules() []rules.Rule {
	return c.Project.Rules
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{Version: 1}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	for i := range pc.Rules {
		pc.Rules[i] = pc.Rules[i].Normalized()
	}
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	seen := map[string]struct{}{}
	for i := range pc.Rules {
		if err := pc.Rules[i].Validate(); err != nil {
			return fmt.Errorf("rules[%d]: %w", i, err)
		}
		id := pc.Rules[i].ID
		if _, exists := seen[id]; exists {
			return fmt.Errorf("rules[%d]: duplicate id %s", i, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	content := strings.TrimLeft(defaultProjectConfigYAML, "\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
