package plugins

import (
	"fmt"
	"strings"

	"github.com/kingrea/fieldlint/internal/rules"
)

// RuleDefinition describes a consistency rule loaded from a plugin file.
//
// The struct mirrors the on-disk schema under .fieldlint/rules/*.yaml and is
// intentionally narrow so definitions can be validated before they reach the
// rule registry.
type RuleDefinition struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version" yaml:"version"`
	Field       string `json:"field" yaml:"field"`
	Root        string `json:"root" yaml:"root"`
	Strip       string `json:"strip,omitempty" yaml:"strip,omitempty"`
}

// Normalized returns a trimmed copy of the definition.
func (def RuleDefinition) Normalized() RuleDefinition {
	return RuleDefinition{
		ID:          strings.TrimSpace(def.ID),
		Name:        strings.TrimSpace(def.Name),
		Description: strings.TrimSpace(def.Description),
		Version:     strings.TrimSpace(def.Version),
		Field:       strings.TrimSpace(def.Field),
		Root:        strings.TrimSpace(def.Root),
		Strip:       def.Strip,
	}
}

// Validate ensures the plugin definition is well-formed.
func (def RuleDefinition) Validate() error {
	normalized := def.Normalized()
	if normalized.ID == "" {
		return fmt.Errorf("plugin: id is required")
	}
	if normalized.Version == "" {
		return fmt.Errorf("plugin %s: version is required", normalized.ID)
	}
	if err := normalized.Rule().Validate(); err != nil {
		return fmt.Errorf("plugin %s: %w", normalized.ID, err)
	}
	return nil
}

// Rule converts the definition into a runnable consistency rule.
func (def RuleDefinition) Rule() rules.Rule {
	normalized := def.Normalized()
	return rules.Rule{
		ID:    normalized.ID,
		Field: normalized.Field,
		Root:  normalized.Root,
		Strip: normalized.Strip,
	}.Normalized()
}
