package plugins

import (
	"fmt"

	"github.com/kingrea/fieldlint/internal/config"
	"github.com/kingrea/fieldlint/internal/rules"
)

// RegisterRulePlugins discovers YAML and Go rule definitions under
// .fieldlint/rules and registers them.
func RegisterRulePlugins(reg *rules.Registry, cfg *config.Config) error {
	if reg == nil || cfg == nil {
		return nil
	}
	defs, err := loadAllDefinitionFiles(cfg.RulesDir())
	if err != nil {
		return err
	}
	if len(defs) == 0 {
		return nil
	}
	seen := make(map[string]string)
	for _, file := range defs {
		def := file.Definition
		if existing, ok := seen[def.ID]; ok {
			return fmt.Errorf("plugin: duplicate rule id %s (%s and %s)", def.ID, existing, file.Path)
		}
		seen[def.ID] = file.Path
		if err := reg.Register(def.Rule()); err != nil {
			return fmt.Errorf("plugin: register %s from %s: %w", def.ID, file.Path, err)
		}
	}
	return nil
}

func loadAllDefinitionFiles(dir string) ([]DefinitionFile, error) {
	yamlDefs, err := LoadDefinitionDir(dir)
	if err != nil {
		return nil, err
	}
	goDefs, err := LoadGoDefinitionDir(dir)
	if err != nil {
		return nil, err
	}
	return append(yamlDefs, goDefs...), nil
}
