package rules

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maintains the known consistency rules.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry returns a registry seeded with the builtin rule.
func NewRegistry() *Registry {
	reg := &Registry{rules: map[string]Rule{}}
	reg.MustRegister(Builtin())
	return reg
}

// Register installs a rule. Returns an error if the rule is invalid or its
// ID already exists.
func (reg *Registry) Register(rule Rule) error {
	normalized := rule.Normalized()
	if err := normalized.Validate(); err != nil {
		return err
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, exists := reg.rules[normalized.ID]; exists {
		return fmt.Errorf("rules: %s already registered", normalized.ID)
	}
	reg.rules[normalized.ID] = normalized
	return nil
}

// MustRegister panics if registration fails.
func (reg *Registry) MustRegister(rule Rule) {
	if err := reg.Register(rule); err != nil {
		panic(err)
	}
}

// Resolve looks up a rule by ID.
func (reg *Registry) Resolve(id string) (Rule, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	rule, ok := reg.rules[id]
	return rule, ok
}

// IDs returns a sorted list of registered rule identifiers.
func (reg *Registry) IDs() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	ids := make([]string, 0, len(reg.rules))
	for id := range reg.rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns the registered rules sorted by ID.
func (reg *Registry) All() []Rule {
	ids := reg.IDs()
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	all := make([]Rule, 0, len(ids))
	for _, id := range ids {
		all = append(all, reg.rules[id])
	}
	return all
}
