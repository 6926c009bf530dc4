package rules

import "testing"

func TestNewRegistrySeedsBuiltin(t *testing.T) {
	reg := NewRegistry()
	rule, ok := reg.Resolve(BuiltinRuleID)
	if !ok {
		t.Fatalf("builtin rule must be registered")
	}
	if rule.Field != "InValidation" || rule.Root != "validator" {
		t.Fatalf("unexpected builtin rule: %+v", rule)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	rule := Rule{ID: "log-level", Field: "DefaultLogLevel", Root: "services"}
	if err := reg.Register(rule); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(rule); err == nil {
		t.Fatalf("expected duplicate id to fail")
	}
}

func TestRegisterRejectsInvalidRules(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(Rule{ID: "broken"}); err == nil {
		t.Fatalf("expected invalid rule to fail")
	}
}

func TestAllReturnsSortedRules(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Rule{ID: "zz", Field: "Z", Root: "z"})
	reg.MustRegister(Rule{ID: "aa", Field: "A", Root: "a"})
	all := reg.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(all))
	}
	if all[0].ID != "aa" || all[1].ID != BuiltinRuleID || all[2].ID != "zz" {
		t.Fatalf("rules not sorted by id: %+v", all)
	}
}
