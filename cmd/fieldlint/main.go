// cmd/fieldlint/main.go
//
// Entry point for the fieldlint CLI.
//
// Flow:
// 1. Subcommands (check, rules, tui) are tried first and exit on their own
// 2. A bare invocation runs the consistency rules and prints one FAIL line
//    per inconsistent field
//
// The bare invocation's contract is fixed: silent exit 0 when every rule
// passes, `FAIL: Field <name> contains different values` on stdout plus
// exit 1 otherwise. CI pipelines depend on both halves.

package main

import (
	"fmt"
	"os"

	"github.com/kingrea/fieldlint/internal/config"
	"github.com/kingrea/fieldlint/internal/rules"
	"github.com/kingrea/fieldlint/plugins"
)

func main() {
	if handleCheckCommand() {
		return
	}
	if handleRulesCommand() {
		return
	}
	if handleTUICommand() {
		return
	}
	if len(os.Args) > 1 {
		fmt.Fprintf(os.Stderr, "Usage: fieldlint [check|rules|tui]\n")
		os.Exit(2)
	}
	runLint()
}

// runLint is the bare invocation: builtin rule first, then any rules the
// project declares via .fieldlint/ config or plugins.
func runLint() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}
	reg, err := buildRegistry(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(1)
	}

	failed := false
	for _, rule := range orderedRules(reg) {
		report, err := rules.Check(rule)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		if !report.Consistent() {
			fmt.Println(rule.FailureMessage())
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// buildRegistry loads the project config and rule plugins on top of the
// builtin rule. A project without a .fieldlint directory gets the builtin
// rule only.
func buildRegistry(projectDir string) (*rules.Registry, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	reg := rules.NewRegistry()
	for _, rule := range cfg.Rules() {
		if err := reg.Register(rule); err != nil {
			return nil, err
		}
	}
	if err := plugins.RegisterRulePlugins(reg, cfg); err != nil {
		return nil, err
	}
	return reg, nil
}

// orderedRules puts the builtin rule first so its diagnostic always leads,
// then the rest sorted by ID.
func orderedRules(reg *rules.Registry) []rules.Rule {
	ordered := make([]rules.Rule, 0)
	if builtin, ok := reg.Resolve(rules.BuiltinRuleID); ok {
		ordered = append(ordered, builtin)
	}
	for _, rule := range reg.All() {
		if rule.ID == rules.BuiltinRuleID {
			continue
		}
		ordered = append(ordered, rule)
	}
	return ordered
}
