package main

import (
	"fmt"
	"os"
)

func handleRulesCommand() bool {
	if len(os.Args) < 2 || os.Args[1] != "rules" {
		return false
	}
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: fieldlint rules")
		os.Exit(2)
	}
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
	for _, rule := range orderedRules(reg) {
		fmt.Printf("%s\tfield %s under %s/\n", rule.ID, rule.Field, rule.Root)
	}
	os.Exit(0)
	return true
}
