package main

import (
	"fmt"
	"os"

	"github.com/kingrea/fieldlint/internal/rules"
)

func handleCheckCommand() bool {
	if len(os.Args) < 2 || os.Args[1] != "check" {
		return false
	}
	if len(os.Args) < 3 || len(os.Args) > 4 {
		fmt.Fprintln(os.Stderr, "Usage: fieldlint check <field> [root]")
		os.Exit(2)
	}
	rule := rules.Rule{Field: os.Args[2], Root: "."}
	if len(os.Args) == 4 {
		rule.Root = os.Args[3]
	}
	report, err := rules.Check(rule)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Check failed: %v\n", err)
		os.Exit(1)
	}
	if report.Consistent() {
		fmt.Printf("OK: %s (%d sites, %d distinct)\n", report.Rule.Field, len(report.Sites), len(report.Distinct))
		os.Exit(0)
	}
	fmt.Println(report.Rule.FailureMessage())
	for _, value := range report.Distinct {
		fmt.Printf("- %s\n", value)
		for _, site := range report.Sites {
			if site.Value == value {
				fmt.Printf("  %s:%d\n", site.Path, site.Line)
			}
		}
	}
	os.Exit(1)
	return true
}
