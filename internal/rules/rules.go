// internal/rules/rules.go
//
// A rule names a field whose assigned literal must be identical at every
// definition site under a root directory. Check runs one rule over the tree
// and reports every site plus the distinct normalized values it saw.

package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kingrea/fieldlint/internal/scanner"
)

// DefaultStrip is the character set removed from matched lines before
// comparison. Stripping spaces and commas makes `Field = x,` and
// `Field = x` compare equal.
const DefaultStrip = " ,"

// BuiltinRuleID identifies the rule fieldlint ships with.
const BuiltinRuleID = "in-validation"

// Rule declares one field-consistency check.
type Rule struct {
	ID    string `yaml:"id"`
	Field string `yaml:"field"`
	Root  string `yaml:"root"`
	Strip string `yaml:"strip,omitempty"`
}

// Builtin returns the stock rule: the InValidation constant must carry the
// same literal everywhere under validator/.
func Builtin() Rule {
	return Rule{ID: BuiltinRuleID, Field: "InValidation", Root: "validator", Strip: DefaultStrip}
}

// Normalized returns a trimmed copy with defaults applied. An empty ID
// falls back to the field name; an empty strip set falls back to
// DefaultStrip.
func (r Rule) Normalized() Rule {
	clone := Rule{
		ID:    strings.TrimSpace(r.ID),
		Field: strings.TrimSpace(r.Field),
		Root:  strings.TrimSpace(r.Root),
		Strip: r.Strip,
	}
	if clone.ID == "" {
		clone.ID = clone.Field
	}
	if clone.Strip == "" {
		clone.Strip = DefaultStrip
	}
	return clone
}

// Validate ensures the rule can be run.
func (r Rule) Validate() error {
	normalized := r.Normalized()
	if normalized.Field == "" {
		return fmt.Errorf("rules: field is required")
	}
	if strings.ContainsAny(normalized.Field, " =") {
		return fmt.Errorf("rules: field %q may not contain spaces or '='", normalized.Field)
	}
	if normalized.Root == "" {
		return fmt.Errorf("rules: %s: root is required", normalized.ID)
	}
	return nil
}

// FailureMessage is the single diagnostic line printed when the rule finds
// more than one distinct value. The wording is load-bearing: CI setups grep
// for it.
func (r Rule) FailureMessage() string {
	return fmt.Sprintf("FAIL: Field %s contains different values", r.Normalized().Field)
}

// Normalize strips every character in strip from content. Idempotent.
func Normalize(content, strip string) string {
	return strings.Map(func(ch rune) rune {
		if strings.ContainsRune(strip, ch) {
			return -1
		}
		return ch
	}, content)
}

// Site is one matched assignment line and its normalized value. The value
// keeps the `Field=` prefix: it is the whole matched line with the strip set
// removed, so two sites compare equal only when their assignment text does.
type Site struct {
	Path  string
	Line  int
	Value string
}

// Report is the outcome of running one rule.
type Report struct {
	Rule     Rule
	Sites    []Site
	Distinct []string
}

// Consistent reports whether the rule passed. Zero matches is a vacuous
// pass: a tree that never assigns the field cannot disagree about it.
func (rep Report) Consistent() bool {
	return len(rep.Distinct) <= 1
}

// Check runs one rule against the filesystem. Filesystem errors propagate;
// inconsistency is not an error, it is a failed Report.
func Check(rule Rule) (Report, error) {
	normalized := rule.Normalized()
	if err := normalized.Validate(); err != nil {
		return Report{}, err
	}
	matches, err := scanner.Scan(normalized.Root, normalized.Field)
	if err != nil {
		return Report{}, err
	}
	rep := Report{Rule: normalized}
	seen := make(map[string]struct{}, len(matches))
	for _, match := range matches {
		value := Normalize(match.Content, normalized.Strip)
		rep.Sites = append(rep.Sites, Site{Path: match.Path, Line: match.Line, Value: value})
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		rep.Distinct = append(rep.Distinct, value)
	}
	sort.Strings(rep.Distinct)
	return rep, nil
}
