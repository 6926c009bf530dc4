// internal/scanner/scanner.go
//
// This package does the raw tree walk for fieldlint. It knows nothing about
// rules or normalization; it only finds lines that look like an assignment
// to a watched field and reports where they live.

package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Match records one line in the scanned tree that assigns the watched field.
type Match struct {
	// Path is the file the line was found in, relative to the scan root's parent.
	Path string

	// Line is the 1-based line number within Path.
	Line int

	// Content is the full text of the matched line, untrimmed.
	Content string
}

// Scan walks root recursively and collects every line containing the
// assignment form " <field> =": a single space before the identifier and
// " =" immediately after it. This deliberately matches assignment sites
// only, not arbitrary uses of the identifier.
//
// Filesystem errors (missing root, unreadable file) abort the scan and are
// returned to the caller; there is no per-file recovery.
func Scan(root, field string) ([]Match, error) {
	needle := " " + field + " ="
	var matches []Match
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for index, line := range strings.Split(string(data), "\n") {
			if strings.Contains(line, needle) {
				matches = append(matches, Match{Path: path, Line: index + 1, Content: line})
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanner: walk %s: %w", root, err)
	}
	return matches, nil
}
