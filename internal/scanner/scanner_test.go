package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestScanFindsAssignmentLines(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.py"), "class Status:\n    InValidation = False,\n")
	writeFile(t, filepath.Join(root, "nested", "b.py"), "x = 1\n    InValidation = True\n")

	matches, err := Scan(root, "InValidation")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(matches), matches)
	}
}

func TestScanMatchesAssignmentsOnly(t *testing.T) {
	root := t.TempDir()
	content := "" +
		"uses InValidation somewhere\n" + // no " ="
		"self.InValidation = x\n" + // dot before identifier, no leading space
		" InValidationMode = y\n" + // longer identifier
		" InValidation == z\n" // comparison still has " =" prefix, matches
	writeFile(t, filepath.Join(root, "f.txt"), content)

	matches, err := Scan(root, "InValidation")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(matches), matches)
	}
	if matches[0].Line != 4 {
		t.Fatalf("expected match on line 4, got %d", matches[0].Line)
	}
}

func TestScanReportsLineNumbers(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "f.txt"), "one\ntwo\n InValidation = 3\n")

	matches, err := Scan(root, "InValidation")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(matches) != 1 || matches[0].Line != 3 {
		t.Fatalf("expected single match on line 3, got %+v", matches)
	}
}

func TestScanMissingRoot(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "missing"), "InValidation"); err == nil {
		t.Fatalf("expected error for missing root")
	}
}
