package security

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidatePathWithinDirectory_Inside(t *testing.T) {
	dir := t.TempDir()
	inside := filepath.Join(dir, "config.json")
	if err := os.WriteFile(inside, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ValidatePathWithinDirectory(inside, dir); err != nil {
		t.Errorf("expected path inside dir to validate: %v", err)
	}
}

func TestValidatePathWithinDirectory_Traversal(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(dir, "..", "escape.json")

	if err := ValidatePathWithinDirectory(outside, dir); err == nil {
		t.Error("expected traversal path to be rejected")
	}
}

func TestValidatePathWithinDirectory_SymlinkEscape(t *testing.T) {
	dir := t.TempDir()
	target := t.TempDir()
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if err := ValidatePathWithinDirectory(filepath.Join(link, "x.json"), dir); err == nil {
		t.Error("expected symlink escape to be rejected")
	}
}

func TestValidateDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	if err := ValidateDirectoryExists(dir); err != nil {
		t.Errorf("expected existing dir to validate: %v", err)
	}
	if err := ValidateDirectoryExists(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected missing dir to fail")
	}

	file := filepath.Join(dir, "f")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateDirectoryExists(file); err == nil {
		t.Error("expected file to fail directory check")
	}
}
