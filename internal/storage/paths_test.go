package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in       string
		expected string
	}{
		{"~/.doodle/scores.db", filepath.Join(home, ".doodle", "scores.db")},
		{"/tmp/scores.db", "/tmp/scores.db"},
		{"relative/scores.db", "relative/scores.db"},
	}

	for _, tc := range tests {
		got, err := ExpandHome(tc.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) failed: %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestEnsureDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "host_key")
	if err := EnsureDir(path, 0o700); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatalf("directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}
