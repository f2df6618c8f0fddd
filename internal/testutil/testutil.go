// Package testutil provides shared helpers for tests that need dictionary
// fixtures on disk.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteWordList writes words as a newline-delimited list file inside dir and
// returns the file path.
func WriteWordList(t *testing.T, dir, name string, words ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := strings.Join(words, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write word list %s: %v", path, err)
	}
	return path
}

// DictionaryDir creates a temporary dictionary directory holding a single
// word-list file with the given words.
func DictionaryDir(t *testing.T, words ...string) string {
	t.Helper()
	dir := t.TempDir()
	WriteWordList(t, dir, "words.txt", words...)
	return dir
}
