// Package dictionary loads prohibited-word lists from newline-delimited text
// sources and normalises them for matching.
package dictionary

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// LoadDir reads every regular file directly inside dir (non-recursive) as a
// newline-delimited word list and returns the concatenated words. Words are
// trimmed of surrounding whitespace; blank lines are dropped.
func LoadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read dictionary dir %s", dir)
	}

	var words []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileWords, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		words = append(words, fileWords...)
	}
	return words, nil
}

// LoadFile reads a single newline-delimited word list.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dictionary file %s", path)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read dictionary file %s", path)
	}
	return words, nil
}
