// Package detect wires the matching automaton, dictionary loading and text
// folding into a process-scoped detector shared across requests.
package detect

import (
	"errors"
	"log/slog"

	"WordWatch/internal/automaton"
	"WordWatch/internal/dictionary"
)

// DefaultMaxSkip is the fuzzy scanner's skip budget when a caller does not
// supply one.
const DefaultMaxSkip = 5

// Options controls how dictionary words and scanned text are normalised
// before they reach the automaton.
type Options struct {
	// CaseFold lowercases words and text before matching.
	CaseFold bool

	// StripDiacritics removes combining marks (é matches e).
	StripDiacritics bool
}

// Stats describes a built detector for health and introspection endpoints.
type Stats struct {
	Words    int    `json:"words"`
	Nodes    int    `json:"nodes"`
	Rejected int    `json:"rejected"`
	Dir      string `json:"dictionary_dir,omitempty"`
}

// Detector holds one immutable automaton built from the full dictionary.
// Construction enforces the build-before-scan ordering once; afterwards any
// number of goroutines may scan concurrently.
type Detector struct {
	automaton *automaton.Automaton
	folder    *dictionary.Folder
	rejected  int
	dir       string
}

// New builds a detector from an in-memory word list. Words the automaton
// rejects are logged and skipped; a bad entry never aborts the whole load.
func New(words []string, opts Options, logger *slog.Logger) (*Detector, error) {
	if logger == nil {
		logger = slog.Default()
	}

	d := &Detector{
		automaton: automaton.New(),
		folder:    dictionary.NewFolder(opts.CaseFold, opts.StripDiacritics),
	}

	for _, word := range words {
		if err := d.automaton.Insert(d.folder.Fold(word)); err != nil {
			if errors.Is(err, automaton.ErrInvalidWord) {
				d.rejected++
				logger.Warn("skipping invalid dictionary word", "word", word)
				continue
			}
			return nil, err
		}
	}

	if err := d.automaton.Build(); err != nil {
		return nil, err
	}

	logger.Info("dictionary loaded",
		"words", d.automaton.WordCount(),
		"nodes", d.automaton.NodeCount(),
		"rejected", d.rejected,
	)
	return d, nil
}

// FromDirectory loads every word list in dir and builds a detector from it.
func FromDirectory(dir string, opts Options, logger *slog.Logger) (*Detector, error) {
	words, err := dictionary.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	d, err := New(words, opts, logger)
	if err != nil {
		return nil, err
	}
	d.dir = dir
	return d, nil
}

// ScanExact returns every dictionary word occurring as a contiguous substring
// of text, with inclusive rune-offset spans into the original (unfolded) text.
func (d *Detector) ScanExact(text string) ([]automaton.Match, error) {
	matches, err := d.automaton.ScanExact(d.folder.Fold(text))
	if err != nil {
		return nil, err
	}
	return d.remap(text, matches), nil
}

// ScanFuzzy returns approximate occurrences tolerating up to maxSkip
// consecutive noise runes inside a match. Spans never overlap.
func (d *Detector) ScanFuzzy(text string, maxSkip int) ([]automaton.Match, error) {
	matches, err := d.automaton.ScanFuzzy(d.folder.Fold(text), maxSkip)
	if err != nil {
		return nil, err
	}
	return d.remap(text, matches), nil
}

// Contains reports whether text contains any dictionary word.
func (d *Detector) Contains(text string) bool {
	matches, err := d.ScanExact(text)
	return err == nil && len(matches) > 0
}

// Censor replaces every rune covered by an exact match with '*' and reports
// whether anything was masked.
func (d *Detector) Censor(text string) (string, bool) {
	matches, err := d.ScanExact(text)
	if err != nil || len(matches) == 0 {
		return text, false
	}

	runes := []rune(text)
	for _, m := range matches {
		for i := m.Start; i <= m.End; i++ {
			runes[i] = '*'
		}
	}
	return string(runes), true
}

// Stats returns introspection data about the built automaton.
func (d *Detector) Stats() Stats {
	return Stats{
		Words:    d.automaton.WordCount(),
		Nodes:    d.automaton.NodeCount(),
		Rejected: d.rejected,
		Dir:      d.dir,
	}
}

// remap rewrites match text against the original input. Folding preserves
// rune counts, so the spans themselves are already correct; only the literal
// word text differs when folding is active.
func (d *Detector) remap(text string, matches []automaton.Match) []automaton.Match {
	if !d.folder.Active() || len(matches) == 0 {
		return matches
	}
	runes := []rune(text)
	for i := range matches {
		matches[i].Word = string(runes[matches[i].Start : matches[i].End+1])
	}
	return matches
}
