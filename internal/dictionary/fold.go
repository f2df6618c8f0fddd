package dictionary

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Folder normalises text before matching. Folding is applied rune by rune so
// the output always has the same rune count as the input; scan offsets into a
// folded string therefore index the original text as well.
type Folder struct {
	caseFold        bool
	stripDiacritics bool
}

// NewFolder returns a Folder with the given options. A Folder with both
// options off returns its input unchanged.
func NewFolder(caseFold, stripDiacritics bool) *Folder {
	return &Folder{caseFold: caseFold, stripDiacritics: stripDiacritics}
}

// Active reports whether folding changes text at all.
func (f *Folder) Active() bool {
	return f.caseFold || f.stripDiacritics
}

// Fold normalises s according to the Folder's options.
func (f *Folder) Fold(s string) string {
	if !f.caseFold && !f.stripDiacritics {
		return s
	}

	// The transformer chain is stateful, so build one per call rather
	// than sharing it across concurrent scans.
	var stripper transform.Transformer
	if f.stripDiacritics {
		stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if stripper != nil {
			// Only accept per-rune replacements that keep the rune
			// count unchanged; anything else would shift offsets.
			stripped, _, err := transform.String(stripper, string(r))
			if err == nil {
				if rs := []rune(stripped); len(rs) == 1 {
					r = rs[0]
				}
			}
		}
		if f.caseFold {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
