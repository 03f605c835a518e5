// Segmenter turns a loaded ensemble into whitespace-inserted output. Its
// shape — a struct wrapping the scoring resource plus a method that walks
// a sentence and renders segmented text — follows segmenter.Segmenter,
// generalized from dictionary/CRF-based cutting to per-position
// classifier scoring.
package model

import (
	"strings"

	"github.com/litsea/litsea/feature"
)

// Segmenter scores a sentence's candidate boundaries against a loaded,
// read-only Ensemble and renders the segmented text.
type Segmenter struct {
	Ensemble *Ensemble
}

// NewSegmenter wraps an already-loaded ensemble.
func NewSegmenter(e *Ensemble) *Segmenter {
	return &Segmenter{Ensemble: e}
}

// Segment renders sentence with a single ASCII space inserted at every
// predicted boundary. Empty input yields empty output, no error. A
// single-character sentence yields that character unchanged.
func (s *Segmenter) Segment(sentence string) (string, error) {
	runes, atoms, err := feature.Candidates(sentence)
	if err != nil {
		return "", err
	}
	if len(runes) == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteRune(runes[0])
	for p := 1; p < len(runes); p++ {
		if s.Ensemble.Predict(atoms[p-1]) {
			b.WriteByte(' ')
		}
		b.WriteRune(runes[p])
	}
	return b.String(), nil
}
