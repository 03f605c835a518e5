// Package feature derives the fixed schema of local character-context
// features around each candidate word-boundary position. The same
// extraction function is used at training time and inference time; this
// is the determinism invariant the rest of the system depends on.
//
// This mirrors the shape of crf.ExtractFeatures' window helper,
// generalized from its single five-character unigram template to the
// full 26-atom schema this model uses.
package feature

import (
	"strings"
	"unicode/utf8"

	"github.com/litsea/litsea/charclass"
	"github.com/litsea/litsea/litseaerr"
)

// sentinelChar fills window positions that fall outside the sentence.
const sentinelChar = "_"

// Instance is a single labeled training example: one candidate boundary
// position and the ordered atoms describing its surrounding context.
type Instance struct {
	Label int8
	Atoms []string
}

// offsets are the six window positions relative to a candidate boundary p,
// in the order spec.md fixes for UW1..UW6 / UC1..UC6.
var offsets = [6]int{-3, -2, -1, 0, 1, 2}

// Atoms builds the 26 feature atoms for the candidate boundary at position
// p in runes (a boundary between runes[p-1] and runes[p]). p must satisfy
// 1 <= p <= len(runes)-1; callers only ever invoke this for valid
// candidate positions.
func Atoms(runes []rune, p int) []string {
	var chars [6]string
	var classes [6]charclass.Class
	for i, off := range offsets {
		idx := p + off
		if idx < 0 || idx >= len(runes) {
			chars[i] = sentinelChar
			classes[i] = charclass.Sentinel
			continue
		}
		chars[i] = string(runes[idx])
		classes[i] = charclass.Of(runes[idx])
	}

	atoms := make([]string, 0, 26)

	for i := 0; i < 6; i++ {
		atoms = append(atoms, familyAtom("UW", i+1, chars[i]))
	}
	atoms = append(atoms, familyAtom("BW", 1, chars[1]+chars[2]))
	atoms = append(atoms, familyAtom("BW", 2, chars[2]+chars[3]))
	atoms = append(atoms, familyAtom("BW", 3, chars[3]+chars[4]))
	atoms = append(atoms, familyAtom("TW", 1, chars[0]+chars[1]+chars[2]))
	atoms = append(atoms, familyAtom("TW", 2, chars[1]+chars[2]+chars[3]))
	atoms = append(atoms, familyAtom("TW", 3, chars[2]+chars[3]+chars[4]))
	atoms = append(atoms, familyAtom("TW", 4, chars[3]+chars[4]+chars[5]))

	for i := 0; i < 6; i++ {
		atoms = append(atoms, familyAtom("UC", i+1, classes[i].String()))
	}
	atoms = append(atoms, familyAtom("BC", 1, classes[1].String()+classes[2].String()))
	atoms = append(atoms, familyAtom("BC", 2, classes[2].String()+classes[3].String()))
	atoms = append(atoms, familyAtom("BC", 3, classes[3].String()+classes[4].String()))
	atoms = append(atoms, familyAtom("TC", 1, classes[0].String()+classes[1].String()+classes[2].String()))
	atoms = append(atoms, familyAtom("TC", 2, classes[1].String()+classes[2].String()+classes[3].String()))
	atoms = append(atoms, familyAtom("TC", 3, classes[2].String()+classes[3].String()+classes[4].String()))
	atoms = append(atoms, familyAtom("TC", 4, classes[3].String()+classes[4].String()+classes[5].String()))

	return atoms
}

func familyAtom(family string, n int, value string) string {
	var b strings.Builder
	b.WriteString(family)
	b.WriteByte('0' + byte(n))
	b.WriteByte(':')
	b.WriteString(value)
	return b.String()
}

// ExtractTraining derives labeled instances from a sentence already split
// into whitespace-separated words: whitespace between tokens marks a +1
// boundary label, every other inter-character position is -1. Empty or
// single-character sentences yield zero instances, not an error.
func ExtractTraining(words []string) []Instance {
	if len(words) == 0 {
		return nil
	}

	var runes []rune
	boundaries := make(map[int]bool)
	cum := 0
	for i, w := range words {
		wr := []rune(w)
		if len(wr) == 0 {
			continue
		}
		runes = append(runes, wr...)
		cum += len(wr)
		if i < len(words)-1 {
			boundaries[cum] = true
		}
	}

	n := len(runes)
	if n < 2 {
		return nil
	}

	instances := make([]Instance, 0, n-1)
	for p := 1; p < n; p++ {
		label := int8(-1)
		if boundaries[p] {
			label = 1
		}
		instances = append(instances, Instance{Label: label, Atoms: Atoms(runes, p)})
	}
	return instances
}

// Candidates derives the rune sequence and the per-candidate atom slices
// for a raw sentence at inference time, with no labels attached. Empty or
// single-character sentences yield a nil atoms slice, not an error.
func Candidates(sentence string) ([]rune, [][]string, error) {
	if !utf8.ValidString(sentence) {
		return nil, nil, litseaerr.New(litseaerr.InvalidInput, "sentence is not valid UTF-8")
	}
	runes := []rune(sentence)
	n := len(runes)
	if n < 2 {
		return runes, nil, nil
	}
	atoms := make([][]string, n-1)
	for p := 1; p < n; p++ {
		atoms[p-1] = Atoms(runes, p)
	}
	return runes, atoms, nil
}
