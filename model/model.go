// Package model implements the compact on-disk ensemble format and the
// read-only lookup structure the segmenter scores against.
//
// The serialize/deserialize shape follows crf.Model.Load/Save,
// generalized from its human-readable "T ... / F ..." text lines to a
// binary, magic-and-version-prefixed record format.
package model

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/litsea/litsea/litseaerr"
)

var magic = [4]byte{'L', 'T', 'S', '1'}

const formatVersion = 1

// Stump is a single decision stump: the atom it tests for presence, and
// the signed confidence it votes with when present.
type Stump struct {
	Atom  string
	Alpha float64
}

// Ensemble is an ordered sequence of stumps plus the O(1) lookup index
// built over them. An empty ensemble predicts "no boundary" everywhere.
type Ensemble struct {
	Stumps []Stump

	index map[string]float64
}

// reindex (re)builds the O(1) atom->alpha lookup, summing alphas when
// the same atom was selected in more than one round. The full stump
// list is still serialized in training order, so round-tripping
// preserves it exactly regardless of how the index collapses duplicates.
func (e *Ensemble) reindex() {
	e.index = make(map[string]float64, len(e.Stumps))
	for _, s := range e.Stumps {
		e.index[s.Atom] += s.Alpha
	}
}

// Score sums the alpha of every ensemble atom present in atoms.
func (e *Ensemble) Score(atoms []string) float64 {
	if e.index == nil {
		e.reindex()
	}
	score := 0.0
	for _, a := range atoms {
		score += e.index[a]
	}
	return score
}

// Predict reports whether atoms scores as a boundary: score > 0, exactly.
// A tie (score == 0) predicts no boundary.
func (e *Ensemble) Predict(atoms []string) bool {
	return e.Score(atoms) > 0
}

// Serialize writes the ensemble to w in the on-disk format: a 4-byte
// magic, a version byte, a uint32 record count, then that many
// (atomLen uint16, atom bytes, alpha float64) records, all little-endian.
func (e *Ensemble) Serialize(w io.Writer) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if _, err := w.Write([]byte{formatVersion}); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(e.Stumps))); err != nil {
		return err
	}
	for _, s := range e.Stumps {
		if len(s.Atom) > 0xFFFF {
			return litseaerr.New(litseaerr.BadFormat, "atom exceeds maximum encodable length")
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(len(s.Atom))); err != nil {
			return err
		}
		if _, err := io.WriteString(w, s.Atom); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, s.Alpha); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize reads an ensemble previously written by Serialize.
func Deserialize(r io.Reader) (*Ensemble, error) {
	var gotMagic [4]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil {
		return nil, litseaerr.Wrap(litseaerr.BadFormat, "reading magic", err)
	}
	if gotMagic != magic {
		return nil, litseaerr.New(litseaerr.BadFormat, "unrecognized magic bytes")
	}

	var version [1]byte
	if _, err := io.ReadFull(r, version[:]); err != nil {
		return nil, litseaerr.Wrap(litseaerr.BadFormat, "reading version", err)
	}
	if version[0] != formatVersion {
		return nil, litseaerr.New(litseaerr.BadFormat, "unsupported model format version")
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, litseaerr.Wrap(litseaerr.BadFormat, "reading record count", err)
	}

	stumps := make([]Stump, 0, count)
	for i := uint32(0); i < count; i++ {
		var atomLen uint16
		if err := binary.Read(r, binary.LittleEndian, &atomLen); err != nil {
			return nil, litseaerr.Wrap(litseaerr.BadFormat, "reading atom length", err)
		}
		atomBytes := make([]byte, atomLen)
		if _, err := io.ReadFull(r, atomBytes); err != nil {
			return nil, litseaerr.Wrap(litseaerr.BadFormat, "reading atom bytes", err)
		}
		var alpha float64
		if err := binary.Read(r, binary.LittleEndian, &alpha); err != nil {
			return nil, litseaerr.Wrap(litseaerr.BadFormat, "reading alpha", err)
		}
		stumps = append(stumps, Stump{Atom: string(atomBytes), Alpha: alpha})
	}

	var extra [1]byte
	if n, _ := io.ReadFull(r, extra[:]); n > 0 {
		return nil, litseaerr.New(litseaerr.BadFormat, "trailing bytes after last record")
	}

	e := &Ensemble{Stumps: stumps}
	e.reindex()
	return e, nil
}

// Save writes the ensemble to path, creating or truncating it.
func (e *Ensemble) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return litseaerr.Wrap(litseaerr.ModelLoadError, "creating model file", err)
	}
	defer f.Close()
	if err := e.Serialize(f); err != nil {
		return err
	}
	return f.Close()
}

// Load reads an ensemble from path.
func Load(path string) (*Ensemble, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, litseaerr.Wrap(litseaerr.ModelLoadError, "opening model file", err)
	}
	defer f.Close()
	return Deserialize(f)
}
