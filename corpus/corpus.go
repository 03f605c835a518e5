// Package corpus reads the whitespace-segmented training corpus and the
// newline-delimited features file, and writes features back out.
//
// The scanning shape — bufio.Scanner with an enlarged buffer, one
// sentence per line, blank lines skipped — follows crf.LoadCorpus,
// adapted from BMES tag sequences to the plain (label, atoms) feature
// instances this model trains on.
package corpus

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/litsea/litsea/feature"
	"github.com/litsea/litsea/litseaerr"
)

// maxLineBuffer enlarges the scanner buffer for long corpus lines.
const maxLineBuffer = 1024 * 1024

// ReadCorpus reads one sentence per line, collapsing runs of ASCII spaces
// into single word boundaries and skipping empty lines. Each returned
// slice is the sentence's words in order.
func ReadCorpus(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBuffer)

	var sentences [][]string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		sentences = append(sentences, words)
	}
	if err := scanner.Err(); err != nil {
		return nil, litseaerr.Wrap(litseaerr.InvalidInput, "reading corpus", err)
	}
	return sentences, nil
}

// ExtractFeatures reads a corpus and writes one feature-file line per
// candidate boundary across every sentence: "<label>\t<atom1>\t<atom2>...".
func ExtractFeatures(r io.Reader, w io.Writer) error {
	sentences, err := ReadCorpus(r)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, words := range sentences {
		for _, inst := range feature.ExtractTraining(words) {
			if err := writeInstance(bw, inst); err != nil {
				return litseaerr.Wrap(litseaerr.IOError, "writing features", err)
			}
		}
	}
	return bw.Flush()
}

func writeInstance(w io.Writer, inst feature.Instance) error {
	var b strings.Builder
	if inst.Label > 0 {
		b.WriteString("+1")
	} else {
		b.WriteString("-1")
	}
	for _, a := range inst.Atoms {
		b.WriteByte('\t')
		b.WriteString(a)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// ReadFeatures parses a features file previously written by
// ExtractFeatures into labeled instances.
func ReadFeatures(r io.Reader) ([]feature.Instance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBuffer)

	var instances []feature.Instance
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 1 {
			continue
		}
		label, err := parseLabel(fields[0])
		if err != nil {
			return nil, litseaerr.Wrap(litseaerr.InvalidInput, "parsing feature label", err)
		}
		atoms := append([]string(nil), fields[1:]...)
		instances = append(instances, feature.Instance{Label: label, Atoms: atoms})
	}
	if err := scanner.Err(); err != nil {
		return nil, litseaerr.Wrap(litseaerr.InvalidInput, "reading features", err)
	}
	return instances, nil
}

func parseLabel(s string) (int8, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v > 0 {
		return 1, nil
	}
	return -1, nil
}
