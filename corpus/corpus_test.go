package corpus

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadCorpusCollapsesSpacesAndSkipsBlank(t *testing.T) {
	in := strings.NewReader("これ  は   テスト です\n\n別 の 文\n")
	sentences, err := ReadCorpus(in)
	if err != nil {
		t.Fatalf("ReadCorpus: %v", err)
	}
	if len(sentences) != 2 {
		t.Fatalf("len(sentences) = %d, want 2", len(sentences))
	}
	want0 := []string{"これ", "は", "テスト", "です"}
	if len(sentences[0]) != len(want0) {
		t.Fatalf("sentences[0] = %v, want %v", sentences[0], want0)
	}
	for i := range want0 {
		if sentences[0][i] != want0[i] {
			t.Errorf("sentences[0][%d] = %q, want %q", i, sentences[0][i], want0[i])
		}
	}
}

func TestExtractAndReadFeaturesRoundTrip(t *testing.T) {
	corpusText := "これ は テスト です\n"
	var featBuf bytes.Buffer
	if err := ExtractFeatures(strings.NewReader(corpusText), &featBuf); err != nil {
		t.Fatalf("ExtractFeatures: %v", err)
	}

	instances, err := ReadFeatures(bytes.NewReader(featBuf.Bytes()))
	if err != nil {
		t.Fatalf("ReadFeatures: %v", err)
	}

	if len(instances) != len([]rune("これはテストです"))-1 {
		t.Fatalf("len(instances) = %d, want %d", len(instances), len([]rune("これはテストです"))-1)
	}
	for _, inst := range instances {
		if len(inst.Atoms) != 26 {
			t.Errorf("instance has %d atoms, want 26", len(inst.Atoms))
		}
		if inst.Label != 1 && inst.Label != -1 {
			t.Errorf("instance label = %d, want +-1", inst.Label)
		}
	}
}

func TestExtractFeaturesSkipsEmptyLines(t *testing.T) {
	var featBuf bytes.Buffer
	if err := ExtractFeatures(strings.NewReader("\n\n"), &featBuf); err != nil {
		t.Fatalf("ExtractFeatures: %v", err)
	}
	if featBuf.Len() != 0 {
		t.Errorf("expected no output for empty corpus, got %q", featBuf.String())
	}
}
