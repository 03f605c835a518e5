package feature

import (
	"reflect"
	"testing"
)

func TestAtomsSentinelAtEdges(t *testing.T) {
	runes := []rune("あい")
	atoms := Atoms(runes, 1)

	want := map[string]string{
		"UW1": "_", "UW2": "_", "UW3": "あ",
		"UW4": "い", "UW5": "_", "UW6": "_",
		"UC1": "U", "UC2": "U", "UC3": "H",
		"UC4": "H", "UC5": "U", "UC6": "U",
	}
	got := atomMap(atoms)
	for family, value := range want {
		if got[family] != value {
			t.Errorf("atom %s = %q, want %q", family, got[family], value)
		}
	}
}

func TestAtomsCount(t *testing.T) {
	runes := []rune("これはテストです")
	atoms := Atoms(runes, 3)
	if len(atoms) != 26 {
		t.Fatalf("len(Atoms) = %d, want 26", len(atoms))
	}
}

func TestAtomsDeterministic(t *testing.T) {
	sentence := "Litseaは単語分割ソフトウェアです。"
	runes := []rune(sentence)
	for p := 1; p < len(runes); p++ {
		a1 := Atoms(runes, p)
		a2 := Atoms(runes, p)
		if !reflect.DeepEqual(a1, a2) {
			t.Fatalf("Atoms(%d) not deterministic: %v vs %v", p, a1, a2)
		}
	}
}

func TestExtractTrainingEmptyAndSingleChar(t *testing.T) {
	if got := ExtractTraining(nil); got != nil {
		t.Errorf("ExtractTraining(nil) = %v, want nil", got)
	}
	if got := ExtractTraining([]string{"あ"}); got != nil {
		t.Errorf("ExtractTraining single char = %v, want nil", got)
	}
}

func TestExtractTrainingLabels(t *testing.T) {
	words := []string{"これ", "は", "テスト", "です"}
	instances := ExtractTraining(words)

	runes := []rune("これはテストです")
	if len(instances) != len(runes)-1 {
		t.Fatalf("len(instances) = %d, want %d", len(instances), len(runes)-1)
	}

	// Boundaries fall after "これ" (2 chars), "は" (1 char), "テスト" (3 chars).
	wantBoundary := map[int]bool{2: true, 3: true, 6: true}
	for p, inst := range instances {
		pos := p + 1
		want := int8(-1)
		if wantBoundary[pos] {
			want = 1
		}
		if inst.Label != want {
			t.Errorf("position %d: label = %d, want %d", pos, inst.Label, want)
		}
	}
}

func TestCandidatesEmptyAndSingleChar(t *testing.T) {
	runes, atoms, err := Candidates("")
	if err != nil {
		t.Fatalf("Candidates(\"\") error: %v", err)
	}
	if len(runes) != 0 || atoms != nil {
		t.Errorf("Candidates(\"\") = %v, %v, want empty", runes, atoms)
	}

	runes, atoms, err = Candidates("あ")
	if err != nil {
		t.Fatalf("Candidates single char error: %v", err)
	}
	if len(runes) != 1 || atoms != nil {
		t.Errorf("Candidates single char = %v, %v, want len 1 runes, nil atoms", runes, atoms)
	}
}

func TestCandidatesInvalidUTF8(t *testing.T) {
	_, _, err := Candidates(string([]byte{0xff, 0xfe}))
	if err == nil {
		t.Fatal("Candidates with invalid UTF-8 should error")
	}
}

func TestFeatureAndInferenceAgree(t *testing.T) {
	// The determinism invariant: training and inference extraction over
	// the same characters must emit byte-identical atoms in the same order.
	sentence := "これはテストです"
	words := []string{"これ", "は", "テスト", "です"}

	trainInstances := ExtractTraining(words)
	_, inferAtoms, err := Candidates(sentence)
	if err != nil {
		t.Fatalf("Candidates error: %v", err)
	}

	if len(trainInstances) != len(inferAtoms) {
		t.Fatalf("instance count mismatch: %d vs %d", len(trainInstances), len(inferAtoms))
	}
	for i := range trainInstances {
		if !reflect.DeepEqual(trainInstances[i].Atoms, inferAtoms[i]) {
			t.Errorf("position %d atoms mismatch:\n train=%v\n infer=%v", i, trainInstances[i].Atoms, inferAtoms[i])
		}
	}
}

func atomMap(atoms []string) map[string]string {
	m := make(map[string]string, len(atoms))
	for _, a := range atoms {
		for i := 0; i < len(a); i++ {
			if a[i] == ':' {
				m[a[:i]] = a[i+1:]
				break
			}
		}
	}
	return m
}
