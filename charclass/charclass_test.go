package charclass

import "testing"

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Class
	}{
		{"hiragana", 'あ', Hiragana},
		{"katakana", 'ア', Katakana},
		{"half-width katakana", 'ｱ', Katakana},
		{"han", '漢', Han},
		{"latin lower", 'a', Latin},
		{"latin upper", 'A', Latin},
		{"digit ascii", '1', Digit},
		{"digit fullwidth", '１', Digit},
		{"other", '。', Other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Of(tt.r); got != tt.want {
				t.Errorf("Of(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestClassString(t *testing.T) {
	if Hiragana.String() != "H" {
		t.Errorf("Hiragana.String() = %q, want %q", Hiragana.String(), "H")
	}
	if Sentinel.String() != "U" {
		t.Errorf("Sentinel.String() = %q, want %q", Sentinel.String(), "U")
	}
}
