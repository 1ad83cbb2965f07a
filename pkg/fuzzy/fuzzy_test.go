package fuzzy

import (
	"testing"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"identical", "korobka", "korobka", 0},
		{"identical cyrillic", "коробка", "коробка", 0},
		{"case insensitive", "Коробка", "коробка", 0},
		{"single substitution", "kitten", "sitten", 1},
		{"classic kitten sitting", "kitten", "sitting", 3},
		{"empty vs word", "", "box", 3},
		{"word vs empty", "box", "", 3},
		{"both empty", "", "", 0},
		{"cyrillic counts runes not bytes", "стакан", "стаканы", 1},
		{"typo in cyrillic", "кароб", "короб", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EditDistance(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("EditDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEditDistanceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"коробка", "каробка"},
		{"стакан", "пакет"},
		{"BOX-001", "BOX-002"},
		{"", "пленка"},
	}

	for _, p := range pairs {
		ab := EditDistance(p[0], p[1])
		ba := EditDistance(p[1], p[0])
		if ab != ba {
			t.Errorf("EditDistance(%q, %q) = %d but reversed = %d", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "короб", "короб", 1},
		{"both empty", "", "", 1},
		{"one empty", "короб", "", 0},
		{"one typo in five runes", "короб", "кароб", 0.8},
		{"completely different", "abc", "xyz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMatchSubstringShortCircuits(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		search string
	}{
		{"short query in long name", "Гофрокороб 300x200x200 мм", "короб"},
		{"case insensitive substring", "Пластиковый контейнер 500 мл", "КОНТЕЙНЕР"},
		{"sku prefix", "BOX-001", "box"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.text, tt.search, DefaultThreshold)
			if !got.Matches {
				t.Errorf("Match(%q, %q) should match", tt.text, tt.search)
			}
			if got.Score != 1 {
				t.Errorf("Match(%q, %q).Score = %v, want 1 (substring hit)", tt.text, tt.search, got.Score)
			}
		})
	}
}

func TestMatchPerWordScoring(t *testing.T) {
	// "кароб" is not a substring of the name, but it is one typo away from the
	// word "короб" inside it; the per-word pass must rescue it from the low
	// whole-string similarity.
	got := Match("Гофро короб усиленный", "кароб", DefaultThreshold)
	if !got.Matches {
		t.Errorf("misspelled word should still match, score = %v", got.Score)
	}
	if !almostEqual(got.Score, 0.8) {
		t.Errorf("Score = %v, want 0.8 (best per-word similarity)", got.Score)
	}
}

func TestMatchThresholdBoundary(t *testing.T) {
	// "abc" vs "xyz" scores exactly 0 and must not match.
	if got := Match("abc", "xyz", DefaultThreshold); got.Matches {
		t.Errorf("disjoint strings matched with score %v", got.Score)
	}

	// A score exactly at the threshold counts as a match.
	// "abcd" vs "abxy" -> 1 - 2/4 = 0.5, exact in binary.
	if got := Match("abcd", "abxy", 0.5); !got.Matches {
		t.Errorf("score at threshold should match, got %v", got.Score)
	}
	if got := Match("abcd", "abxy", 0.51); got.Matches {
		t.Errorf("score below threshold should not match, got %v", got.Score)
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
