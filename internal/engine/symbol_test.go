package engine

import "testing"

func TestSymbolRotateCyclesFaces(t *testing.T) {
	s := cycleSymbol(Red)
	seen := make([]Category, 0, FaceCount+1)
	for i := 0; i <= FaceCount; i++ {
		seen = append(seen, s.Effective())
		s.Rotate()
	}
	want := []Category{Red, Blue, Green, Yellow, Red}
	for i, c := range want {
		if seen[i] != c {
			t.Errorf("rotation step %d shows %s, want %s", i, seen[i], c)
		}
	}
}

func TestSymbolMatchesOnEffectiveFace(t *testing.T) {
	a := cycleSymbol(Red)
	b := cycleSymbol(Orange)
	if a.Matches(b) {
		t.Error("red and orange faces should not match")
	}
	// orange cycle wraps: orange, red, blue, green.
	b.RotationIndex = 1
	if !a.Matches(b) {
		t.Error("both symbols now show red and should match")
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range AllCategories {
		got, ok := ParseCategory(c.String())
		if !ok || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if _, ok := ParseCategory("magenta"); ok {
		t.Error("unknown category name should not parse")
	}
}

func TestSpecialKindString(t *testing.T) {
	kinds := []SpecialKind{SpecialNone, SpecialRow, SpecialColumn, SpecialBurst, SpecialPrism}
	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.String()
		if s == "" || seen[s] {
			t.Errorf("kind %d has empty or duplicate name %q", k, s)
		}
		seen[s] = true
	}
}
