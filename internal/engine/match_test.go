package engine

import "testing"

// fillNoise populates every empty cell of g with a checkerboard of two
// categories, which can never form a 3-run. Callers pick categories distinct
// from their hand-placed cells so the noise cannot extend a run.
func fillNoise(g *Grid, a, b Category) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := P(x, y)
			if _, ok := g.Get(p); !ok {
				if (x+y)%2 == 0 {
					g.Set(p, fixedSymbol(a))
				} else {
					g.Set(p, fixedSymbol(b))
				}
			}
		}
	}
}

func TestFindMatchesEmptyBoard(t *testing.T) {
	g := NewGrid(8, 8)
	if m := FindMatches(g); len(m) != 0 {
		t.Errorf("empty grid should have no matches, got %d", len(m))
	}
}

func TestFindMatchesLine4Exhaustive(t *testing.T) {
	g := NewGrid(8, 8)
	for i := 0; i < 4; i++ {
		g.Set(P(2+i, 3), fixedSymbol(Purple))
	}
	fillNoise(g, Red, Blue)

	matches := FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected exactly 1 match, got %d", len(matches))
	}

	m := matches[0]
	if m.Shape != Line4 {
		t.Errorf("expected Line4, got %s", m.Shape)
	}
	if m.Category != Purple {
		t.Errorf("expected purple, got %s", m.Category)
	}
	if len(m.Positions) != 4 {
		t.Fatalf("expected 4 positions, got %d", len(m.Positions))
	}
	for i := 0; i < 4; i++ {
		if !m.Contains(P(2+i, 3)) {
			t.Errorf("match should cover (%d,3)", 2+i)
		}
	}
	if !m.Horizontal {
		t.Error("match should be horizontal")
	}
	if m.Anchor != P(2, 3) {
		t.Errorf("line anchor should be first cell (2,3), got %s", m.Anchor)
	}
}

func TestFindMatchesVerticalLine3(t *testing.T) {
	g := NewGrid(5, 5)
	for i := 0; i < 3; i++ {
		g.Set(P(1, 1+i), fixedSymbol(Orange))
	}
	fillNoise(g, Red, Blue)

	matches := FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Shape != Line3 || matches[0].Horizontal {
		t.Errorf("expected vertical Line3, got %s horizontal=%v", matches[0].Shape, matches[0].Horizontal)
	}
}

func TestFindMatchesLShapeMerge(t *testing.T) {
	// Horizontal 3-run at row 0 and vertical 3-run at column 0 sharing the
	// corner (0,0). Must merge into a single LShape, not two Line3s.
	g := NewGrid(6, 6)
	for i := 0; i < 3; i++ {
		g.Set(P(i, 0), fixedSymbol(Green))
		g.Set(P(0, i), fixedSymbol(Green))
	}
	fillNoise(g, Red, Blue)

	matches := FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected L-runs to merge into 1 match, got %d", len(matches))
	}

	m := matches[0]
	if m.Shape != LShape {
		t.Errorf("expected LShape, got %s", m.Shape)
	}
	if len(m.Positions) != 5 {
		t.Errorf("expected 5 cells in union, got %d", len(m.Positions))
	}
	if m.Anchor != P(0, 0) {
		t.Errorf("L anchor should be the junction (0,0), got %s", m.Anchor)
	}
}

func TestFindMatchesTShape(t *testing.T) {
	// Horizontal 3-run at row 0 with a vertical run descending from its
	// middle cell: junction (1,0) is interior to the horizontal arm.
	g := NewGrid(6, 6)
	for i := 0; i < 3; i++ {
		g.Set(P(i, 0), fixedSymbol(Blue))
		g.Set(P(1, i), fixedSymbol(Blue))
	}
	fillNoise(g, Red, Green)

	matches := FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected 1 merged match, got %d", len(matches))
	}
	if matches[0].Shape != TShape {
		t.Errorf("expected TShape for interior junction, got %s", matches[0].Shape)
	}
	if matches[0].Anchor != P(1, 0) {
		t.Errorf("T anchor should be the junction (1,0), got %s", matches[0].Anchor)
	}
}

func TestFindMatchesDifferentCategoriesStaySeparate(t *testing.T) {
	// Touching runs of different categories must not merge.
	g := NewGrid(6, 6)
	for i := 0; i < 3; i++ {
		g.Set(P(i, 2), fixedSymbol(Red))
		g.Set(P(3+i, 2), fixedSymbol(Blue))
	}
	fillNoise(g, Green, Yellow)

	matches := FindMatches(g)
	if len(matches) != 2 {
		t.Fatalf("expected 2 separate matches, got %d", len(matches))
	}
	for _, m := range matches {
		if m.Shape != Line3 {
			t.Errorf("expected Line3, got %s", m.Shape)
		}
	}
}

func TestFindMatchesLine5Plus(t *testing.T) {
	g := NewGrid(7, 3)
	for i := 0; i < 5; i++ {
		g.Set(P(1+i, 1), fixedSymbol(Yellow))
	}
	fillNoise(g, Red, Blue)

	matches := FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Shape != Line5Plus {
		t.Errorf("expected Line5Plus, got %s", matches[0].Shape)
	}
}

func TestFindMatchesRespectsRotation(t *testing.T) {
	// Three symbols whose visible faces only align after one rotation.
	g := NewGrid(5, 5)
	for i := 0; i < 3; i++ {
		s := cycleSymbol(Category(i)) // red, blue, green cycles
		g.Set(P(i, 0), s)
	}
	fillNoise(g, Yellow, Purple)

	if m := FindMatches(g); len(m) != 0 {
		t.Fatalf("distinct faces should not match, got %d matches", len(m))
	}

	// Rotate the three cells so they all show the same category:
	// red cycle face1=blue, blue cycle face0=blue... craft directly.
	a := cycleSymbol(Red)
	a.RotationIndex = 1 // shows blue
	b := cycleSymbol(Blue)
	b.RotationIndex = 0 // shows blue
	c := cycleSymbol(Orange)
	c.RotationIndex = 2 // orange cycle: orange, red, blue -> shows blue
	g.Set(P(0, 0), a)
	g.Set(P(1, 0), b)
	g.Set(P(2, 0), c)

	matches := FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("effective categories should match, got %d matches", len(matches))
	}
	if matches[0].Category != Blue {
		t.Errorf("expected blue match, got %s", matches[0].Category)
	}
}

func TestFindMatchesDeterministic(t *testing.T) {
	g := NewGrid(8, 8)
	for i := 0; i < 3; i++ {
		g.Set(P(i, 0), fixedSymbol(Green))
		g.Set(P(5, 2+i), fixedSymbol(Purple))
	}
	fillNoise(g, Red, Blue)

	first := FindMatches(g)
	for trial := 0; trial < 20; trial++ {
		again := FindMatches(g)
		if len(again) != len(first) {
			t.Fatalf("match count changed between runs: %d vs %d", len(again), len(first))
		}
		for i := range first {
			if first[i].Shape != again[i].Shape || first[i].Category != again[i].Category ||
				first[i].Anchor != again[i].Anchor || len(first[i].Positions) != len(again[i].Positions) {
				t.Fatalf("match %d differs between runs", i)
			}
			for j := range first[i].Positions {
				if first[i].Positions[j] != again[i].Positions[j] {
					t.Fatalf("position order differs between runs")
				}
			}
		}
	}
}

func TestMatchedPositionsDeduplicates(t *testing.T) {
	shared := P(1, 1)
	matches := []Match{
		{Positions: []Pos{P(0, 1), shared, P(2, 1)}},
		{Positions: []Pos{shared, P(1, 2), P(1, 3)}},
	}
	positions := MatchedPositions(matches)
	if len(positions) != 5 {
		t.Errorf("expected 5 unique positions, got %d", len(positions))
	}
}
