package engine

import "sort"

// Shape classifies a match's geometry, used to select special-symbol tiers.
type Shape uint8

const (
	Line3 Shape = iota
	Line4
	Line5Plus
	LShape
	TShape
)

// String returns a human-readable name for the shape.
func (s Shape) String() string {
	switch s {
	case Line3:
		return "line3"
	case Line4:
		return "line4"
	case Line5Plus:
		return "line5+"
	case LShape:
		return "L"
	case TShape:
		return "T"
	default:
		return "unknown"
	}
}

// Match is a maximal connected set of 3 or more cells sharing one effective
// category. Matches are ephemeral: produced for one grid snapshot and
// consumed immediately.
type Match struct {
	Category   Category
	Shape      Shape
	Positions  []Pos // sorted by (Y, X)
	Anchor     Pos   // first cell for lines, junction cell for L/T
	Horizontal bool  // orientation for line shapes; false for L/T
}

// Contains reports whether the match covers the given position.
func (m Match) Contains(p Pos) bool {
	for _, q := range m.Positions {
		if q == p {
			return true
		}
	}
	return false
}

// run is a provisional maximal same-category run in one orientation.
type run struct {
	category   Category
	horizontal bool
	positions  []Pos // in scan order: left-to-right or top-to-bottom
}

// FindMatches returns all maximal matches on the grid. Overlapping runs of
// the same category merge into one composite match; runs of different
// categories stay separate. The result is deterministic for a fixed grid.
func FindMatches(g *Grid) []Match {
	runs := scanRuns(g)
	if len(runs) == 0 {
		return nil
	}
	groups := mergeRuns(runs)

	matches := make([]Match, 0, len(groups))
	for _, grp := range groups {
		matches = append(matches, classify(grp))
	}
	return matches
}

// scanRuns collects maximal runs of length >= 3, rows first, then columns.
func scanRuns(g *Grid) []run {
	var runs []run

	for y := 0; y < g.Height(); y++ {
		x := 0
		for x < g.Width() {
			sym, ok := g.Get(P(x, y))
			if !ok {
				x++
				continue
			}
			cat := sym.Effective()
			length := 1
			for {
				next, ok := g.Get(P(x+length, y))
				if !ok || next.Effective() != cat {
					break
				}
				length++
			}
			if length >= 3 {
				r := run{category: cat, horizontal: true}
				for i := 0; i < length; i++ {
					r.positions = append(r.positions, P(x+i, y))
				}
				runs = append(runs, r)
			}
			x += length
		}
	}

	for x := 0; x < g.Width(); x++ {
		y := 0
		for y < g.Height() {
			sym, ok := g.Get(P(x, y))
			if !ok {
				y++
				continue
			}
			cat := sym.Effective()
			length := 1
			for {
				next, ok := g.Get(P(x, y+length))
				if !ok || next.Effective() != cat {
					break
				}
				length++
			}
			if length >= 3 {
				r := run{category: cat, horizontal: false}
				for i := 0; i < length; i++ {
					r.positions = append(r.positions, P(x, y+i))
				}
				runs = append(runs, r)
			}
			y += length
		}
	}

	return runs
}

// mergeRuns unions runs of the same category that share at least one cell.
// Runs are processed in scan order so group composition is deterministic.
func mergeRuns(runs []run) [][]run {
	parent := make([]int, len(runs))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			if ra < rb {
				parent[rb] = ra
			} else {
				parent[ra] = rb
			}
		}
	}

	// Index cell occupancy per run to detect shared cells.
	type key struct {
		p   Pos
		cat Category
	}
	seen := make(map[key]int)
	for i, r := range runs {
		for _, p := range r.positions {
			k := key{p: p, cat: r.category}
			if j, ok := seen[k]; ok {
				union(i, j)
			} else {
				seen[k] = i
			}
		}
	}

	grouped := make(map[int][]run)
	var order []int
	for i, r := range runs {
		root := find(i)
		if _, ok := grouped[root]; !ok {
			order = append(order, root)
		}
		grouped[root] = append(grouped[root], r)
	}

	result := make([][]run, 0, len(order))
	for _, root := range order {
		result = append(result, grouped[root])
	}
	return result
}

// classify derives the composite match for one merged run group.
func classify(group []run) Match {
	posSet := make(map[Pos]struct{})
	hasH, hasV := false, false
	for _, r := range group {
		if r.horizontal {
			hasH = true
		} else {
			hasV = true
		}
		for _, p := range r.positions {
			posSet[p] = struct{}{}
		}
	}

	positions := make([]Pos, 0, len(posSet))
	for p := range posSet {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})

	m := Match{
		Category:  group[0].category,
		Positions: positions,
	}

	if !hasH || !hasV {
		// Pure single-orientation run. Maximal runs in the same row or
		// column never overlap, so the group is exactly one run.
		r := group[0]
		m.Horizontal = r.horizontal
		m.Anchor = r.positions[0]
		switch {
		case len(positions) == 3:
			m.Shape = Line3
		case len(positions) == 4:
			m.Shape = Line4
		default:
			m.Shape = Line5Plus
		}
		return m
	}

	junction, interior := findJunction(group)
	m.Anchor = junction
	if interior {
		m.Shape = TShape
	} else {
		m.Shape = LShape
	}
	return m
}

// findJunction locates the first cell shared between a horizontal and a
// vertical run of the group, and reports whether that cell sits strictly
// inside at least one arm (the T classification rule). When it is an
// arm-end on every arm the shape is an L.
func findJunction(group []run) (Pos, bool) {
	for _, h := range group {
		if !h.horizontal {
			continue
		}
		for _, v := range group {
			if v.horizontal {
				continue
			}
			for _, hp := range h.positions {
				for _, vp := range v.positions {
					if hp != vp {
						continue
					}
					interior := isInterior(h, hp) || isInterior(v, vp)
					return hp, interior
				}
			}
		}
	}
	// Unreachable for a mixed-orientation group; merged runs always share
	// a cell. Fall back to the first cell of the first run.
	return group[0].positions[0], false
}

// isInterior reports whether p has run cells on both of its sides within r.
func isInterior(r run, p Pos) bool {
	return r.positions[0] != p && r.positions[len(r.positions)-1] != p
}

// MatchedPositions returns the deduplicated union of all matched cells.
func MatchedPositions(matches []Match) []Pos {
	seen := make(map[Pos]struct{})
	var positions []Pos
	for _, m := range matches {
		for _, p := range m.Positions {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			positions = append(positions, p)
		}
	}
	return positions
}

// anyTouches reports whether any match covers one of the given positions.
func anyTouches(matches []Match, a, b Pos) bool {
	for _, m := range matches {
		if m.Contains(a) || m.Contains(b) {
			return true
		}
	}
	return false
}
