package engine

import "fmt"

// Pos is a 2D grid coordinate. X increases to the right, Y downward.
type Pos struct {
	X, Y int
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Manhattan returns the Manhattan distance to another position.
func (p Pos) Manhattan(other Pos) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// IsAdjacent reports whether two positions are orthogonal neighbors.
func IsAdjacent(a, b Pos) bool {
	return a.Manhattan(b) == 1
}

// Cell is a tagged empty-or-occupied grid slot.
type Cell struct {
	Occupied bool
	Symbol   Symbol // valid only when Occupied
}

// Grid is fixed-size addressable storage of symbol slots.
// Cells are stored in row-major order: index = y*width + x.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates an empty grid with the given dimensions.
// Dimensions must be positive; the Board constructor validates them.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the grid width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height.
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(p Pos) int {
	return p.Y*g.width + p.X
}

// InBounds reports whether the position lies inside the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Get returns the symbol at p. The second result is false when p is out of
// bounds or the slot is empty, which keeps neighbor enumeration branch-free.
func (g *Grid) Get(p Pos) (Symbol, bool) {
	if !g.InBounds(p) {
		return Symbol{}, false
	}
	c := g.cells[g.index(p)]
	return c.Symbol, c.Occupied
}

// Set places a symbol at p. Out-of-bounds is a programming error:
// all callers are internal, so this panics rather than recovering.
func (g *Grid) Set(p Pos, s Symbol) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("engine: Set out of bounds at %s on %dx%d grid", p, g.width, g.height))
	}
	g.cells[g.index(p)] = Cell{Occupied: true, Symbol: s}
}

// ClearCell empties the slot at p. Panics on out-of-bounds, like Set.
func (g *Grid) ClearCell(p Pos) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("engine: ClearCell out of bounds at %s on %dx%d grid", p, g.width, g.height))
	}
	g.cells[g.index(p)] = Cell{}
}

// Swap exchanges the contents of two in-bounds slots.
func (g *Grid) Swap(a, b Pos) {
	ia, ib := g.index(a), g.index(b)
	g.cells[ia], g.cells[ib] = g.cells[ib], g.cells[ia]
}

// Neighbors returns the up to 4 orthogonally adjacent in-bounds positions.
// Matches are only horizontal/vertical, so diagonals are never neighbors.
func (g *Grid) Neighbors(p Pos) []Pos {
	candidates := [4]Pos{
		{X: p.X, Y: p.Y - 1},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
	}
	result := make([]Pos, 0, 4)
	for _, c := range candidates {
		if g.InBounds(c) {
			result = append(result, c)
		}
	}
	return result
}

// OccupiedCount returns the number of occupied slots.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, c := range g.cells {
		if c.Occupied {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether two grids have identical dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
