package engine

import "math/rand"

// Spawner creates symbols from an injected seeded randomness source.
// The engine never constructs its own unseeded source, so cascades and
// refills are reproducible from the configuration seed.
type Spawner struct {
	rng        *rand.Rand
	categories []Category
	weights    []int // parallel to categories; all 1 when unweighted
	totalW     int
}

// NewSpawner creates a spawner over the given categories.
// weights may be nil for uniform spawning; otherwise it must be parallel to
// categories with positive entries (validated by the Board constructor).
func NewSpawner(rng *rand.Rand, categories []Category, weights []int) *Spawner {
	s := &Spawner{
		rng:        rng,
		categories: append([]Category(nil), categories...),
	}
	if weights == nil {
		weights = make([]int, len(categories))
		for i := range weights {
			weights[i] = 1
		}
	}
	s.weights = append([]int(nil), weights...)
	for _, w := range s.weights {
		s.totalW += w
	}
	return s
}

// Reseed replaces the randomness source, used by Board.Reset.
func (s *Spawner) Reseed(rng *rand.Rand) {
	s.rng = rng
}

// pickCategory draws a weighted random category.
func (s *Spawner) pickCategory() Category {
	n := s.rng.Intn(s.totalW)
	for i, w := range s.weights {
		n -= w
		if n < 0 {
			return s.categories[i]
		}
	}
	return s.categories[len(s.categories)-1]
}

// faceCycle returns the fixed 4-face rotation cycle for a spawn category.
// Each category steps through the configured category list from its own
// offset, so a global rotation shifts the whole board pattern coherently.
func (s *Spawner) faceCycle(spawn Category) [FaceCount]Category {
	start := 0
	for i, c := range s.categories {
		if c == spawn {
			start = i
			break
		}
	}
	var faces [FaceCount]Category
	for i := range faces {
		faces[i] = s.categories[(start+i)%len(s.categories)]
	}
	return faces
}

// Spawn creates a fresh ordinary symbol showing a weighted random category.
func (s *Spawner) Spawn() Symbol {
	return s.SpawnCategory(s.pickCategory())
}

// SpawnCategory creates a fresh ordinary symbol showing the given category.
func (s *Spawner) SpawnCategory(c Category) Symbol {
	return Symbol{Faces: s.faceCycle(c)}
}

// fillAttempts bounds the per-cell redraws when avoiding initial matches.
const fillAttempts = 10

// Fill populates every slot of the grid, redrawing a cell's category when it
// would complete a horizontal or vertical 3-run. A bounded number of redraws
// keeps the fill total even for degenerate category sets; a leftover run is
// resolved by the Board's initial match pass.
func (s *Spawner) Fill(g *Grid) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := s.pickCategory()
			for attempt := 0; attempt < fillAttempts; attempt++ {
				if !s.wouldRun(g, x, y, c) {
					break
				}
				c = s.pickCategory()
			}
			g.Set(P(x, y), s.SpawnCategory(c))
		}
	}
}

// wouldRun reports whether placing category c at (x,y) completes a 3-run
// with the two cells to its left or the two above it.
func (s *Spawner) wouldRun(g *Grid, x, y int, c Category) bool {
	left1, ok1 := g.Get(P(x-1, y))
	left2, ok2 := g.Get(P(x-2, y))
	if ok1 && ok2 && left1.Effective() == c && left2.Effective() == c {
		return true
	}
	up1, ok1 := g.Get(P(x, y-1))
	up2, ok2 := g.Get(P(x, y-2))
	return ok1 && ok2 && up1.Effective() == c && up2.Effective() == c
}
