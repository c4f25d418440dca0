package engine

// CellSnapshot captures one grid slot for determinism tests and the host.
type CellSnapshot struct {
	Occupied      bool
	Category      Category // effective category when occupied
	RotationIndex uint8
	Special       SpecialKind
}

// Snapshot captures the complete board state at a point in time. Two boards
// started from the same configuration and driven with the same inputs must
// produce identical snapshots.
type Snapshot struct {
	Width           int
	Height          int
	State           State
	Score           int
	Combo           int
	RotationElapsed float64
	Cells           []CellSnapshot // row-major, y*Width+x
	Stats           Stats
}

// Snapshot returns the current board snapshot.
func (b *Board) Snapshot() Snapshot {
	cells := make([]CellSnapshot, b.grid.Width()*b.grid.Height())
	for y := 0; y < b.grid.Height(); y++ {
		for x := 0; x < b.grid.Width(); x++ {
			if sym, ok := b.grid.Get(P(x, y)); ok {
				cells[y*b.grid.Width()+x] = CellSnapshot{
					Occupied:      true,
					Category:      sym.Effective(),
					RotationIndex: sym.RotationIndex,
					Special:       sym.Special,
				}
			}
		}
	}
	return Snapshot{
		Width:           b.grid.Width(),
		Height:          b.grid.Height(),
		State:           b.state,
		Score:           b.score.Score(),
		Combo:           b.score.Combo(),
		RotationElapsed: b.rotation.Elapsed(),
		Cells:           cells,
		Stats:           b.stats,
	}
}

// Equal reports whether two snapshots are identical.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Width != other.Width || s.Height != other.Height ||
		s.State != other.State || s.Score != other.Score ||
		s.Combo != other.Combo || s.RotationElapsed != other.RotationElapsed ||
		s.Stats != other.Stats || len(s.Cells) != len(other.Cells) {
		return false
	}
	for i, c := range s.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}
