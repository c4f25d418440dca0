package engine

import (
	"fmt"
	"math/rand"
)

// State names the board state machine's phases. Every public operation runs
// to completion within the call, so the machine is back in StateIdle between
// calls; the intermediate states exist for snapshots and event ordering.
type State uint8

const (
	StateIdle State = iota
	StateAwaitingSwapValidation
	StateResolving
	StateCascading
	StateRotationPending
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingSwapValidation:
		return "awaiting_swap_validation"
	case StateResolving:
		return "resolving"
	case StateCascading:
		return "cascading"
	case StateRotationPending:
		return "rotation_pending"
	default:
		return "unknown"
	}
}

// maxCascadeIterations is the safety cap on cascade chain length. Boards of
// the supported sizes settle in a handful of steps; reaching the cap means a
// bug in clear/gravity/refill, not legitimate gameplay, so the board panics.
const maxCascadeIterations = 50

// Config is the board's session setup, validated by New.
type Config struct {
	Width            int
	Height           int
	RotationInterval float64 // seconds between global rotations, > 0
	Categories       []Category
	Weights          []int       // optional spawn weights, parallel to Categories
	BaseScores       map[int]int // optional per-level base score overrides
	Seed             int64
}

// validate reports the first configuration error, before any grid exists.
func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("engine: board dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.RotationInterval <= 0 {
		return fmt.Errorf("engine: rotation interval must be positive, got %v", c.RotationInterval)
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("engine: category set must not be empty")
	}
	if c.Weights != nil {
		if len(c.Weights) != len(c.Categories) {
			return fmt.Errorf("engine: %d weights for %d categories", len(c.Weights), len(c.Categories))
		}
		for i, w := range c.Weights {
			if w <= 0 {
				return fmt.Errorf("engine: weight for %s must be positive, got %d", c.Categories[i], w)
			}
		}
	}
	return nil
}

// Stats tracks per-session gameplay counters for the host's HUD and storage.
type Stats struct {
	Turns     int // committed player swaps
	Cascades  int // cascade steps beyond the initial match of a chain
	Rotations int // global rotations applied
	MaxCombo  int // highest combo multiplier reached
}

// Board is the orchestrating state machine. It owns a Grid, a
// RotationManager, a ScoreManager and a Spawner, and sequences
// swap -> match -> clear -> gravity -> refill -> cascade -> rotation.
type Board struct {
	cfg      Config
	grid     *Grid
	spawner  *Spawner
	rotation *RotationManager
	score    *ScoreManager
	state    State
	stats    Stats
}

// New validates the configuration and builds a fully populated board with no
// pre-existing matches.
func New(cfg Config) (*Board, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	b := &Board{
		cfg:      cfg,
		grid:     NewGrid(cfg.Width, cfg.Height),
		spawner:  NewSpawner(rng, cfg.Categories, cfg.Weights),
		rotation: NewRotationManager(cfg.RotationInterval),
		score:    NewScoreManager(cfg.BaseScores),
		state:    StateIdle,
	}
	b.populate()
	return b, nil
}

// populate fills the grid and scrubs any residual initial matches without
// scoring them, so sessions always start from a settled board.
func (b *Board) populate() {
	b.spawner.Fill(b.grid)
	for i := 0; i < maxCascadeIterations; i++ {
		matches := FindMatches(b.grid)
		if len(matches) == 0 {
			return
		}
		for _, p := range MatchedPositions(matches) {
			b.grid.Set(p, b.spawner.Spawn())
		}
	}
}

// Reset starts a new session with a fresh seed. Valid only from StateIdle;
// calling it mid-resolution is a host contract violation and panics.
func (b *Board) Reset(seed int64) error {
	if b.state != StateIdle {
		panic(fmt.Sprintf("engine: Reset while %s", b.state))
	}
	b.spawner.Reseed(rand.New(rand.NewSource(seed)))
	b.rotation.Reset()
	b.score.Reset()
	b.stats = Stats{}
	b.grid = NewGrid(b.cfg.Width, b.cfg.Height)
	b.populate()
	return nil
}

// Select validates a cell selection and reports it as an event.
// Out-of-bounds selections are silently ignored.
func (b *Board) Select(p Pos) []Event {
	if !b.grid.InBounds(p) {
		return nil
	}
	return []Event{SymbolSelected{Pos: p}}
}

// RequestSwap attempts to exchange two adjacent symbols. A non-adjacent or
// out-of-bounds request yields InvalidSwap; an adjacent exchange producing no
// match touching either cell is reverted within this call and yields
// SwapRejected. A matching swap commits and resolves any cascades before
// returning.
func (b *Board) RequestSwap(a, c Pos) []Event {
	if !b.grid.InBounds(a) || !b.grid.InBounds(c) || !IsAdjacent(a, c) {
		return []Event{InvalidSwap{A: a, B: c}}
	}

	b.state = StateAwaitingSwapValidation
	b.grid.Swap(a, c)
	matches := FindMatches(b.grid)
	if !anyTouches(matches, a, c) {
		b.grid.Swap(a, c)
		b.state = StateIdle
		return []Event{SwapRejected{A: a, B: c}}
	}

	b.stats.Turns++
	events := []Event{SymbolsSwapped{A: a, B: c}}
	events = b.resolve(matches, events)
	b.state = StateIdle
	return events
}

// AdvanceTime feeds the externally supplied elapsed-time delta to the
// rotation schedule. When the rotation fires, every symbol advances one face
// simultaneously and the board re-runs match detection exactly once, feeding
// any rotation-induced matches through the normal resolve pipeline.
func (b *Board) AdvanceTime(delta float64) []Event {
	if delta < 0 {
		delta = 0
	}
	b.score.AdvanceTime(delta)
	if !b.rotation.Advance(delta) {
		return nil
	}

	b.state = StateRotationPending
	events := []Event{RotationStarted{}}
	b.rotateAll()
	b.score.NoteRotation()
	b.stats.Rotations++
	events = append(events, RotationCompleted{})

	if matches := FindMatches(b.grid); len(matches) > 0 {
		events = b.resolve(matches, events)
	}
	b.state = StateIdle
	return events
}

// rotateAll advances every occupied cell's rotation index by one, as a
// single atomic board-wide step.
func (b *Board) rotateAll() {
	for y := 0; y < b.grid.Height(); y++ {
		for x := 0; x < b.grid.Width(); x++ {
			p := P(x, y)
			if sym, ok := b.grid.Get(p); ok {
				sym.Rotate()
				b.grid.Set(p, sym)
			}
		}
	}
}

// anchorPlacement records a special symbol due at a match anchor.
type anchorPlacement struct {
	pos  Pos
	kind SpecialKind
}

// resolve drives the clear -> gravity -> refill -> re-match loop until the
// board settles. The combo multiplier increments per non-empty re-match and
// resets to 1 when the chain ends.
func (b *Board) resolve(matches []Match, events []Event) []Event {
	b.state = StateResolving

	for iteration := 0; ; iteration++ {
		if iteration >= maxCascadeIterations {
			panic(fmt.Sprintf("engine: cascade exceeded %d iterations", maxCascadeIterations))
		}

		shapes := make([]Shape, len(matches))
		for i, m := range matches {
			shapes[i] = m.Shape
		}
		events = append(events, MatchesFound{Count: len(matches), Shapes: shapes})

		scoreBefore := b.score.Score()

		// Qualifying matches convert their anchor cell into a special
		// symbol instead of clearing it.
		var anchors []anchorPlacement
		anchorSet := make(map[Pos]struct{})
		for _, m := range matches {
			if kind := specialFor(m); kind != SpecialNone {
				anchors = append(anchors, anchorPlacement{pos: m.Anchor, kind: kind})
				anchorSet[m.Anchor] = struct{}{}
			}
		}

		// Score each match and collect the clear set, expanding special
		// activations recursively.
		cleared := make(map[Pos]struct{})
		var clearOrder []Pos
		var activations []SpecialSymbolActivated
		for _, m := range matches {
			b.score.ApplyMatch(len(m.Positions), false)
			for _, p := range m.Positions {
				b.expandClear(p, anchorSet, cleared, &clearOrder, &activations)
			}
		}

		for _, a := range anchors {
			sym, ok := b.grid.Get(a.pos)
			if !ok {
				// Anchor emptied by a competing clear this step; respawn
				// the special instead of losing it.
				sym = b.spawner.Spawn()
			}
			sym.Special = a.kind
			b.grid.Set(a.pos, sym)
			events = append(events, SpecialSymbolCreated{Pos: a.pos, Kind: a.kind})
		}

		for _, p := range clearOrder {
			b.grid.ClearCell(p)
		}
		for _, act := range activations {
			events = append(events, act)
		}

		b.state = StateCascading
		b.applyGravity()
		b.refill()

		events = append(events, ScoreChanged{
			Score: b.score.Score(),
			Delta: b.score.Score() - scoreBefore,
		})

		matches = FindMatches(b.grid)
		if len(matches) == 0 {
			b.score.ResetCombo()
			return events
		}
		b.score.IncrementCombo()
		if b.score.Combo() > b.stats.MaxCombo {
			b.stats.MaxCombo = b.score.Combo()
		}
		b.stats.Cascades++
		b.state = StateResolving
	}
}

// expandClear adds p to the clear set. When p holds a special symbol its
// activation area joins the set recursively; the visited set guarantees
// termination even for mutually triggering specials. Anchor cells being
// converted this step are never cleared.
func (b *Board) expandClear(p Pos, anchors, cleared map[Pos]struct{}, order *[]Pos, activations *[]SpecialSymbolActivated) {
	if _, isAnchor := anchors[p]; isAnchor {
		return
	}
	if _, done := cleared[p]; done {
		return
	}
	sym, ok := b.grid.Get(p)
	if !ok {
		return
	}
	cleared[p] = struct{}{}
	*order = append(*order, p)

	if !sym.IsSpecial() {
		return
	}

	affected := b.activationArea(p, sym)
	*activations = append(*activations, SpecialSymbolActivated{
		Pos:      p,
		Kind:     sym.Special,
		Affected: affected,
	})
	// The activation is scored as its own event, sized by the area it
	// clears, with the points for that event doubled.
	b.score.ApplyMatch(len(affected)+1, true)
	for _, q := range affected {
		b.expandClear(q, anchors, cleared, order, activations)
	}
}

// activationArea returns the cells a special clears beyond its own, in scan
// order for determinism.
func (b *Board) activationArea(p Pos, sym Symbol) []Pos {
	var area []Pos
	switch sym.Special {
	case SpecialRow:
		for x := 0; x < b.grid.Width(); x++ {
			q := P(x, p.Y)
			if _, ok := b.grid.Get(q); ok && q != p {
				area = append(area, q)
			}
		}
	case SpecialColumn:
		for y := 0; y < b.grid.Height(); y++ {
			q := P(p.X, y)
			if _, ok := b.grid.Get(q); ok && q != p {
				area = append(area, q)
			}
		}
	case SpecialBurst:
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				q := P(p.X+dx, p.Y+dy)
				if _, ok := b.grid.Get(q); ok && q != p {
					area = append(area, q)
				}
			}
		}
	case SpecialPrism:
		target := sym.Effective()
		for y := 0; y < b.grid.Height(); y++ {
			for x := 0; x < b.grid.Width(); x++ {
				q := P(x, y)
				if other, ok := b.grid.Get(q); ok && q != p && other.Effective() == target {
					area = append(area, q)
				}
			}
		}
	}
	return area
}

// specialFor maps a match shape to the special tier it produces.
func specialFor(m Match) SpecialKind {
	switch m.Shape {
	case Line4:
		if m.Horizontal {
			return SpecialRow
		}
		return SpecialColumn
	case Line5Plus:
		return SpecialPrism
	case LShape, TShape:
		return SpecialBurst
	default:
		return SpecialNone
	}
}

// applyGravity compacts each column downward, preserving the relative order
// of surviving symbols. A falling symbol changes position, never face state.
func (b *Board) applyGravity() {
	for x := 0; x < b.grid.Width(); x++ {
		write := b.grid.Height() - 1
		for y := b.grid.Height() - 1; y >= 0; y-- {
			p := P(x, y)
			if sym, ok := b.grid.Get(p); ok {
				if y != write {
					b.grid.Set(P(x, write), sym)
					b.grid.ClearCell(p)
				}
				write--
			}
		}
	}
}

// refill spawns fresh symbols into the empty cells left above the settled
// columns, restoring full occupancy.
func (b *Board) refill() {
	for x := 0; x < b.grid.Width(); x++ {
		for y := 0; y < b.grid.Height(); y++ {
			p := P(x, y)
			if _, ok := b.grid.Get(p); !ok {
				b.grid.Set(p, b.spawner.Spawn())
			}
		}
	}
}

// SetRotationInterval changes the rotation interval mid-session without
// resetting the accumulated time (per-level reconfiguration).
func (b *Board) SetRotationInterval(interval float64) {
	b.rotation.SetInterval(interval)
}

// Score returns the running score.
func (b *Board) Score() int { return b.score.Score() }

// Combo returns the current combo multiplier.
func (b *Board) Combo() int { return b.score.Combo() }

// RotationRemaining returns seconds until the next scheduled rotation.
func (b *Board) RotationRemaining() float64 { return b.rotation.Remaining() }

// Stats returns the session counters.
func (b *Board) Stats() Stats { return b.stats }

// State returns the machine's current phase (StateIdle between calls).
func (b *Board) State() State { return b.state }

// Width returns the board width.
func (b *Board) Width() int { return b.grid.Width() }

// Height returns the board height.
func (b *Board) Height() int { return b.grid.Height() }

// At returns the symbol at p, if occupied.
func (b *Board) At(p Pos) (Symbol, bool) { return b.grid.Get(p) }
