package engine

// Event is an outcome the board emits for the host's UI/audio/HUD layers.
// Each public operation returns the events it produced, in order; there is
// no event bus, which keeps outcomes deterministic and testable.
type Event interface {
	boardEvent()
}

// SymbolSelected is emitted when the host marks a cell as selected.
type SymbolSelected struct {
	Pos Pos
}

func (SymbolSelected) boardEvent() {}

// SymbolsSwapped is emitted when a swap is committed.
type SymbolsSwapped struct {
	A, B Pos
}

func (SymbolsSwapped) boardEvent() {}

// InvalidSwap is emitted for a non-adjacent or out-of-bounds swap request.
// This is a normal, expected outcome; the board state is unchanged.
type InvalidSwap struct {
	A, B Pos
}

func (InvalidSwap) boardEvent() {}

// SwapRejected is emitted when an adjacent swap yields no match touching
// either cell. The exchange was reverted within the same call.
type SwapRejected struct {
	A, B Pos
}

func (SwapRejected) boardEvent() {}

// MatchesFound is emitted once per resolve step with the step's match set.
type MatchesFound struct {
	Count  int
	Shapes []Shape
}

func (MatchesFound) boardEvent() {}

// ScoreChanged reports the new running score and the delta that produced it.
type ScoreChanged struct {
	Score int
	Delta int
}

func (ScoreChanged) boardEvent() {}

// RotationStarted is emitted when the global rotation fires.
type RotationStarted struct{}

func (RotationStarted) boardEvent() {}

// RotationCompleted is emitted after every symbol has advanced one face.
type RotationCompleted struct{}

func (RotationCompleted) boardEvent() {}

// SpecialSymbolCreated reports a special symbol placed at a match anchor.
type SpecialSymbolCreated struct {
	Pos  Pos
	Kind SpecialKind
}

func (SpecialSymbolCreated) boardEvent() {}

// SpecialSymbolActivated reports a consumed special and the extra cells its
// activation cleared.
type SpecialSymbolActivated struct {
	Pos      Pos
	Kind     SpecialKind
	Affected []Pos
}

func (SpecialSymbolActivated) boardEvent() {}
