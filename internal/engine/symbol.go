// Package engine implements the rotating-symbol match-3 rules engine.
// It is UI-agnostic and deterministic: the host drives it with validated
// swap requests and elapsed-time deltas, and consumes the outcome events
// each operation returns.
package engine

// Category identifies one of the six symbol categories.
type Category uint8

const (
	Red Category = iota
	Blue
	Green
	Yellow
	Purple
	Orange
)

// NumCategories is the number of distinct symbol categories.
const NumCategories = 6

// AllCategories lists every category in canonical order.
var AllCategories = [NumCategories]Category{Red, Blue, Green, Yellow, Purple, Orange}

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Purple:
		return "purple"
	case Orange:
		return "orange"
	default:
		return "unknown"
	}
}

// ParseCategory converts a category name back to its value.
// Returns false if the name is not a known category.
func ParseCategory(name string) (Category, bool) {
	for _, c := range AllCategories {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// SpecialKind identifies the special-symbol tier a qualifying match produces.
type SpecialKind uint8

const (
	SpecialNone   SpecialKind = iota
	SpecialRow                // horizontal Line4: clears its full row
	SpecialColumn             // vertical Line4: clears its full column
	SpecialBurst              // L/T shape: clears a 3x3 block
	SpecialPrism              // Line5Plus: clears one category board-wide
)

// String returns a human-readable name for the special kind.
func (k SpecialKind) String() string {
	switch k {
	case SpecialNone:
		return "none"
	case SpecialRow:
		return "row"
	case SpecialColumn:
		return "column"
	case SpecialBurst:
		return "burst"
	case SpecialPrism:
		return "prism"
	default:
		return "unknown"
	}
}

// FaceCount is the number of faces every symbol cycles through.
const FaceCount = 4

// Symbol is a multi-faced board piece. Faces is assigned at spawn and
// immutable afterwards; RotationIndex selects the currently visible face.
type Symbol struct {
	Faces         [FaceCount]Category
	RotationIndex uint8
	Special       SpecialKind
}

// Effective returns the symbol's current category for matching purposes.
func (s Symbol) Effective() Category {
	return s.Faces[s.RotationIndex]
}

// Rotate advances the symbol to its next face.
func (s *Symbol) Rotate() {
	s.RotationIndex = (s.RotationIndex + 1) % FaceCount
}

// IsSpecial reports whether the symbol carries a special tier.
func (s Symbol) IsSpecial() bool {
	return s.Special != SpecialNone
}

// Matches reports whether two symbols currently show the same category.
func (s Symbol) Matches(other Symbol) bool {
	return s.Effective() == other.Effective()
}
