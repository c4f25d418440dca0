package engine

import "math"

// Default base score table, keyed by match size. Kept as an explicit table
// rather than a formula so levels can override individual entries.
var defaultBaseScores = map[int]int{
	3: 50,
	4: 100,
	5: 200,
	6: 400, // applies to every size >= 6
}

// MaxCombo caps the cascade combo multiplier.
const MaxCombo = 10

// rotationBonusWindow is the post-rotation window, in seconds, during which
// resolved matches earn the proximity bonus.
const rotationBonusWindow = 1.0

// ScoreManager accumulates the running score and tracks the cascade combo
// multiplier and rotation-proximity timing. Score only ever increases.
type ScoreManager struct {
	score         int
	combo         int
	base          map[int]int
	sinceRotation float64 // seconds since the last rotation trigger
}

// NewScoreManager creates a manager with the given base-score overrides.
// Entries missing from overrides fall back to the default table.
func NewScoreManager(overrides map[int]int) *ScoreManager {
	base := make(map[int]int, len(defaultBaseScores))
	for k, v := range defaultBaseScores {
		base[k] = v
	}
	for k, v := range overrides {
		base[k] = v
	}
	return &ScoreManager{
		combo:         1,
		base:          base,
		sinceRotation: math.Inf(1),
	}
}

// BaseScore returns the base points for a match of the given size.
func (s *ScoreManager) BaseScore(size int) int {
	if size >= 6 {
		return s.base[6]
	}
	if v, ok := s.base[size]; ok {
		return v
	}
	return 0
}

// ApplyMatch scores one resolved match and returns the points awarded.
// specialActivated doubles the points attributed to this event only.
func (s *ScoreManager) ApplyMatch(size int, specialActivated bool) int {
	points := s.BaseScore(size) * s.combo
	if s.sinceRotation <= rotationBonusWindow {
		points = points * 3 / 2
	}
	if specialActivated {
		points *= 2
	}
	s.score += points
	return points
}

// Score returns the running total.
func (s *ScoreManager) Score() int { return s.score }

// Combo returns the current combo multiplier.
func (s *ScoreManager) Combo() int { return s.combo }

// IncrementCombo bumps the multiplier for a further cascade step, capped.
func (s *ScoreManager) IncrementCombo() {
	if s.combo < MaxCombo {
		s.combo++
	}
}

// ResetCombo returns the multiplier to 1 when a chain ends empty.
func (s *ScoreManager) ResetCombo() {
	s.combo = 1
}

// AdvanceTime moves the rotation-proximity clock forward.
func (s *ScoreManager) AdvanceTime(delta float64) {
	s.sinceRotation += delta
}

// NoteRotation marks a rotation trigger, opening the bonus window.
func (s *ScoreManager) NoteRotation() {
	s.sinceRotation = 0
}

// Reset clears all scoring state for a new session.
func (s *ScoreManager) Reset() {
	s.score = 0
	s.combo = 1
	s.sinceRotation = math.Inf(1)
}
