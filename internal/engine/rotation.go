package engine

// RotationManager accumulates elapsed time against a configurable interval
// and decides when the board's global rotation fires. It does not apply the
// rotation itself; the Board owns that.
type RotationManager struct {
	interval float64 // seconds, > 0
	elapsed  float64 // seconds since the last trigger
}

// NewRotationManager creates a manager with the given interval in seconds.
func NewRotationManager(interval float64) *RotationManager {
	return &RotationManager{interval: interval}
}

// Advance accumulates delta seconds and reports whether a rotation fires.
// On trigger the remainder carries over (elapsed -= interval) rather than
// truncating to zero, so a temporarily slow tick rate does not lag the
// schedule over time.
func (r *RotationManager) Advance(delta float64) bool {
	r.elapsed += delta
	if r.elapsed >= r.interval {
		r.elapsed -= r.interval
		return true
	}
	return false
}

// SetInterval changes the interval mid-session without resetting elapsed.
// Non-positive values are ignored; interval validity is enforced at
// configuration time.
func (r *RotationManager) SetInterval(interval float64) {
	if interval > 0 {
		r.interval = interval
	}
}

// Interval returns the current interval in seconds.
func (r *RotationManager) Interval() float64 { return r.interval }

// Elapsed returns the seconds accumulated since the last trigger.
func (r *RotationManager) Elapsed() float64 { return r.elapsed }

// Remaining returns the seconds until the next trigger at the current pace.
func (r *RotationManager) Remaining() float64 {
	rem := r.interval - r.elapsed
	if rem < 0 {
		return 0
	}
	return rem
}

// Reset clears the accumulated time, used on session reset.
func (r *RotationManager) Reset() {
	r.elapsed = 0
}
