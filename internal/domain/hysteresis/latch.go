// Package hysteresis implements the set/rearm latches behind tank level notifications.
package hysteresis

// Latch fires once when the level reaches Trigger and rearms only after the level
// moves past Rearm in the opposite direction.
type Latch struct {
	Trigger float64
	Rearm   float64
	Rising  bool // true: fires at level >= Trigger, rearms at level < Rearm
}

// Full returns the latch for the tank-full notification.
func Full(trigger, rearm float64) Latch {
	return Latch{Trigger: trigger, Rearm: rearm, Rising: true}
}

// Empty returns the latch for the tank-empty notification.
func Empty(trigger, rearm float64) Latch {
	return Latch{Trigger: trigger, Rearm: rearm, Rising: false}
}

// Reached reports whether level is at or past the trigger threshold.
func (l Latch) Reached(level float64) bool {
	if l.Rising {
		return level >= l.Trigger
	}

	return level <= l.Trigger
}

// Rearms reports whether level is strictly past the rearm threshold.
func (l Latch) Rearms(level float64) bool {
	if l.Rising {
		return level < l.Rearm
	}

	return level > l.Rearm
}

// Step evaluates a new level against the latched state.
// fired is true when a notification must be staged.
func (l Latch) Step(level float64, latched bool) (next, fired bool) {
	next = latched
	if l.Reached(level) && !latched {
		next = true
		fired = true
	}

	if l.Rearms(level) {
		next = false
	}

	return next, fired
}
