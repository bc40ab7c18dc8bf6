package doodle

// Alarms is a list of callbacks due at a future tick.
type Alarms struct {
	pending []alarm
}

type alarm struct {
	deadline uint64
	fn       func()
}

// After schedules fn to run once the clock reaches now+ticks.
func (a *Alarms) After(now uint64, ticks int, fn func()) {
	if ticks < 0 {
		ticks = 0
	}
	a.pending = append(a.pending, alarm{deadline: now + uint64(ticks), fn: fn})
}

// Fire runs every alarm whose deadline is at or before now, in scheduling
// order, and returns how many ran. Alarms scheduled by a callback wait for
// the next Fire.
func (a *Alarms) Fire(now uint64) int {
	if len(a.pending) == 0 {
		return 0
	}

	var due []alarm
	kept := a.pending[:0]
	for _, al := range a.pending {
		if al.deadline <= now {
			due = append(due, al)
		} else {
			kept = append(kept, al)
		}
	}
	a.pending = kept

	for _, al := range due {
		al.fn()
	}
	return len(due)
}

// Len returns the number of pending alarms.
func (a *Alarms) Len() int {
	return len(a.pending)
}

// Clear drops every pending alarm.
func (a *Alarms) Clear() {
	a.pending = a.pending[:0]
}
