package doodle

// EventKind identifies a request a platform makes when touched.
type EventKind int

const (
	JumpRequested      EventKind = iota // Actor jumps
	BigJumpRequested                    // Actor jumps twice as high
	HatAttachRequested                  // Actor wears a hat and boosts
	SpawnRequested                      // Field spawns one more platform
	DeathRequested                      // Run ends
)

// String returns the event name for logs.
func (k EventKind) String() string {
	switch k {
	case JumpRequested:
		return "JumpRequested"
	case BigJumpRequested:
		return "BigJumpRequested"
	case HatAttachRequested:
		return "HatAttachRequested"
	case SpawnRequested:
		return "SpawnRequested"
	case DeathRequested:
		return "DeathRequested"
	default:
		return "Unknown"
	}
}

// Event is a typed request emitted by a platform.
type Event struct {
	Kind   EventKind
	Source Kind // Platform kind that emitted the event
}

// Events is the queue platforms emit into. The session drains it between
// tick phases, so platforms never touch the actor or session directly.
type Events struct {
	queue []Event
}

// Emit appends an event to the queue.
func (q *Events) Emit(kind EventKind, source Kind) {
	q.queue = append(q.queue, Event{Kind: kind, Source: source})
}

// Drain returns the queued events in emission order and empties the queue.
// The returned slice is valid until the next Emit.
func (q *Events) Drain() []Event {
	out := q.queue
	q.queue = q.queue[:0]
	return out
}

// Len returns the number of queued events.
func (q *Events) Len() int {
	return len(q.queue)
}
