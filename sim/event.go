package sim

// Action is the work an event performs when the scheduler reaches its
// virtual time. An action may schedule or cancel further events, including
// ones scheduled before it.
type Action func()

// event is one entry in the scheduler's heap: a virtual time, the action to
// run, the scheduler-wide insertion sequence number that breaks time ties,
// and the validity flag flipped by cancellation. The heap is never mutated
// in place; a cancelled event stays queued and is skipped when popped.
type event struct {
	time      float64
	seq       uint64
	action    Action
	cancelled bool
}

// EventHandle identifies a scheduled event so its owner can cancel it later.
type EventHandle struct {
	ev *event
}

// Cancelled reports whether the underlying event was marked inert.
func (h *EventHandle) Cancelled() bool {
	return h == nil || h.ev == nil || h.ev.cancelled
}
