package sim

import (
	"container/heap"

	"github.com/sirupsen/logrus"
)

// eventHeap implements heap.Interface and orders events by (time, seq).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type eventHeap []*event

func (eq eventHeap) Len() int { return len(eq) }

func (eq eventHeap) Less(i, j int) bool {
	if eq[i].time != eq[j].time {
		return eq[i].time < eq[j].time
	}
	// Insertion sequence breaks exact-time ties so that coinciding arrivals
	// and completions replay identically for a fixed draw sequence.
	return eq[i].seq < eq[j].seq
}

func (eq eventHeap) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *eventHeap) Push(x any) {
	*eq = append(*eq, x.(*event))
}

func (eq *eventHeap) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Scheduler executes actions in virtual-time order. The clock is purely
// logical: it jumps from one event time to the next, and only forward.
type Scheduler struct {
	clock float64
	seq   uint64
	queue eventHeap
}

// NewScheduler creates a Scheduler with an empty queue and the clock at 0.
func NewScheduler() *Scheduler {
	return &Scheduler{queue: make(eventHeap, 0)}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() float64 {
	return s.clock
}

// Pending returns the number of queued events, cancelled ones included.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Schedule registers action to run delay time units from now and returns a
// handle for cancellation. A negative delay is treated as zero.
func (s *Scheduler) Schedule(delay float64, action Action) *EventHandle {
	if delay < 0 {
		logrus.Warnf("schedule: clamping negative delay %g to 0", delay)
		delay = 0
	}
	ev := &event{time: s.clock + delay, seq: s.seq, action: action}
	s.seq++
	heap.Push(&s.queue, ev)
	return &EventHandle{ev: ev}
}

// Cancel marks the event behind h inert. The event is skipped when popped
// rather than removed eagerly, which keeps scheduling O(log n) and makes
// cancellation safe to call from inside a running action. Cancelling a nil,
// already-fired, or already-cancelled handle is a silent no-op.
func (s *Scheduler) Cancel(h *EventHandle) {
	if h == nil || h.ev == nil {
		return
	}
	h.ev.cancelled = true
	h.ev.action = nil
}

// RunUntil pops and executes non-cancelled events in (time, seq) order until
// the queue is empty or the next live event lies beyond horizon. Events
// scheduled at exactly the horizon still fire. On return the clock sits at
// the horizon, so drain logic that follows observes now == horizon.
func (s *Scheduler) RunUntil(horizon float64) {
	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.cancelled {
			heap.Pop(&s.queue)
			continue
		}
		if next.time > horizon {
			break
		}
		heap.Pop(&s.queue)
		s.clock = next.time
		logrus.Debugf("[t=%010.6f] executing event #%d", s.clock, next.seq)
		next.action()
	}
	if horizon > s.clock {
		s.clock = horizon
	}
}
