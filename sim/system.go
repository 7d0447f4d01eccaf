package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ViolationOp names the operation that tripped an internal-consistency guard.
type ViolationOp string

const (
	// OpStartService covers starting service on an already-busy server.
	OpStartService ViolationOp = "start_service"
	// OpEndService covers ending service on an idle server or on a busy
	// server with no assigned customer.
	OpEndService ViolationOp = "end_service"
)

// Violation describes an internal bookkeeping inconsistency. Violations are
// programmer-error signals, never expected in correct operation: the
// offending operation is skipped and the run continues.
type Violation struct {
	Time   float64
	Server int
	Op     ViolationOp
	Err    error
}

func (v Violation) String() string {
	return fmt.Sprintf("consistency violation at t=%.6f (server %d, %s): %v",
		v.Time, v.Server, v.Op, v.Err)
}

// QueueingSystem owns the wait line and the server pool for one run and
// reacts to arrival and service-completion events by mutating state and
// scheduling further events. All mutation happens from actions executed by
// the run's Scheduler; nothing is shared across runs.
type QueueingSystem struct {
	sched    *Scheduler
	arrivals VariateSource
	services VariateSource
	horizon  float64

	servers   []*Server
	waitLine  *WaitQueue
	completed []*Customer
	metrics   *Metrics
	stopped   bool

	nextCustomerID int
	nextArrival    *EventHandle
	inService      []*EventHandle

	// OnViolation receives internal-consistency violations. Defaults to a
	// logrus warning; tests install their own observer.
	OnViolation func(Violation)
}

// NewQueueingSystem creates a system with the given number of idle servers,
// an empty wait line, and fresh metrics. Events that would land at or past
// horizon are never scheduled for arrivals; completions may overshoot and
// are cancelled by the drain.
func NewQueueingSystem(sched *Scheduler, servers int, arrivals, services VariateSource, horizon float64) *QueueingSystem {
	pool := make([]*Server, servers)
	for i := range pool {
		pool[i] = NewServer(i)
	}
	return &QueueingSystem{
		sched:     sched,
		arrivals:  arrivals,
		services:  services,
		horizon:   horizon,
		servers:   pool,
		waitLine:  &WaitQueue{},
		completed: make([]*Customer, 0),
		metrics:   NewMetrics(),
		inService: make([]*EventHandle, servers),
		OnViolation: func(v Violation) {
			logrus.Warn(v.String())
		},
	}
}

// Metrics returns the run's statistics collector.
func (q *QueueingSystem) Metrics() *Metrics {
	return q.metrics
}

// Completed returns the customers recorded as completed so far.
func (q *QueueingSystem) Completed() []*Customer {
	return q.completed
}

// Waiting returns the current wait-line length.
func (q *QueueingSystem) Waiting() int {
	return q.waitLine.Len()
}

// Stopped reports whether the horizon drain has run.
func (q *QueueingSystem) Stopped() bool {
	return q.stopped
}

// Start seeds the first arrival. Nothing happens until the scheduler runs.
func (q *QueueingSystem) Start() {
	q.scheduleNextArrival()
}

// scheduleNextArrival draws the next inter-arrival delay and schedules the
// arrival only if it lands strictly before the horizon. The draw is consumed
// either way, keeping the stream aligned with the original draw order.
func (q *QueueingSystem) scheduleNextArrival() {
	delay := q.arrivals.Next()
	if q.sched.Now()+delay < q.horizon {
		q.nextArrival = q.sched.Schedule(delay, q.onArrival)
	} else {
		q.nextArrival = nil
	}
}

// onArrival admits a new customer: the lowest-indexed idle server takes it
// immediately, otherwise it joins the tail of the wait line. Afterwards the
// next arrival is scheduled, unless the system has stopped.
func (q *QueueingSystem) onArrival() {
	if q.stopped {
		return
	}
	now := q.sched.Now()
	c := NewCustomer(q.nextCustomerID, now)
	q.nextCustomerID++
	logrus.Debugf("[t=%010.6f] arrival of customer %d", now, c.ID)

	assigned := false
	for _, srv := range q.servers {
		if !srv.Busy() {
			q.beginService(srv, c, now)
			assigned = true
			break
		}
	}
	if !assigned {
		q.waitLine.Enqueue(c)
		logrus.Debugf("[t=%010.6f] customer %d waiting, line length %d", now, c.ID, q.waitLine.Len())
	}

	if !q.stopped {
		q.scheduleNextArrival()
	}
}

// beginService starts service for c on srv, draws a service duration, and
// schedules the completion event. Completions may be scheduled past the
// horizon; the drain cancels them before they can fire.
func (q *QueueingSystem) beginService(srv *Server, c *Customer, now float64) {
	if err := srv.StartService(c, now); err != nil {
		q.violation(Violation{Time: now, Server: srv.ID(), Op: OpStartService, Err: err})
		return
	}
	d := q.services.Next()
	id := srv.ID()
	q.inService[id] = q.sched.Schedule(d, func() { q.onServiceCompletion(id) })
	logrus.Debugf("[t=%010.6f] server %d serving customer %d for %.6f", now, id, c.ID, d)
}

// onServiceCompletion frees the identified server, records the completed
// customer, and immediately starts the head of the wait line on the freed
// server with no intervening idle gap. Ignored once the system has stopped.
func (q *QueueingSystem) onServiceCompletion(serverID int) {
	if q.stopped {
		return
	}
	now := q.sched.Now()
	srv := q.servers[serverID]
	c, err := srv.EndService(now)
	if err != nil {
		q.violation(Violation{Time: now, Server: serverID, Op: OpEndService, Err: err})
		return
	}
	q.inService[serverID] = nil
	q.complete(c)
	logrus.Debugf("[t=%010.6f] server %d completed customer %d (waited %.6f)", now, serverID, c.ID, c.WaitingTime())

	if next := q.waitLine.Dequeue(); next != nil {
		q.beginService(srv, next, now)
	}
}

// OnHorizonReached is the drain: it suppresses all further scheduling,
// cancels every pending event, force-completes in-service customers at the
// horizon, finalizes idle totals, and discards customers still in the wait
// line. It then folds the servers' busy/idle totals into the metrics, so per
// server TotalServiceTime + TotalIdleTime equals the horizon exactly.
// Calling it more than once is a no-op.
func (q *QueueingSystem) OnHorizonReached() {
	if q.stopped {
		return
	}
	q.stopped = true
	now := q.sched.Now()

	q.sched.Cancel(q.nextArrival)
	q.nextArrival = nil
	for i, h := range q.inService {
		q.sched.Cancel(h)
		q.inService[i] = nil
	}

	for _, srv := range q.servers {
		if srv.Busy() {
			// In-flight work is counted as completed with its in-progress
			// service time, even though service did not finish naturally.
			c, err := srv.EndService(now)
			if err != nil {
				q.violation(Violation{Time: now, Server: srv.ID(), Op: OpEndService, Err: err})
				continue
			}
			q.complete(c)
		} else {
			srv.FinalizeIdle(now)
		}
	}

	// Customers still waiting are abandoned, not force-completed. This
	// undercounts total demand under heavy load; see DESIGN.md.
	if dropped := q.waitLine.Clear(); dropped > 0 {
		q.metrics.RecordDiscarded(dropped)
		logrus.Debugf("[t=%010.6f] discarded %d customers still in line", now, dropped)
	}

	for _, srv := range q.servers {
		q.metrics.AddServerTotals(srv.TotalServiceTime(), srv.TotalIdleTime())
	}
}

// complete moves a customer to the completed list and records its waiting
// time.
func (q *QueueingSystem) complete(c *Customer) {
	q.completed = append(q.completed, c)
	q.metrics.RecordWait(c.WaitingTime())
}

func (q *QueueingSystem) violation(v Violation) {
	if q.OnViolation != nil {
		q.OnViolation(v)
	}
}
