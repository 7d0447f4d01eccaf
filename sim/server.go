package sim

import "fmt"

// Server is one of the c identical service stations. It serves at most one
// customer at a time and keeps cumulative busy/idle totals that must satisfy
// the conservation law
//
//	TotalServiceTime + TotalIdleTime == elapsed simulation time
//
// at every observation point. Idle intervals are recorded retrospectively:
// the interval a server just spent idle is accounted when the server is next
// activated (or when the run drains), not while it sits idle.
type Server struct {
	id           int
	busy         bool
	current      *Customer
	totalService float64
	totalIdle    float64
	lastActivity float64
}

// NewServer creates an idle server. A fresh server has lastActivity == 0,
// which marks it as never activated: its first activation charges the whole
// span from simulation start as idle time.
func NewServer(id int) *Server {
	return &Server{id: id}
}

// ID returns the server's index in the pool.
func (s *Server) ID() int { return s.id }

// Busy reports whether a customer is currently in service.
func (s *Server) Busy() bool { return s.busy }

// Current returns the customer in service, or nil when idle.
func (s *Server) Current() *Customer { return s.current }

// TotalServiceTime returns cumulative time spent serving customers.
func (s *Server) TotalServiceTime() float64 { return s.totalService }

// TotalIdleTime returns cumulative time spent idle, up to the last
// activation or finalization.
func (s *Server) TotalIdleTime() float64 { return s.totalIdle }

// StartService transitions the server to busy, closes out the idle interval
// that just ended, and stamps the customer's service start. Starting service
// on a busy server is an internal-consistency violation: the server is left
// untouched and an error is returned for the caller to report.
func (s *Server) StartService(c *Customer, now float64) error {
	if s.busy {
		return fmt.Errorf("server %d is already busy", s.id)
	}
	s.accrueIdle(now)
	s.busy = true
	s.current = c
	c.ServiceStart = now
	c.State = StateInService
	s.lastActivity = now
	return nil
}

// EndService frees the server, stamps the customer's service end, folds the
// service duration into the busy total, and returns the completed customer.
// Ending service on an idle server, or on a busy server with no assigned
// customer, is an internal-consistency violation reported as an error.
func (s *Server) EndService(now float64) (*Customer, error) {
	if !s.busy {
		return nil, fmt.Errorf("server %d is not busy", s.id)
	}
	if s.current == nil {
		// Busy with nobody in the slot: clear the flag so the server can
		// recover, but report the inconsistency.
		s.busy = false
		return nil, fmt.Errorf("server %d is busy but has no assigned customer", s.id)
	}
	c := s.current
	s.totalService += now - c.ServiceStart
	c.ServiceEnd = now
	c.State = StateCompleted
	s.busy = false
	s.current = nil
	s.lastActivity = now
	return c, nil
}

// FinalizeIdle closes out the trailing idle interval of an idle server at
// the end of a run, using the same first-activation rule as StartService.
// Calling it on a busy server is a no-op; busy servers are drained through
// EndService instead.
func (s *Server) FinalizeIdle(now float64) {
	if s.busy {
		return
	}
	s.accrueIdle(now)
	s.lastActivity = now
}

// accrueIdle adds the idle interval ending now. A server that has been
// active before was idle since its last state transition; one that has never
// been activated was idle since simulation start.
func (s *Server) accrueIdle(now float64) {
	if s.lastActivity > 0 {
		s.totalIdle += now - s.lastActivity
	} else {
		s.totalIdle += now
	}
}
