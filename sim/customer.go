package sim

import "fmt"

// CustomerState tracks where a customer is in its lifecycle.
type CustomerState string

const (
	// StateWaiting means the customer is in the wait line.
	StateWaiting CustomerState = "waiting"
	// StateInService means a server is currently serving the customer.
	StateInService CustomerState = "in_service"
	// StateCompleted means the customer's service has ended and its waiting
	// time has been recorded.
	StateCompleted CustomerState = "completed"
)

// Customer is one unit of work flowing through the system. It is owned
// exclusively by whichever structure currently holds it (wait line, server
// slot, or completed list); ownership transfers on each state transition and
// is never shared.
//
// ServiceStart and ServiceEnd are zero until set. Once set,
// ServiceStart >= ArrivalTime and ServiceEnd >= ServiceStart.
type Customer struct {
	ID           int
	ArrivalTime  float64
	ServiceStart float64
	ServiceEnd   float64
	State        CustomerState
}

// NewCustomer creates a customer stamped with its arrival time, in the
// waiting state.
func NewCustomer(id int, arrivalTime float64) *Customer {
	return &Customer{ID: id, ArrivalTime: arrivalTime, State: StateWaiting}
}

// WaitingTime is the span between arrival and start of service.
// Meaningful only once the customer has been assigned a server.
func (c *Customer) WaitingTime() float64 {
	return c.ServiceStart - c.ArrivalTime
}

// ServiceDuration is the span between start and end of service.
// Meaningful only once the customer has completed.
func (c *Customer) ServiceDuration() float64 {
	return c.ServiceEnd - c.ServiceStart
}

func (c *Customer) String() string {
	return fmt.Sprintf("customer %d (%s, arrived %.3f)", c.ID, c.State, c.ArrivalTime)
}
