// Implements the WaitQueue, the single shared line customers join when every
// server is busy. Customers are enqueued on arrival and dequeued in strict
// arrival order.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue is the FIFO wait line of customers not yet assigned to a server.
// Strict FIFO is the fairness guarantee of the model: of any two waiting
// customers, the earlier arrival is always assigned a server first.
type WaitQueue struct {
	queue []*Customer
}

// Enqueue adds a customer to the back of the wait line.
func (wq *WaitQueue) Enqueue(c *Customer) {
	wq.queue = append(wq.queue, c)
}

// Dequeue removes and returns the customer at the front of the line.
// Returns nil if the line is empty.
func (wq *WaitQueue) Dequeue() *Customer {
	if len(wq.queue) == 0 {
		return nil
	}
	c := wq.queue[0]
	wq.queue = wq.queue[1:]
	return c
}

// Peek returns the customer at the front of the line without removing it.
// Returns nil if the line is empty.
func (wq *WaitQueue) Peek() *Customer {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Len returns the number of customers in the line.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Clear discards all waiting customers and returns how many were dropped.
// Used by the horizon drain, which abandons unterminated waiters.
func (wq *WaitQueue) Clear() int {
	n := len(wq.queue)
	wq.queue = nil
	return n
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, c := range wq.queue {
		sb.WriteString(fmt.Sprint(c.ID))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
