// Tracks per-run statistics: waiting times of completed customers and the
// busy/idle totals of the server pool.

package sim

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates the statistics of one run for final reporting. Waiting
// times are recorded as customers complete; server busy/idle totals are
// folded in once, after the drain. Every derived metric returns 0 in its
// degenerate case rather than dividing by zero.
type Metrics struct {
	waits        []float64
	totalService float64
	totalIdle    float64
	discarded    int
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{waits: make([]float64, 0)}
}

// RecordWait records the waiting time of one completed customer.
func (m *Metrics) RecordWait(w float64) {
	m.waits = append(m.waits, w)
}

// AddServerTotals folds one server's cumulative busy/idle totals into the
// run-wide sums.
func (m *Metrics) AddServerTotals(service, idle float64) {
	m.totalService += service
	m.totalIdle += idle
}

// RecordDiscarded notes customers abandoned in the wait line at the horizon.
// They are excluded from every waiting-time and completion metric.
func (m *Metrics) RecordDiscarded(n int) {
	m.discarded += n
}

// Completed returns the number of customers whose service ended, including
// those force-completed by the drain.
func (m *Metrics) Completed() int {
	return len(m.waits)
}

// Discarded returns the number of customers abandoned at the horizon.
func (m *Metrics) Discarded() int {
	return m.discarded
}

// TotalServiceTime returns the pool-wide cumulative busy time.
func (m *Metrics) TotalServiceTime() float64 {
	return m.totalService
}

// TotalIdleTime returns the pool-wide cumulative idle time.
func (m *Metrics) TotalIdleTime() float64 {
	return m.totalIdle
}

// AvgWaitingTime returns the mean waiting time over completed customers,
// or 0 if nothing completed.
func (m *Metrics) AvgWaitingTime() float64 {
	if len(m.waits) == 0 {
		return 0
	}
	return stat.Mean(m.waits, nil)
}

// WaitQuantile returns the p-quantile (0 <= p <= 1) of the waiting-time
// distribution, or 0 if nothing completed.
func (m *Metrics) WaitQuantile(p float64) float64 {
	if len(m.waits) == 0 {
		return 0
	}
	sorted := append([]float64(nil), m.waits...)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// MaxWait returns the largest recorded waiting time, or 0 if nothing
// completed.
func (m *Metrics) MaxWait() float64 {
	max := 0.0
	for _, w := range m.waits {
		if w > max {
			max = w
		}
	}
	return max
}

// Utilization returns the fraction of cumulative server time spent busy:
// totalService / (totalService + totalIdle), or 0 when no time has elapsed.
func (m *Metrics) Utilization() float64 {
	denom := m.totalService + m.totalIdle
	if denom == 0 {
		return 0
	}
	return m.totalService / denom
}

// EfficiencyScore combines utilization and average wait into one ranking
// scalar: utilization / (avgWait + 1). The formula is an ad hoc heuristic
// kept for compatibility with earlier studies; changing it changes which
// configuration gets recommended.
func (m *Metrics) EfficiencyScore() float64 {
	return m.Utilization() / (m.AvgWaitingTime() + 1)
}
