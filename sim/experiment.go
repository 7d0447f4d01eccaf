package sim

import (
	"github.com/sirupsen/logrus"
)

// ExperimentResult is the immutable summary of one run. Results are appended
// to the sweep's ordered sequence in ascending server-count order; this shape
// is the core's only durable contract with the reporting layer.
type ExperimentResult struct {
	Servers         int     `json:"servers"`
	TotalCustomers  int     `json:"total_customers"`
	AvgWaitingTime  float64 `json:"avg_waiting_time"`
	Utilization     float64 `json:"utilization"`
	EfficiencyScore float64 `json:"efficiency_score"`

	// Supplemental reporting fields; the selection rule never reads them.
	WaitP50   float64 `json:"wait_p50"`
	WaitP95   float64 `json:"wait_p95"`
	WaitMax   float64 `json:"wait_max"`
	Discarded int     `json:"discarded"`
}

// Runner drives one independent simulation per candidate server count.
// Runs execute strictly one at a time; no scheduler, system, draw stream, or
// metrics object outlives its run or is shared with another.
type Runner struct {
	cfg ExperimentConfig
}

// NewRunner creates a Runner for the given configuration. The configuration
// is assumed validated.
func NewRunner(cfg ExperimentConfig) *Runner {
	return &Runner{cfg: cfg}
}

// Config returns the sweep configuration.
func (r *Runner) Config() ExperimentConfig {
	return r.cfg
}

// Run executes the sweep for server counts 1..MaxServers and returns one
// result per count, in ascending count order.
func (r *Runner) Run() []ExperimentResult {
	results := make([]ExperimentResult, 0, r.cfg.MaxServers)
	for c := 1; c <= r.cfg.MaxServers; c++ {
		results = append(results, r.runOne(c))
	}
	return results
}

// runOne runs a single configuration to the horizon, drains it, and derives
// its result. Everything is constructed fresh so no state leaks between
// configurations.
func (r *Runner) runOne(servers int) ExperimentResult {
	sched := NewScheduler()
	arrivals := NewExpSource(1/r.cfg.ArrivalRate, StreamSeed(r.cfg.Seed, ArrivalStream(servers)))
	services := NewExpSource(1/r.cfg.ServiceRate, StreamSeed(r.cfg.Seed, ServiceStream(servers)))
	q := NewQueueingSystem(sched, servers, arrivals, services, r.cfg.Horizon)

	logrus.Infof("running %d-server configuration (horizon %gs)", servers, r.cfg.Horizon)
	q.Start()
	sched.RunUntil(r.cfg.Horizon)
	q.OnHorizonReached()

	m := q.Metrics()
	res := ExperimentResult{
		Servers:         servers,
		TotalCustomers:  m.Completed(),
		AvgWaitingTime:  m.AvgWaitingTime(),
		Utilization:     m.Utilization(),
		EfficiencyScore: m.EfficiencyScore(),
		WaitP50:         m.WaitQuantile(0.50),
		WaitP95:         m.WaitQuantile(0.95),
		WaitMax:         m.MaxWait(),
		Discarded:       m.Discarded(),
	}
	logrus.Infof("%d servers: %d customers, avg wait %.3fs, utilization %.1f%%, efficiency %.3f",
		servers, res.TotalCustomers, res.AvgWaitingTime, res.Utilization*100, res.EfficiencyScore)
	return res
}

// Recommend applies the selection rule to an ordered result sequence: keep
// the results whose utilization falls inside band and pick the one with the
// lowest average waiting time; if the band is empty, pick the highest
// efficiency score overall. Ties keep the smaller server count, which scans
// first in ascending-count order. Returns false when results is empty.
func Recommend(results []ExperimentResult, band UtilizationBand) (ExperimentResult, bool) {
	if len(results) == 0 {
		return ExperimentResult{}, false
	}

	var best ExperimentResult
	found := false
	for _, res := range results {
		if !band.Contains(res.Utilization) {
			continue
		}
		if !found || res.AvgWaitingTime < best.AvgWaitingTime {
			best = res
			found = true
		}
	}
	if found {
		return best, true
	}

	best = results[0]
	for _, res := range results[1:] {
		if res.EfficiencyScore > best.EfficiencyScore {
			best = res
		}
	}
	return best, true
}
