package sim

import "fmt"

// UtilizationBand is the target utilization range used when recommending a
// server count. Bounds are inclusive.
type UtilizationBand struct {
	Min float64
	Max float64
}

// DefaultUtilizationBand is the 60-90% band the recommendation rule uses
// unless the caller overrides it.
var DefaultUtilizationBand = UtilizationBand{Min: 0.60, Max: 0.90}

// Contains reports whether u falls inside the band.
func (b UtilizationBand) Contains(u float64) bool {
	return u >= b.Min && u <= b.Max
}

// ExperimentConfig groups the parameters of one sweep. The CLI layer owns
// flag parsing; the core consumes these as plain values.
type ExperimentConfig struct {
	// MaxServers is the largest server count to test; the sweep runs one
	// independent simulation for each count in 1..MaxServers.
	MaxServers int
	// ArrivalRate is the customer arrival rate (customers per second).
	ArrivalRate float64
	// ServiceRate is the per-server service rate (customers per second).
	ServiceRate float64
	// Horizon is the virtual-time length of each run, in seconds.
	Horizon float64
	// Seed is the master seed every run's draw streams derive from.
	Seed int64
	// Band is the target utilization band for the recommendation rule.
	Band UtilizationBand
}

// Validate checks the configuration for values the simulation cannot run
// with. A zero horizon is legal and yields degenerate (all-zero) results.
func (c ExperimentConfig) Validate() error {
	if c.MaxServers < 1 {
		return fmt.Errorf("max servers must be >= 1, got %d", c.MaxServers)
	}
	if c.ArrivalRate <= 0 {
		return fmt.Errorf("arrival rate must be positive, got %g", c.ArrivalRate)
	}
	if c.ServiceRate <= 0 {
		return fmt.Errorf("service rate must be positive, got %g", c.ServiceRate)
	}
	if c.Horizon < 0 {
		return fmt.Errorf("horizon must be non-negative, got %g", c.Horizon)
	}
	if c.Band.Min < 0 || c.Band.Max > 1 || c.Band.Min > c.Band.Max {
		return fmt.Errorf("utilization band [%g, %g] is not a sub-range of [0, 1]",
			c.Band.Min, c.Band.Max)
	}
	return nil
}
