package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErlangC_SingleServerReducesToRho(t *testing.T) {
	// For c=1 the waiting probability is the utilization itself.
	assert.InDelta(t, 0.5, ErlangC(1, 1.0, 2.0), 1e-12)
	assert.InDelta(t, 0.25, ErlangC(1, 0.5, 2.0), 1e-12)
}

func TestErlangC_TwoServersClosedForm(t *testing.T) {
	// For c=2, C = 2*rho^2 / (1 + rho) with rho = lambda / (2*mu).
	lambda, mu := 1.5, 1.0
	rho := lambda / (2 * mu)
	want := 2 * rho * rho / (1 + rho)
	assert.InDelta(t, want, ErlangC(2, lambda, mu), 1e-12)
}

func TestErlangC_UnstableAlwaysWaits(t *testing.T) {
	assert.Equal(t, 1.0, ErlangC(1, 2.0, 1.0))
	assert.Equal(t, 1.0, ErlangC(2, 2.0, 1.0)) // rho == 1 exactly
}

func TestExpectedWait_SingleServer(t *testing.T) {
	// M/M/1: Wq = rho / (mu - lambda).
	lambda, mu := 1.0, 2.0
	wq, ok := ExpectedWait(1, lambda, mu)
	require.True(t, ok)
	assert.InDelta(t, 0.5, wq, 1e-12)
}

func TestExpectedWait_UnstableConfigurations(t *testing.T) {
	_, ok := ExpectedWait(1, 2.0, 1.0)
	assert.False(t, ok)
	_, ok = ExpectedWait(2, 2.0, 1.0)
	assert.False(t, ok)
	// Three servers for the same load is stable.
	_, ok = ExpectedWait(3, 2.0, 1.0)
	assert.True(t, ok)
}

func TestExpectedWait_ShrinksWithMoreServers(t *testing.T) {
	lambda, mu := 2.0, 1.0
	prev := 1e18
	for c := 3; c <= 8; c++ {
		wq, ok := ExpectedWait(c, lambda, mu)
		require.True(t, ok)
		assert.Less(t, wq, prev)
		prev = wq
	}
}

func TestOfferedUtilization(t *testing.T) {
	assert.InDelta(t, 2.0/3.0, OfferedUtilization(3, 2.0, 1.0), 1e-12)
	assert.Equal(t, 0.0, OfferedUtilization(0, 2.0, 1.0))
	assert.Equal(t, 0.0, OfferedUtilization(3, 2.0, 0))
}

func TestSimulationTracksErlangC(t *testing.T) {
	// Long stable run: the simulated average wait should sit near the
	// analytic steady-state value. Loose tolerance, this is a sanity check
	// rather than a convergence proof.
	cfg := ExperimentConfig{
		MaxServers:  4,
		ArrivalRate: 2.0,
		ServiceRate: 1.0,
		Horizon:     5000.0,
		Seed:        42,
		Band:        DefaultUtilizationBand,
	}
	results := NewRunner(cfg).Run()

	res := results[3] // 4 servers, rho = 0.5
	wq, ok := ExpectedWait(4, cfg.ArrivalRate, cfg.ServiceRate)
	require.True(t, ok)
	assert.InDelta(t, wq, res.AvgWaitingTime, wq+0.05)

	util := OfferedUtilization(4, cfg.ArrivalRate, cfg.ServiceRate)
	assert.InDelta(t, util, res.Utilization, 0.1)
}
