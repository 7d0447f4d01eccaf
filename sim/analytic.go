package sim

// Steady-state M/M/c reference values (Erlang C). These are reported next to
// the simulated metrics so finite-horizon runs can be sanity-checked against
// theory; the recommendation rule never reads them.

// OfferedUtilization returns the steady-state utilization lambda / (c * mu).
// Values >= 1 mean the configuration is unstable: the queue grows without
// bound and no steady state exists.
func OfferedUtilization(servers int, lambda, mu float64) float64 {
	if servers < 1 || mu <= 0 {
		return 0
	}
	return lambda / (float64(servers) * mu)
}

// ErlangC returns the steady-state probability that an arriving customer
// finds all c servers busy and must wait. Returns 1 for unstable
// configurations (offered utilization >= 1), where every arrival eventually
// waits.
func ErlangC(servers int, lambda, mu float64) float64 {
	rho := OfferedUtilization(servers, lambda, mu)
	if rho >= 1 {
		return 1
	}
	a := lambda / mu

	// Sum a^k/k! for k < c via the recurrence term_{k+1} = term_k * a/(k+1),
	// which stays finite for any practical server count.
	term := 1.0
	sum := 0.0
	for k := 0; k < servers; k++ {
		sum += term
		term *= a / float64(k+1)
	}
	// term is now a^c/c!.
	last := term / (1 - rho)
	return last / (sum + last)
}

// ExpectedWait returns the steady-state mean waiting time
// Wq = C(c, a) / (c*mu - lambda). The second return value is false for
// unstable configurations, where the expected wait is unbounded.
func ExpectedWait(servers int, lambda, mu float64) (float64, bool) {
	if OfferedUtilization(servers, lambda, mu) >= 1 {
		return 0, false
	}
	return ErlangC(servers, lambda, mu) / (float64(servers)*mu - lambda), true
}
