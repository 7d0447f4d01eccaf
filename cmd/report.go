package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/queuesim/queuesim/sim"
)

// PrintComparisonTable renders the per-configuration results, one row per
// tested server count in ascending order, with the analytic steady-state
// expected wait alongside the simulated one.
func PrintComparisonTable(w io.Writer, cfg sim.ExperimentConfig, results []sim.ExperimentResult) {
	fmt.Fprintln(w, "\n=== Comparison Table ===")
	fmt.Fprintln(w, "Servers | Customers | Avg Wait | P95 Wait | Utilization | Efficiency | Erlang-C Wait")
	fmt.Fprintln(w, "--------|-----------|----------|----------|-------------|------------|--------------")
	for _, res := range results {
		analytic := "unstable"
		if wq, ok := sim.ExpectedWait(res.Servers, cfg.ArrivalRate, cfg.ServiceRate); ok {
			analytic = fmt.Sprintf("%.3fs", wq)
		}
		fmt.Fprintf(w, "%7d | %9d | %7.2fs | %7.2fs | %10.1f%% | %10.3f | %13s\n",
			res.Servers, res.TotalCustomers, res.AvgWaitingTime, res.WaitP95,
			res.Utilization*100, res.EfficiencyScore, analytic)
	}
}

// PrintRecommendation renders the selected configuration and its headline
// numbers.
func PrintRecommendation(w io.Writer, cfg sim.ExperimentConfig, rec sim.ExperimentResult) {
	expected := int(cfg.ArrivalRate * cfg.Horizon)
	fmt.Fprintln(w, "\n=== Recommendation ===")
	fmt.Fprintf(w, "Optimal number of servers: %d\n", rec.Servers)
	fmt.Fprintf(w, "For ~%d expected customers:\n", expected)
	fmt.Fprintf(w, "  - Average waiting time: %.2f seconds\n", rec.AvgWaitingTime)
	fmt.Fprintf(w, "  - System utilization: %.1f%%\n", rec.Utilization*100)
	fmt.Fprintf(w, "  - Efficiency score: %.3f\n", rec.EfficiencyScore)
	fmt.Fprintln(w, "\nThis configuration balances low waiting time with high utilization.")
}

// resultsOutput is the JSON shape written by WriteResultsJSON.
type resultsOutput struct {
	MaxServers         int                    `json:"max_servers"`
	ArrivalRate        float64                `json:"arrival_rate"`
	ServiceRate        float64                `json:"service_rate"`
	Horizon            float64                `json:"horizon"`
	Seed               int64                  `json:"seed"`
	UtilMin            float64                `json:"util_min"`
	UtilMax            float64                `json:"util_max"`
	Results            []sim.ExperimentResult `json:"results"`
	RecommendedServers int                    `json:"recommended_servers,omitempty"`
}

// WriteResultsJSON dumps the ordered result sequence plus the recommendation
// to path.
func WriteResultsJSON(path string, cfg sim.ExperimentConfig, results []sim.ExperimentResult, rec sim.ExperimentResult, recOK bool) error {
	out := resultsOutput{
		MaxServers:  cfg.MaxServers,
		ArrivalRate: cfg.ArrivalRate,
		ServiceRate: cfg.ServiceRate,
		Horizon:     cfg.Horizon,
		Seed:        cfg.Seed,
		UtilMin:     cfg.Band.Min,
		UtilMax:     cfg.Band.Max,
		Results:     results,
	}
	if recOK {
		out.RecommendedServers = rec.Servers
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
