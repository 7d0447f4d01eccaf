package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/queuesim/queuesim/sim"
)

var (
	// CLI flags for the sweep
	maxServers  int     // Largest server count to test (sweep runs 1..maxServers)
	arrivalRate float64 // Customer arrival rate (customers/second)
	serviceRate float64 // Per-server service rate (customers/second)
	horizon     float64 // Virtual-time length of each run (seconds)
	seed        int64   // Master seed for all draw streams
	utilMin     float64 // Lower bound of the target utilization band
	utilMax     float64 // Upper bound of the target utilization band
	logLevel    string  // Log verbosity level

	// CLI flags for inputs/outputs
	configPath string // Optional YAML sweep configuration
	outputPath string // Optional JSON results file
	plotDir    string // Directory for gnuplot output
	noPlots    bool   // Skip gnuplot emission
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "queuesim",
	Short: "Discrete-event M/M/c simulator for service capacity planning",
}

// runCmd executes the server-count sweep using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the server-count sweep and print the recommendation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.ExperimentConfig{
			MaxServers:  maxServers,
			ArrivalRate: arrivalRate,
			ServiceRate: serviceRate,
			Horizon:     horizon,
			Seed:        seed,
			Band:        sim.UtilizationBand{Min: utilMin, Max: utilMax},
		}
		if configPath != "" {
			fileCfg, err := LoadSweepConfig(configPath)
			if err != nil {
				logrus.Fatalf("unable to read sweep config: %v", err)
			}
			fileCfg.Apply(&cfg)
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		logrus.Infof("Starting sweep: 1..%d servers, arrival rate %g/s, service rate %g/s, horizon %gs, seed %d",
			cfg.MaxServers, cfg.ArrivalRate, cfg.ServiceRate, cfg.Horizon, cfg.Seed)

		startTime := time.Now() // Get current time (start)

		results := sim.NewRunner(cfg).Run()
		recommended, ok := sim.Recommend(results, cfg.Band)

		PrintComparisonTable(os.Stdout, cfg, results)
		if ok {
			PrintRecommendation(os.Stdout, cfg, recommended)
		}

		// Reporting failures are logged, never fatal: the sweep already ran.
		if outputPath != "" {
			if err := WriteResultsJSON(outputPath, cfg, results, recommended, ok); err != nil {
				logrus.Errorf("could not write results file: %v", err)
			}
		}
		if !noPlots {
			if err := WriteUtilizationPlot(plotDir, results); err != nil {
				logrus.Errorf("could not write utilization plot: %v", err)
			}
			if err := WriteWaitingTimePlot(plotDir, results); err != nil {
				logrus.Errorf("could not write waiting-time plot: %v", err)
			}
		}

		logrus.Infof("Sweep complete in %s.", time.Since(startTime).Round(time.Millisecond))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVar(&maxServers, "max-servers", 10, "Maximum number of servers to test")
	runCmd.Flags().Float64Var(&arrivalRate, "arrival-rate", 2.0, "Customer arrival rate (customers/second)")
	runCmd.Flags().Float64Var(&serviceRate, "service-rate", 1.0, "Service rate per server (customers/second)")
	runCmd.Flags().Float64Var(&horizon, "horizon", 1000.0, "Simulation time per run (seconds)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for random draw streams")
	runCmd.Flags().Float64Var(&utilMin, "util-min", sim.DefaultUtilizationBand.Min, "Lower bound of the target utilization band")
	runCmd.Flags().Float64Var(&utilMax, "util-max", sim.DefaultUtilizationBand.Max, "Upper bound of the target utilization band")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&configPath, "config", "", "YAML sweep configuration file (overrides flags it sets)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Write results as JSON to this path")
	runCmd.Flags().StringVar(&plotDir, "plot-dir", ".", "Directory for gnuplot scripts and data files")
	runCmd.Flags().BoolVar(&noPlots, "no-plots", false, "Skip gnuplot script/data generation")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
