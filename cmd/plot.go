// Gnuplot emission: two-column numeric series plus a .plt script for each of
// the two headline metrics. The core never sees these files; failures here
// are reported to the caller and must not abort the sweep.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/queuesim/queuesim/sim"
)

// WriteUtilizationPlot writes utilization_data.dat (servers vs utilization
// percentage) and utilization.plt into dir.
func WriteUtilizationPlot(dir string, results []sim.ExperimentResult) error {
	if len(results) == 0 {
		return fmt.Errorf("no results available for plotting utilization")
	}

	var data strings.Builder
	data.WriteString("# Servers Utilization(%)\n")
	for _, res := range results {
		fmt.Fprintf(&data, "%d %.2f\n", res.Servers, res.Utilization*100)
	}
	dataFile := filepath.Join(dir, "utilization_data.dat")
	if err := os.WriteFile(dataFile, []byte(data.String()), 0o644); err != nil {
		return err
	}

	var plt strings.Builder
	plt.WriteString("# GNUplot script for server utilization\n\n")
	plt.WriteString("set terminal pngcairo enhanced color font 'Arial,12' size 800,600\n")
	plt.WriteString("set output 'utilization.png'\n\n")
	plt.WriteString("set title 'Server Utilization vs Number of Servers'\n")
	plt.WriteString("set xlabel 'Number of Servers'\n")
	plt.WriteString("set ylabel 'Utilization (%)'\n")
	plt.WriteString("set grid linestyle 1 linecolor rgb '#cccccc'\n")
	plt.WriteString("set key top right\n")
	plt.WriteString("set xrange [0.5:*]\n")
	plt.WriteString("set yrange [0:105]\n")
	plt.WriteString("set xtics 1\n")
	plt.WriteString("set ytics 10\n")
	plt.WriteString("set style line 1 linecolor rgb '#0066cc' linewidth 2 pointtype 7 pointsize 1.5\n\n")
	fmt.Fprintf(&plt, "plot 'utilization_data.dat' using 1:2 with linespoints ls 1 title 'Utilization'\n")
	return os.WriteFile(filepath.Join(dir, "utilization.plt"), []byte(plt.String()), 0o644)
}

// WriteWaitingTimePlot writes waiting_time_data.dat (servers vs average
// waiting time) and waiting_time.plt into dir.
func WriteWaitingTimePlot(dir string, results []sim.ExperimentResult) error {
	if len(results) == 0 {
		return fmt.Errorf("no results available for plotting waiting time")
	}

	var data strings.Builder
	data.WriteString("# Servers AvgWaitingTime(seconds)\n")
	for _, res := range results {
		fmt.Fprintf(&data, "%d %.3f\n", res.Servers, res.AvgWaitingTime)
	}
	dataFile := filepath.Join(dir, "waiting_time_data.dat")
	if err := os.WriteFile(dataFile, []byte(data.String()), 0o644); err != nil {
		return err
	}

	var plt strings.Builder
	plt.WriteString("# GNUplot script for average waiting time\n\n")
	plt.WriteString("set terminal pngcairo enhanced color font 'Arial,12' size 800,600\n")
	plt.WriteString("set output 'waiting_time.png'\n\n")
	plt.WriteString("set title 'Average Waiting Time vs Number of Servers'\n")
	plt.WriteString("set xlabel 'Number of Servers'\n")
	plt.WriteString("set ylabel 'Average Waiting Time (seconds)'\n")
	plt.WriteString("set grid linestyle 1 linecolor rgb '#cccccc'\n")
	plt.WriteString("set key top right\n")
	plt.WriteString("set xrange [0.5:*]\n")
	plt.WriteString("set yrange [0:*]\n")
	plt.WriteString("set xtics 1\n")
	plt.WriteString("# Uncomment for logarithmic y-axis (useful for large variations)\n")
	plt.WriteString("# set logscale y\n")
	plt.WriteString("set style line 1 linecolor rgb '#cc0000' linewidth 2 pointtype 7 pointsize 1.5\n\n")
	fmt.Fprintf(&plt, "plot 'waiting_time_data.dat' using 1:2 with linespoints ls 1 title 'Average Waiting Time'\n")
	return os.WriteFile(filepath.Join(dir, "waiting_time.plt"), []byte(plt.String()), 0o644)
}
