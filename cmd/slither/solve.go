package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/Me8mer/Slitherinc/pkg/cegar"
	"github.com/Me8mer/Slitherinc/pkg/encoder"
	"github.com/Me8mer/Slitherinc/pkg/grid"
	"github.com/Me8mer/Slitherinc/pkg/instance"
	"github.com/Me8mer/Slitherinc/pkg/metrics"
	"github.com/Me8mer/Slitherinc/pkg/oracle"
	"github.com/Me8mer/Slitherinc/pkg/render"
)

var (
	inputPath    string
	cnfOutPath   string
	oracleCmd    string
	oracleArgs   string
	backend      string
	timeout      time.Duration
	printCNF     bool
	collectStats bool
	verbose      bool
	metricsAddr  string
)

func init() {
	metrics.Register()
}

// newSolveCmd returns the solve subcommand, grounded on the teacher's
// generate subcommand shape: a cobra.Command with RunE and flags bound
// with StringVarP.
func newSolveCmd() *cobra.Command {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a Slitherlink instance",
		Long: `The slither solve command reduces a Slitherlink instance to CNF,
drives a SAT oracle through the CEGAR loop, and prints the resulting
loop.

  $ slither solve -i puzzle.txt
`,
		RunE: solveFunc,
	}

	solveCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the instance file.")
	solveCmd.Flags().StringVarP(&cnfOutPath, "cnf-out", "o", "", "Write the baseline CNF to this path before solving.")
	solveCmd.Flags().StringVarP(&oracleCmd, "oracle", "s", "glucose", "External SAT solver binary to invoke.")
	solveCmd.Flags().StringVar(&oracleArgs, "oracle-args", "-model", "Extra whitespace-separated arguments passed to the oracle binary.")
	solveCmd.Flags().StringVar(&backend, "backend", "external", `SAT backend: "external" (spawn --oracle) or "embedded" (in-process gini).`)
	solveCmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort the solve after this duration (0 disables the timeout).")
	solveCmd.Flags().BoolVar(&printCNF, "print-cnf", false, "Print the baseline CNF to stdout before solving.")
	solveCmd.Flags().BoolVar(&collectStats, "collect-stats", false, "Collect and print CEGAR/oracle statistics as YAML.")
	solveCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Pass solver verbosity through to the external oracle.")
	solveCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "If set, serve the solve's Prometheus gauges on this address at /metrics after solving (e.g. \":8080\") until killed. Requires --collect-stats.")

	if err := solveCmd.MarkFlagRequired("input"); err != nil {
		log.Fatalf("failed to mark `input` flag for `solve` subcommand as required")
	}

	return solveCmd
}

func solveFunc(cmd *cobra.Command, args []string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "opening instance file"))
		os.Exit(2)
	}
	defer f.Close()

	puzzle, err := instance.Parse(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "parsing instance file"))
		os.Exit(2)
	}

	if printCNF || cnfOutPath != "" {
		g, err := grid.Build(puzzle)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		baseline := encoder.EncodeBaseline(g)

		if printCNF {
			if err := baseline.WriteDIMACS(os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
		}
		if cnfOutPath != "" {
			out, err := os.Create(cnfOutPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			err = baseline.WriteDIMACS(out)
			out.Close()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
		}
	}

	o, err := buildOracle()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	driver := cegar.NewDriver(o, collectStats, log.NewEntry(log.StandardLogger()))
	outcome := driver.Solve(ctx, puzzle)
	metrics.SolvesTotal.Inc()

	switch outcome.Kind {
	case cegar.Solved:
		if err := render.Write(os.Stdout, outcome.Grid, outcome.Assignment); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if collectStats {
			printStats(driver.Stats())
		}
		serveMetricsIfRequested(driver.Stats())
		return nil

	case cegar.Unsat:
		fmt.Println("UNSATISFIABLE")
		if collectStats {
			printStats(driver.Stats())
		}
		serveMetricsIfRequested(driver.Stats())
		os.Exit(1)
		return nil

	default:
		fmt.Fprintln(os.Stderr, outcome.Err)
		os.Exit(2)
		return nil
	}
}

// serveMetricsIfRequested blocks serving the process's Prometheus
// gauges at /metrics on metricsAddr, grounded on
// pkg/lib/server/server.go's mux.Handle(promhttp.Handler()) shape. A
// solve run with --metrics-addr set is expected to be scraped and
// killed by its caller rather than exit on its own, so this only runs
// when the flag is non-empty.
func serveMetricsIfRequested(stats cegar.Stats) {
	if metricsAddr == "" {
		return
	}
	if !collectStats {
		log.Warn("--metrics-addr has no effect without --collect-stats")
		return
	}

	metrics.UpdateFromStats(stats)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Infof("serving metrics on %s/metrics", metricsAddr)
	if err := http.ListenAndServe(metricsAddr, mux); err != nil {
		log.Errorf("metrics server: %v", err)
	}
}

func buildOracle() (oracle.Oracle, error) {
	logger := log.NewEntry(log.StandardLogger())

	switch backend {
	case "embedded":
		return oracle.NewEmbedded(logger), nil
	case "external":
		args := strings.Fields(oracleArgs)
		if verbose {
			args = append(args, "-verb=1")
		}
		return oracle.NewExternal(oracleCmd, args, logger), nil
	default:
		return nil, fmt.Errorf("unknown backend %q, want \"external\" or \"embedded\"", backend)
	}
}

func printStats(stats cegar.Stats) {
	out, err := yaml.Marshal(stats)
	if err != nil {
		log.Warnf("failed to marshal stats: %v", err)
		return
	}
	fmt.Fprint(os.Stderr, string(out))
}
