package cmd

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/meenakshi184/wifisim/sim"
	"github.com/meenakshi184/wifisim/sim/scenario"
)

var (
	// CLI flags shared by the run and sweep commands
	seed           int64   // master seed for backoff draws and user placement
	users          int     // number of stations contending for the medium
	packetsPerUser int     // packets pre-generated per station
	policy         string  // medium-access policy name
	timeBudgetS    float64 // maximum simulated time in seconds
	queueCapacity  int     // per-station pending packet bound
	logLevel       string  // log verbosity level
	scenarioFile   string  // YAML scenario spec path (sweep only)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "wifisim",
	Short: "Discrete-event simulator for WiFi medium contention",
}

// runCmd executes a single simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single contention simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := sim.DefaultConfig()
		cfg.UserCount = users
		cfg.PacketsPerUser = packetsPerUser
		cfg.Policy = sim.Policy(policy)
		cfg.Seed = seed
		cfg.TimeBudget = int64(timeBudgetS * float64(sim.TicksPerSecond))
		cfg.QueueCapacity = queueCapacity

		executeRun(cfg)
	},
}

// sweepCmd executes one simulation per scenario, iterating user counts
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run a scenario sweep over user counts",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		var spec *scenario.Spec
		if scenarioFile != "" {
			loaded, err := scenario.Load(scenarioFile)
			if err != nil {
				logrus.Fatalf("unable to load scenario spec: %v", err)
			}
			spec = loaded
		} else {
			spec = scenario.Preset(policy, seed)
			if spec == nil {
				logrus.Fatalf("no built-in sweep for policy %q", policy)
			}
		}

		for i := range spec.Runs {
			executeRun(spec.Config(i))
		}
	},
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// executeRun drives one simulation to completion and prints its snapshot.
// Per-packet failures never reach here; only the empty-result condition and
// the fatal budget abort surface as errors, and neither crashes the process.
func executeRun(cfg sim.Config) {
	s, err := sim.NewSimulator(cfg)
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	snap, err := s.Run()
	switch {
	case errors.Is(err, sim.ErrNoPacketsTransmitted):
		logrus.Errorf("failed scenario (%d users): no packets transmitted", cfg.UserCount)
	case errors.Is(err, sim.ErrTimeBudgetExceeded):
		logrus.Errorf("incomplete run (%d users): %v", cfg.UserCount, err)
	case err != nil:
		logrus.Fatalf("simulation error: %v", err)
	}
	snap.Print(cfg.UserCount)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func init() {
	for _, c := range []*cobra.Command{runCmd, sweepCmd} {
		c.Flags().Int64Var(&seed, "seed", 1, "Master seed for backoff draws and user placement")
		c.Flags().IntVar(&users, "users", 1, "Number of stations")
		c.Flags().IntVar(&packetsPerUser, "packets", 10, "Packets per station")
		c.Flags().StringVar(&policy, "policy", "round-robin", "Access policy: round-robin, contention, or csma")
		c.Flags().Float64Var(&timeBudgetS, "time-budget", 5000, "Maximum simulated time in seconds")
		c.Flags().IntVar(&queueCapacity, "queue-capacity", 50, "Per-station queue capacity")
		c.Flags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	}
	sweepCmd.Flags().StringVar(&scenarioFile, "scenario", "", "YAML scenario spec (overrides the built-in sweep)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}
