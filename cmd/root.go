package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/noisesched/noisesched/sched"
)

var (
	// CLI flags shared by the schedule subcommands
	betaStart float64 // starting per-step variance
	betaEnd   float64 // ending per-step variance
	timesteps int     // number of corruption steps
	familyArg string  // growth-curve family name
	logLevel  string  // log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "noisesched",
	Short: "Noise-schedule statistics for diffusion-style corruption processes",
}

// generateCmd computes a schedule and prints the per-step statistics table.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a schedule and print its per-step statistics",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		params := parseParams()

		logrus.Infof("Generating %s schedule: betaStart=%g, betaEnd=%g, timesteps=%d",
			params.Family, params.BetaStart, params.BetaEnd, params.Timesteps)

		records := sched.Generate(params)
		printRecords(os.Stdout, records)

		s := sched.Summarize(records)
		fmt.Printf("steps=%d meanBeta=%.6g terminalAlphaBar=%.6g terminalSNR=%.4fdB\n",
			s.Steps, s.MeanBeta, s.TerminalAlphaBar, s.TerminalSNRDb)
	},
}

// setupLogging parses and applies the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// parseParams converts the shared schedule flags into ScheduleParams.
// Non-finite flag values degrade to the documented defaults; an unknown
// family name is a hard error at the CLI boundary.
func parseParams() sched.ScheduleParams {
	family, err := sched.ParseFamily(familyArg)
	if err != nil {
		logrus.Fatalf("Invalid schedule family: %v", err)
	}
	return sched.NewScheduleParams(betaStart, betaEnd, timesteps, family)
}

// printRecords renders the per-step statistics with aligned columns.
func printRecords(w io.Writer, records []sched.TimestepRecord) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "T\tBETA\tALPHA\tALPHA_BAR\t1-ALPHA_BAR\tSQRT(ALPHA_BAR)\tSQRT(1-ALPHA_BAR)\tSNR\tSNR(DB)")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%.8g\t%.8g\t%.8g\t%.8g\t%.8g\t%.8g\t%.8g\t%.4f\n",
			r.T, r.Beta, r.Alpha, r.AlphaBar, r.OneMinusAlphaBar,
			r.SqrtAlphaBar, r.SqrtOneMinusAlphaBar, r.SNR, r.SNRDb)
	}
	_ = tw.Flush()
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addScheduleFlags registers the shared schedule parameter flags on a
// subcommand. Solve and compare register their own subsets: the end
// variance is solve's output rather than an input, and compare takes its
// families as a list.
func addScheduleFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&betaStart, "beta-start", sched.DefaultBetaStart, "Starting beta (per-step variance)")
	cmd.Flags().Float64Var(&betaEnd, "beta-end", sched.DefaultBetaEnd, "Ending beta (per-step variance)")
	cmd.Flags().IntVar(&timesteps, "timesteps", sched.DefaultTimesteps, "Number of diffusion timesteps")
	cmd.Flags().StringVar(&familyArg, "family", "linear", "Schedule family (linear, quad, sqrt, const, recip, log, exp)")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	addScheduleFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}
