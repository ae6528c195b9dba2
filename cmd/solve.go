package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/noisesched/noisesched/sched"
)

var (
	targetSnrDb float64
	toleranceDb float64
)

// solveCmd inverts the schedule: find the end variance whose terminal SNR
// matches the target.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve for the end variance that hits a target terminal SNR",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		family, err := sched.ParseFamily(familyArg)
		if err != nil {
			logrus.Fatalf("Invalid schedule family: %v", err)
		}

		solved, err := sched.SolveBetaEndChecked(targetSnrDb, betaStart, timesteps, family, toleranceDb)
		if err != nil {
			// Approximate answer, not a failure: report it and keep going.
			logrus.Warnf("Solve did not converge: %v", err)
		}

		records := sched.Generate(sched.ScheduleParams{
			BetaStart: betaStart,
			BetaEnd:   solved,
			Timesteps: timesteps,
			Family:    family,
		})
		terminal := records[len(records)-1]
		fmt.Printf("betaEnd=%.10g terminalSNR=%.4fdB (target %.4fdB)\n",
			solved, terminal.SNRDb, targetSnrDb)
	},
}

func init() {
	solveCmd.Flags().Float64Var(&targetSnrDb, "target-snr-db", -10, "Target terminal SNR in decibels")
	solveCmd.Flags().Float64Var(&toleranceDb, "tolerance-db", 0.01, "Acceptable miss between target and achieved terminal SNR (dB)")
	solveCmd.Flags().Float64Var(&betaStart, "beta-start", sched.DefaultBetaStart, "Starting beta (per-step variance)")
	solveCmd.Flags().IntVar(&timesteps, "timesteps", sched.DefaultTimesteps, "Number of diffusion timesteps")
	solveCmd.Flags().StringVar(&familyArg, "family", "linear", "Schedule family (linear, quad, sqrt, const, recip, log, exp)")

	rootCmd.AddCommand(solveCmd)
}
