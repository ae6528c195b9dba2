package sched

import (
	"errors"
	"fmt"
	"math"
)

// Bisection bracket for the end-variance parameter and the fixed iteration
// budget. 40 halvings shrink the bracket below (0.999-1e-7)/2^40, well
// past meaningful precision for this domain, so the loop always runs to
// completion with no early exit.
const (
	solverLow        = 1e-7
	solverHigh       = 0.999
	solverIterations = 40
)

// ErrNoConvergence reports that the bisection search settled on an end
// variance whose terminal SNR misses the requested target. This happens
// when terminal SNR is not monotonically decreasing in the end variance
// for the chosen family and parameters, or when the target lies outside
// the reachable range.
var ErrNoConvergence = errors.New("target SNR search did not converge")

// SolveBetaEnd finds the end variance in [1e-7, 0.999] whose schedule has
// terminal SNR (dB) closest to target, assuming terminal SNR decreases as
// the end variance grows. The search runs the full iteration budget and
// returns the upper bracket edge; it never reports failure.
func SolveBetaEnd(targetSnrDb, betaStart float64, timesteps int, family ScheduleFamily) float64 {
	low, high := solverLow, solverHigh
	for i := 0; i < solverIterations; i++ {
		mid := (low + high) / 2
		if terminalSNRDb(betaStart, mid, timesteps, family) > targetSnrDb {
			low = mid // signal still too clean, need more corruption
		} else {
			high = mid
		}
	}
	return high
}

// SolveBetaEndChecked runs the same search as SolveBetaEnd, then verifies
// that the terminal SNR at the returned value falls within tolDb of the
// target. This guards against families where the monotonicity assumption
// breaks down. The estimate is returned even when the check fails, wrapped
// with ErrNoConvergence.
func SolveBetaEndChecked(targetSnrDb, betaStart float64, timesteps int, family ScheduleFamily, tolDb float64) (float64, error) {
	betaEnd := SolveBetaEnd(targetSnrDb, betaStart, timesteps, family)
	achieved := terminalSNRDb(betaStart, betaEnd, timesteps, family)
	if diff := math.Abs(achieved - targetSnrDb); diff > tolDb {
		return betaEnd, fmt.Errorf("%w: terminal SNR %.4f dB misses target %.4f dB by %.4f dB",
			ErrNoConvergence, achieved, targetSnrDb, diff)
	}
	return betaEnd, nil
}

// terminalSNRDb evaluates a full schedule and reads the final step's SNR in
// decibels. Cost is O(n) per call, so the solver as a whole is O(40n).
func terminalSNRDb(betaStart, betaEnd float64, timesteps int, family ScheduleFamily) float64 {
	records := Generate(ScheduleParams{
		BetaStart: betaStart,
		BetaEnd:   betaEnd,
		Timesteps: timesteps,
		Family:    family,
	})
	return records[len(records)-1].SNRDb
}
