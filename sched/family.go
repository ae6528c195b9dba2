// Package sched computes noise-schedule statistics for diffusion-style
// corruption processes: per-step variance ("beta") schedules across seven
// growth-curve families, the derived retention/SNR statistics sequence, and
// a bisection solver that inverts a terminal SNR target back to the
// end-variance parameter. Every function is a pure, synchronous mapping of
// its inputs; callers may memoize results by parameter equality.
package sched

import (
	"fmt"
	"strings"
)

// ScheduleFamily selects the growth curve used to spread per-step variance
// values between BetaStart and BetaEnd.
type ScheduleFamily string

const (
	// FamilyLinear spaces betas evenly between the bounds.
	FamilyLinear ScheduleFamily = "linear"
	// FamilyQuad interpolates the square roots of the bounds, then squares.
	FamilyQuad ScheduleFamily = "quad"
	// FamilySqrt interpolates the squared bounds, then takes square roots.
	FamilySqrt ScheduleFamily = "sqrt"
	// FamilyConst repeats BetaEnd at every step; BetaStart is ignored.
	FamilyConst ScheduleFamily = "const"
	// FamilyRecip scales BetaEnd by reciprocals of a descending ramp, so
	// betas ascend from BetaEnd/n to BetaEnd.
	FamilyRecip ScheduleFamily = "recip"
	// FamilyLog interpolates in log2 space of the bounds and raises 2 back,
	// giving exponential-shaped growth across steps.
	FamilyLog ScheduleFamily = "log"
	// FamilyExp interpolates the pow2-transformed bounds and takes log2 of
	// the result, giving logarithmic-shaped growth across steps.
	FamilyExp ScheduleFamily = "exp"
)

// validFamilies maps accepted family names.
var validFamilies = map[ScheduleFamily]bool{
	FamilyLinear: true,
	FamilyQuad:   true,
	FamilySqrt:   true,
	FamilyConst:  true,
	FamilyRecip:  true,
	FamilyLog:    true,
	FamilyExp:    true,
}

// IsValidFamily returns true if the given string names a known schedule family.
func IsValidFamily(family string) bool {
	return validFamilies[ScheduleFamily(strings.ToLower(family))]
}

// ParseFamily converts a family name to a ScheduleFamily, case-insensitively.
func ParseFamily(family string) (ScheduleFamily, error) {
	f := ScheduleFamily(strings.ToLower(family))
	if !validFamilies[f] {
		return "", fmt.Errorf("unknown schedule family %q; valid: linear, quad, sqrt, const, recip, log, exp", family)
	}
	return f, nil
}
