package sched

import "math"

// Defaults substituted when a configuration surface hands over empty or
// unparseable parameter values.
const (
	DefaultBetaStart = 0.0001
	DefaultBetaEnd   = 0.02
	DefaultTimesteps = 100
)

// ScheduleParams is one immutable parameter set for a schedule computation.
// BetaStart and BetaEnd are expected in (0,1) and Timesteps positive, but
// values outside those ranges are floored or clamped by the engine rather
// than rejected.
type ScheduleParams struct {
	BetaStart float64        `yaml:"beta_start"`
	BetaEnd   float64        `yaml:"beta_end"`
	Timesteps int            `yaml:"timesteps"`
	Family    ScheduleFamily `yaml:"family"`
}

// NewScheduleParams builds a ScheduleParams, substituting the documented
// defaults for empty or non-finite inputs.
func NewScheduleParams(betaStart, betaEnd float64, timesteps int, family ScheduleFamily) ScheduleParams {
	p := ScheduleParams{BetaStart: betaStart, BetaEnd: betaEnd, Timesteps: timesteps, Family: family}
	return p.withDefaults()
}

// withDefaults replaces unset (zero) or non-finite fields with the
// documented defaults. Negative betas and sub-1 step counts pass through;
// the generator floors those itself.
func (p ScheduleParams) withDefaults() ScheduleParams {
	if p.BetaStart == 0 || !isFinite(p.BetaStart) {
		p.BetaStart = DefaultBetaStart
	}
	if p.BetaEnd == 0 || !isFinite(p.BetaEnd) {
		p.BetaEnd = DefaultBetaEnd
	}
	if p.Timesteps == 0 {
		p.Timesteps = DefaultTimesteps
	}
	if p.Family == "" {
		p.Family = FamilyLinear
	}
	return p
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
