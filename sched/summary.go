package sched

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a schedule's derived statistics for display and
// side-by-side comparison.
type Summary struct {
	Steps            int
	MeanBeta         float64
	TerminalAlphaBar float64
	TerminalSNRDb    float64
	MinSNRDb         float64
	MaxSNRDb         float64
}

// Summarize computes aggregate statistics from a record sequence. Safe for
// empty sequences (returns zero-value fields).
func Summarize(records []TimestepRecord) Summary {
	summary := Summary{Steps: len(records)}
	if len(records) == 0 {
		return summary
	}

	betas := make([]float64, len(records))
	snrDbs := make([]float64, len(records))
	for i, r := range records {
		betas[i] = r.Beta
		snrDbs[i] = r.SNRDb
	}
	last := records[len(records)-1]

	summary.MeanBeta = stat.Mean(betas, nil)
	summary.TerminalAlphaBar = last.AlphaBar
	summary.TerminalSNRDb = last.SNRDb
	summary.MinSNRDb = floats.Min(snrDbs)
	summary.MaxSNRDb = floats.Max(snrDbs)
	return summary
}
