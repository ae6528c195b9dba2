package sched

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Floors guarding the SNR derivation. The denominator floor applies only
// when 1-alphaBar is exactly zero; small nonzero denominators pass through.
const (
	snrDenomFloor = 1e-12
	snrDbFloor    = 1e-20
)

// TimestepRecord holds the derived statistics for one corruption step.
// Records are never mutated after Evaluate produces them.
type TimestepRecord struct {
	T                    int     // 1-based step index
	Beta                 float64 // per-step variance
	Alpha                float64 // 1 - Beta, signal retained at this step
	AlphaBar             float64 // cumulative product of Alpha through step T
	OneMinusAlphaBar     float64
	SqrtAlphaBar         float64
	SqrtOneMinusAlphaBar float64
	SNR                  float64 // AlphaBar / OneMinusAlphaBar
	SNRDb                float64 // 10 * log10(SNR)
}

// Evaluate derives the per-step statistics sequence from a beta sequence.
// The cumulative retention product is inherently sequential: each step's
// AlphaBar depends on every prior step's Alpha.
func Evaluate(betas []float64) []TimestepRecord {
	n := len(betas)
	alphas := make([]float64, n)
	for i, beta := range betas {
		alphas[i] = 1 - beta
	}
	alphaBars := floats.CumProd(make([]float64, n), alphas)

	records := make([]TimestepRecord, n)
	for i := range records {
		alphaBar := alphaBars[i]
		oneMinus := 1 - alphaBar
		denom := oneMinus
		if denom == 0 {
			denom = snrDenomFloor
		}
		snr := alphaBar / denom
		records[i] = TimestepRecord{
			T:                    i + 1,
			Beta:                 betas[i],
			Alpha:                alphas[i],
			AlphaBar:             alphaBar,
			OneMinusAlphaBar:     oneMinus,
			SqrtAlphaBar:         math.Sqrt(alphaBar),
			SqrtOneMinusAlphaBar: math.Sqrt(oneMinus),
			SNR:                  snr,
			SNRDb:                10 * math.Log10(math.Max(snrDbFloor, snr)),
		}
	}
	return records
}

// Generate is the primary entry point: expand params into a beta sequence
// and evaluate the full per-step statistics.
func Generate(p ScheduleParams) []TimestepRecord {
	return Evaluate(Betas(p))
}
