package sched

import "math"

// logFloor keeps log2 arguments strictly positive when a beta bound is zero
// or negative.
const logFloor = 1e-10

// Betas expands params into exactly max(1, Timesteps) per-step variance
// values, dispatching on the schedule family. An unrecognized family falls
// back to the linear construction. Betas never fails.
func Betas(p ScheduleParams) []float64 {
	n := p.Timesteps
	if n < 1 {
		n = 1
	}
	switch p.Family {
	case FamilyQuad:
		betas := Linspace(math.Sqrt(p.BetaStart), math.Sqrt(p.BetaEnd), n)
		for i, v := range betas {
			betas[i] = v * v
		}
		return betas
	case FamilySqrt:
		betas := Linspace(p.BetaStart*p.BetaStart, p.BetaEnd*p.BetaEnd, n)
		for i, v := range betas {
			betas[i] = math.Sqrt(v)
		}
		return betas
	case FamilyConst:
		betas := make([]float64, n)
		for i := range betas {
			betas[i] = p.BetaEnd
		}
		return betas
	case FamilyRecip:
		// Descending ramp n..1; betas ascend from BetaEnd/n to BetaEnd.
		betas := Linspace(float64(n), 1, n)
		for i, v := range betas {
			betas[i] = p.BetaEnd * (1 / v)
		}
		return betas
	case FamilyLog:
		ls := math.Log2(math.Max(logFloor, p.BetaStart))
		le := math.Log2(math.Max(logFloor, p.BetaEnd))
		betas := Linspace(ls, le, n)
		for i, v := range betas {
			betas[i] = math.Pow(2, v)
		}
		return betas
	case FamilyExp:
		betas := Linspace(math.Pow(2, p.BetaStart), math.Pow(2, p.BetaEnd), n)
		for i, v := range betas {
			betas[i] = math.Log2(v)
		}
		return betas
	default:
		// FamilyLinear, and the fallback for anything unrecognized.
		return Linspace(p.BetaStart, p.BetaEnd, n)
	}
}
