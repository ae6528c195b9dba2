package sched

import "gonum.org/v1/gonum/floats"

// Linspace returns max(1, n) evenly spaced values from start to end. A
// single-element result is just [start]. Longer sequences use
// floats.Span, which computes start + step*i per index rather than
// accumulating, so rounding error does not build up across the sequence.
func Linspace(start, end float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	if n == 1 {
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, end)
}
