package utils

import "math"

// FloorTo truncates x to the given number of decimal places.
func FloorTo(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Floor(x*p) / p
}

// ClampF bounds x to [lo, hi].
func ClampF(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
