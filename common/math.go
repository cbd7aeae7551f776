package common

import "github.com/jakecoffman/cp"

func Lerp(a, b, t float64) float64 {
	return cp.Lerp(a, b, t)
}

func Clamp(v, lo, hi float64) float64 {
	return cp.Clamp(v, lo, hi)
}

// Clamp01 is used for every probability the boss rolls against.
func Clamp01(v float64) float64 {
	return cp.Clamp01(v)
}

func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Dir returns +1 when facing right and -1 otherwise.
func Dir(right bool) float64 {
	if right {
		return 1
	}
	return -1
}
