package vmath

import (
	"math"
	"math/rand"
)

// TwoPi is one full orbital turn in radians
const TwoPi = 2 * math.Pi

// WrapAngle folds an angle into [0, 2π)
// Angles already inside the range are returned unchanged so repeated
// small increments stay exact until the turn completes
func WrapAngle(a float64) float64 {
	if a >= 0 && a < TwoPi {
		return a
	}
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// Mod of a value just below a negative multiple can round up to 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsFinite rejects NaN and ±Inf
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// RandRange returns a uniform value in [lo, hi)
func RandRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
