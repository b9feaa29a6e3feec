package weathermath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]. NaN becomes 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return Clamp(v, 0, 1)
}

// ClampPercent limits a user-facing setting to [0, 100]. NaN becomes 0.
func ClampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return Clamp(v, 0, 100)
}

// LifeRatio returns clamp(life/maxLife, 0, 1); a non-positive maxLife yields 0.
func LifeRatio(life, maxLife float64) float64 {
	if maxLife <= 0 {
		return 0
	}
	return Clamp01(life / maxLife)
}

// EdgeTaper is 1 at t=0.5 and falls linearly to 0 at t=0 and t=1.
func EdgeTaper(t float64) float64 {
	return 1 - math.Abs(t-0.5)*2
}
