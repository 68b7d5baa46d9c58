// Package gamemath holds the small numeric helpers shared by the movement
// packages. Everything here is pure and frame-rate independent.
package gamemath

import "math"

// Approach moves current toward target exponentially. The remaining gap
// shrinks by a factor of e every 1/rate seconds, so splitting dt into several
// smaller steps gives the same result.
func Approach(current, target, rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return current
	}
	return target + (current-target)*math.Exp(-rate*dt)
}

// Decay is Approach with a target of zero.
func Decay(value, rate, dt float64) float64 {
	return Approach(value, 0, rate, dt)
}

// DecayDuration returns how long a magnitude takes to decay from `from` to
// `to` at rate. Returns 0 when no decay is needed and +Inf when it never gets
// there.
func DecayDuration(from, to, rate float64) float64 {
	if from <= to {
		return 0
	}
	if rate <= 0 || to <= 0 {
		return math.Inf(1)
	}
	return math.Log(to/from) / -rate
}

// MoveTowards moves current toward target by at most maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp interpolates between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
