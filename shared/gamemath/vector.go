package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis. The horizontal plane is X/Z.
var Up = mgl64.Vec3{0, 1, 0}

const epsilon = 1e-9

// DecayVec3 decays every component of v toward zero at rate.
func DecayVec3(v mgl64.Vec3, rate, dt float64) mgl64.Vec3 {
	if rate <= 0 || dt <= 0 {
		return v
	}
	return v.Mul(math.Exp(-rate * dt))
}

// ApproachVec3 is Approach applied to a vector.
func ApproachVec3(current, target mgl64.Vec3, rate, dt float64) mgl64.Vec3 {
	return target.Add(DecayVec3(current.Sub(target), rate, dt))
}

// LerpVec3 interpolates between a and b. t is not clamped.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// SafeNormalize returns the unit vector of v, or the zero vector and false
// when v has no usable length.
func SafeNormalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < epsilon || math.IsNaN(l) {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// ClampLength scales v down so that its length is at most max.
func ClampLength(v mgl64.Vec3, max float64) mgl64.Vec3 {
	if max <= 0 {
		return mgl64.Vec3{}
	}
	l := v.Len()
	if l <= max {
		return v
	}
	return v.Mul(max / l)
}

// Horizontal drops the Y component.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// AngleDeg returns the unsigned angle between a and b in degrees, or 0 when
// either vector is degenerate.
func AngleDeg(a, b mgl64.Vec3) float64 {
	na, ok := SafeNormalize(a)
	if !ok {
		return 0
	}
	nb, ok := SafeNormalize(b)
	if !ok {
		return 0
	}
	return mgl64.RadToDeg(math.Acos(mgl64.Clamp(na.Dot(nb), -1, 1)))
}

// YawBasis returns the horizontal forward and right vectors for a yaw in
// radians. Yaw 0 looks down -Z; positive yaw turns toward +X.
func YawBasis(yaw float64) (forward, right mgl64.Vec3) {
	sin, cos := math.Sincos(yaw)
	forward = mgl64.Vec3{sin, 0, -cos}
	right = mgl64.Vec3{cos, 0, sin}
	return forward, right
}

// Direction returns the unit view direction for a yaw and pitch in radians.
// Positive pitch looks up.
func Direction(yaw, pitch float64) mgl64.Vec3 {
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	return mgl64.Vec3{sy * cp, sp, -cy * cp}
}

// SmoothDampVec3 moves current toward target with a critically damped spring.
// velocity carries the spring state between calls and must be kept by the
// caller.
func SmoothDampVec3(current, target mgl64.Vec3, velocity *mgl64.Vec3, smoothTime, dt float64) mgl64.Vec3 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current.Sub(target)
	temp := velocity.Add(change.Mul(omega)).Mul(dt)
	*velocity = velocity.Sub(temp.Mul(omega)).Mul(exp)
	out := target.Add(change.Add(temp).Mul(exp))

	// Never overshoot.
	if target.Sub(current).Dot(out.Sub(target)) > 0 {
		*velocity = mgl64.Vec3{}
		return target
	}
	return out
}
