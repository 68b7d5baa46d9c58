// Package followcam is the first-person camera rig. It trails the player's
// head, widens the field of view with speed and tilts on strafe and slide. It
// only reads movement state and never feeds back into it.
package followcam

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/splitsecond/splitsecond/shared/gamemath"
	"github.com/splitsecond/splitsecond/shared/movement"
)

// Config is the rig tuning. Angles are degrees, rates are per second.
type Config struct {
	NormalOffset  mgl64.Vec3
	SlidingOffset mgl64.Vec3
	PositionRate  float64

	BaseFOV       float64
	MaxFOV        float64
	FOVSpeedScale float64
	FOVRate       float64
	WalkSpeed     float64

	StrafeTilt     float64
	StrafeTiltRate float64
	SlideTilt      float64
	SlideTiltRate  float64

	MaxPitch float64
	// Sensitivity is degrees of rotation per pixel of mouse motion.
	Sensitivity float64
}

func DefaultConfig() Config {
	return Config{
		NormalOffset:  mgl64.Vec3{0, 1.5, 0},
		SlidingOffset: mgl64.Vec3{0, 1.0, 0},
		PositionRate:  10,

		BaseFOV:       75,
		MaxFOV:        100,
		FOVSpeedScale: 0.25,
		FOVRate:       5,
		WalkSpeed:     6,

		StrafeTilt:     2.5,
		StrafeTiltRate: 8,
		SlideTilt:      15,
		SlideTiltRate:  5,

		MaxPitch:    90,
		Sensitivity: 0.1,
	}
}

type Rig struct {
	cfg Config

	position mgl64.Vec3
	yaw      float64
	pitch    float64

	fov        float64
	roll       float64
	slidePitch float64
}

// NewRig places the rig at the head of a player standing at feet, looking
// down -Z.
func NewRig(cfg Config, feet mgl64.Vec3) *Rig {
	return &Rig{
		cfg:      cfg,
		position: feet.Add(cfg.NormalOffset),
		fov:      cfg.BaseFOV,
	}
}

// Look applies a mouse delta in pixels.
func (r *Rig) Look(dx, dy float64) {
	r.yaw += mgl64.DegToRad(dx * r.cfg.Sensitivity)
	r.yaw = math.Remainder(r.yaw, 2*math.Pi)

	limit := mgl64.DegToRad(r.cfg.MaxPitch)
	r.pitch = mgl64.Clamp(r.pitch-mgl64.DegToRad(dy*r.cfg.Sensitivity), -limit, limit)
}

// SetYaw turns the rig to face yaw radians with a level pitch.
func (r *Rig) SetYaw(yaw float64) {
	r.yaw = math.Remainder(yaw, 2*math.Pi)
	r.pitch = 0
}

// SetSensitivity changes the mouse sensitivity at runtime.
func (r *Rig) SetSensitivity(degPerPixel float64) {
	r.cfg.Sensitivity = degPerPixel
}

// Snap moves the rig onto the player's head without smoothing. Used on spawn
// and respawn.
func (r *Rig) Snap(feet mgl64.Vec3) {
	r.position = feet.Add(r.cfg.NormalOffset)
	r.roll = 0
	r.slidePitch = 0
	r.fov = r.cfg.BaseFOV
}

// Update follows the movement snapshot. strafe is the raw strafe axis.
func (r *Rig) Update(s movement.Snapshot, strafe, dt float64) {
	if dt <= 0 {
		return
	}
	offset := r.cfg.NormalOffset
	if s.Sliding {
		offset = r.cfg.SlidingOffset
	}
	r.position = gamemath.ApproachVec3(r.position, s.Position.Add(offset), r.cfg.PositionRate, dt)

	r.fov = gamemath.Approach(r.fov, r.TargetFOV(s.Speed), r.cfg.FOVRate, dt)

	r.roll = gamemath.Approach(r.roll, -strafe*r.cfg.StrafeTilt, r.cfg.StrafeTiltRate, dt)

	slideTarget := 0.0
	if s.Sliding {
		slideTarget = r.cfg.SlideTilt
	}
	r.slidePitch = gamemath.Approach(r.slidePitch, slideTarget, r.cfg.SlideTiltRate, dt)
}

// TargetFOV is the field of view the rig settles at for a planar speed.
func (r *Rig) TargetFOV(speed float64) float64 {
	t := gamemath.Clamp01((speed - r.cfg.WalkSpeed) * r.cfg.FOVSpeedScale)
	return gamemath.Lerp(r.cfg.BaseFOV, r.cfg.MaxFOV, t)
}

// Eye is the camera position.
func (r *Rig) Eye() mgl64.Vec3 {
	return r.position
}

// Forward is the aim direction. Tilt is presentation only and does not
// affect it.
func (r *Rig) Forward() mgl64.Vec3 {
	return gamemath.Direction(r.yaw, r.pitch)
}

// Yaw is the heading in radians, shared with the movement input.
func (r *Rig) Yaw() float64 {
	return r.yaw
}

func (r *Rig) Pitch() float64 {
	return r.pitch
}

func (r *Rig) FOV() float64 {
	return r.fov
}

// Roll is the strafe tilt in degrees.
func (r *Rig) Roll() float64 {
	return r.roll
}

// SlideTilt is the extra pitch tilt in degrees while sliding.
func (r *Rig) SlideTilt() float64 {
	return r.slidePitch
}
