// Package movement implements the player's kinematic controller: the
// locomotion state machine and the velocity composer that turns its output
// into one displacement per tick.
package movement

import "github.com/go-gl/mathgl/mgl64"

// Mode is the locomotion mode. Exactly one is active at a time.
type Mode int

const (
	Walk Mode = iota
	Sprint
	Slide
	Airborne
	WallJumpRecovery
)

var modeNames = map[Mode]string{
	Walk:             "walk",
	Sprint:           "sprint",
	Slide:            "slide",
	Airborne:         "airborne",
	WallJumpRecovery: "walljump",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// IsAirborne reports whether the mode belongs to the air.
func (m Mode) IsAirborne() bool {
	return m == Airborne || m == WallJumpRecovery
}

// State is the player's kinematic state, mutated once per tick by the
// Controller.
type State struct {
	Position         mgl64.Vec3
	VerticalVelocity float64
	ExternalVelocity mgl64.Vec3
	WallJumpImpulse  mgl64.Vec3
	TetherVelocity   mgl64.Vec3

	Mode          Mode
	CurrentHeight float64
	TargetHeight  float64
	IsGrounded    bool

	SlideTimeRemaining float64
	SlideArmed         bool

	WallJumpCooldownUntil float64
	LandedAt              float64

	// Clock is the simulation time in seconds, the sum of all tick deltas.
	Clock float64
}

// Snapshot is the read-only view handed to the camera and the HUD.
type Snapshot struct {
	Position         mgl64.Vec3
	Mode             Mode
	Sliding          bool
	Grounded         bool
	Height           float64
	Speed            float64
	TargetSpeed      float64
	ExternalVelocity mgl64.Vec3
}
