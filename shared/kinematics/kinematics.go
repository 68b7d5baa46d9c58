// Package kinematics defines the contracts between the player controllers and
// the host they run in: collision queries, the body mover, input sampling,
// respawn and the viewpoint used for aiming.
package kinematics

import "github.com/go-gl/mathgl/mgl64"

// Collision layers understood by the reference host.
const (
	LayerSolid   = "solid"
	LayerWall    = "wall"
	LayerGrapple = "grapple"
)

// Hit is the result of a successful probe.
type Hit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// CollisionProbe casts a ray and reports the nearest surface on any of the
// given layers. A miss is a normal result, not an error.
type CollisionProbe interface {
	Probe(origin, direction mgl64.Vec3, maxDistance float64, layers ...string) (Hit, bool)
}

// MoveResult is what the mover reports after resolving a displacement.
type MoveResult struct {
	Position mgl64.Vec3
	Grounded bool
}

// KinematicMover resolves a displacement against level geometry.
type KinematicMover interface {
	Move(displacement mgl64.Vec3) MoveResult
	SetHeight(height float64)
	Teleport(position mgl64.Vec3)
}

// InputSnapshot is the per-tick input sample. Move is (strafe, forward) in
// [-1, 1]; Yaw is the body heading in radians.
type InputSnapshot struct {
	Move mgl64.Vec2

	Sprint        bool
	SlidePressed  bool
	SlideReleased bool
	JumpPressed   bool

	GrapplePressed  bool
	GrappleReleased bool

	Strafe float64
	Yaw    float64
}

// InputSource produces one snapshot per tick.
type InputSource interface {
	Snapshot() InputSnapshot
}

// InputFunc adapts a function to InputSource.
type InputFunc func() InputSnapshot

func (f InputFunc) Snapshot() InputSnapshot { return f() }

// RespawnTarget is the point a fallen player is returned to.
type RespawnTarget interface {
	RespawnPoint() mgl64.Vec3
}

// Point is a fixed RespawnTarget.
type Point mgl64.Vec3

func (p Point) RespawnPoint() mgl64.Vec3 { return mgl64.Vec3(p) }

// Viewpoint is where the player is looking from, used for aiming.
type Viewpoint interface {
	Eye() mgl64.Vec3
	Forward() mgl64.Vec3
}
