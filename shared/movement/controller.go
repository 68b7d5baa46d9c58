package movement

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/splitsecond/splitsecond/shared/gamemath"
	"github.com/splitsecond/splitsecond/shared/kinematics"
)

// slideEpsilon absorbs float drift when the slide timer is counted down in
// many small steps.
const slideEpsilon = 1e-9

// Controller is the movement state machine. It owns State and is the only
// thing that mutates it.
type Controller struct {
	cfg      Config
	mover    kinematics.KinematicMover
	probe    kinematics.CollisionProbe
	input    kinematics.InputSource
	respawn  kinematics.RespawnTarget
	composer *Composer

	state    State
	tethered bool
	speed    float64
	respawns int

	warnedNoRespawn bool
}

// NewController builds a controller standing at start. respawn may be nil, in
// which case falling out of the level is logged and ignored.
func NewController(
	cfg Config,
	mover kinematics.KinematicMover,
	probe kinematics.CollisionProbe,
	input kinematics.InputSource,
	respawn kinematics.RespawnTarget,
	start mgl64.Vec3,
) *Controller {
	c := &Controller{
		cfg:      cfg,
		mover:    mover,
		probe:    probe,
		input:    input,
		respawn:  respawn,
		composer: NewComposer(cfg),
		state: State{
			Position:      start,
			Mode:          Walk,
			CurrentHeight: cfg.StandingHeight,
			TargetHeight:  cfg.StandingHeight,
			IsGrounded:    true,
			SlideArmed:    true,
			LandedAt:      -cfg.LandingGrace,
		},
	}
	mover.SetHeight(cfg.StandingHeight)
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Position is the feet position after the last tick.
func (c *Controller) Position() mgl64.Vec3 {
	return c.state.Position
}

// InjectExternalVelocity hands momentum from another system to the composer.
func (c *Controller) InjectExternalVelocity(v mgl64.Vec3) {
	c.composer.Inject(&c.state, v)
}

// DriveVelocity makes v part of the next tick's displacement. While driven,
// gravity is left to whoever drives the body.
func (c *Controller) DriveVelocity(v mgl64.Vec3) {
	c.state.TetherVelocity = v
	c.tethered = true
}

// Snapshot returns the read-only view polled after the tick.
func (c *Controller) Snapshot() Snapshot {
	s := &c.state
	return Snapshot{
		Position:         s.Position,
		Mode:             s.Mode,
		Sliding:          s.Mode == Slide,
		Grounded:         s.IsGrounded,
		Height:           s.CurrentHeight,
		Speed:            c.speed,
		TargetSpeed:      c.targetSpeed(),
		ExternalVelocity: s.ExternalVelocity,
	}
}

// Update advances the controller by dt seconds.
func (c *Controller) Update(dt float64) {
	if dt <= 0 {
		return
	}
	s := &c.state
	in := c.input.Snapshot()
	s.Clock += dt

	move := c.moveVector(in)
	moving := move.Len() > c.cfg.MoveThreshold

	c.updateMode(in, move, moving, dt)
	locomotion := c.locomotion(move)
	c.integrateGravity(dt)

	displacement, wallJumpEnded := c.composer.Compose(s, locomotion, dt)
	if wallJumpEnded && s.Mode == WallJumpRecovery {
		s.Mode = Airborne
	}
	s.TetherVelocity = mgl64.Vec3{}
	c.tethered = false

	prev := s.Position
	res := c.mover.Move(displacement)
	s.Position = res.Position
	s.IsGrounded = res.Grounded
	c.speed = gamemath.Horizontal(res.Position.Sub(prev)).Len() / dt

	// Head hit a ceiling.
	if displacement.Y() > 0 && res.Position.Y()-prev.Y() < displacement.Y()*0.5 && s.VerticalVelocity > 0 {
		s.VerticalVelocity = 0
	}

	s.CurrentHeight = gamemath.Approach(s.CurrentHeight, s.TargetHeight, c.cfg.HeightTransitionSpeed, dt)
	c.mover.SetHeight(s.CurrentHeight)

	if s.Position.Y() < c.cfg.FallThreshold {
		c.Respawn()
	}
}

// Respawn returns the player to the respawn target and clears every velocity
// and timer. Without a target it does nothing.
func (c *Controller) Respawn() {
	if c.respawn == nil {
		if !c.warnedNoRespawn {
			log.Printf("Warning: respawn requested but no respawn target is set")
			c.warnedNoRespawn = true
		}
		return
	}

	c.mover.Teleport(c.respawn.RespawnPoint())
	// A zero move settles the body so grounding comes from the mover.
	res := c.mover.Move(mgl64.Vec3{})

	s := &c.state
	s.Position = res.Position
	s.IsGrounded = res.Grounded
	s.VerticalVelocity = 0
	s.ExternalVelocity = mgl64.Vec3{}
	s.WallJumpImpulse = mgl64.Vec3{}
	s.TetherVelocity = mgl64.Vec3{}
	s.SlideTimeRemaining = 0
	s.SlideArmed = true
	s.Mode = Walk
	s.TargetHeight = c.cfg.StandingHeight
	c.tethered = false
	c.speed = 0
	c.respawns++
}

// Respawns counts completed respawns. Hosts compare it across a tick to reset
// whatever they keep outside the controller.
func (c *Controller) Respawns() int {
	return c.respawns
}

// JumpVelocity is the take-off speed that reaches JumpHeight.
func (c *Controller) JumpVelocity() float64 {
	return math.Sqrt(2 * c.cfg.JumpHeight * math.Abs(c.cfg.Gravity))
}

func (c *Controller) moveVector(in kinematics.InputSnapshot) mgl64.Vec3 {
	forward, right := gamemath.YawBasis(in.Yaw)
	move := right.Mul(in.Move.X()).Add(forward.Mul(in.Move.Y()))
	return gamemath.ClampLength(move, 1)
}

func (c *Controller) updateMode(in kinematics.InputSnapshot, move mgl64.Vec3, moving bool, dt float64) {
	s := &c.state

	switch {
	case s.IsGrounded && s.Mode.IsAirborne():
		s.Mode = c.groundMode(in, moving)
		s.WallJumpImpulse = mgl64.Vec3{}
		s.SlideArmed = true
		s.LandedAt = s.Clock
		s.TargetHeight = c.cfg.StandingHeight
	case !s.IsGrounded && !s.Mode.IsAirborne():
		if s.Mode == Slide {
			c.endSlide()
		}
		s.Mode = Airborne
	}

	if !s.IsGrounded {
		if in.JumpPressed && s.Clock >= s.WallJumpCooldownUntil {
			c.tryWallJump(in)
		}
		return
	}

	if s.Mode == Slide {
		s.SlideTimeRemaining -= dt
		if in.SlideReleased || s.SlideTimeRemaining <= slideEpsilon {
			c.endSlide()
		}
	} else if in.SlidePressed && s.SlideArmed && moving && s.Mode == Sprint {
		c.startSlide()
	} else {
		s.Mode = c.groundMode(in, moving)
	}

	if in.JumpPressed && s.Mode != Slide {
		s.VerticalVelocity = c.JumpVelocity()
	}
}

func (c *Controller) groundMode(in kinematics.InputSnapshot, moving bool) Mode {
	if in.Sprint && moving {
		return Sprint
	}
	return Walk
}

func (c *Controller) startSlide() {
	s := &c.state
	s.Mode = Slide
	s.SlideArmed = false
	s.SlideTimeRemaining = c.cfg.MaxSlideTime
	s.TargetHeight = c.cfg.SlidingHeight
	s.VerticalVelocity = c.cfg.GroundStickVelocity
}

func (c *Controller) endSlide() {
	s := &c.state
	s.Mode = Walk
	s.SlideTimeRemaining = 0
	s.TargetHeight = c.cfg.StandingHeight
}

func (c *Controller) tryWallJump(in kinematics.InputSnapshot) {
	normal, ok := c.findWall(in.Yaw)
	if !ok {
		return
	}
	s := &c.state
	s.WallJumpImpulse = normal.Mul(c.cfg.WallJumpForce)
	s.VerticalVelocity = c.JumpVelocity()
	s.WallJumpCooldownUntil = s.Clock + c.cfg.WallJumpCooldown
	s.Mode = WallJumpRecovery
}

// findWall probes forward, right and left, first hit wins.
func (c *Controller) findWall(yaw float64) (mgl64.Vec3, bool) {
	if c.probe == nil {
		return mgl64.Vec3{}, false
	}
	forward, right := gamemath.YawBasis(yaw)
	origin := c.state.Position.Add(mgl64.Vec3{0, c.state.CurrentHeight / 2, 0})

	for _, dir := range []mgl64.Vec3{forward, right, right.Mul(-1)} {
		hit, ok := c.probe.Probe(origin, dir, c.cfg.WallDetectionDistance, kinematics.LayerWall)
		if !ok {
			continue
		}
		if n, ok := gamemath.SafeNormalize(gamemath.Horizontal(hit.Normal)); ok {
			return n, true
		}
	}
	return mgl64.Vec3{}, false
}

func (c *Controller) locomotion(move mgl64.Vec3) mgl64.Vec3 {
	switch c.state.Mode {
	case Slide:
		dir, _ := gamemath.SafeNormalize(move)
		return dir.Mul(c.cfg.SlideSpeed * c.cfg.SlideSpeedBoost)
	case Walk:
		return move.Mul(c.cfg.WalkSpeed)
	case Sprint:
		return move.Mul(c.cfg.SprintSpeed)
	default:
		return move.Mul(c.cfg.AirControlMultiplier)
	}
}

func (c *Controller) integrateGravity(dt float64) {
	s := &c.state
	if c.tethered {
		s.VerticalVelocity = 0
		return
	}
	if s.IsGrounded && s.VerticalVelocity < 0 {
		s.VerticalVelocity = c.cfg.GroundStickVelocity
	}
	s.VerticalVelocity += c.cfg.Gravity * dt
	if s.VerticalVelocity < c.cfg.TerminalVelocity {
		s.VerticalVelocity = c.cfg.TerminalVelocity
	}
}

func (c *Controller) targetSpeed() float64 {
	switch c.state.Mode {
	case Sprint:
		return c.cfg.SprintSpeed
	case Slide:
		return c.cfg.SlideSpeed * c.cfg.SlideSpeedBoost
	default:
		return c.cfg.WalkSpeed
	}
}
