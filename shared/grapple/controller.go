// Package grapple implements the grapple hook: engaging on a surface, pulling
// and swinging the player toward it, and handing the remaining momentum back
// to the movement controller on release.
package grapple

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/splitsecond/splitsecond/shared/gamemath"
	"github.com/splitsecond/splitsecond/shared/kinematics"
)

// State is the grapple lifecycle state.
type State int

const (
	Idle State = iota
	Engaged
	// Transitioning is Engaged while blending away from a previous attachment.
	Transitioning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Engaged:
		return "engaged"
	case Transitioning:
		return "transitioning"
	}
	return "unknown"
}

// Body is the grappled body. The movement controller implements it.
type Body interface {
	Position() mgl64.Vec3
	DriveVelocity(v mgl64.Vec3)
	InjectExternalVelocity(v mgl64.Vec3)
}

type Controller struct {
	cfg   Config
	body  Body
	probe kinematics.CollisionProbe
	input kinematics.InputSource
	view  kinematics.Viewpoint

	state  State
	attach mgl64.Vec3

	speed             float64
	direction         mgl64.Vec3
	directionVelocity mgl64.Vec3
	swingVelocity     mgl64.Vec3
	velocity          mgl64.Vec3

	sinceEngage    float64
	transitionLeft float64
}

func NewController(
	cfg Config,
	body Body,
	probe kinematics.CollisionProbe,
	input kinematics.InputSource,
	view kinematics.Viewpoint,
) *Controller {
	return &Controller{
		cfg:         cfg,
		body:        body,
		probe:       probe,
		input:       input,
		view:        view,
		sinceEngage: math.Inf(1),
	}
}

func (c *Controller) State() State {
	return c.state
}

// AttachPoint returns the current attachment, if any.
func (c *Controller) AttachPoint() (mgl64.Vec3, bool) {
	return c.attach, c.state != Idle
}

func (c *Controller) Speed() float64 {
	return c.speed
}

// Velocity is the velocity driven into the body on the last tick.
func (c *Controller) Velocity() mgl64.Vec3 {
	return c.velocity
}

// Update advances the grapple by dt seconds. It runs before the movement
// controller in the same tick.
func (c *Controller) Update(dt float64) {
	if dt <= 0 {
		return
	}
	in := c.input.Snapshot()
	c.sinceEngage += dt

	if in.GrapplePressed {
		if c.sinceEngage >= c.cfg.MinEngageInterval {
			c.engage()
		}
	} else if in.GrappleReleased {
		c.Release()
	}

	if c.state == Idle {
		return
	}
	if c.state == Transitioning {
		c.transitionLeft -= dt
		if c.transitionLeft <= 0 {
			c.state = Engaged
			c.transitionLeft = 0
		}
	}
	c.pull(in.Strafe, dt)
}

// Release detaches and hands the momentum to the body. A release during a
// transition carries no impulse.
func (c *Controller) Release() {
	if c.state == Idle {
		return
	}
	transitioning := c.state == Transitioning
	v := c.velocity
	c.Cancel()
	if !transitioning {
		c.body.InjectExternalVelocity(c.ReleaseImpulse(v))
	}
}

// Cancel detaches without any impulse. Used on respawn.
func (c *Controller) Cancel() {
	c.state = Idle
	c.attach = mgl64.Vec3{}
	c.speed = 0
	c.direction = mgl64.Vec3{}
	c.directionVelocity = mgl64.Vec3{}
	c.swingVelocity = mgl64.Vec3{}
	c.velocity = mgl64.Vec3{}
	c.transitionLeft = 0
}

// ReleaseImpulse converts the grapple velocity into the external velocity
// handed to the body: scaled by MomentumMultiplier, horizontal direction kept,
// vertical clamped to the release band.
func (c *Controller) ReleaseImpulse(v mgl64.Vec3) mgl64.Vec3 {
	scaled := v.Mul(c.cfg.MomentumMultiplier)

	horizontal := gamemath.Horizontal(scaled)
	if l := horizontal.Len(); l > 0.1 {
		horizontal = horizontal.Normalize().Mul(l)
	}
	y := mgl64.Clamp(scaled.Y(),
		-c.cfg.MaxSpeed*c.cfg.ReleaseDownFraction,
		c.cfg.MaxSpeed*c.cfg.ReleaseUpFraction)

	return mgl64.Vec3{horizontal.X(), y, horizontal.Z()}
}

func (c *Controller) engage() {
	if c.probe == nil || c.view == nil {
		return
	}
	forward, ok := gamemath.SafeNormalize(c.view.Forward())
	if !ok {
		return
	}
	hit, ok := c.probe.Probe(c.view.Eye(), forward, c.cfg.MaxDistance, kinematics.LayerGrapple)
	if !ok {
		return
	}

	c.sinceEngage = 0
	c.attach = hit.Point
	toAttach, _ := gamemath.SafeNormalize(hit.Point.Sub(c.body.Position()))

	if c.state == Idle {
		c.state = Engaged
		c.speed = c.cfg.MinSpeed
		c.direction = toAttach
		c.directionVelocity = mgl64.Vec3{}
		c.swingVelocity = mgl64.Vec3{}
		c.velocity = mgl64.Vec3{}
		return
	}

	c.state = Transitioning
	c.transitionLeft = c.cfg.TransitionDuration
	v := c.velocity
	carry := mgl64.Vec3{v.X(), math.Max(v.Y(), 0), v.Z()}.Mul(c.cfg.TransitionCarry)
	// The damped carry is the new baseline: its length seeds the speed ramp
	// and its heading seeds the steering.
	c.speed = math.Max(carry.Len(), c.cfg.MinSpeed)
	if n, ok := gamemath.SafeNormalize(carry); ok {
		c.direction = n
	} else {
		c.direction = toAttach
	}
}

func (c *Controller) pull(strafe, dt float64) {
	toAttach := c.attach.Sub(c.body.Position())
	dist := toAttach.Len()
	if dist <= c.cfg.ReleaseDistance {
		c.Release()
		return
	}
	dir := toAttach.Mul(1 / dist)
	force := c.pullForce(toAttach)

	swing := c.swingForce(toAttach, dir, strafe)
	c.swingVelocity = gamemath.LerpVec3(
		c.swingVelocity.Add(swing.Mul(dt)),
		mgl64.Vec3{},
		gamemath.Clamp01(dt*c.cfg.SwingDampening))

	desired, ok := gamemath.SafeNormalize(dir.Mul(force).Add(c.swingVelocity))
	if !ok {
		desired = dir
	}
	c.direction = gamemath.SmoothDampVec3(c.direction, desired, &c.directionVelocity, c.smoothTime(), dt)
	heading, ok := gamemath.SafeNormalize(c.direction)
	if !ok {
		heading = desired
	}

	c.speed = gamemath.MoveTowards(c.speed, c.cfg.MaxSpeed, dt*force)
	v := heading.Mul(c.speed)
	if c.state != Transitioning && c.sinceEngage >= c.cfg.MinEngageInterval {
		v[1] += c.cfg.GravityWhileGrappling * dt
	}
	c.velocity = v
	c.body.DriveVelocity(v)
}

// pullForce weakens as the body closes in and grows when the attach point is
// above it.
func (c *Controller) pullForce(toAttach mgl64.Vec3) float64 {
	closeness := gamemath.Clamp01(1 - toAttach.Len()/c.cfg.MaxDistance)
	force := gamemath.Lerp(c.cfg.Force, c.cfg.Force*0.5, closeness)
	if dy := toAttach.Y(); dy > 0 {
		force *= 1 + gamemath.Clamp01(dy/c.cfg.MaxDistance)*c.cfg.UpwardForceMultiplier
	}
	return force
}

// swingForce is the sideways push from strafing. It is zero near the
// vertical, where the tangent is undefined.
func (c *Controller) swingForce(toAttach, dir mgl64.Vec3, strafe float64) mgl64.Vec3 {
	if strafe == 0 {
		return mgl64.Vec3{}
	}
	tangent, ok := gamemath.SafeNormalize(dir.Cross(gamemath.Up))
	if !ok {
		return mgl64.Vec3{}
	}
	factor := math.Max(0, (gamemath.AngleDeg(toAttach, gamemath.Up)-c.cfg.MinSwingAngle)/90)
	return tangent.Mul(strafe * c.cfg.SwingForce * factor)
}

func (c *Controller) smoothTime() float64 {
	if c.state == Transitioning {
		return c.cfg.DirectionSmoothTime * 2
	}
	return c.cfg.DirectionSmoothTime
}
