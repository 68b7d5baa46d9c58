package movement

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/splitsecond/splitsecond/shared/gamemath"
)

// Composer sums every velocity source of a tick into a single displacement
// and applies the decay of the transient ones.
type Composer struct {
	cfg Config
}

func NewComposer(cfg Config) *Composer {
	return &Composer{cfg: cfg}
}

// Inject replaces the external velocity, capped to MaxExternalSpeed.
func (c *Composer) Inject(s *State, v mgl64.Vec3) {
	s.ExternalVelocity = gamemath.ClampLength(v, c.cfg.MaxExternalSpeed)
}

// Compose decays the wall-jump impulse and the external velocity, then returns
// the displacement for dt. wallJumpEnded is true on the tick the impulse
// dropped below WallJumpEndThreshold.
func (c *Composer) Compose(s *State, locomotion mgl64.Vec3, dt float64) (displacement mgl64.Vec3, wallJumpEnded bool) {
	if s.WallJumpImpulse != (mgl64.Vec3{}) {
		s.WallJumpImpulse = gamemath.DecayVec3(s.WallJumpImpulse, c.cfg.WallJumpFriction, dt)
		if s.WallJumpImpulse.Len() < c.cfg.WallJumpEndThreshold {
			s.WallJumpImpulse = mgl64.Vec3{}
			wallJumpEnded = true
		}
	}

	ext := s.ExternalVelocity
	if s.IsGrounded {
		ext[1] = 0
	}
	ext = gamemath.DecayVec3(ext, c.DragRate(s), dt)
	if ext.Len() < c.cfg.ExternalEpsilon {
		ext = mgl64.Vec3{}
	}
	s.ExternalVelocity = ext

	velocity := locomotion.
		Add(mgl64.Vec3{0, s.VerticalVelocity, 0}).
		Add(s.WallJumpImpulse).
		Add(s.ExternalVelocity).
		Add(s.TetherVelocity)

	return velocity.Mul(dt), wallJumpEnded
}

// DragRate is the external velocity decay rate for the current state.
func (c *Composer) DragRate(s *State) float64 {
	if !s.IsGrounded {
		return c.cfg.AirDrag
	}
	if s.Clock-s.LandedAt < c.cfg.LandingGrace {
		return c.cfg.LandingGraceDrag
	}
	return c.cfg.GroundDrag
}
