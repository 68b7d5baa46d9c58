package grapple

// Config holds the grapple tuning. Forces and speeds are units per second,
// angles are degrees.
type Config struct {
	MaxDistance           float64
	Force                 float64
	UpwardForceMultiplier float64
	MinSpeed              float64
	MaxSpeed              float64
	GravityWhileGrappling float64

	SwingForce          float64
	SwingDampening      float64
	MinSwingAngle       float64
	DirectionSmoothTime float64

	MomentumMultiplier float64
	// Release vertical band as fractions of MaxSpeed. The band is
	// asymmetric: a release can fall faster than it can rise.
	ReleaseDownFraction float64
	ReleaseUpFraction   float64

	ReleaseDistance    float64
	MinEngageInterval  float64
	TransitionDuration float64
	TransitionCarry    float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		MaxDistance:           30,
		Force:                 25,
		UpwardForceMultiplier: 1.5,
		MinSpeed:              10,
		MaxSpeed:              40,
		GravityWhileGrappling: -5,

		SwingForce:          40,
		SwingDampening:      3,
		MinSwingAngle:       20,
		DirectionSmoothTime: 0.1,

		MomentumMultiplier:  1.3,
		ReleaseDownFraction: 0.3,
		ReleaseUpFraction:   0.5,

		ReleaseDistance:    1,
		MinEngageInterval:  0.1,
		TransitionDuration: 0.15,
		TransitionCarry:    0.5,
	}
}
