package movement

// Config holds the movement tuning. Speeds are units per second, rates are
// per second, times are seconds.
type Config struct {
	WalkSpeed            float64
	SprintSpeed          float64
	AirControlMultiplier float64
	// MoveThreshold is the input magnitude below which the player counts as
	// standing still.
	MoveThreshold float64

	Gravity             float64
	TerminalVelocity    float64
	GroundStickVelocity float64
	JumpHeight          float64

	StandingHeight        float64
	SlidingHeight         float64
	HeightTransitionSpeed float64

	WallJumpForce         float64
	WallDetectionDistance float64
	WallJumpFriction      float64
	WallJumpCooldown      float64
	WallJumpEndThreshold  float64

	SlideSpeed      float64
	SlideSpeedBoost float64
	MaxSlideTime    float64

	FallThreshold float64

	// External velocity (grapple momentum and similar).
	MaxExternalSpeed float64
	GroundDrag       float64
	AirDrag          float64
	LandingGrace     float64
	LandingGraceDrag float64
	ExternalEpsilon  float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		WalkSpeed:            6,
		SprintSpeed:          12,
		AirControlMultiplier: 8,
		MoveThreshold:        0.1,

		Gravity:             -9.81,
		TerminalVelocity:    -50,
		GroundStickVelocity: -2,
		JumpHeight:          1.5,

		StandingHeight:        2,
		SlidingHeight:         1,
		HeightTransitionSpeed: 8,

		WallJumpForce:         5,
		WallDetectionDistance: 1,
		WallJumpFriction:      5,
		WallJumpCooldown:      0.5,
		WallJumpEndThreshold:  0.1,

		SlideSpeed:      14,
		SlideSpeedBoost: 1,
		MaxSlideTime:    1,

		FallThreshold: -10,

		MaxExternalSpeed: 40,
		GroundDrag:       6,
		AirDrag:          0.35,
		LandingGrace:     0.25,
		LandingGraceDrag: 1.5,
		ExternalEpsilon:  0.05,
	}
}
