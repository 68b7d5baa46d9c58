package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/splitsecond/splitsecond/components"
	cfg "github.com/splitsecond/splitsecond/config"
	"github.com/splitsecond/splitsecond/shared/kinematics"
)

func TestBuildSnapshot(t *testing.T) {
	tests := []struct {
		name     string
		current  []cfg.ActionID
		previous []cfg.ActionID
		want     kinematics.InputSnapshot
	}{
		{
			name: "idle",
			want: kinematics.InputSnapshot{Yaw: 1},
		},
		{
			name:    "forward left sprint",
			current: []cfg.ActionID{cfg.ActionMoveForward, cfg.ActionMoveLeft, cfg.ActionSprint},
			want: kinematics.InputSnapshot{
				Move:   mgl64.Vec2{-1, 1},
				Sprint: true,
				Strafe: -1,
				Yaw:    1,
			},
		},
		{
			name:    "opposing keys cancel",
			current: []cfg.ActionID{cfg.ActionMoveForward, cfg.ActionMoveBack, cfg.ActionMoveRight},
			want:    kinematics.InputSnapshot{Move: mgl64.Vec2{1, 0}, Strafe: 1, Yaw: 1},
		},
		{
			name:    "edges fire once",
			current: []cfg.ActionID{cfg.ActionJump, cfg.ActionSlide, cfg.ActionGrapple},
			want: kinematics.InputSnapshot{
				SlidePressed:   true,
				JumpPressed:    true,
				GrapplePressed: true,
				Yaw:            1,
			},
		},
		{
			name:     "held keys do not repeat",
			current:  []cfg.ActionID{cfg.ActionJump, cfg.ActionGrapple},
			previous: []cfg.ActionID{cfg.ActionJump, cfg.ActionGrapple},
			want:     kinematics.InputSnapshot{Yaw: 1},
		},
		{
			name:     "releases",
			previous: []cfg.ActionID{cfg.ActionSlide, cfg.ActionGrapple},
			want: kinematics.InputSnapshot{
				SlideReleased:   true,
				GrappleReleased: true,
				Yaw:             1,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input components.InputData
			for _, id := range tt.current {
				input.Current[id] = true
			}
			for _, id := range tt.previous {
				input.Previous[id] = true
			}
			if got := buildSnapshot(&input, 1); got != tt.want {
				t.Errorf("buildSnapshot() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCursorLook(t *testing.T) {
	var input components.InputData
	input.TrackCursor(100, 100)
	if input.LookX != 0 || input.LookY != 0 {
		t.Fatalf("first sample moved the view: %v, %v", input.LookX, input.LookY)
	}
	input.TrackCursor(110, 95)
	if input.LookX != 10 || input.LookY != -5 {
		t.Errorf("look = %v, %v, want 10, -5", input.LookX, input.LookY)
	}

	input.LookX, input.LookY = 0, 0
	input.ResetCursor()
	input.TrackCursor(500, 500)
	if input.LookX != 0 || input.LookY != 0 {
		t.Errorf("recapture moved the view: %v, %v", input.LookX, input.LookY)
	}
}

func TestPlatformPosition(t *testing.T) {
	p := &components.PlatformData{
		Origin: mgl64.Vec3{1, 2, 3},
		Offset: mgl64.Vec3{4, 0, -2},
	}
	tests := []struct {
		progress float64
		want     mgl64.Vec3
	}{
		{0, mgl64.Vec3{1, 2, 3}},
		{0.5, mgl64.Vec3{3, 2, 2}},
		{1, mgl64.Vec3{5, 2, 1}},
	}
	for _, tt := range tests {
		if got := platformPosition(p, tt.progress); !got.ApproxEqual(tt.want) {
			t.Errorf("platformPosition(%v) = %v, want %v", tt.progress, got, tt.want)
		}
	}
}
