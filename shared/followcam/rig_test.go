package followcam

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/splitsecond/splitsecond/shared/movement"
)

const tick = 1.0 / 100

func settle(r *Rig, s movement.Snapshot, strafe float64) {
	for i := 0; i < 300; i++ {
		r.Update(s, strafe, tick)
	}
}

func TestRigSettlesOnHead(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name    string
		sliding bool
		want    mgl64.Vec3
	}{
		{"standing", false, mgl64.Vec3{3, 2.5, -4}},
		{"sliding", true, mgl64.Vec3{3, 2.0, -4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRig(cfg, mgl64.Vec3{})
			settle(r, movement.Snapshot{Position: mgl64.Vec3{3, 1, -4}, Sliding: tt.sliding}, 0)
			if r.Eye().Sub(tt.want).Len() > 1e-6 {
				t.Errorf("eye = %v, want %v", r.Eye(), tt.want)
			}
		})
	}
}

func TestTargetFOV(t *testing.T) {
	r := NewRig(DefaultConfig(), mgl64.Vec3{})
	tests := []struct {
		speed float64
		want  float64
	}{
		{0, 75},
		{6, 75},
		{8, 87.5},
		{10, 100},
		{40, 100},
	}
	for _, tt := range tests {
		if got := r.TargetFOV(tt.speed); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("TargetFOV(%v) = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

func TestFOVFollowsSpeed(t *testing.T) {
	r := NewRig(DefaultConfig(), mgl64.Vec3{})
	s := movement.Snapshot{Speed: 12}
	r.Update(s, 0, tick)
	if r.FOV() <= 75 || r.FOV() >= 100 {
		t.Errorf("fov after one tick = %v, want strictly between 75 and 100", r.FOV())
	}
	settle(r, s, 0)
	if math.Abs(r.FOV()-100) > 1e-3 {
		t.Errorf("fov = %v, want 100", r.FOV())
	}
}

func TestTilt(t *testing.T) {
	r := NewRig(DefaultConfig(), mgl64.Vec3{})
	settle(r, movement.Snapshot{Sliding: true}, 1)
	if math.Abs(r.Roll()+2.5) > 1e-3 {
		t.Errorf("roll = %v, want -2.5", r.Roll())
	}
	if math.Abs(r.SlideTilt()-15) > 1e-3 {
		t.Errorf("slide tilt = %v, want 15", r.SlideTilt())
	}

	settle(r, movement.Snapshot{}, 0)
	if math.Abs(r.Roll()) > 1e-3 || math.Abs(r.SlideTilt()) > 1e-3 {
		t.Errorf("tilt did not recover: roll %v slide %v", r.Roll(), r.SlideTilt())
	}
}

func TestLookClampsPitch(t *testing.T) {
	r := NewRig(DefaultConfig(), mgl64.Vec3{})
	r.Look(0, -100000)
	if got := mgl64.RadToDeg(r.Pitch()); math.Abs(got-90) > 1e-9 {
		t.Errorf("pitch = %v, want 90", got)
	}
	r.Look(0, 200000)
	if got := mgl64.RadToDeg(r.Pitch()); math.Abs(got+90) > 1e-9 {
		t.Errorf("pitch = %v, want -90", got)
	}
}

func TestForwardFollowsYaw(t *testing.T) {
	r := NewRig(DefaultConfig(), mgl64.Vec3{})
	if f := r.Forward(); f.Sub(mgl64.Vec3{0, 0, -1}).Len() > 1e-9 {
		t.Fatalf("initial forward = %v", f)
	}
	// 900 px at 0.1 deg/px is a quarter turn to the right.
	r.Look(900, 0)
	if f := r.Forward(); f.Sub(mgl64.Vec3{1, 0, 0}).Len() > 1e-9 {
		t.Errorf("forward after turn = %v, want +X", f)
	}

	r.Look(0, 300)
	r.SetYaw(-math.Pi / 2)
	if f := r.Forward(); f.Sub(mgl64.Vec3{-1, 0, 0}).Len() > 1e-9 || r.Pitch() != 0 {
		t.Errorf("after SetYaw: forward %v pitch %v", f, r.Pitch())
	}
}

func TestSnapResetsPresentation(t *testing.T) {
	r := NewRig(DefaultConfig(), mgl64.Vec3{})
	settle(r, movement.Snapshot{Sliding: true, Speed: 20}, 1)
	r.Snap(mgl64.Vec3{10, 0, 10})

	if r.Eye() != (mgl64.Vec3{10, 1.5, 10}) || r.FOV() != 75 || r.Roll() != 0 || r.SlideTilt() != 0 {
		t.Errorf("after snap: eye %v fov %v roll %v slide %v", r.Eye(), r.FOV(), r.Roll(), r.SlideTilt())
	}
}
