package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/splitsecond/splitsecond/shared/kinematics"
)

// DefaultStepHeight is how tall a ledge a walking body climbs without
// jumping.
const DefaultStepHeight = 0.35

// Body is an upright box-shaped character. Position is the center of its
// feet. It implements kinematics.KinematicMover.
type Body struct {
	space *Space
	proxy *resolv.Object

	pos    mgl64.Vec3
	radius float64
	height float64

	StepHeight float64

	grounded bool
	ground   *Box
}

// NewBody adds a body standing at feet.
func (s *Space) NewBody(feet mgl64.Vec3, radius, height float64) *Body {
	b := &Body{
		space:      s,
		proxy:      resolv.NewObject(0, 0, 1, 1, TagBody),
		pos:        feet,
		radius:     radius,
		height:     height,
		StepHeight: DefaultStepHeight,
	}
	b.proxy.Data = b
	s.space.Add(b.proxy)
	b.sync()
	return b
}

// RemoveBody takes the body out of the space.
func (s *Space) RemoveBody(b *Body) {
	s.space.Remove(b.proxy)
}

func (b *Body) Position() mgl64.Vec3 { return b.pos }
func (b *Body) Height() float64      { return b.height }
func (b *Body) Radius() float64      { return b.radius }
func (b *Body) Grounded() bool       { return b.grounded }

// Ground is the box the body stood on after the last move, or nil.
func (b *Body) Ground() *Box { return b.ground }

// Bounds returns the body's volume.
func (b *Body) Bounds() (min, max mgl64.Vec3) {
	min = mgl64.Vec3{b.pos.X() - b.radius, b.pos.Y(), b.pos.Z() - b.radius}
	max = mgl64.Vec3{b.pos.X() + b.radius, b.pos.Y() + b.height, b.pos.Z() + b.radius}
	return min, max
}

// Move slides the body by d, X then Z then Y. A body standing on a moving box
// is carried by the box's last displacement first.
func (b *Body) Move(d mgl64.Vec3) kinematics.MoveResult {
	if b.grounded && b.ground != nil {
		carry := b.ground.Delta()
		b.pos[1] += carry.Y()
		d[0] += carry.X()
		d[2] += carry.Z()
	}

	b.pos[0] += b.sweep(0, d.X())
	b.sync()
	b.pos[2] += b.sweep(2, d.Z())
	b.sync()
	b.settle(d.Y())

	return kinematics.MoveResult{Position: b.pos, Grounded: b.grounded}
}

func (b *Body) SetHeight(h float64) {
	b.height = h
}

func (b *Body) Teleport(p mgl64.Vec3) {
	b.pos = p
	b.grounded = false
	b.ground = nil
	b.sync()
}

func (b *Body) sync() {
	min, max := b.Bounds()
	placeProxy(b.proxy, min, max)
}

// solids returns the solid boxes whose footprint may touch the body while it
// moves dx, dz.
func (b *Body) solids(dx, dz float64) []*Box {
	min, max := b.Bounds()
	return b.space.query(
		mgl64.Vec3{min.X() + math.Min(0, dx), 0, min.Z() + math.Min(0, dz)},
		mgl64.Vec3{max.X() + math.Max(0, dx), 0, max.Z() + math.Max(0, dz)},
		kinematics.LayerSolid)
}

// sweep clips a horizontal move along axis (0 for X, 2 for Z). Boxes the
// body already overlaps, and ledges low enough to step onto, do not block.
func (b *Body) sweep(axis int, delta float64) float64 {
	if delta == 0 {
		return 0
	}
	var dx, dz float64
	if axis == 0 {
		dx = delta
	} else {
		dz = delta
	}
	other := 2 - axis
	min, max := b.Bounds()

	for _, box := range b.solids(dx, dz) {
		if box.max.Y() <= b.pos.Y()+b.StepHeight || box.min.Y() >= max.Y() {
			continue
		}
		if box.max[other] <= min[other]+eps || box.min[other] >= max[other]-eps {
			continue
		}
		if delta > 0 {
			gap := box.min[axis] - max[axis]
			if gap >= -eps && gap < delta {
				delta = math.Max(gap, 0)
			}
		} else {
			gap := box.max[axis] - min[axis]
			if gap <= eps && gap > delta {
				delta = math.Min(gap, 0)
			}
		}
	}
	return delta
}

// settle applies the vertical move, landing on the highest floor under the
// footprint and stopping under ceilings.
func (b *Body) settle(dy float64) {
	min, max := b.Bounds()
	reach := b.StepHeight
	if dy > 0 {
		reach = eps
	}

	floor, ceiling := math.Inf(-1), math.Inf(1)
	var ground *Box
	for _, box := range b.solids(0, 0) {
		if box.max.X() <= min.X()+eps || box.min.X() >= max.X()-eps ||
			box.max.Z() <= min.Z()+eps || box.min.Z() >= max.Z()-eps {
			continue
		}
		switch {
		case box.max.Y() <= b.pos.Y()+reach:
			if box.max.Y() > floor {
				floor, ground = box.max.Y(), box
			}
		case box.min.Y() >= max.Y()-eps:
			ceiling = math.Min(ceiling, box.min.Y())
		}
	}

	y := b.pos.Y() + dy
	if y+b.height > ceiling {
		y = math.Max(b.pos.Y(), ceiling-b.height)
	}
	b.grounded = dy <= 0 && y <= floor+eps
	if b.grounded {
		y = floor
		b.ground = ground
	} else {
		b.ground = nil
	}
	b.pos[1] = y
	b.sync()
}
