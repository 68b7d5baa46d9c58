// Package collision is the reference host for the player controllers: a set of
// axis-aligned boxes with a resolv broad phase on the X/Z plane, a kinematic
// body that slides along them and a ray probe.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/splitsecond/splitsecond/shared/gamemath"
	"github.com/splitsecond/splitsecond/shared/kinematics"
	"github.com/splitsecond/splitsecond/shared/leveldata"
)

// Tags used besides the kinematics layers.
const (
	TagBody     = "body"
	TagFinish   = "finish"
	TagPlatform = "platform"
)

const (
	// resolv works in whole units, so the broad phase runs scaled up.
	broadScale = 16.0
	// Proxies are padded so the broad phase never misses a touching box.
	broadMargin = 2.0

	eps = 1e-6
)

// Space holds every box of a level.
type Space struct {
	space *resolv.Space
}

// NewSpace covers [0,width] x [0,depth] on the X/Z plane. cellSize is in world
// units.
func NewSpace(width, depth, cellSize float64) *Space {
	cell := int(math.Max(1, cellSize*broadScale))
	w := int(math.Ceil(width*broadScale)) + cell
	h := int(math.Ceil(depth*broadScale)) + cell
	return &Space{space: resolv.NewSpace(w, h, cell, cell)}
}

// Box is a solid or trigger volume.
type Box struct {
	proxy    *resolv.Object
	min, max mgl64.Vec3
	delta    mgl64.Vec3

	// Data links the box back to its owner, usually an ECS entry.
	Data any
}

func (b *Box) Min() mgl64.Vec3 { return b.min }
func (b *Box) Max() mgl64.Vec3 { return b.max }

// Size is max - min.
func (b *Box) Size() mgl64.Vec3 { return b.max.Sub(b.min) }

func (b *Box) HasTag(tag string) bool {
	return b.proxy.HasTags(tag)
}

// MoveTo places the box's min corner at min and remembers the displacement
// so that bodies standing on it can be carried.
func (b *Box) MoveTo(min mgl64.Vec3) {
	b.delta = min.Sub(b.min)
	size := b.Size()
	b.min = min
	b.max = min.Add(size)
	placeProxy(b.proxy, b.min, b.max)
}

// Delta is the displacement of the last MoveTo.
func (b *Box) Delta() mgl64.Vec3 {
	return b.delta
}

// AddBox adds a box spanning min..max.
func (s *Space) AddBox(min, max mgl64.Vec3, tags ...string) *Box {
	proxy := resolv.NewObject(0, 0, 1, 1, tags...)
	b := &Box{proxy: proxy, min: min, max: max}
	proxy.Data = b
	s.space.Add(proxy)
	placeProxy(proxy, min, max)
	return b
}

func (s *Space) RemoveBox(b *Box) {
	s.space.Remove(b.proxy)
}

// Boxes returns every box carrying tag.
func (s *Space) Boxes(tag string) []*Box {
	var out []*Box
	for _, o := range s.space.Objects() {
		if !o.HasTags(tag) {
			continue
		}
		if b, ok := o.Data.(*Box); ok {
			out = append(out, b)
		}
	}
	return out
}

// Probe casts a ray and returns the nearest box on any of layers.
func (s *Space) Probe(origin, direction mgl64.Vec3, maxDistance float64, layers ...string) (kinematics.Hit, bool) {
	dir, ok := gamemath.SafeNormalize(direction)
	if !ok || maxDistance <= 0 {
		return kinematics.Hit{}, false
	}
	if len(layers) == 0 {
		layers = []string{kinematics.LayerSolid}
	}
	end := origin.Add(dir.Mul(maxDistance))

	candidates := s.query(
		mgl64.Vec3{math.Min(origin.X(), end.X()), 0, math.Min(origin.Z(), end.Z())},
		mgl64.Vec3{math.Max(origin.X(), end.X()), 0, math.Max(origin.Z(), end.Z())},
		layers...)

	var best kinematics.Hit
	found := false
	for _, b := range candidates {
		t, normal, ok := rayBox(origin, dir, b.min, b.max)
		if !ok || t > maxDistance {
			continue
		}
		if !found || t < best.Distance {
			best = kinematics.Hit{Point: origin.Add(dir.Mul(t)), Normal: normal, Distance: t}
			found = true
		}
	}
	return best, found
}

// Overlapping returns the boxes tagged tag that intersect the body's volume.
func (s *Space) Overlapping(body *Body, tag string) []*Box {
	min, max := body.Bounds()
	var out []*Box
	for _, b := range s.query(min, max, tag) {
		if overlaps(min, max, b.min, b.max) {
			out = append(out, b)
		}
	}
	return out
}

// query is the broad phase: boxes carrying any of tags whose footprint may
// touch the X/Z rectangle of min..max.
func (s *Space) query(min, max mgl64.Vec3, tags ...string) []*Box {
	probe := resolv.NewObject(0, 0, 1, 1)
	s.space.Add(probe)
	defer s.space.Remove(probe)
	placeProxy(probe, min, max)

	check := probe.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	objs := check.ObjectsByTags(tags...)
	out := make([]*Box, 0, len(objs))
	for _, o := range objs {
		if b, ok := o.Data.(*Box); ok {
			out = append(out, b)
		}
	}
	return out
}

func placeProxy(o *resolv.Object, min, max mgl64.Vec3) {
	o.X = min.X()*broadScale - broadMargin
	o.Y = min.Z()*broadScale - broadMargin
	o.W = (max.X()-min.X())*broadScale + 2*broadMargin
	o.H = (max.Z()-min.Z())*broadScale + 2*broadMargin
	o.Update()
}

func overlaps(amin, amax, bmin, bmax mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if amax[i] <= bmin[i] || amin[i] >= bmax[i] {
			return false
		}
	}
	return true
}

// rayBox is the slab test. It reports the entry distance and the normal of
// the face entered. Rays starting inside the box miss.
func rayBox(origin, dir, min, max mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	tEnter, tExit := math.Inf(-1), math.Inf(1)
	axis, sign := -1, 0.0

	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < min[i] || origin[i] > max[i] {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (min[i] - origin[i]) * inv
		t2 := (max[i] - origin[i]) * inv
		s := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			s = 1
		}
		if t1 > tEnter {
			tEnter, axis, sign = t1, i, s
		}
		if t2 < tExit {
			tExit = t2
		}
		if tEnter > tExit {
			return 0, mgl64.Vec3{}, false
		}
	}
	if axis < 0 || tEnter < 0 {
		return 0, mgl64.Vec3{}, false
	}
	var normal mgl64.Vec3
	normal[axis] = sign
	return tEnter, normal, true
}

// AddBlock adds a level block.
func (s *Space) AddBlock(b leveldata.Block, tags ...string) *Box {
	return s.AddBox(b.Min, b.Max, tags...)
}

// Build creates the space for a level. The moving platform boxes are returned
// in level order so the caller can drive them.
func Build(l *leveldata.Level) (*Space, []*Box) {
	w, d := l.Size()
	s := NewSpace(w, d, l.Scale*2)
	for _, b := range l.Terrain {
		s.AddBlock(b, kinematics.LayerSolid)
	}
	for _, b := range l.Walls {
		s.AddBlock(b, kinematics.LayerSolid, kinematics.LayerWall)
	}
	for _, b := range l.GrapplePoints {
		s.AddBlock(b, kinematics.LayerSolid, kinematics.LayerGrapple)
	}
	for _, b := range l.FinishLines {
		s.AddBlock(b, TagFinish)
	}
	platforms := make([]*Box, 0, len(l.Platforms))
	for _, p := range l.Platforms {
		platforms = append(platforms, s.AddBlock(p.Block, kinematics.LayerSolid, TagPlatform))
	}
	return s, platforms
}
