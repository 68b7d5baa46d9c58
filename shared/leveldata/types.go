// Package leveldata parses TMX level files into plain geometry. It has no
// dependencies on ebitengine, donburi or resolv.
//
// A level is a top-down tile map. The "terrain" tile layer gives every cell a
// solid column whose height is the tile's "top" property; an empty cell is a
// hole. Object groups add walls, grapple points, spawn, respawn, finish lines
// and moving platforms. Object heights come from custom properties.
package leveldata

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrNoSpawn is returned for a level without a PlayerSpawn object.
var ErrNoSpawn = errors.New("level has no player spawn")

// Terrain columns extend this far below their top.
const ColumnDepth = 4.0

// Block is an axis-aligned box in world units.
type Block struct {
	Min, Max mgl64.Vec3
}

// Center of the block.
func (b Block) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Platform is a block that ping-pongs between its origin and origin + Offset.
type Platform struct {
	Block
	Offset   mgl64.Vec3
	Duration float64
}

// Level is the parsed content of one TMX file.
type Level struct {
	ID   string
	Name string
	// Next is the ID of the level that follows, empty for the last one.
	Next string

	// Scale is world units per tile.
	Scale float64
	// Width and Depth are in tiles.
	Width, Depth int

	Terrain       []Block
	Walls         []Block
	GrapplePoints []Block
	FinishLines   []Block
	Platforms     []Platform

	Spawn    mgl64.Vec3
	SpawnYaw float64
	Respawn  mgl64.Vec3

	tops []float64
	// holes marks cells without a terrain column.
	holes []bool
}

// Size is the level extent on the X/Z plane in world units.
func (l *Level) Size() (width, depth float64) {
	return float64(l.Width) * l.Scale, float64(l.Depth) * l.Scale
}

// TopAt returns the terrain height at a world position, false over a hole or
// outside the map.
func (l *Level) TopAt(x, z float64) (float64, bool) {
	if l.Scale <= 0 {
		return 0, false
	}
	tx, tz := int(x/l.Scale), int(z/l.Scale)
	if x < 0 || z < 0 || tx >= l.Width || tz >= l.Depth {
		return 0, false
	}
	i := tz*l.Width + tx
	if l.holes[i] {
		return 0, false
	}
	return l.tops[i], true
}

// NextIndex resolves the level that follows levels[index], or -1 after the
// last one. A Next that names no loaded level falls back to file order.
func NextIndex(levels []*Level, index int) int {
	if index < 0 || index >= len(levels) {
		return -1
	}
	current := levels[index]
	if current.Next == "" {
		return -1
	}
	for i, l := range levels {
		if l.ID == current.Next {
			return i
		}
	}
	if index+1 < len(levels) {
		return index + 1
	}
	return -1
}
