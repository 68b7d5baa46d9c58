package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PlatformData moves a box between Origin and Origin+Offset. Tween yields the
// progress along that path, 0 to 1.
type PlatformData struct {
	Origin mgl64.Vec3
	Offset mgl64.Vec3
	Tween  *gween.Sequence
}

var Platform = donburi.NewComponentType[PlatformData]()
