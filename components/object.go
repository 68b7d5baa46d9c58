package components

import (
	"github.com/splitsecond/splitsecond/shared/collision"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its box in the collision space.
type ObjectData struct {
	*collision.Box
}

var Object = donburi.NewComponentType[ObjectData]()
