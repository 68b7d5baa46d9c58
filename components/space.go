package components

import (
	"github.com/splitsecond/splitsecond/shared/collision"
	"github.com/yohamta/donburi"
)

type SpaceData struct {
	*collision.Space
}

var Space = donburi.NewComponentType[SpaceData]()
