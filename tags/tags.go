package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Wall         = donburi.NewTag().SetName("Wall")
	GrapplePoint = donburi.NewTag().SetName("GrapplePoint")
	Platform     = donburi.NewTag().SetName("Platform")
	FinishLine   = donburi.NewTag().SetName("FinishLine")
)
