package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Wall     = donburi.NewTag().SetName("Wall")
	Tracer   = donburi.NewTag().SetName("Tracer")
	Defeated = donburi.NewTag().SetName("Defeated")
)
