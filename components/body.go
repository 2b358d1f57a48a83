package components

import (
	"github.com/automoto/lazertag/shared/physics"
	"github.com/yohamta/donburi"
)

type BodyData struct {
	Body *physics.Body
}

var Body = donburi.NewComponentType[BodyData]()

// SpaceData is the singleton collision world.
type SpaceData struct {
	World *physics.World
}

var Space = donburi.NewComponentType[SpaceData]()
