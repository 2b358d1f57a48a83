package factory

import (
	"github.com/automoto/lazertag/archetypes"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Clock.Spawn(ecs)
}
