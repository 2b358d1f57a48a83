package factory

import (
	"github.com/automoto/lazertag/archetypes"
	"github.com/automoto/lazertag/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, z, w, d float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	if space := SpaceWorld(ecs.World); space != nil {
		body := space.AddWall(x, z, w, d)
		components.Body.SetValue(wall, components.BodyData{Body: body})
	}

	return wall
}
