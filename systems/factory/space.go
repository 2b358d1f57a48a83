package factory

import (
	"math"

	"github.com/automoto/lazertag/archetypes"
	"github.com/automoto/lazertag/components"
	cfg "github.com/automoto/lazertag/config"
	"github.com/automoto/lazertag/shared/leveldata"
	"github.com/automoto/lazertag/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, depth int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		World: physics.NewWorld(width, depth, cfg.Physics.CellSize, cfg.Physics.Floor),
	})
	return space
}

// CreateArena builds the collision space for arena and a wall entity per wall.
func CreateArena(ecs *ecs.ECS, arena *leveldata.Arena) *donburi.Entry {
	space := CreateSpace(ecs, int(math.Ceil(arena.Width)), int(math.Ceil(arena.Depth)))
	for _, w := range arena.Walls {
		CreateWall(ecs, w.X, w.Z, w.W, w.D)
	}
	return space
}

// SpaceWorld returns the collision world, or nil before CreateSpace.
func SpaceWorld(w donburi.World) *physics.World {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry).World
}
