package archetypes

import (
	"github.com/automoto/lazertag/components"
	"github.com/automoto/lazertag/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only ECS layer; the simulation has no renderers.
const Default ecs.LayerID = 0

var (
	Player = newArchetype(
		tags.Player,
		components.Transform,
		components.Motion,
		components.Control,
		components.Health,
		components.Body,
		components.Weapon,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Body,
	)
	Tracer = newArchetype(
		tags.Tracer,
		components.Tracer,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
