package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// NewSimulation registers the simulation systems in tick order: pose first,
// then shots from the new pose, then deaths caused by those shots.
func NewSimulation(world donburi.World) *ecs.ECS {
	e := ecs.NewECS(world)
	e.AddSystem(UpdateControllers)
	e.AddSystem(UpdateFiring)
	e.AddSystem(UpdateDeaths)
	e.AddSystem(UpdateTracers)
	e.AddSystem(SyncNetComponents)
	e.AddSystem(ProcessEvents)
	return e
}

// ProcessEvents delivers the events published during this tick.
func ProcessEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}
