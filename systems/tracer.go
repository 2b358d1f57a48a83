package systems

import (
	"github.com/automoto/lazertag/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTracers advances beam tweens and removes finished beams.
func UpdateTracers(e *ecs.ECS) {
	dt := float32(deltaTime(e.World))

	var finished []donburi.Entity
	components.Tracer.Each(e.World, func(entry *donburi.Entry) {
		tracer := components.Tracer.Get(entry)
		progress, done := tracer.Tween.Update(dt)
		tracer.Progress = float64(progress)
		if done {
			finished = append(finished, entry.Entity())
		}
	})

	for _, entity := range finished {
		e.World.Remove(entity)
	}
}
