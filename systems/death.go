package systems

import (
	"log"

	"github.com/automoto/lazertag/components"
	"github.com/automoto/lazertag/systems/factory"
	"github.com/automoto/lazertag/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths deactivates players whose pool was defeated: the body leaves
// the collision world so shots and players pass through, motion stops and
// pending input is dropped. There is no respawn.
func UpdateDeaths(e *ecs.ECS) {
	space := factory.SpaceWorld(e.World)

	var defeated []donburi.Entity
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(tags.Defeated) {
			return
		}
		if components.Health.Get(entry).Pool.Defeated() {
			defeated = append(defeated, entry.Entity())
		}
	})

	for _, entity := range defeated {
		entry := e.World.Entry(entity)
		if space != nil && entry.HasComponent(components.Body) {
			space.Remove(components.Body.Get(entry).Body)
		}

		mo := components.Motion.Get(entry)
		mo.VerticalVelocity = 0
		mo.Velocity = mgl64.Vec3{}

		ctl := components.Control.Get(entry)
		ctl.Input.Move = mgl64.Vec2{}
		ctl.Input.Look = mgl64.Vec2{}
		ctl.FirePending = false
		ctl.JumpPending = false

		entry.AddComponent(tags.Defeated)
		log.Printf("[combat] %s defeated", ctl.Owner)
	}
}
