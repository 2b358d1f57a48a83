package systems

import (
	"github.com/automoto/lazertag/components"
	"github.com/automoto/lazertag/shared/netcomponents"
	"github.com/automoto/lazertag/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SyncNetComponents copies simulation state into the replicated components
// of every player that has them. Health is pushed by the pool's publisher
// and is not copied here.
func SyncNetComponents(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(netcomponents.NetTransform) {
			return
		}
		tr := components.Transform.Get(entry)
		mo := components.Motion.Get(entry)

		netcomponents.NetTransform.SetValue(entry, netcomponents.NetTransformData{
			X:     tr.Position.X(),
			Y:     tr.Position.Y(),
			Z:     tr.Position.Z(),
			Yaw:   tr.Yaw,
			Pitch: tr.Pitch,
		})

		if entry.HasComponent(netcomponents.NetVelocity) {
			netcomponents.NetVelocity.SetValue(entry, netcomponents.NetVelocityData{
				X: mo.Velocity.X(),
				Y: mo.Velocity.Y(),
				Z: mo.Velocity.Z(),
			})
		}

		if entry.HasComponent(netcomponents.NetPlayerState) {
			state := netcomponents.NetPlayerState.Get(entry)
			state.Grounded = mo.Grounded
			state.LastSequence = components.Control.Get(entry).LastSequence
		}
	})
}
