package systems

import (
	"github.com/automoto/lazertag/components"
	"github.com/automoto/lazertag/shared/controller"
	"github.com/automoto/lazertag/shared/physics"
	"github.com/automoto/lazertag/systems/factory"
	"github.com/automoto/lazertag/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// bodyMover routes controller displacement through the collision world.
type bodyMover struct {
	body *physics.Body
}

func (m bodyMover) Move(delta mgl64.Vec3) (mgl64.Vec3, bool) {
	res := m.body.Move(delta)
	return res.Actual, res.Grounded
}

// UpdateControllers ticks every alive player. Replicas are skipped inside
// the controller itself.
func UpdateControllers(e *ecs.ECS) {
	dt := deltaTime(e.World)
	settings := factory.ControllerSettings()

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(tags.Defeated) {
			return
		}
		ctl := components.Control.Get(entry)
		tr := components.Transform.Get(entry)
		mo := components.Motion.Get(entry)

		ctl.Controller.SetSettings(settings)

		frame := ctl.Input
		frame.Jump = ctl.JumpPending
		frame.Fire = ctl.FirePending
		ctl.JumpPending = false
		ctl.Input.Look = mgl64.Vec2{}

		var mover controller.Mover
		if entry.HasComponent(components.Body) {
			if body := components.Body.Get(entry).Body; body != nil {
				mover = bodyMover{body: body}
			}
		}

		prev := tr.Position
		st := ctl.Controller.Tick(dt, frame, controller.State{
			Position:         tr.Position,
			Yaw:              tr.Yaw,
			Pitch:            tr.Pitch,
			VerticalVelocity: mo.VerticalVelocity,
			Grounded:         mo.Grounded,
		}, mover)

		tr.Position = st.Position
		tr.Yaw = st.Yaw
		tr.Pitch = st.Pitch
		mo.VerticalVelocity = st.VerticalVelocity
		mo.Grounded = st.Grounded
		if dt > 0 {
			mo.Velocity = st.Position.Sub(prev).Mul(1 / dt)
		}
	})
}
