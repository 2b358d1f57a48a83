package systems

import (
	"github.com/automoto/lazertag/components"
	"github.com/automoto/lazertag/shared/messages"
	"github.com/yohamta/donburi"
)

// ApplyInput stores a received input on the player it belongs to. Move axes
// are held until the next message. Look is a per-message delta: deltas add up
// until the controller system turns the player once. Fire and jump presses
// latch until the firing and controller systems consume them. Stale
// sequences are dropped.
func ApplyInput(entry *donburi.Entry, input messages.PlayerInput) {
	if !entry.HasComponent(components.Control) {
		return
	}
	ctl := components.Control.Get(entry)
	if input.Sequence != 0 && input.Sequence <= ctl.LastSequence {
		return
	}

	frame := input.Frame()
	ctl.Input.Move = frame.Move
	ctl.Input.Look = ctl.Input.Look.Add(frame.Look)
	ctl.FirePending = ctl.FirePending || frame.Fire
	ctl.JumpPending = ctl.JumpPending || frame.Jump
	ctl.LastSequence = input.Sequence
}
