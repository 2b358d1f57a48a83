package components

import (
	"github.com/automoto/lazertag/shared/controller"
	"github.com/yohamta/donburi"
)

// ControlData links a player to the participant driving it. Input holds the
// latest move and look axes; fire and jump edges latch until a system
// consumes them so a tick never drops a press.
type ControlData struct {
	Controller   *controller.Controller
	Owner        string // participant id
	Name         string
	Input        controller.InputFrame
	FirePending  bool
	JumpPending  bool
	LastSequence uint32
}

var Control = donburi.NewComponentType[ControlData]()
