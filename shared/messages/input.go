package messages

import (
	"github.com/automoto/lazertag/shared/controller"
	"github.com/go-gl/mathgl/mgl64"
)

// PlayerInput is sent from client to server each tick with the player's input state.
// Used for server-side movement processing and client-side prediction reconciliation.
type PlayerInput struct {
	Sequence  uint32 // Incrementing ID for reconciliation
	MoveX     float64
	MoveY     float64
	LookX     float64
	LookY     float64
	Fire      bool  // Edge: true only on the tick the trigger was pulled
	Jump      bool  // Edge
	Timestamp int64 // Client timestamp (Unix ms)
}

// Frame converts the wire message into a controller input frame.
func (in PlayerInput) Frame() controller.InputFrame {
	return controller.InputFrame{
		Move: mgl64.Vec2{in.MoveX, in.MoveY},
		Look: mgl64.Vec2{in.LookX, in.LookY},
		Fire: in.Fire,
		Jump: in.Jump,
	}
}

// NewPlayerInput builds a PlayerInput from a controller frame.
func NewPlayerInput(seq uint32, frame controller.InputFrame) PlayerInput {
	return PlayerInput{
		Sequence: seq,
		MoveX:    frame.Move.X(),
		MoveY:    frame.Move.Y(),
		LookX:    frame.Look.X(),
		LookY:    frame.Look.Y(),
		Fire:     frame.Fire,
		Jump:     frame.Jump,
	}
}
