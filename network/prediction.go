package network

import (
	"math"

	cfg "github.com/automoto/lazertag/config"
	"github.com/automoto/lazertag/shared/controller"
	"github.com/automoto/lazertag/shared/leveldata"
	"github.com/automoto/lazertag/shared/messages"
	"github.com/automoto/lazertag/shared/netconfig"
	"github.com/automoto/lazertag/shared/physics"
	"github.com/automoto/lazertag/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
)

const predictionBufferSize = 64

// InputRecord stores an input alongside the predicted state after applying it.
type InputRecord struct {
	Input     messages.PlayerInput
	Predicted controller.State
}

// PredictionBuffer is a ring buffer that stores recent inputs and their
// predicted outcomes for server reconciliation.
type PredictionBuffer struct {
	history [predictionBufferSize]InputRecord
	nextSeq uint32
}

// Store saves an input and the resulting predicted state.
func (pb *PredictionBuffer) Store(input messages.PlayerInput, predicted controller.State) {
	idx := input.Sequence % predictionBufferSize
	pb.history[idx] = InputRecord{
		Input:     input,
		Predicted: predicted,
	}
	pb.nextSeq = input.Sequence + 1
}

// Get retrieves a stored record by sequence number. Returns false if not found
// or if the slot has been overwritten.
func (pb *PredictionBuffer) Get(seq uint32) (InputRecord, bool) {
	idx := seq % predictionBufferSize
	record := pb.history[idx]
	if record.Input.Sequence != seq {
		return InputRecord{}, false
	}
	return record, true
}

// NextSeq returns the next expected sequence number.
func (pb *PredictionBuffer) NextSeq() uint32 {
	return pb.nextSeq
}

// GetUnacknowledged returns all stored inputs with sequence numbers greater
// than lastAcked and less than nextSeq (i.e. inputs the server hasn't
// confirmed yet).
func (pb *PredictionBuffer) GetUnacknowledged(lastAcked uint32) []InputRecord {
	var results []InputRecord
	for seq := lastAcked + 1; seq < pb.nextSeq; seq++ {
		if record, ok := pb.Get(seq); ok {
			results = append(results, record)
		}
	}
	return results
}

// PredictionError calculates the distance between predicted and actual server
// position for a given sequence.
func (pb *PredictionBuffer) PredictionError(seq uint32, server mgl64.Vec3) float64 {
	record, ok := pb.Get(seq)
	if !ok {
		return 0
	}
	return record.Predicted.Position.Sub(server).Len()
}

// reconcileTolerance is how far a prediction may drift before it is corrected.
const reconcileTolerance = 0.05

// Predictor runs the local player's controller ahead of the server against
// a private copy of the arena's collision world.
type Predictor struct {
	Buffer *PredictionBuffer
	State  controller.State

	controller *controller.Controller
	world      *physics.World
	body       *physics.Body
	dt         float64
	seq        uint32
}

// NewPredictor builds the collision world for arena and places the player at spawn.
func NewPredictor(arena *leveldata.Arena, spawn leveldata.SpawnPoint, tickRate int) *Predictor {
	world := physics.NewWorld(int(math.Ceil(arena.Width)), int(math.Ceil(arena.Depth)),
		cfg.Physics.CellSize, cfg.Physics.Floor)
	for _, w := range arena.Walls {
		world.AddWall(w.X, w.Z, w.W, w.D)
	}

	pos := mgl64.Vec3{spawn.X, cfg.Physics.Floor, spawn.Z}
	body := world.AddBody(pos, cfg.Player.Width, cfg.Player.Height, nil)

	if tickRate <= 0 {
		tickRate = cfg.Server.TickRate
	}

	return &Predictor{
		Buffer: &PredictionBuffer{},
		State: controller.State{
			Position: pos,
			Yaw:      spawn.Yaw,
			Grounded: true,
		},
		controller: controller.New(netconfig.AuthorityLocal, factory.ControllerSettings()),
		world: world,
		body:  body,
		dt:    1 / float64(tickRate),
	}
}

// World is the predictor's private collision world.
func (p *Predictor) World() *physics.World {
	return p.world
}

// Step predicts one tick of frame and returns the input to send.
func (p *Predictor) Step(frame controller.InputFrame, timestamp int64) messages.PlayerInput {
	p.seq++
	input := messages.NewPlayerInput(p.seq, frame)
	input.Timestamp = timestamp

	p.State = p.tick(frame)
	p.Buffer.Store(input, p.State)
	return input
}

func (p *Predictor) tick(frame controller.InputFrame) controller.State {
	return p.controller.Tick(p.dt, frame, p.State, predictorMover{body: p.body})
}

// Reconcile compares the server's position for lastAcked with what was
// predicted. On a mismatch it rewinds to the server position and replays
// every input the server has not processed yet. It reports whether a
// correction was made.
func (p *Predictor) Reconcile(server mgl64.Vec3, lastAcked uint32) bool {
	if lastAcked == 0 || p.Buffer.NextSeq() == 0 {
		p.snap(server)
		return false
	}
	record, ok := p.Buffer.Get(lastAcked)
	if !ok {
		return false
	}
	if p.Buffer.PredictionError(lastAcked, server) <= reconcileTolerance {
		return false
	}

	p.State = record.Predicted
	p.snap(server)
	for _, r := range p.Buffer.GetUnacknowledged(lastAcked) {
		p.State = p.tick(r.Input.Frame())
		p.Buffer.Store(r.Input, p.State)
	}
	return true
}

func (p *Predictor) snap(server mgl64.Vec3) {
	p.State.Position = server
	p.body.SetPosition(server)
}

type predictorMover struct {
	body *physics.Body
}

func (m predictorMover) Move(delta mgl64.Vec3) (mgl64.Vec3, bool) {
	res := m.body.Move(delta)
	return res.Actual, res.Grounded
}
