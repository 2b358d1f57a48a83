package network

import (
	"math"
	"testing"

	"github.com/automoto/lazertag/shared/controller"
	"github.com/automoto/lazertag/shared/leveldata"
	"github.com/automoto/lazertag/shared/messages"
	"github.com/go-gl/mathgl/mgl64"
)

func TestPredictionBufferWrapsAndReportsUnacknowledged(t *testing.T) {
	var pb PredictionBuffer
	for seq := uint32(1); seq <= predictionBufferSize+4; seq++ {
		pb.Store(messages.PlayerInput{Sequence: seq}, controller.State{Position: mgl64.Vec3{float64(seq), 0, 0}})
	}

	if _, ok := pb.Get(1); ok {
		t.Fatal("sequence 1 should have been overwritten")
	}
	rec, ok := pb.Get(predictionBufferSize + 2)
	if !ok || rec.Predicted.Position.X() != predictionBufferSize+2 {
		t.Fatalf("record = %+v ok=%v", rec, ok)
	}

	unacked := pb.GetUnacknowledged(predictionBufferSize + 1)
	if len(unacked) != 3 {
		t.Fatalf("unacknowledged = %d, want 3", len(unacked))
	}
	if got := pb.PredictionError(predictionBufferSize+4, mgl64.Vec3{predictionBufferSize + 1, 0, 4}); got != 5 {
		t.Fatalf("prediction error = %v, want 5", got)
	}
}

func newTestPredictor() *Predictor {
	arena := leveldata.OpenArena(40, 40, 1)
	return NewPredictor(arena, leveldata.SpawnPoint{X: 20, Z: 20}, 30)
}

func TestPredictorStepMovesAndSequences(t *testing.T) {
	p := newTestPredictor()
	forward := controller.InputFrame{Move: mgl64.Vec2{0, 1}}

	var last messages.PlayerInput
	for i := 0; i < 3; i++ {
		last = p.Step(forward, int64(i))
	}

	if last.Sequence != 3 || last.MoveY != 1 || last.Timestamp != 2 {
		t.Fatalf("input = %+v", last)
	}
	if z := p.State.Position.Z(); math.Abs(z-20.5) > 1e-9 {
		t.Fatalf("z = %v, want 20.5", z)
	}
	if !p.State.Grounded {
		t.Fatal("predicted player should stay grounded")
	}
}

func TestPredictorReconcile(t *testing.T) {
	p := newTestPredictor()
	forward := controller.InputFrame{Move: mgl64.Vec2{0, 1}}
	for i := 0; i < 3; i++ {
		p.Step(forward, 0)
	}
	rec1, _ := p.Buffer.Get(1)
	rec2, _ := p.Buffer.Get(2)

	if p.Reconcile(rec2.Predicted.Position, 2) {
		t.Fatal("matching server position should not correct")
	}

	server := rec1.Predicted.Position.Add(mgl64.Vec3{1, 0, 0})
	if !p.Reconcile(server, 1) {
		t.Fatal("diverged server position should correct")
	}
	want := mgl64.Vec3{21, 0, 20.5}
	if !p.State.Position.ApproxEqualThreshold(want, 1e-9) {
		t.Fatalf("position after replay = %v, want %v", p.State.Position, want)
	}
	if rec, _ := p.Buffer.Get(3); !rec.Predicted.Position.ApproxEqualThreshold(want, 1e-9) {
		t.Fatalf("replayed record = %v, want %v", rec.Predicted.Position, want)
	}
}

func TestPredictorReconcileBeforeFirstAck(t *testing.T) {
	p := newTestPredictor()
	spawn := mgl64.Vec3{5, 0, 6}
	if p.Reconcile(spawn, 0) {
		t.Fatal("initial placement is not a correction")
	}
	if p.State.Position != spawn {
		t.Fatalf("position = %v, want server spawn %v", p.State.Position, spawn)
	}
}
