package core

import (
	"math"
	"sync"
	"testing"

	"github.com/automoto/lazertag/components"
	cfg "github.com/automoto/lazertag/config"
	"github.com/automoto/lazertag/shared/controller"
	"github.com/automoto/lazertag/shared/messages"
	"github.com/automoto/lazertag/shared/netconfig"
	"github.com/automoto/lazertag/shared/protocol"
	"github.com/automoto/lazertag/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type fakePeer struct {
	id  string
	mu  sync.Mutex
	got []any
}

func (p *fakePeer) Id() string { return p.id }

func (p *fakePeer) SendMessage(msg any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, msg)
	return nil
}

func received[T any](p *fakePeer) []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []T
	for _, m := range p.got {
		if v, ok := m.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

type fakeReplicator struct {
	players []donburi.Entity
	syncs   int
}

func (r *fakeReplicator) TrackPlayer(_ donburi.World, e *donburi.Entity) error {
	r.players = append(r.players, *e)
	return nil
}

func (r *fakeReplicator) TrackGameState(donburi.World, *donburi.Entity) error { return nil }

func (r *fakeReplicator) Sync() error {
	r.syncs++
	return nil
}

const tickDT = 1.0 / 30

func newTestServer(t *testing.T, maxPlayers int) (*Server, *fakeReplicator) {
	t.Helper()
	rep := &fakeReplicator{}
	s, err := NewServer(Options{
		Name:       "test",
		Version:    protocol.Version,
		MaxPlayers: maxPlayers,
		Replicator: rep,
	})
	if err != nil {
		t.Fatal(err)
	}
	return s, rep
}

func joinPeer(t *testing.T, s *Server, id, token string) *fakePeer {
	t.Helper()
	p := &fakePeer{id: id}
	s.onConnect(p)
	s.onJoinRequest(p, messages.JoinRequest{Version: protocol.Version, PlayerName: id, ReconnectToken: token})
	s.Tick(tickDT)
	return p
}

func TestJoinAccepted(t *testing.T) {
	s, rep := newTestServer(t, 4)
	p := joinPeer(t, s, "a", "")

	accepted := received[messages.JoinAccepted](p)
	if len(accepted) != 1 {
		t.Fatalf("got %d JoinAccepted, want 1", len(accepted))
	}
	if accepted[0].ParticipantID == "" || accepted[0].ReconnectToken == "" || accepted[0].Arena != "open" {
		t.Fatalf("accepted = %+v", accepted[0])
	}
	if s.PlayerCount() != 1 || len(rep.players) != 1 {
		t.Fatalf("players = %d, tracked = %d", s.PlayerCount(), len(rep.players))
	}
	if rep.syncs != 1 {
		t.Fatalf("syncs = %d, want one per tick", rep.syncs)
	}
}

func TestJoinRejected(t *testing.T) {
	s, _ := newTestServer(t, 1)

	old := &fakePeer{id: "old"}
	s.onConnect(old)
	s.onJoinRequest(old, messages.JoinRequest{Version: "lazertag/0"})
	joinPeer(t, s, "a", "")
	late := joinPeer(t, s, "b", "")

	if r := received[messages.JoinRejected](old); len(r) != 1 {
		t.Fatalf("version mismatch rejections = %v", r)
	}
	if r := received[messages.JoinRejected](late); len(r) != 1 || r[0].Reason != "server full" {
		t.Fatalf("full server rejections = %v", r)
	}
	if s.PlayerCount() != 1 {
		t.Fatalf("players = %d, want 1", s.PlayerCount())
	}
}

func TestInputRoutesOnlyToSender(t *testing.T) {
	s, _ := newTestServer(t, 4)
	a := joinPeer(t, s, "a", "")
	joinPeer(t, s, "b", "")

	ea, _ := s.PlayerEntity("a")
	eb, _ := s.PlayerEntity("b")
	startA := components.Transform.Get(s.world.Entry(ea)).Position
	startB := components.Transform.Get(s.world.Entry(eb)).Position

	s.onPlayerInput(a, messages.PlayerInput{Sequence: 1, MoveY: 1})
	for i := 0; i < 10; i++ {
		s.Tick(tickDT)
	}

	if components.Transform.Get(s.world.Entry(ea)).Position == startA {
		t.Fatal("sender did not move")
	}
	if components.Transform.Get(s.world.Entry(eb)).Position != startB {
		t.Fatal("input leaked to another player")
	}
}

func TestShotBroadcastsHit(t *testing.T) {
	s, _ := newTestServer(t, 4)
	// The first two open arena spawns face each other.
	a := joinPeer(t, s, "a", "")
	b := joinPeer(t, s, "b", "")

	s.onPlayerInput(a, messages.PlayerInput{Sequence: 1, Fire: true})
	s.Tick(tickDT)

	for _, p := range []*fakePeer{a, b} {
		if shots := received[messages.ShotEvent](p); len(shots) != 1 || !shots[0].Hit {
			t.Fatalf("%s shots = %+v", p.id, shots)
		}
		hits := received[messages.HitEvent](p)
		if len(hits) != 1 || hits[0].Damage != cfg.Combat.Damage || hits[0].Health != cfg.Player.Health-cfg.Combat.Damage {
			t.Fatalf("%s hits = %+v", p.id, hits)
		}
	}
}

func TestDisconnectRemovesPlayer(t *testing.T) {
	s, _ := newTestServer(t, 4)
	a := joinPeer(t, s, "a", "")
	b := joinPeer(t, s, "b", "")
	ea, _ := s.PlayerEntity("a")

	s.onDisconnect(a, nil)
	s.Tick(tickDT)

	if s.world.Valid(ea) {
		t.Fatal("player entity survived disconnect")
	}
	if s.PlayerCount() != 1 {
		t.Fatalf("players = %d, want 1", s.PlayerCount())
	}
	if d := received[messages.DespawnEvent](b); len(d) != 1 {
		t.Fatalf("despawns = %v", d)
	}
}

func TestReconnectTokenKeepsParticipant(t *testing.T) {
	s, _ := newTestServer(t, 4)
	a := joinPeer(t, s, "a", "")
	first := received[messages.JoinAccepted](a)[0]

	s.onDisconnect(a, nil)
	s.Tick(tickDT)

	again := joinPeer(t, s, "a2", first.ReconnectToken)
	second := received[messages.JoinAccepted](again)[0]
	if second.ParticipantID != first.ParticipantID {
		t.Fatalf("participant = %s, want %s", second.ParticipantID, first.ParticipantID)
	}

	// A token held by a connected player cannot be borrowed.
	thief := joinPeer(t, s, "c", first.ReconnectToken)
	if got := received[messages.JoinAccepted](thief)[0]; got.ParticipantID == first.ParticipantID {
		t.Fatal("active participant was duplicated")
	}
}

func TestLookMatchesClientPrediction(t *testing.T) {
	s, _ := newTestServer(t, 4)
	a := joinPeer(t, s, "a", "")
	ea, _ := s.PlayerEntity("a")
	start := components.Transform.Get(s.world.Entry(ea)).Yaw

	frame := controller.InputFrame{Look: mgl64.Vec2{30, 0}}
	s.onPlayerInput(a, messages.NewPlayerInput(1, frame))
	for i := 0; i < 3; i++ {
		s.Tick(tickDT)
	}

	local := controller.New(netconfig.AuthorityLocal, factory.ControllerSettings())
	predicted := local.Tick(tickDT, frame, controller.State{Yaw: start, Grounded: true}, nil)

	if yaw := components.Transform.Get(s.world.Entry(ea)).Yaw; math.Abs(yaw-predicted.Yaw) > 1e-9 {
		t.Fatalf("server yaw = %v, client predicted %v", yaw, predicted.Yaw)
	}
}
