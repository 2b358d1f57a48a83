package core

import (
	"log"

	"github.com/automoto/lazertag/components"
	"github.com/automoto/lazertag/shared/messages"
	"github.com/automoto/lazertag/shared/netcomponents"
	"github.com/yohamta/donburi"
)

// subscribeEvents turns simulation events into wire events. They are sent
// after the tick so clients see them next to the matching snapshot.
func (s *Server) subscribeEvents() {
	components.ShotFiredEvent.Subscribe(s.world, func(_ donburi.World, ev components.ShotFired) {
		s.outbox = append(s.outbox, messages.ShotEvent{
			ShooterID: s.networkID(ev.Shooter),
			OriginX:   ev.Origin.X(),
			OriginY:   ev.Origin.Y(),
			OriginZ:   ev.Origin.Z(),
			EndX:      ev.End.X(),
			EndY:      ev.End.Y(),
			EndZ:      ev.End.Z(),
			Hit:       ev.Hit,
		})
	})

	components.PlayerHitEvent.Subscribe(s.world, func(_ donburi.World, ev components.PlayerHit) {
		s.outbox = append(s.outbox, messages.HitEvent{
			AttackerID: s.networkID(ev.Attacker),
			TargetID:   s.networkID(ev.Target),
			Damage:     ev.Damage,
			Health:     ev.Health,
		})
	})

	components.PlayerDefeatedEvent.Subscribe(s.world, func(_ donburi.World, ev components.PlayerDefeated) {
		killer := s.networkID(ev.Killer)
		s.outbox = append(s.outbox, messages.DeathEvent{
			VictimID: s.networkID(ev.Victim),
			KillerID: killer,
		})
		if killer != 0 && s.world.Valid(s.gameState) {
			netcomponents.NetGameState.Get(s.world.Entry(s.gameState)).Tags[killer]++
		}
	})
}

func (s *Server) flushEvents() {
	events := s.outbox
	s.outbox = nil
	for _, ev := range events {
		s.broadcast(ev)
	}
}

// broadcast sends msg to every joined client.
func (s *Server) broadcast(msg any) {
	s.mu.Lock()
	peers := make([]Peer, 0, len(s.sessions))
	for _, sess := range s.sessions {
		if sess.joined {
			peers = append(peers, sess.peer)
		}
	}
	s.mu.Unlock()

	for _, p := range peers {
		if err := p.SendMessage(msg); err != nil {
			log.Printf("[server] send %T to %s: %v", msg, p.Id(), err)
		}
	}
}
