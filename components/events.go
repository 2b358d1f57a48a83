package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ShotFired is published for every resolved shot.
type ShotFired struct {
	Shooter donburi.Entity
	Origin  mgl64.Vec3
	End     mgl64.Vec3
	Hit     bool
}

// PlayerHit is published when a shot damages a player that was still alive.
type PlayerHit struct {
	Attacker donburi.Entity
	Target   donburi.Entity
	Damage   int
	Health   int
}

// PlayerDefeated is published once per player, on the terminal transition.
type PlayerDefeated struct {
	Victim donburi.Entity
	Killer donburi.Entity
}

var (
	ShotFiredEvent      = events.NewEventType[ShotFired]()
	PlayerHitEvent      = events.NewEventType[PlayerHit]()
	PlayerDefeatedEvent = events.NewEventType[PlayerDefeated]()
)
