package messages

// ShotEvent is broadcast for every shot so observers can draw the tracer.
type ShotEvent struct {
	ShooterID                 uint // NetworkId of shooter
	OriginX, OriginY, OriginZ float64
	EndX, EndY, EndZ          float64
	Hit                       bool
}

// HitEvent is broadcast when a shot damages a player
type HitEvent struct {
	AttackerID uint // NetworkId of attacker
	TargetID   uint // NetworkId of target
	Damage     int
	Health     int // Target health after the hit
}

// DeathEvent is broadcast when a player is defeated
type DeathEvent struct {
	VictimID uint // NetworkId of victim
	KillerID uint // NetworkId of killer (0 if environmental)
}

// DespawnEvent is broadcast when an entity is removed
type DespawnEvent struct {
	NetworkID uint
}
