// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on the simulation
// packages so every binary can import it.
package netconfig

// Authority says whether the current process drives an entity from input or
// only mirrors replicated state for it.
type Authority int

const (
	// AuthorityReplica entities are inert passengers; their pose comes from
	// replication.
	AuthorityReplica Authority = iota
	// AuthorityLocal entities are driven by input held by this process.
	AuthorityLocal
)

func (a Authority) String() string {
	switch a {
	case AuthorityLocal:
		return "local"
	case AuthorityReplica:
		return "replica"
	}
	return "unknown"
}

// LifeState is the health state machine of a player.
type LifeState int

const (
	Alive LifeState = iota
	Defeated
)

func (s LifeState) String() string {
	switch s {
	case Alive:
		return "alive"
	case Defeated:
		return "defeated"
	}
	return "unknown"
}
