package core

import (
	"github.com/automoto/lazertag/shared/netcomponents"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// Replicator pushes tracked entities to every connected client.
type Replicator interface {
	TrackPlayer(world donburi.World, entity *donburi.Entity) error
	TrackGameState(world donburi.World, entity *donburi.Entity) error
	Sync() error
}

// NecsReplicator replicates through necs srvsync.
type NecsReplicator struct{}

// NewNecsReplicator sets the world up for esync.
func NewNecsReplicator(world donburi.World) *NecsReplicator {
	srvsync.UseEsync(world)
	return &NecsReplicator{}
}

func (NecsReplicator) TrackPlayer(world donburi.World, entity *donburi.Entity) error {
	// Pose and velocity are interpolated on clients, player state is discrete
	return srvsync.NetworkSync(world, entity,
		srvsync.WithInterp(netcomponents.NetTransform, netcomponents.NetVelocity),
		netcomponents.NetPlayerState,
	)
}

func (NecsReplicator) TrackGameState(world donburi.World, entity *donburi.Entity) error {
	return srvsync.NetworkSync(world, entity, netcomponents.NetGameState)
}

func (NecsReplicator) Sync() error {
	return srvsync.DoSync()
}
