package protocol

import (
	"github.com/automoto/lazertag/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Version is the protocol version clients must present in JoinRequest.
const Version = "lazertag/1"

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetTransform   uint = 10
	SyncIDNetVelocity    uint = 11
	SyncIDNetPlayerState uint = 12
	SyncIDNetGameState   uint = 13
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetTransform uint8 = 10
	InterpIDNetVelocity  uint8 = 11
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	// Pose is interpolated between snapshots
	if err := esync.RegisterComponent(
		SyncIDNetTransform,
		netcomponents.NetTransformData{},
		netcomponents.NetTransform,
		esync.WithInterpFn(InterpIDNetTransform, netcomponents.LerpNetTransform),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetVelocity,
		netcomponents.NetVelocityData{},
		netcomponents.NetVelocity,
		esync.WithInterpFn(InterpIDNetVelocity, netcomponents.LerpNetVelocity),
	); err != nil {
		return err
	}

	// PlayerState: no interpolation (discrete state changes)
	if err := esync.RegisterComponent(
		SyncIDNetPlayerState,
		netcomponents.NetPlayerStateData{},
		netcomponents.NetPlayerState,
	); err != nil {
		return err
	}

	// GameState: no interpolation (discrete state)
	if err := esync.RegisterComponent(
		SyncIDNetGameState,
		netcomponents.NetGameStateData{},
		netcomponents.NetGameState,
	); err != nil {
		return err
	}

	return nil
}
