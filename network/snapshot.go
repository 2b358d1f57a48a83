package network

import (
	"github.com/automoto/lazertag/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// PlayerView is the decoded replicated state of one player.
type PlayerView struct {
	ID        esync.NetworkId
	Transform *netcomponents.NetTransformData
	Velocity  *netcomponents.NetVelocityData
	State     *netcomponents.NetPlayerStateData
}

// DecodeSnapshot extracts every player in snapshot. Components that fail to
// decode are skipped. Game state is returned separately when present.
func DecodeSnapshot(snapshot esync.WorldSnapshot) ([]PlayerView, *netcomponents.NetGameStateData) {
	var players []PlayerView
	var game *netcomponents.NetGameStateData

	for _, ent := range snapshot {
		view := PlayerView{ID: ent.Id}
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			switch v := instance.(type) {
			case netcomponents.NetTransformData:
				view.Transform = &v
			case netcomponents.NetVelocityData:
				view.Velocity = &v
			case netcomponents.NetPlayerStateData:
				view.State = &v
			case netcomponents.NetGameStateData:
				game = &v
			}
		}
		if view.Transform != nil && view.State != nil {
			players = append(players, view)
		}
	}
	return players, game
}

// FindPlayer returns the view for id.
func FindPlayer(players []PlayerView, id esync.NetworkId) (PlayerView, bool) {
	for _, p := range players {
		if p.ID == id {
			return p, true
		}
	}
	return PlayerView{}, false
}
