package netcomponents

import "github.com/yohamta/donburi"

// NetGameStateData is the single match-wide entity.
type NetGameStateData struct {
	Arena string
	Tick  uint64
	Tags  map[uint]int // NetworkId -> opponents tagged
}

var NetGameState = donburi.NewComponentType[NetGameStateData]()
