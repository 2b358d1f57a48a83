package netcomponents

import "github.com/yohamta/donburi"

// NetPlayerStateData carries the discrete player fields. Health is the
// authoritative pool value pushed to every observer.
type NetPlayerStateData struct {
	Name         string
	Health       int
	MaxHealth    int
	Defeated     bool
	Grounded     bool
	LastSequence uint32 // Last input sequence processed by the server (for prediction reconciliation)
}

var NetPlayerState = donburi.NewComponentType[NetPlayerStateData]()
