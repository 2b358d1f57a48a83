package components

import "github.com/yohamta/donburi"

// ClockData is the singleton simulation clock, written once per tick by
// whoever drives the ECS.
type ClockData struct {
	DeltaTime float64 // seconds
	Tick      uint64
}

var Clock = donburi.NewComponentType[ClockData]()
