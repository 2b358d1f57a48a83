package systems

import (
	"github.com/automoto/lazertag/components"
	"github.com/yohamta/donburi"
)

// Advance records the duration of the tick about to run. It is a no-op in
// worlds without a clock.
func Advance(world donburi.World, dt float64) {
	entry, ok := components.Clock.First(world)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.DeltaTime = dt
	clock.Tick++
}

func deltaTime(world donburi.World) float64 {
	entry, ok := components.Clock.First(world)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).DeltaTime
}
