package components

import (
	"github.com/automoto/lazertag/shared/health"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Pool *health.Pool
	// LastAttacker gets the kill credit when the pool is defeated.
	LastAttacker donburi.Entity
}

var Health = donburi.NewComponentType[HealthData]()
