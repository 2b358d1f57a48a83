package factory

import (
	cfg "github.com/automoto/lazertag/config"
	"github.com/automoto/lazertag/shared/combat"
	"github.com/automoto/lazertag/shared/controller"
)

// ControllerSettings reads the current tuning. Call it again after a reload.
func ControllerSettings() controller.Settings {
	return controller.Settings{
		MoveSpeed:        cfg.Player.MoveSpeed,
		LookSpeed:        cfg.Player.LookSpeed,
		JumpHeight:       cfg.Player.JumpHeight,
		Gravity:          cfg.Physics.Gravity,
		GroundedVelocity: cfg.Physics.GroundedVelocity,
		MinPitch:         cfg.Physics.MinPitch,
		MaxPitch:         cfg.Physics.MaxPitch,
		Floor:            cfg.Physics.Floor,
	}
}

func CombatSettings() combat.Settings {
	return combat.Settings{
		Damage:   cfg.Combat.Damage,
		MaxRange: cfg.Combat.MaxRange,
	}
}
