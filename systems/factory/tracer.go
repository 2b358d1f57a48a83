package factory

import (
	"github.com/automoto/lazertag/archetypes"
	"github.com/automoto/lazertag/components"
	cfg "github.com/automoto/lazertag/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTracer spawns the beam of a shot. The tween drives Progress from 0
// to 1 over the configured duration.
func CreateTracer(ecs *ecs.ECS, origin, end mgl64.Vec3) *donburi.Entry {
	tracer := archetypes.Tracer.Spawn(ecs)
	components.Tracer.SetValue(tracer, components.TracerData{
		Origin: origin,
		End:    end,
		Tween:  gween.New(0, 1, float32(cfg.Tracer.Duration), ease.Linear),
	})
	return tracer
}
