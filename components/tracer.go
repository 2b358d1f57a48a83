package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TracerData is the cosmetic beam of one shot. Progress runs from 0 to 1 as
// the beam head travels from Origin to End.
type TracerData struct {
	Origin   mgl64.Vec3
	End      mgl64.Vec3
	Tween    *gween.Tween
	Progress float64
}

var Tracer = donburi.NewComponentType[TracerData]()
