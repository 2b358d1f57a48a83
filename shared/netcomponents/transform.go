package netcomponents

import (
	"github.com/automoto/lazertag/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// NetTransformData is the replicated pose of a player. Position is the
// centre of the feet.
type NetTransformData struct {
	X, Y, Z    float64
	Yaw, Pitch float64
}

var NetTransform = donburi.NewComponentType[NetTransformData]()

func (d NetTransformData) Position() mgl64.Vec3 {
	return mgl64.Vec3{d.X, d.Y, d.Z}
}

// LerpNetTransform interpolates between two poses
func LerpNetTransform(from, to NetTransformData, t float64) *NetTransformData {
	p := gamemath.Lerp(from.Position(), to.Position(), t)
	return &NetTransformData{
		X:     p.X(),
		Y:     p.Y(),
		Z:     p.Z(),
		Yaw:   from.Yaw + (to.Yaw-from.Yaw)*t,
		Pitch: from.Pitch + (to.Pitch-from.Pitch)*t,
	}
}
