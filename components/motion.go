package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type MotionData struct {
	VerticalVelocity float64
	Grounded         bool
	// Velocity is the displacement actually achieved last tick divided by dt.
	Velocity mgl64.Vec3
}

var Motion = donburi.NewComponentType[MotionData]()
