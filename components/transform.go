package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is the pose of a player. Position is the centre of the
// feet; Yaw and Pitch are degrees.
type TransformData struct {
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
}

var Transform = donburi.NewComponentType[TransformData]()
