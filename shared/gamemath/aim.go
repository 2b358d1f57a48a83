package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Angles are in degrees. The world is Y-up; yaw 0 faces +Z and positive yaw
// turns toward +X. Positive pitch looks down.

// Forward returns the horizontal unit vector the yaw faces.
func Forward(yaw float64) mgl64.Vec3 {
	r := mgl64.DegToRad(yaw)
	return mgl64.Vec3{math.Sin(r), 0, math.Cos(r)}
}

// Right returns the horizontal unit vector to the right of the yaw.
func Right(yaw float64) mgl64.Vec3 {
	r := mgl64.DegToRad(yaw)
	return mgl64.Vec3{math.Cos(r), 0, -math.Sin(r)}
}

// MoveVector converts stick input into a horizontal velocity relative to yaw.
func MoveVector(yaw float64, move mgl64.Vec2, speed float64) mgl64.Vec3 {
	v := Right(yaw).Mul(move.X()).Add(Forward(yaw).Mul(move.Y()))
	return v.Mul(speed)
}

// AimDirection returns the unit view vector for yaw and pitch.
func AimDirection(yaw, pitch float64) mgl64.Vec3 {
	y := mgl64.DegToRad(yaw)
	p := mgl64.DegToRad(pitch)
	return mgl64.Vec3{
		math.Sin(y) * math.Cos(p),
		-math.Sin(p),
		math.Cos(y) * math.Cos(p),
	}
}

// ClampPitch keeps pitch within [min, max].
func ClampPitch(pitch, min, max float64) float64 {
	return mgl64.Clamp(pitch, min, max)
}

// Lerp interpolates between two points.
func Lerp(from, to mgl64.Vec3, t float64) mgl64.Vec3 {
	return from.Add(to.Sub(from).Mul(t))
}

// YawTo returns the yaw that faces from toward to on the horizontal plane.
func YawTo(from, to mgl64.Vec3) float64 {
	d := to.Sub(from)
	return mgl64.RadToDeg(math.Atan2(d.X(), d.Z()))
}

// AngleDiff returns the signed shortest turn from a to b, in (-180, 180].
func AngleDiff(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
