package gamemath

import "math"

// SettleVertical pins the vertical speed of a grounded body to groundedSpeed
// while it is not moving upward, so the body stays pressed onto the floor
// without gravity accumulating between ticks.
func SettleVertical(speedY float64, grounded bool, groundedSpeed float64) float64 {
	if grounded && speedY <= 0 {
		return groundedSpeed
	}
	return speedY
}

// ApplyGravity integrates gravity over dt. gravity is negative for a Y-up world.
func ApplyGravity(speedY, gravity, dt float64) float64 {
	return speedY + gravity*dt
}

// JumpVelocity returns the launch speed that peaks at height under gravity.
func JumpVelocity(height, gravity float64) float64 {
	if height <= 0 || gravity >= 0 {
		return 0
	}
	return math.Sqrt(height * -2 * gravity)
}
