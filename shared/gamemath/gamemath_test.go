package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func vecNear(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-9)
}

func TestSettleVertical(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		grounded bool
		want     float64
	}{
		{"grounded falling", -7, true, -2},
		{"grounded resting", 0, true, -2},
		{"grounded rising", 3, true, 3},
		{"airborne falling", -7, false, -7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SettleVertical(tc.speed, tc.grounded, -2); got != tc.want {
				t.Fatalf("SettleVertical(%v, %v) = %v, want %v", tc.speed, tc.grounded, got, tc.want)
			}
		})
	}
}

func TestApplyGravity(t *testing.T) {
	got := ApplyGravity(-2, -9.81, 0.5)
	if math.Abs(got-(-2-4.905)) > eps {
		t.Fatalf("ApplyGravity = %v, want %v", got, -2-4.905)
	}
	if ApplyGravity(1, -9.81, 0) != 1 {
		t.Fatal("zero dt must not change speed")
	}
}

func TestJumpVelocity(t *testing.T) {
	v := JumpVelocity(1.5, -9.81)
	// Apex height of v under g is v^2 / 2|g|.
	if apex := v * v / (2 * 9.81); math.Abs(apex-1.5) > eps {
		t.Fatalf("apex = %v, want 1.5", apex)
	}
	if JumpVelocity(0, -9.81) != 0 || JumpVelocity(1, 0) != 0 {
		t.Fatal("degenerate jumps must return 0")
	}
}

func TestAxesAtYawZeroAndNinety(t *testing.T) {
	if !vecNear(Forward(0), mgl64.Vec3{0, 0, 1}) {
		t.Fatalf("Forward(0) = %v", Forward(0))
	}
	if !vecNear(Right(0), mgl64.Vec3{1, 0, 0}) {
		t.Fatalf("Right(0) = %v", Right(0))
	}
	if !vecNear(Forward(90), mgl64.Vec3{1, 0, 0}) {
		t.Fatalf("Forward(90) = %v", Forward(90))
	}
	if !vecNear(Right(90), mgl64.Vec3{0, 0, -1}) {
		t.Fatalf("Right(90) = %v", Right(90))
	}
}

func TestMoveVectorScalesBySpeed(t *testing.T) {
	got := MoveVector(0, mgl64.Vec2{1, 1}, 5)
	if !vecNear(got, mgl64.Vec3{5, 0, 5}) {
		t.Fatalf("MoveVector = %v, want {5 0 5}", got)
	}
	if got := MoveVector(45, mgl64.Vec2{}, 5); got.Len() != 0 {
		t.Fatalf("no input must not move, got %v", got)
	}
}

func TestAimDirection(t *testing.T) {
	if !vecNear(AimDirection(0, 0), mgl64.Vec3{0, 0, 1}) {
		t.Fatalf("AimDirection(0,0) = %v", AimDirection(0, 0))
	}
	down := AimDirection(0, 90)
	if !vecNear(down, mgl64.Vec3{0, -1, 0}) {
		t.Fatalf("AimDirection(0,90) = %v, want straight down", down)
	}
	if l := AimDirection(123, -37).Len(); math.Abs(l-1) > eps {
		t.Fatalf("aim length = %v, want 1", l)
	}
}

func TestClampPitch(t *testing.T) {
	for _, p := range []float64{-1000, -80, 0, 79.9, 80, 1e9} {
		got := ClampPitch(p, -80, 80)
		if got < -80 || got > 80 {
			t.Fatalf("ClampPitch(%v) = %v, out of range", p, got)
		}
	}
}

func TestLerp(t *testing.T) {
	got := Lerp(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 20, 30}, 0.5)
	if !vecNear(got, mgl64.Vec3{5, 10, 15}) {
		t.Fatalf("Lerp = %v", got)
	}
}

func TestYawToFacesTarget(t *testing.T) {
	from := mgl64.Vec3{1, 0, 1}
	for _, yaw := range []float64{0, 45, 90, -135} {
		to := from.Add(Forward(yaw).Mul(7))
		if got := YawTo(from, to); math.Abs(AngleDiff(got, yaw)) > 1e-6 {
			t.Fatalf("YawTo = %v, want %v", got, yaw)
		}
	}
}

func TestAngleDiff(t *testing.T) {
	tests := []struct{ a, b, want float64 }{
		{0, 90, 90},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{720, -90, -90},
	}
	for _, tc := range tests {
		if got := AngleDiff(tc.a, tc.b); math.Abs(got-tc.want) > eps {
			t.Fatalf("AngleDiff(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
