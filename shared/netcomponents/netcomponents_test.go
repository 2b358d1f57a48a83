package netcomponents

import "testing"

func TestLerpNetTransform(t *testing.T) {
	from := NetTransformData{X: 0, Y: 0, Z: 0, Yaw: 0, Pitch: -10}
	to := NetTransformData{X: 10, Y: 2, Z: -4, Yaw: 90, Pitch: 10}

	got := LerpNetTransform(from, to, 0.5)
	want := NetTransformData{X: 5, Y: 1, Z: -2, Yaw: 45, Pitch: 0}
	if *got != want {
		t.Fatalf("lerp = %+v, want %+v", *got, want)
	}
	if *LerpNetTransform(from, to, 0) != from || *LerpNetTransform(from, to, 1) != to {
		t.Fatal("lerp endpoints must match inputs")
	}
}

func TestLerpNetVelocity(t *testing.T) {
	got := LerpNetVelocity(NetVelocityData{Y: -2}, NetVelocityData{X: 4, Y: 2}, 0.25)
	if *got != (NetVelocityData{X: 1, Y: -1}) {
		t.Fatalf("lerp = %+v", *got)
	}
}
