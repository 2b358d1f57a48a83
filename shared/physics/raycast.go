package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Hit is the first intersection found by Raycast. Body is nil when the ray
// struck the floor.
type Hit struct {
	Point    mgl64.Vec3
	Distance float64
	Body     *Body
}

// Raycast returns the nearest wall, body or floor hit along dir within
// maxDistance (inclusive). dir must be a unit vector. ignore is skipped so a
// shooter never hits itself.
func (w *World) Raycast(origin, dir mgl64.Vec3, maxDistance float64, ignore *Body) (Hit, bool) {
	if maxDistance < 0 || dir.Len() == 0 {
		return Hit{}, false
	}

	end := origin.Add(dir.Mul(maxDistance))
	minX, maxX := math.Min(origin.X(), end.X()), math.Max(origin.X(), end.X())
	minZ, maxZ := math.Min(origin.Z(), end.Z()), math.Max(origin.Z(), end.Z())

	best := Hit{Distance: math.Inf(1)}
	found := false

	for _, obj := range w.query(minX, minZ, maxX, maxZ, TagSolid, TagBody) {
		b, ok := obj.Data.(*Body)
		if !ok || b == ignore || b.removed {
			continue
		}
		lo, hi := b.Bounds()
		t, ok := rayBox(origin, dir, lo, hi)
		if !ok || t > maxDistance || t >= best.Distance {
			continue
		}
		best = Hit{Distance: t, Body: b}
		found = true
	}

	if dir.Y() < 0 && origin.Y() >= w.Floor {
		t := (w.Floor - origin.Y()) / dir.Y()
		if t <= maxDistance && t < best.Distance {
			best = Hit{Distance: t}
			found = true
		}
	}

	if !found {
		return Hit{}, false
	}
	best.Point = origin.Add(dir.Mul(best.Distance))
	return best, true
}

// rayBox is the slab test. It returns the entry distance along the ray, or 0
// when origin is already inside the box.
func rayBox(origin, dir, lo, hi mgl64.Vec3) (float64, bool) {
	tmin, tmax := 0.0, math.Inf(1)
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (lo[i] - origin[i]) * inv
		t2 := (hi[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
