package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Kind distinguishes static geometry from movable bodies.
type Kind int

const (
	KindWall Kind = iota
	KindPlayer
)

// Body is a collision volume in a World. Payload carries whatever the owner
// needs to map a hit back to game state.
type Body struct {
	world   *World
	Object  *resolv.Object
	Kind    Kind
	Bottom  float64
	Height  float64
	Payload any
	removed bool
}

// MoveResult is the displacement a move actually achieved.
type MoveResult struct {
	Actual   mgl64.Vec3
	Grounded bool
}

// Position returns the centre of the body's feet.
func (b *Body) Position() mgl64.Vec3 {
	return mgl64.Vec3{b.Object.X + b.Object.W/2, b.Bottom, b.Object.Y + b.Object.H/2}
}

// SetPosition teleports the body without collision.
func (b *Body) SetPosition(p mgl64.Vec3) {
	b.Object.X = p.X() - b.Object.W/2
	b.Object.Y = p.Z() - b.Object.H/2
	b.Bottom = p.Y()
	if !b.removed {
		b.Object.Update()
	}
}

// Bounds returns the min and max corners of the body.
func (b *Body) Bounds() (mgl64.Vec3, mgl64.Vec3) {
	top := b.Bottom + b.Height
	if math.IsInf(b.Height, 1) {
		top = math.Inf(1)
	}
	return mgl64.Vec3{b.Object.X, b.Bottom, b.Object.Y},
		mgl64.Vec3{b.Object.X + b.Object.W, top, b.Object.Y + b.Object.H}
}

// Removed reports whether the body has been taken out of its world.
func (b *Body) Removed() bool {
	return b.removed
}

// Move sweeps the body through its world.
func (b *Body) Move(delta mgl64.Vec3) MoveResult {
	return b.world.Move(b, delta)
}

// Move sweeps b by delta: X then Z against solids, then Y against the floor.
// Each axis stops at the first solid face it would cross.
func (w *World) Move(b *Body, delta mgl64.Vec3) MoveResult {
	if b.removed {
		return MoveResult{}
	}

	dx := w.sweepX(b, delta.X())
	b.Object.X += dx

	dz := w.sweepZ(b, delta.Z())
	b.Object.Y += dz

	dy := delta.Y()
	grounded := false
	if b.Bottom+dy <= w.Floor {
		dy = w.Floor - b.Bottom
		grounded = delta.Y() <= 0
	}
	b.Bottom += dy

	b.Object.Update()

	return MoveResult{
		Actual:   mgl64.Vec3{dx, dy, dz},
		Grounded: grounded,
	}
}

func (w *World) sweepX(b *Body, dx float64) float64 {
	if dx == 0 {
		return 0
	}
	o := b.Object
	minX := math.Min(o.X, o.X+dx)
	maxX := math.Max(o.X+o.W, o.X+o.W+dx)

	for _, s := range w.query(minX, o.Y, maxX, o.Y+o.H, TagSolid) {
		// No overlap on Z means the solid is beside the path, not in it.
		if o.Y+o.H <= s.Y || s.Y+s.H <= o.Y {
			continue
		}
		if dx > 0 && s.X >= o.X+o.W-contactSkin {
			dx = math.Min(dx, math.Max(0, s.X-(o.X+o.W)))
		} else if dx < 0 && s.X+s.W <= o.X+contactSkin {
			dx = math.Max(dx, math.Min(0, s.X+s.W-o.X))
		}
	}
	return dx
}

func (w *World) sweepZ(b *Body, dz float64) float64 {
	if dz == 0 {
		return 0
	}
	o := b.Object
	minZ := math.Min(o.Y, o.Y+dz)
	maxZ := math.Max(o.Y+o.H, o.Y+o.H+dz)

	for _, s := range w.query(o.X, minZ, o.X+o.W, maxZ, TagSolid) {
		if o.X+o.W <= s.X || s.X+s.W <= o.X {
			continue
		}
		if dz > 0 && s.Y >= o.Y+o.H-contactSkin {
			dz = math.Min(dz, math.Max(0, s.Y-(o.Y+o.H)))
		} else if dz < 0 && s.Y+s.H <= o.Y+contactSkin {
			dz = math.Max(dz, math.Min(0, s.Y+s.H-o.Y))
		}
	}
	return dz
}
