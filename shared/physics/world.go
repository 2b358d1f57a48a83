// Package physics is the collision service the controller and the combat
// resolver run against. It keeps a resolv space on the horizontal X/Z plane
// (resolv X is world X, resolv Y is world Z) and handles height itself: walls
// are unbounded upward, player bodies span [Bottom, Bottom+Height], and the
// floor is a plane at World.Floor.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Resolv tags for physics collision
const (
	TagSolid = "solid"
	TagBody  = "body"
	tagProbe = "probe"
)

// contactSkin absorbs float error when deciding which side of a solid a body is on.
const contactSkin = 1e-9

// World owns the resolv space and the probe object used for broad phase queries.
type World struct {
	Space *resolv.Space
	Floor float64

	probe *resolv.Object
	pad   float64
}

// NewWorld creates a space of width x depth world units partitioned into
// square cells of cellSize.
func NewWorld(width, depth, cellSize int, floor float64) *World {
	space := resolv.NewSpace(width, depth, cellSize, cellSize)
	probe := resolv.NewObject(0, 0, 1, 1, tagProbe)
	space.Add(probe)

	return &World{
		Space: space,
		Floor: floor,
		probe: probe,
		pad:   float64(cellSize),
	}
}

// AddWall adds a solid box covering [x, x+width] x [z, z+depth] with unbounded height.
func (w *World) AddWall(x, z, width, depth float64) *Body {
	obj := resolv.NewObject(x, z, width, depth, TagSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, width, depth))
	b := &Body{
		world:  w,
		Object: obj,
		Kind:   KindWall,
		Bottom: math.Inf(-1),
		Height: math.Inf(1),
	}
	obj.Data = b
	w.Space.Add(obj)
	return b
}

// AddBody adds a movable body whose feet are centred on position.
func (w *World) AddBody(position mgl64.Vec3, width, height float64, payload any) *Body {
	obj := resolv.NewObject(position.X()-width/2, position.Z()-width/2, width, width, TagBody)
	obj.SetShape(resolv.NewRectangle(0, 0, width, width))
	b := &Body{
		world:   w,
		Object:  obj,
		Kind:    KindPlayer,
		Bottom:  position.Y(),
		Height:  height,
		Payload: payload,
	}
	obj.Data = b
	w.Space.Add(obj)
	return b
}

// Remove takes a body out of the space. Removed bodies are never hit and no
// longer block movement.
func (w *World) Remove(b *Body) {
	if b == nil || b.removed {
		return
	}
	w.Space.Remove(b.Object)
	b.removed = true
}

// query returns the objects carrying any of tags whose cells touch the given
// X/Z rectangle, padded by one cell so thin and axis-aligned rectangles still
// cover at least one cell.
func (w *World) query(minX, minZ, maxX, maxZ float64, tags ...string) []*resolv.Object {
	w.probe.X = minX - w.pad
	w.probe.Y = minZ - w.pad
	w.probe.W = maxX - minX + 2*w.pad
	w.probe.H = maxZ - minZ + 2*w.pad
	w.probe.Update()

	check := w.probe.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(tags...)
}

// Blocked reports whether the X/Z rectangle overlaps any wall.
func (w *World) Blocked(minX, minZ, maxX, maxZ float64) bool {
	for _, obj := range w.query(minX, minZ, maxX, maxZ, TagSolid) {
		if obj.X < maxX && obj.X+obj.W > minX && obj.Y < maxZ && obj.Y+obj.H > minZ {
			return true
		}
	}
	return false
}
