// Package leveldata provides arena parsing shared between server and bots.
// It has no dependencies on donburi or resolv, pure data only.
package leveldata

import "errors"

// ErrNoLevels is returned when a levels directory holds no .tmx files.
var ErrNoLevels = errors.New("no levels found")

// Arena holds the collision-relevant data of one level in world units. The
// map's X axis is world X and its Y axis is world Z.
type Arena struct {
	Name        string
	Walls       []Wall
	SpawnPoints []SpawnPoint
	Width       float64
	Depth       float64
}

// Wall is a full-height solid box on the floor plan.
type Wall struct {
	X, Z, W, D float64
}

// SpawnPoint is a player spawn location on the floor.
type SpawnPoint struct {
	X, Z  float64
	Yaw   float64
	Index int
}

// Spawn returns the i-th spawn point, cycling through the list.
func (a *Arena) Spawn(i int) SpawnPoint {
	if len(a.SpawnPoints) == 0 {
		return SpawnPoint{X: a.Width / 2, Z: a.Depth / 2}
	}
	if i < 0 {
		i = -i
	}
	return a.SpawnPoints[i%len(a.SpawnPoints)]
}

// OpenArena is the built-in level used when no TMX levels are configured:
// an empty floor enclosed by four walls with a spawn point near each corner
// facing the centre.
func OpenArena(width, depth, thickness float64) *Arena {
	a := &Arena{
		Name:  "open",
		Width: width,
		Depth: depth,
		Walls: []Wall{
			{X: 0, Z: 0, W: width, D: thickness},
			{X: 0, Z: depth - thickness, W: width, D: thickness},
			{X: 0, Z: thickness, W: thickness, D: depth - 2*thickness},
			{X: width - thickness, Z: thickness, W: thickness, D: depth - 2*thickness},
		},
	}

	inset := width / 4
	if depth/4 < inset {
		inset = depth / 4
	}
	a.SpawnPoints = []SpawnPoint{
		{X: inset, Z: inset, Yaw: 45, Index: 0},
		{X: width - inset, Z: depth - inset, Yaw: 225, Index: 1},
		{X: width - inset, Z: inset, Yaw: 315, Index: 2},
		{X: inset, Z: depth - inset, Yaw: 135, Index: 3},
	}
	return a
}
