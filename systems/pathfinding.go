package systems

import (
	"math"

	astar "github.com/beefsack/go-astar"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/lazertag/shared/physics"
)

// NavGrid represents the walkable floor of an arena on the X/Z plane
type NavGrid struct {
	Width, Depth int
	CellSize     float64
	Nodes        [][]*NavNode // indexed [z][x]
}

// NavNode is a single cell of the grid. Implements astar.Pather.
type NavNode struct {
	X, Z     int
	Walkable bool
	Grid     *NavGrid
}

var navDirs = []struct{ dx, dz int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// PathNeighbors returns adjacent walkable nodes (implements astar.Pather).
// Diagonal steps are only allowed when both orthogonal cells are open, so a
// path never clips a wall corner.
func (n *NavNode) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather
	for _, d := range navDirs {
		next := n.Grid.node(n.X+d.dx, n.Z+d.dz)
		if next == nil || !next.Walkable {
			continue
		}
		if d.dx != 0 && d.dz != 0 {
			a, b := n.Grid.node(n.X+d.dx, n.Z), n.Grid.node(n.X, n.Z+d.dz)
			if a == nil || b == nil || !a.Walkable || !b.Walkable {
				continue
			}
		}
		neighbors = append(neighbors, next)
	}
	return neighbors
}

// PathNeighborCost returns the movement cost between adjacent nodes (implements astar.Pather)
func (n *NavNode) PathNeighborCost(to astar.Pather) float64 {
	return n.PathEstimatedCost(to)
}

// PathEstimatedCost returns heuristic distance to target (implements astar.Pather)
func (n *NavNode) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*NavNode)
	dx := float64(t.X - n.X)
	dz := float64(t.Z - n.Z)
	return math.Sqrt(dx*dx + dz*dz)
}

// CreateNavGrid builds a navigation grid from the walls of world. A cell is
// walkable when a body of the given clearance centred on it touches no wall.
func CreateNavGrid(world *physics.World, width, depth, cellSize, clearance float64) *NavGrid {
	gridW := int(math.Ceil(width / cellSize))
	gridD := int(math.Ceil(depth / cellSize))

	grid := &NavGrid{
		Width:    gridW,
		Depth:    gridD,
		CellSize: cellSize,
		Nodes:    make([][]*NavNode, gridD),
	}

	half := clearance / 2
	for z := 0; z < gridD; z++ {
		grid.Nodes[z] = make([]*NavNode, gridW)
		for x := 0; x < gridW; x++ {
			cx, cz := grid.GridToWorld(x, z)
			r := math.Max(half, cellSize/2)
			grid.Nodes[z][x] = &NavNode{
				X:        x,
				Z:        z,
				Walkable: !world.Blocked(cx-r, cz-r, cx+r, cz+r),
				Grid:     grid,
			}
		}
	}
	return grid
}

// FindPath returns the cell centres from start to goal, both included. It
// returns nil when no route exists.
func (g *NavGrid) FindPath(start, goal mgl64.Vec3) []mgl64.Vec3 {
	startNode := g.nearestWalkable(g.cellOf(start))
	goalNode := g.nearestWalkable(g.cellOf(goal))
	if startNode == nil || goalNode == nil {
		return nil
	}

	path, _, found := astar.Path(startNode, goalNode)
	if !found {
		return nil
	}

	// go-astar returns the path goal first.
	points := make([]mgl64.Vec3, len(path))
	for i, p := range path {
		n := p.(*NavNode)
		x, z := g.GridToWorld(n.X, n.Z)
		points[len(path)-1-i] = mgl64.Vec3{x, start.Y(), z}
	}
	return points
}

// GridToWorld converts grid coordinates to world coordinates (center of cell)
func (g *NavGrid) GridToWorld(x, z int) (float64, float64) {
	return float64(x)*g.CellSize + g.CellSize/2,
		float64(z)*g.CellSize + g.CellSize/2
}

func (g *NavGrid) cellOf(p mgl64.Vec3) (int, int) {
	x := clampInt(int(math.Floor(p.X()/g.CellSize)), 0, g.Width-1)
	z := clampInt(int(math.Floor(p.Z()/g.CellSize)), 0, g.Depth-1)
	return x, z
}

func (g *NavGrid) node(x, z int) *NavNode {
	if x < 0 || x >= g.Width || z < 0 || z >= g.Depth {
		return nil
	}
	return g.Nodes[z][x]
}

// nearestWalkable searches expanding squares around (x, z).
func (g *NavGrid) nearestWalkable(x, z int) *NavNode {
	if n := g.node(x, z); n != nil && n.Walkable {
		return n
	}
	for radius := 1; radius < 10; radius++ {
		for dz := -radius; dz <= radius; dz++ {
			for dx := -radius; dx <= radius; dx++ {
				if n := g.node(x+dx, z+dz); n != nil && n.Walkable {
					return n
				}
			}
		}
	}
	return nil
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}
