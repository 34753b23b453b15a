// source: https://github.com/franciscod/puzzles/blob/master/galaxies.c

package tentai

// CellKind tags what an internal-grid cell represents.
type CellKind uint8

const (
	Tile CellKind = iota
	EdgeH
	EdgeV
	Vertex
)

// Classify reports the kind of the internal-grid cell at (x, y) based on
// the parity of its coordinates: both odd is a tile, both even a vertex,
// and otherwise an edge (horizontal when y is even, vertical when x is
// even).
func Classify(x, y int) CellKind {
	switch {
	case x%2 == 1 && y%2 == 1:
		return Tile
	case x%2 == 0 && y%2 == 0:
		return Vertex
	case y%2 == 0:
		return EdgeH
	default:
		return EdgeV
	}
}

// Point is an internal-grid coordinate pair.
type Point struct {
	X, Y int
}

// TileCenter returns the internal coordinates of tile (tx, ty).
func TileCenter(tx, ty int) Point {
	return Point{2*tx + 1, 2*ty + 1}
}

// TileCoord inverts [TileCenter]: given the internal center of a tile,
// returns its 0-based tile coordinates.
func TileCoord(p Point) (tx, ty int) {
	return (p.X - 1) / 2, (p.Y - 1) / 2
}

// SymmetricTile returns the tile point-symmetric to tile about dot. The
// result may lie outside the grid; callers must bounds-check separately.
func SymmetricTile(dot, tile Point) Point {
	return Point{2*dot.X - tile.X, 2*dot.Y - tile.Y}
}

// TouchesDot reports whether tile's Chebyshev distance to dot is at most
// one on each axis, i.e. the tile is in the 3x3 internal neighbourhood of
// the dot.
func TouchesDot(dot, tile Point) bool {
	return absDiff(tile.X, dot.X) <= 1 && absDiff(tile.Y, dot.Y) <= 1
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// halfExtents returns the half-width/half-height of the dot-feasibility
// rectangle for a cell of the given kind.
func halfExtents(k CellKind) (bx, by int) {
	switch k {
	case Tile:
		return 1, 1
	case EdgeV:
		return 2, 1
	case EdgeH:
		return 1, 2
	default: // Vertex
		return 2, 2
	}
}
