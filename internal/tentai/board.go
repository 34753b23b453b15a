// source: https://github.com/franciscod/puzzles/blob/master/galaxies.c

package tentai

import "fmt"

// Space is one cell of the internal (2W+1)x(2H+1) grid: a tile, an edge,
// or a vertex, with each status carried as its own field instead of a
// packed bitfield.
type Space struct {
	X, Y      int
	Kind      CellKind
	Dot       bool
	DotBlack  bool
	EdgeSet   bool
	TileAssoc bool
	Mark      bool
	DotX      int // internal coords of the owning dot, for a tile
	DotY      int
	NAssoc    int // for a dot cell: count of tiles associated to it
}

// Board is the generator's dense view of the internal grid. Cross-cell
// references are by coordinate (or, for dots, by index into Dots), never
// by pointer, so the grid stays a flat slice with no aliasing to manage.
type Board struct {
	W, H   int
	SX, SY int
	Grid   []Space
	Dots   []Point
	NDots  int // live count of placed dots, updated as they're added
}

// NewBoard allocates a blank W x H board: every tile/edge/vertex classified,
// the outer ring of edge cells marked set (the board frame), everything
// else cleared.
func NewBoard(w, h int) *Board {
	sx, sy := 2*w+1, 2*h+1
	b := &Board{W: w, H: h, SX: sx, SY: sy, Grid: make([]Space, sx*sy)}

	for y := 0; y < sy; y++ {
		for x := 0; x < sx; x++ {
			sp := &b.Grid[y*sx+x]
			sp.X, sp.Y = x, y
			sp.Kind = Classify(x, y)
		}
	}

	for x := 0; x < sx; x++ {
		b.at(x, 0).EdgeSet = true
		b.at(x, sy-1).EdgeSet = true
	}
	for y := 0; y < sy; y++ {
		b.at(0, y).EdgeSet = true
		b.at(sx-1, y).EdgeSet = true
	}

	return b
}

func (b *Board) InGrid(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.SX && y < b.SY
}

// at returns a pointer to the space at (x, y); callers must have already
// checked InGrid.
func (b *Board) at(x, y int) *Space {
	return &b.Grid[y*b.SX+x]
}

// At is the bounds-checked accessor; it returns nil when (x, y) is outside
// the grid.
func (b *Board) At(x, y int) *Space {
	if !b.InGrid(x, y) {
		return nil
	}
	return b.at(x, y)
}

// UpdateDots recomputes Dots from the grid's Dot flags.
func (b *Board) UpdateDots() {
	b.Dots = b.Dots[:0]
	for i := range b.Grid {
		if b.Grid[i].Dot {
			b.Dots = append(b.Dots, Point{b.Grid[i].X, b.Grid[i].Y})
		}
	}
}

// DotFeasible reports whether sp could host a new dot: within the
// rectangle whose half-extents depend on sp's kind, there must be no other
// dot in a neighbouring cell, no associated tile (unless allowAssoc), and
// no edge-set cell strictly inside the rectangle.
func (b *Board) DotFeasible(sp *Space, allowAssoc bool) bool {
	bx, by := halfExtents(sp.Kind)

	for dx := -bx; dx <= bx; dx++ {
		for dy := -by; dy <= by; dy++ {
			adj := b.At(sp.X+dx, sp.Y+dy)
			if adj == nil {
				continue
			}

			if !allowAssoc && adj.TileAssoc {
				return false
			}

			if (dx != 0 || dy != 0) && adj.Dot {
				return false
			}

			if absDiff(dx, 0) < bx && absDiff(dy, 0) < by && adj.EdgeSet {
				return false
			}
		}
	}
	return true
}

// AddDot marks sp as a dot of the given colour and resets its association
// count.
func (b *Board) AddDot(sp *Space, black bool) {
	sp.Dot = true
	sp.DotBlack = black
	sp.NAssoc = 0
	b.NDots++
}

// MaxAssoc is the soft per-dot tile cap used while growing regions:
// max(4, W*H/ndots). With ndots == 0 (no dot placed yet) it returns 4,
// since the value is only ever compared against a dot's nassoc, which
// requires that dot to already exist.
func (b *Board) MaxAssoc() int {
	if b.NDots == 0 {
		return 4
	}
	sz := (b.W * b.H) / b.NDots
	if sz < 4 {
		sz = 4
	}
	return sz
}

// SpaceOppositeDot returns the tile point-symmetric to sp about dot, or nil
// if that tile lies outside the grid.
func (b *Board) SpaceOppositeDot(sp, dot *Space) *Space {
	x := dot.X + (dot.X - sp.X)
	y := dot.Y + (dot.Y - sp.Y)
	return b.At(x, y)
}

// SolverObviousDot is the forced-association propagator: every
// unassociated tile whose point-symmetric partner about dot is in bounds
// and either unassociated or already owned by dot gets associated (and so
// does its partner, if not already). Returns true if it associated
// anything.
//
// panics [AssertionError] if called on a non-dot space.
func (b *Board) SolverObviousDot(dot *Space) bool {
	if !dot.Dot {
		panic(AssertionError{"SolverObviousDot: space is not a dot"})
	}

	did := false
	for x := 1; x < b.SX; x += 2 {
		for y := 1; y < b.SY; y += 2 {
			tile := b.at(x, y)
			if tile.TileAssoc {
				continue
			}

			opp := b.SpaceOppositeDot(tile, dot)
			if opp == nil {
				continue
			}
			if opp.TileAssoc && (opp.DotX != dot.X || opp.DotY != dot.Y) {
				continue
			}

			tile.TileAssoc = true
			tile.DotX, tile.DotY = dot.X, dot.Y
			dot.NAssoc++

			if opp.TileAssoc {
				// already owned by dot, nothing further to do
			} else {
				opp.TileAssoc = true
				opp.DotX, opp.DotY = dot.X, dot.Y
				dot.NAssoc++
			}

			did = true
		}
	}
	return did
}

// DotExpandOrMove proposes to grow dot by the tiles in toadd (a symmetric
// block). It fails (returns false, no mutation) if any tile's
// point-symmetric partner is out of bounds or owned by a different dot;
// otherwise it associates every tile (and its partner, if unowned) to dot
// and runs [Board.SolverObviousDot] to propagate.
func (b *Board) DotExpandOrMove(dot *Space, toadd []*Space) bool {
	if !dot.Dot {
		panic(AssertionError{"DotExpandOrMove: space is not a dot"})
	}

	opps := make([]*Space, len(toadd))
	for i, tile := range toadd {
		opp := b.SpaceOppositeDot(tile, dot)
		if opp == nil {
			return false
		}
		if opp.TileAssoc && (opp.DotX != dot.X || opp.DotY != dot.Y) {
			return false
		}
		opps[i] = opp
	}

	for i, tile := range toadd {
		opp := opps[i]

		tile.TileAssoc = true
		tile.DotX, tile.DotY = dot.X, dot.Y
		dot.NAssoc++

		if !opp.TileAssoc {
			opp.TileAssoc = true
			opp.DotX, opp.DotY = dot.X, dot.Y
			dot.NAssoc++
		}
	}

	b.SolverObviousDot(dot)
	return true
}

// OutlineTileForDot derives tile's four flanking edges from its
// association: an edge is set iff the tile across it either doesn't
// exist, is unassociated while tile is associated, or is associated to a
// different dot; it is cleared when both sides agree. Idempotent. Returns
// true if it changed anything and mark is true (with mark false it only
// reports whether a change would happen).
func (b *Board) OutlineTileForDot(tile *Space, mark bool) bool {
	dxs := [4]int{-1, 1, 0, 0}
	dys := [4]int{0, 0, -1, 1}

	didSomething := false
	for i := range dxs {
		ex, ey := tile.X+dxs[i], tile.Y+dys[i]
		tx, ty := ex+dxs[i], ey+dys[i]

		edge := b.At(ex, ey)
		if edge == nil {
			continue
		}

		same := false
		if tadj := b.At(tx, ty); tadj != nil {
			if !tile.TileAssoc {
				same = !tadj.TileAssoc
			} else {
				same = tadj.TileAssoc && tile.DotX == tadj.DotX && tile.DotY == tadj.DotY
			}
		}

		switch {
		case !edge.EdgeSet && !same:
			if mark {
				edge.EdgeSet = true
			}
			didSomething = true
		case edge.EdgeSet && same:
			if mark {
				edge.EdgeSet = false
			}
			didSomething = true
		}
	}
	return didSomething
}

func (b *Board) String() string {
	return fmt.Sprintf("Board{%dx%d, ndots=%d}", b.W, b.H, len(b.Dots))
}
