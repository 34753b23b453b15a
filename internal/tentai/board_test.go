package tentai

import "testing"

func TestNewBoardBorderEdgesSet(t *testing.T) {
	b := NewBoard(3, 3)
	for x := 0; x < b.SX; x++ {
		if !b.at(x, 0).EdgeSet {
			t.Errorf("top border (%d,0) not edge-set", x)
		}
		if !b.at(x, b.SY-1).EdgeSet {
			t.Errorf("bottom border (%d,%d) not edge-set", x, b.SY-1)
		}
	}
	for y := 0; y < b.SY; y++ {
		if !b.at(0, y).EdgeSet {
			t.Errorf("left border (0,%d) not edge-set", y)
		}
		if !b.at(b.SX-1, y).EdgeSet {
			t.Errorf("right border (%d,%d) not edge-set", b.SX-1, y)
		}
	}
}

func TestDotFeasibleRejectsNearbyVertexDot(t *testing.T) {
	b := NewBoard(5, 5)
	existing := b.at(4, 4) // vertex
	b.AddDot(existing, false)

	// a vertex two steps away falls inside the vertex feasibility
	// rectangle (half-extent 2) of the candidate below.
	candidate := b.at(6, 4)
	if b.DotFeasible(candidate, false) {
		t.Error("expected DotFeasible to reject a vertex within the feasibility rectangle of an existing dot")
	}
}

func TestDotFeasibleAcceptsFarTile(t *testing.T) {
	b := NewBoard(7, 7)
	existing := b.at(7, 7)
	b.AddDot(existing, false)

	far := b.at(1, 1)
	if !b.DotFeasible(far, false) {
		t.Error("expected DotFeasible to accept a far-away tile")
	}
}

func TestSolverObviousDotSelfSymmetricTile(t *testing.T) {
	b := NewBoard(1, 1)
	dot := b.at(1, 1) // the board's only tile, its own center
	b.AddDot(dot, false)

	if !b.SolverObviousDot(dot) {
		t.Fatal("expected SolverObviousDot to associate something")
	}

	if !dot.TileAssoc {
		t.Fatal("expected the sole tile to be associated to its own dot")
	}
	if dot.NAssoc != 1 {
		t.Errorf("NAssoc = %d, want 1 (a tile symmetric to itself counts once)", dot.NAssoc)
	}
}

func TestSolverObviousDotAssociatesPair(t *testing.T) {
	b := NewBoard(2, 1)
	dot := b.at(2, 1) // the vertical edge shared by tiles (0,0) and (1,0)
	b.AddDot(dot, false)

	b.SolverObviousDot(dot)

	left := b.at(1, 1)
	right := b.at(3, 1)
	if !left.TileAssoc || !right.TileAssoc {
		t.Fatal("expected both flanking tiles to be associated")
	}
	if dot.NAssoc != 2 {
		t.Errorf("NAssoc = %d, want 2", dot.NAssoc)
	}
}

func TestOutlineTileForDotIdempotent(t *testing.T) {
	b := NewBoard(2, 1)
	left := b.at(1, 1)
	right := b.at(3, 1)

	left.TileAssoc = true
	left.DotX, left.DotY = 1, 1
	right.TileAssoc = true
	right.DotX, right.DotY = 3, 3 // a different owner, so the shared edge must be set

	first := b.OutlineTileForDot(left, true)
	second := b.OutlineTileForDot(left, true)

	if !first {
		t.Error("expected the first outline pass to set the boundary between the two owners")
	}
	if second {
		t.Error("expected the second outline pass to be a no-op (idempotent)")
	}

	shared := b.at(2, 1)
	if !shared.EdgeSet {
		t.Error("expected the edge between differently-owned tiles to be set")
	}
}

func TestDotExpandOrMoveRejectsOutOfBoundsPartner(t *testing.T) {
	b := NewBoard(4, 4)
	dotA := b.at(1, 1) // tile center (0,0), a corner
	dotB := b.at(7, 7) // tile center (3,3), the opposite corner
	b.AddDot(dotA, false)
	b.AddDot(dotB, false)
	b.SolverObviousDot(dotA)
	b.SolverObviousDot(dotB)

	// tile (1,0)'s partner about dotA is tile (-1,0), out of bounds.
	tile := b.at(3, 1)
	if b.DotExpandOrMove(dotA, []*Space{tile}) {
		t.Error("expected DotExpandOrMove to reject a tile whose partner is out of bounds")
	}
}

func TestMaxAssocFloor(t *testing.T) {
	b := NewBoard(20, 20)
	if got := b.MaxAssoc(); got != 4 {
		t.Errorf("MaxAssoc() with no dots = %d, want 4", got)
	}
}
