// source: https://github.com/franciscod/puzzles/blob/master/galaxies.c

package tentai

import "log/slog"

const (
	maxToAdd   = 20
	maxOutside = 100
)

// MaxSize and MaxDots are the documented upper bounds on board size and
// dot count the legacy interface imposed (W,H <= 20, ndots <= 100). They
// are package vars rather than consts so a caller that genuinely needs a
// larger puzzle can raise them; nothing in this engine requires them to
// hold, they're an advisory limit a caller can choose to enforce.
var (
	MaxSize = 20
	MaxDots = 100
)

// GameParams are the generator's input parameters: the user-visible board
// size. Difficulty grading is out of scope, so there is no difficulty
// knob here.
type GameParams struct {
	Width, Height int
}

// Generate builds a new solvable-by-construction puzzle board for the
// given parameters, driven by rnd. logger may be nil; when set, it
// receives Debug-level diagnostics about placement attempts.
func Generate(params GameParams, rnd *Source, logger *slog.Logger) *Board {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(discard{}, nil))
	}

	b := NewBoard(params.Width, params.Height)

	scratch := make([]int, b.SX*b.SY)
	for i := range scratch {
		scratch[i] = i
	}
	rnd.Shuffle(len(scratch), func(i, j int) {
		scratch[i], scratch[j] = scratch[j], scratch[i]
	})

	for i, idx := range scratch {
		sp := &b.Grid[idx]

		x1, y1, x2, y2 := sp.X, sp.Y, sp.X, sp.Y
		if sp.Kind == EdgeV {
			x1--
			x2++
		} else if sp.Kind == EdgeH {
			y1--
			y2++
		}

		if sp.Kind != Vertex && b.generateTryBlock(rnd, x1, y1, x2, y2) {
			logger.Debug("grew existing region", "x", sp.X, "y", sp.Y)
			continue
		}

		if coarseThin(sp.Kind, i) {
			continue
		}

		if b.DotFeasible(sp, false) {
			// generated dots are cosmetically white; colour never affects
			// solvability, and the reference generator never sets the
			// black flag either.
			b.AddDot(sp, false)
			b.SolverObviousDot(sp)
			logger.Debug("placed dot", "x", sp.X, "y", sp.Y)
		}
	}

	b.UpdateDots()

	if len(b.Dots) > MaxDots {
		logger.Warn("generated puzzle exceeds the documented legacy dot limit",
			"ndots", len(b.Dots), "limit", MaxDots)
	}

	for i := range b.Grid {
		if b.Grid[i].Kind == Tile {
			b.OutlineTileForDot(&b.Grid[i], true)
		}
	}

	return b
}

// coarseThin reports whether the edge candidate at scratch-order position i
// should be skipped this pass: both edge orientations place a dot on only
// every other visit, halving the rate at which edge cells seed new dots
// relative to tiles and vertices.
func coarseThin(kind CellKind, i int) bool {
	return (kind == EdgeH || kind == EdgeV) && i%2 == 1
}

// generateTryBlock is generate_try_block: given a rectangle of 1 or 2
// unassociated tiles (x1..x2)x(y1..y2), try to grow some neighbouring
// dot's region to cover it. Returns true on success (the board has been
// mutated).
func (b *Board) generateTryBlock(rnd *Source, x1, y1, x2, y2 int) bool {
	if x1 < 0 || y1 < 0 || x2 >= b.SX || y2 >= b.SY {
		return false
	}

	maxsz := b.MaxAssoc()

	toadd := make([]*Space, 0, maxToAdd)
	for y := y1; y <= y2; y += 2 {
		for x := x1; x <= x2; x += 2 {
			sp := b.at(x, y)
			if sp.TileAssoc {
				return false
			}
			if len(toadd) >= maxToAdd {
				return false
			}
			toadd = append(toadd, sp)
		}
	}

	outside := make([]*Space, 0, maxOutside)
	for x := x1; x <= x2; x += 2 {
		if y1 >= 2 && len(outside) < maxOutside {
			outside = append(outside, b.at(x, y1-2))
		}
		if y2 <= b.SY-3 && len(outside) < maxOutside {
			outside = append(outside, b.at(x, y2+2))
		}
	}
	for y := y1; y <= y2; y += 2 {
		if x1 >= 2 && len(outside) < maxOutside {
			outside = append(outside, b.at(x1-2, y))
		}
		if x2 <= b.SX-3 && len(outside) < maxOutside {
			outside = append(outside, b.at(x2+2, y))
		}
	}

	rnd.Shuffle(len(outside), func(i, j int) {
		outside[i], outside[j] = outside[j], outside[i]
	})

	for _, out := range outside {
		if !out.TileAssoc {
			continue
		}
		dot := b.at(out.DotX, out.DotY)
		if dot.NAssoc >= maxsz {
			continue
		}
		if b.DotExpandOrMove(dot, toadd) {
			return true
		}
	}

	return false
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
