// source: https://github.com/franciscod/puzzles/blob/master/galaxies.c

package tentai

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Solver is a decoded puzzle ready to search: dimensions, dots, and the
// Zobrist table used to hash partial assignments.
type Solver struct {
	Width, Height int
	Dots          []DotSpec
	zobrist       [][]uint64 // [tile index][dot index]
}

// NewSolver builds a Solver from a decoded puzzle and initialises its
// Zobrist table with uniformly random 64-bit values, one per
// (tile, dot) pair.
func NewSolver(p *Puzzle) *Solver {
	s := &Solver{Width: p.Width, Height: p.Height, Dots: p.Dots}

	seed := make([]byte, 8)
	now := uint64(time.Now().UnixNano())
	for i := range seed {
		seed[i] = byte(now >> (8 * i))
	}
	rnd := NewSource(seed)

	cells := p.Width * p.Height
	s.zobrist = make([][]uint64, cells)
	for i := range s.zobrist {
		row := make([]uint64, len(p.Dots))
		for j := range row {
			row[j] = rnd.Bits(32)<<32 | rnd.Bits(32)
		}
		s.zobrist[i] = row
	}

	return s
}

// State is the solver's working grid: one dot index per tile, or -1 for
// unassigned, plus the incremental fill count and the running Zobrist
// hash used to deduplicate visited states.
type State struct {
	Grid   []int // len Width*Height; -1 or a dot index
	Filled int
	Hash   uint64
}

func (s *Solver) newState() *State {
	grid := make([]int, s.Width*s.Height)
	for i := range grid {
		grid[i] = -1
	}
	return &State{Grid: grid}
}

func (s *Solver) clone(st *State) *State {
	grid := make([]int, len(st.Grid))
	copy(grid, st.Grid)
	return &State{Grid: grid, Filled: st.Filled, Hash: st.Hash}
}

func (s *Solver) idx(x, y int) int { return y*s.Width + x }

func (s *Solver) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.Width && y < s.Height
}

// tryFill assigns tile (tx,ty) to dot d if it's empty, leaves it if
// already d, and reports infeasible (false) if it's owned by a different
// dot or lies outside the board: an out-of-bounds forced tile makes the
// whole puzzle infeasible rather than being silently skipped.
func (s *Solver) tryFill(st *State, tx, ty, d int) bool {
	if !s.inBounds(tx, ty) {
		return false
	}
	i := s.idx(tx, ty)
	if st.Grid[i] == -1 {
		st.Grid[i] = d
		st.Hash ^= s.zobrist[i][d]
		st.Filled++
		return true
	}
	return st.Grid[i] == d
}

// ErrInfeasible is returned by Seed when two dots' forced tiles conflict,
// or a forced tile falls outside the board: the solver does not run a
// search in that case.
type ErrInfeasible struct {
	Reason string
}

func (e ErrInfeasible) Error() string {
	return fmt.Sprintf("puzzle infeasible at seed time: %s", e.Reason)
}

// Seed pre-assigns every tile forced by a dot's position: a dot at a tile
// center forces that one tile; on an edge, the two flanking tiles; at a
// vertex, the four surrounding tiles.
func (s *Solver) Seed() (*State, error) {
	st := s.newState()

	for d, dot := range s.Dots {
		oddx, oddy := dot.X%2 == 1, dot.Y%2 == 1

		var tiles [][2]int
		switch {
		case oddx && oddy:
			tiles = [][2]int{{(dot.X - 1) / 2, (dot.Y - 1) / 2}}
		case oddx && !oddy:
			tx := (dot.X - 1) / 2
			tiles = [][2]int{{tx, dot.Y/2 - 1}, {tx, dot.Y / 2}}
		case !oddx && oddy:
			ty := (dot.Y - 1) / 2
			tiles = [][2]int{{dot.X/2 - 1, ty}, {dot.X / 2, ty}}
		default:
			tiles = [][2]int{
				{dot.X/2 - 1, dot.Y/2 - 1}, {dot.X/2 - 1, dot.Y / 2},
				{dot.X / 2, dot.Y/2 - 1}, {dot.X / 2, dot.Y / 2},
			}
		}

		for _, t := range tiles {
			if !s.tryFill(st, t[0], t[1], d) {
				return nil, ErrInfeasible{
					Reason: fmt.Sprintf("dot %d's forced tile (%d,%d) is out of bounds or owned by another dot", d, t[0], t[1]),
				}
			}
		}
	}

	return st, nil
}

// symmetricTile returns the tile coordinates point-symmetric to (tx,ty)
// about dot d.
func (s *Solver) symmetricTile(d int, tx, ty int) (int, int) {
	center := TileCenter(tx, ty)
	sym := SymmetricTile(Point{s.Dots[d].X, s.Dots[d].Y}, center)
	return TileCoord(sym)
}

// touchesDot reports whether tile (tx,ty) touches dot d.
func (s *Solver) touchesDot(d, tx, ty int) bool {
	return TouchesDot(Point{s.Dots[d].X, s.Dots[d].Y}, TileCenter(tx, ty))
}

// Move is the atomic solver step: assign tile (Tx,Ty) to dot D, and, if
// its symmetric partner (Sx,Sy) differs, assign that too when it was
// empty. PartnerWasEmpty records enough to undo perfectly without
// re-deriving anything.
type Move struct {
	Tx, Ty          int
	D               int
	Sx, Sy          int
	PartnerWasEmpty bool
}

// apply performs m on st, XORing in the Zobrist entries for every tile it
// fills.
func (s *Solver) apply(st *State, m Move) {
	i := s.idx(m.Tx, m.Ty)
	st.Grid[i] = m.D
	st.Hash ^= s.zobrist[i][m.D]
	st.Filled++

	if (m.Tx != m.Sx || m.Ty != m.Sy) && m.PartnerWasEmpty {
		j := s.idx(m.Sx, m.Sy)
		st.Grid[j] = m.D
		st.Hash ^= s.zobrist[j][m.D]
		st.Filled++
	}
}

// undo reverses apply(st, m). DFS relies on this to mutate the single
// working state in place without per-move heap allocation.
func (s *Solver) undo(st *State, m Move) {
	i := s.idx(m.Tx, m.Ty)
	st.Grid[i] = -1
	st.Hash ^= s.zobrist[i][m.D]
	st.Filled--

	if (m.Tx != m.Sx || m.Ty != m.Sy) && m.PartnerWasEmpty {
		j := s.idx(m.Sx, m.Sy)
		st.Grid[j] = -1
		st.Hash ^= s.zobrist[j][m.D]
		st.Filled--
	}
}

var neighbourDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// moves enumerates every legal move from st: for each empty tile adjacent
// to a tile already assigned to some dot d, propose assigning it to d
// (deduplicated by (tile, d)); for a dot with no tiles yet, propose every
// empty tile that touches it directly.
func (s *Solver) moves(st *State) []Move {
	var out []Move
	seen := make(map[[3]int]bool)

	add := func(tx, ty, d int) {
		if st.Grid[s.idx(tx, ty)] != -1 {
			return
		}
		key := [3]int{tx, ty, d}
		if seen[key] {
			return
		}

		sx, sy := s.symmetricTile(d, tx, ty)
		sameTile := sx == tx && sy == ty
		if !sameTile {
			if !s.inBounds(sx, sy) {
				return
			}
			if occ := st.Grid[s.idx(sx, sy)]; occ != -1 && occ != d {
				return
			}
		}

		seen[key] = true
		out = append(out, Move{
			Tx: tx, Ty: ty, D: d, Sx: sx, Sy: sy,
			PartnerWasEmpty: sameTile || st.Grid[s.idx(sx, sy)] == -1,
		})
	}

	for d := range s.Dots {
		hasTiles := false
		for y := 0; y < s.Height; y++ {
			for x := 0; x < s.Width; x++ {
				if st.Grid[s.idx(x, y)] != d {
					continue
				}
				hasTiles = true
				for _, dir := range neighbourDirs {
					nx, ny := x+dir[0], y+dir[1]
					if s.inBounds(nx, ny) {
						add(nx, ny, d)
					}
				}
			}
		}

		if !hasTiles {
			dx, dy := s.Dots[d].X, s.Dots[d].Y
			ctx, cty := (dx-1)/2, (dy-1)/2
			for ty := cty - 1; ty <= cty+1; ty++ {
				for tx := ctx - 1; tx <= ctx+1; tx++ {
					if s.inBounds(tx, ty) && s.touchesDot(d, tx, ty) {
						add(tx, ty, d)
					}
				}
			}
		}
	}

	return out
}

// accepted reports whether st is a complete solution: every tile filled,
// and every dot owning at least one tile.
func (s *Solver) accepted(st *State) bool {
	if st.Filled != s.Width*s.Height {
		return false
	}
	used := make([]bool, len(s.Dots))
	for _, d := range st.Grid {
		used[d] = true
	}
	for _, ok := range used {
		if !ok {
			return false
		}
	}
	return true
}

// Solve runs the given search driver (BFS or DFS) to completion and
// returns the first accepted state, or nil if the search space is
// exhausted with no solution.
func (s *Solver) Solve(driver Driver, logger *slog.Logger) (*State, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(discard{}, nil))
	}

	initial, err := s.Seed()
	if err != nil {
		return nil, err
	}

	switch driver {
	case BFS:
		return s.solveBFS(initial, logger), nil
	case DFS:
		return s.solveDFS(initial, logger), nil
	default:
		panic(AssertionError{fmt.Sprintf("unknown driver %v", driver)})
	}
}

// Driver selects which search strategy Solve uses.
type Driver int

const (
	BFS Driver = iota
	DFS
)

func (s *Solver) solveBFS(initial *State, logger *slog.Logger) *State {
	visited := NewVisitedSet()
	visited.Insert(initial.Hash)

	queue := []*State{initial}
	iterations := 0

	for len(queue) > 0 {
		st := queue[0]
		queue = queue[1:]
		iterations++

		if s.accepted(st) {
			logger.Debug("bfs accepted state", "iterations", iterations)
			return st
		}
		if st.Filled == s.Width*s.Height {
			continue // filled but some dot unused: dead end
		}

		for _, m := range s.moves(st) {
			next := s.clone(st)
			s.apply(next, m)
			if visited.Insert(next.Hash) {
				queue = append(queue, next)
			}
		}
	}

	logger.Debug("bfs exhausted queue", "iterations", iterations)
	return nil
}

func (s *Solver) solveDFS(initial *State, logger *slog.Logger) *State {
	visited := NewVisitedSet()
	visited.Insert(initial.Hash)

	var found *State
	s.dfs(initial, visited, &found)

	if found == nil {
		logger.Debug("dfs exhausted search space")
	}
	return found
}

func (s *Solver) dfs(st *State, visited *VisitedSet, found **State) bool {
	if st.Filled == s.Width*s.Height {
		if s.accepted(st) {
			*found = s.clone(st)
			return true
		}
		return false
	}

	for _, m := range s.moves(st) {
		s.apply(st, m)
		if visited.Insert(st.Hash) {
			if s.dfs(st, visited, found) {
				s.undo(st, m)
				return true
			}
		}
		s.undo(st, m)
	}

	return false
}

// SolveParallel splits the root move list across workers sharing a
// [ShardedSet] and a one-shot atomic "found" flag. The first worker to
// find a solution commits it under a mutex that only the winner enters;
// the rest observe the found flag at their next expansion and unwind.
// Any solution satisfying the acceptance predicate is acceptable -
// ordering across workers is not specified.
func (s *Solver) SolveParallel(workers int, logger *slog.Logger) (*State, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(discard{}, nil))
	}
	if workers < 1 {
		workers = 1
	}

	initial, err := s.Seed()
	if err != nil {
		return nil, err
	}

	shared := NewShardedSet()
	shared.Insert(initial.Hash)

	roots := s.moves(initial)
	if len(roots) == 0 {
		if s.accepted(initial) {
			return initial, nil
		}
		return nil, nil
	}

	var (
		found    atomic.Bool
		resultMu sync.Mutex
		result   *State
	)

	jobs := make(chan Move, len(roots))
	for _, m := range roots {
		jobs <- m
	}
	close(jobs)

	var group errgroup.Group

	worker := func() error {
		localSeen := make(map[uint64]bool, 1024)

		for m := range jobs {
			if found.Load() {
				return nil
			}

			st := s.clone(initial)
			s.apply(st, m)

			if !localSeen[st.Hash] {
				localSeen[st.Hash] = true
				if shared.Insert(st.Hash) {
					if sol := s.dfsParallel(st, shared, localSeen, &found); sol != nil {
						if found.CompareAndSwap(false, true) {
							resultMu.Lock()
							result = sol
							resultMu.Unlock()
						}
						return nil
					}
				}
			}
		}
		return nil
	}

	for i := 0; i < workers; i++ {
		group.Go(worker)
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if result != nil {
		logger.Debug("parallel solve found a solution", "workers", workers)
	} else {
		logger.Debug("parallel solve exhausted all root moves", "workers", workers)
	}
	return result, nil
}

// dfsParallel is solveDFS's recursion, adapted for cooperative
// cancellation (polling found at every expansion and at re-entry) and a
// thread-local front-filter cache of recently-seen hashes consulted
// before the shared set.
func (s *Solver) dfsParallel(st *State, shared *ShardedSet, localSeen map[uint64]bool, found *atomic.Bool) *State {
	if found.Load() {
		return nil
	}

	if st.Filled == s.Width*s.Height {
		if s.accepted(st) {
			return s.clone(st)
		}
		return nil
	}

	for _, m := range s.moves(st) {
		if found.Load() {
			return nil
		}

		s.apply(st, m)

		if !localSeen[st.Hash] {
			localSeen[st.Hash] = true
			if shared.Insert(st.Hash) {
				if sol := s.dfsParallel(st, shared, localSeen, found); sol != nil {
					s.undo(st, m)
					return sol
				}
			}
		}

		s.undo(st, m)
	}

	return nil
}
