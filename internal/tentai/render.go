// source: https://github.com/franciscod/puzzles/blob/master/galaxies.c

package tentai

import "strings"

// RenderBoard renders a generator [Board] as an ASCII grid: dots as
// filled/hollow circles, vertices as '+', set edges as '-'/'|', everything
// else blank.
func RenderBoard(b *Board) string {
	var out strings.Builder
	for y := 0; y < b.SY; y++ {
		for x := 0; x < b.SX; x++ {
			sp := b.at(x, y)
			switch {
			case sp.Dot && sp.DotBlack:
				out.WriteRune('●')
			case sp.Dot:
				out.WriteRune('○')
			case sp.Kind == Vertex:
				out.WriteRune('+')
			case sp.Kind == EdgeV:
				if sp.EdgeSet {
					out.WriteRune('|')
				} else {
					out.WriteRune(' ')
				}
			case sp.Kind == EdgeH:
				if sp.EdgeSet {
					out.WriteRune('-')
				} else {
					out.WriteRune(' ')
				}
			default: // tile
				out.WriteRune(' ')
			}
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// RenderSolution renders a solved (or partially solved) solver [State]
// against its [Puzzle], deriving edges from whether the two flanking
// tiles belong to the same region rather than from a stored flag.
func RenderSolution(p *Puzzle, st *State) string {
	sx, sy := p.InternalSize()

	dotAt := make(map[[2]int]DotSpec, len(p.Dots))
	for _, d := range p.Dots {
		dotAt[[2]int{d.X, d.Y}] = d
	}

	tileOwner := func(tx, ty int) int {
		if tx < 0 || ty < 0 || tx >= p.Width || ty >= p.Height {
			return -2
		}
		return st.Grid[ty*p.Width+tx]
	}

	var out strings.Builder
	for y := 0; y < sy; y++ {
		for x := 0; x < sx; x++ {
			if d, ok := dotAt[[2]int{x, y}]; ok {
				if d.Black {
					out.WriteRune('●')
				} else {
					out.WriteRune('○')
				}
				continue
			}

			switch {
			case x%2 == 0 && y%2 == 0:
				out.WriteRune('+')
			case x%2 == 0: // vertical edge
				left := tileOwner((x-2)/2, (y-1)/2)
				right := tileOwner(x/2, (y-1)/2)
				if left != right {
					out.WriteRune('|')
				} else {
					out.WriteRune(' ')
				}
			case y%2 == 0: // horizontal edge
				up := tileOwner((x-1)/2, (y-2)/2)
				down := tileOwner((x-1)/2, y/2)
				if up != down {
					out.WriteRune('-')
				} else {
					out.WriteRune(' ')
				}
			default:
				out.WriteRune(' ')
			}
		}
		out.WriteByte('\n')
	}
	return out.String()
}
