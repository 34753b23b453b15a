// source: https://github.com/franciscod/puzzles/blob/master/galaxies.c

package tentai

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode renders b's dot layout as a Game-ID string "WxH:data": a
// row-major run-length scan of the internal grid where dots are literal
// 'M' (white) / 'B' (black) and runs of non-dot cells are encoded as
// 'a'..'z' (skip lengths 1..26), splitting longer runs into maximal 'z'
// chunks followed by the remainder.
func Encode(b *Board) string {
	var data strings.Builder
	run := 0

	flushRun := func() {
		for run > 26 {
			data.WriteByte('z')
			run -= 26
		}
		if run > 0 {
			data.WriteByte(byte('a' + run - 1))
		}
		run = 0
	}

	for y := 0; y < b.SY; y++ {
		for x := 0; x < b.SX; x++ {
			sp := b.at(x, y)
			if sp.Dot {
				flushRun()
				if sp.DotBlack {
					data.WriteByte('B')
				} else {
					data.WriteByte('M')
				}
			} else {
				run++
			}
		}
	}
	flushRun()

	return fmt.Sprintf("%dx%d:%s", b.W, b.H, data.String())
}

// DotSpec is a decoded dot clue: its internal coordinates and colour.
type DotSpec struct {
	X, Y  int
	Black bool
}

// Puzzle is the decoded contents of a Game-ID: board dimensions plus the
// dot clues, with no region/association information (that's the
// solver's job).
type Puzzle struct {
	Width, Height int
	Dots          []DotSpec
}

func (p Puzzle) InternalSize() (sx, sy int) {
	return 2*p.Width + 1, 2*p.Height + 1
}

// Decode parses a Game-ID string "WxH:data" into a Puzzle. It returns an
// error for a malformed id (missing colon, non-integer dimensions) but
// does not itself validate dot placement feasibility.
func Decode(gameID string) (*Puzzle, error) {
	dims, data, ok := strings.Cut(gameID, ":")
	if !ok {
		return nil, fmt.Errorf("malformed game id %q: missing ':'", gameID)
	}

	w, h, ok := strings.Cut(dims, "x")
	if !ok {
		return nil, fmt.Errorf("malformed game id %q: missing 'x' in dimensions", gameID)
	}

	width, err := strconv.Atoi(w)
	if err != nil {
		return nil, fmt.Errorf("malformed game id %q: bad width: %w", gameID, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return nil, fmt.Errorf("malformed game id %q: bad height: %w", gameID, err)
	}

	sx := 2*width + 1

	p := &Puzzle{Width: width, Height: height}
	pos := 0
	for _, c := range data {
		switch {
		case c == 'M':
			p.Dots = append(p.Dots, DotSpec{X: pos % sx, Y: pos / sx, Black: false})
			pos++
		case c == 'B':
			p.Dots = append(p.Dots, DotSpec{X: pos % sx, Y: pos / sx, Black: true})
			pos++
		case c >= 'a' && c <= 'z':
			pos += int(c-'a') + 1
		default:
			return nil, fmt.Errorf("malformed game id %q: unexpected byte %q", gameID, c)
		}
	}

	return p, nil
}
