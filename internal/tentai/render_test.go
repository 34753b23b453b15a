package tentai

import (
	"strings"
	"testing"
)

func TestRenderBoardShowsDotsAndVertices(t *testing.T) {
	b := NewBoard(2, 2)
	dot := b.at(3, 3) // center of tile (1,1)
	b.AddDot(dot, false)

	out := RenderBoard(b)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if len(lines) != b.SY {
		t.Fatalf("got %d lines, want %d", len(lines), b.SY)
	}
	for _, line := range lines {
		if len([]rune(line)) != b.SX {
			t.Fatalf("line %q has %d runes, want %d", line, len([]rune(line)), b.SX)
		}
	}

	if !strings.ContainsRune(out, '○') {
		t.Error("expected a hollow-circle dot in the rendered board")
	}
	if !strings.ContainsRune(out, '+') {
		t.Error("expected vertex markers in the rendered board")
	}
}

func TestRenderBoardBlackDot(t *testing.T) {
	b := NewBoard(1, 1)
	dot := b.at(1, 1)
	b.AddDot(dot, true)

	out := RenderBoard(b)
	if !strings.ContainsRune(out, '●') {
		t.Error("expected a filled-circle dot for a black dot")
	}
}

func TestRenderSolutionDrawsBoundaryBetweenDifferentOwners(t *testing.T) {
	p := &Puzzle{
		Width: 2, Height: 1,
		Dots: []DotSpec{{X: 1, Y: 1}, {X: 3, Y: 1}},
	}
	st := &State{Grid: []int{0, 1}, Filled: 2}

	out := RenderSolution(p, st)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	sx, sy := p.InternalSize()
	if len(lines) != sy {
		t.Fatalf("got %d lines, want %d", len(lines), sy)
	}
	for _, line := range lines {
		if len([]rune(line)) != sx {
			t.Fatalf("line %q has %d runes, want %d", line, len([]rune(line)), sx)
		}
	}

	middleRow := []rune(lines[1])
	if middleRow[2] != '|' {
		t.Errorf("expected a boundary '|' between the two differently-owned tiles, got %q", middleRow[2])
	}
}

func TestRenderSolutionOmitsBoundaryWithinSameOwner(t *testing.T) {
	p := &Puzzle{
		Width: 2, Height: 1,
		Dots: []DotSpec{{X: 1, Y: 1}},
	}
	st := &State{Grid: []int{0, 0}, Filled: 2}

	out := RenderSolution(p, st)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	middleRow := []rune(lines[1])
	if middleRow[2] != ' ' {
		t.Errorf("expected no boundary between same-owner tiles, got %q", middleRow[2])
	}
}
