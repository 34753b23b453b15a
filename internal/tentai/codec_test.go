package tentai

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b := NewBoard(4, 3)
	dot1 := b.at(1, 1) // tile center
	dot2 := b.at(4, 2) // vertex
	b.AddDot(dot1, false)
	b.AddDot(dot2, true)

	id := Encode(b)

	p, err := Decode(id)
	if err != nil {
		t.Fatalf("Decode(%q) failed: %v", id, err)
	}

	if p.Width != b.W || p.Height != b.H {
		t.Fatalf("decoded size (%d,%d), want (%d,%d)", p.Width, p.Height, b.W, b.H)
	}
	if len(p.Dots) != 2 {
		t.Fatalf("decoded %d dots, want 2", len(p.Dots))
	}

	want := map[[2]int]bool{{1, 1}: false, {4, 2}: true}
	for _, d := range p.Dots {
		black, ok := want[[2]int{d.X, d.Y}]
		if !ok {
			t.Errorf("unexpected decoded dot at (%d,%d)", d.X, d.Y)
			continue
		}
		if black != d.Black {
			t.Errorf("dot at (%d,%d): Black = %v, want %v", d.X, d.Y, d.Black, black)
		}
	}
}

func TestEncodeLongRunSplitsIntoZChunks(t *testing.T) {
	b := NewBoard(30, 1) // a wide board with a single dot, mostly empty cells
	dot := b.at(1, 1)
	b.AddDot(dot, false)

	id := Encode(b)
	_, data, ok := func() (string, string, bool) {
		for i := range id {
			if id[i] == ':' {
				return id[:i], id[i+1:], true
			}
		}
		return "", "", false
	}()
	if !ok {
		t.Fatalf("encoded id %q missing ':'", id)
	}

	p, err := Decode(id)
	if err != nil {
		t.Fatalf("Decode(%q) failed: %v", id, err)
	}
	if len(p.Dots) != 1 {
		t.Fatalf("decoded %d dots, want 1", len(p.Dots))
	}
	// 62 empty cells precede the dot at (1,1) (26+26+10), and 120 follow
	// it (4*26+16).
	if want := "zzjMzzzzp"; data != want {
		t.Fatalf("run-length data = %q, want %q", data, want)
	}
}

func TestDecodeRejectsMissingColon(t *testing.T) {
	if _, err := Decode("3x3aaa"); err == nil {
		t.Error("expected an error for a game id without ':'")
	}
}

func TestDecodeRejectsMissingX(t *testing.T) {
	if _, err := Decode("33:aaa"); err == nil {
		t.Error("expected an error for dimensions without 'x'")
	}
}

func TestDecodeRejectsBadDimensions(t *testing.T) {
	if _, err := Decode("axb:aaa"); err == nil {
		t.Error("expected an error for non-integer dimensions")
	}
}

func TestDecodeRejectsUnexpectedByte(t *testing.T) {
	if _, err := Decode("3x3:a!a"); err == nil {
		t.Error("expected an error for an unexpected byte in the run-length data")
	}
}

func TestInternalSize(t *testing.T) {
	p := Puzzle{Width: 4, Height: 3}
	sx, sy := p.InternalSize()
	if sx != 9 || sy != 7 {
		t.Errorf("InternalSize() = (%d,%d), want (9,7)", sx, sy)
	}
}
