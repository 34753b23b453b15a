package tentai

import "testing"

func TestSourceDeterministic(t *testing.T) {
	seed := []byte("galaxy-42")

	a := NewSource(seed)
	b := NewSource(seed)

	for i := 0; i < 100; i++ {
		av := a.UpTo(1000)
		bv := b.UpTo(1000)
		if av != bv {
			t.Fatalf("draw %d diverged: %d != %d", i, av, bv)
		}
	}
}

func TestSourceUpToBounds(t *testing.T) {
	s := NewSource([]byte("bounds"))
	for i := 0; i < 1000; i++ {
		if v := s.UpTo(7); v >= 7 {
			t.Fatalf("UpTo(7) returned %d, out of range", v)
		}
	}
}

func TestSourceUpToZero(t *testing.T) {
	s := NewSource([]byte("zero"))
	if v := s.UpTo(0); v != 0 {
		t.Fatalf("UpTo(0) = %d, want 0", v)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	s := NewSource([]byte("shuffle"))
	data := make([]int, 20)
	for i := range data {
		data[i] = i
	}

	s.Shuffle(len(data), func(i, j int) {
		data[i], data[j] = data[j], data[i]
	})

	seen := make(map[int]bool, len(data))
	for _, v := range data {
		seen[v] = true
	}
	for i := 0; i < 20; i++ {
		if !seen[i] {
			t.Fatalf("shuffle lost element %d", i)
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	seed := []byte("repro")
	mk := func() []int {
		data := make([]int, 10)
		for i := range data {
			data[i] = i
		}
		NewSource(seed).Shuffle(len(data), func(i, j int) {
			data[i], data[j] = data[j], data[i]
		})
		return data
	}

	a, b := mk(), mk()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("shuffle diverged at %d: %d != %d", i, a[i], b[i])
		}
	}
}
