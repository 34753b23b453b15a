package tree234_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-tentai/tentai/internal/tree234"
)

type hash struct {
	value uint64
}

func cmp(a, b *hash) int {
	switch {
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	default:
		return 0
	}
}

func TestAdd(t *testing.T) {
	tree := tree234.NewTree234(cmp)
	for i := uint64(1); i < 10; i++ {
		tree.Add(&hash{i})
	}

	assert.Equal(t, 9, tree.Count())
}

func TestAddRejectsDuplicate(t *testing.T) {
	tree := tree234.NewTree234(cmp)
	first := &hash{5}
	tree.Add(first)

	got := tree.Add(&hash{5})
	assert.Equal(t, first, got, "adding a duplicate should return the existing element")
	assert.Equal(t, 1, tree.Count())
}

func TestIndex(t *testing.T) {
	var (
		empty *hash
		items []*hash
		tree  = tree234.NewTree234(cmp)
	)
	for i := uint64(1); i < 10; i++ {
		item := &hash{i}
		items = append(items, item)
		tree.Add(item)
	}

	for i := 0; i < 15; i++ {
		if i < len(items) {
			assert.Equal(t, items[i], tree.Index(i))
		} else {
			assert.Equal(t, empty, tree.Index(i))
		}
	}
}

func TestFindRelPos(t *testing.T) {
	var (
		items []*hash
		tree  = tree234.NewTree234(cmp)
	)
	for i := uint64(1); i < 10; i++ {
		item := &hash{i}
		items = append(items, item)
		tree.Add(item)
	}

	_, index := tree.FindRelPos(items[1], tree234.Eq)
	assert.Equal(t, 1, index)

	_, index = tree.FindRelPos(items[7], tree234.Eq)
	assert.Equal(t, 7, index)

	_, index = tree.FindRelPos(&hash{1000}, tree234.Eq)
	assert.Equal(t, -1, index)
}

func TestDelete(t *testing.T) {
	var (
		empty *hash
		items []*hash
		tree  = tree234.NewTree234(cmp)
	)
	for i := uint64(1); i < 10; i++ {
		item := &hash{i}
		items = append(items, item)
		tree.Add(item)
	}

	assert.Equal(t, empty, tree.Delete(&hash{10}))
	assert.Equal(t, items[7], tree.Delete(&hash{8}))
	assert.Equal(t, 8, tree.Count())
}
