package artree

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artree/utils"
)

func TestRadixTreeBasicOps(t *testing.T) {
	tree := New[[]byte]()
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, "<>", tree.String())

	key := utils.GetTestKey(1)
	val := utils.RandomValue(32)
	_, replaced := tree.Insert(key, val)
	assert.False(t, replaced)

	got, ok := tree.Get(key)
	require.True(t, ok)
	assert.Equal(t, val, got)

	removed, ok := tree.Delete(key)
	require.True(t, ok)
	assert.Equal(t, val, removed)
	assert.Equal(t, 0, tree.Len())

	_, ok = tree.Delete(key)
	assert.False(t, ok)
}

func TestRadixTreeFromPairs(t *testing.T) {
	tree := From([]Pair[string]{
		{Key: []byte("b"), Value: "2"},
		{Key: []byte("a"), Value: "1"},
		{Key: []byte("c"), Value: "3"},
		{Key: []byte("a"), Value: "1-again"}, // later pair wins
	})
	assert.Equal(t, 3, tree.Len())

	var gotKeys, gotVals []string
	tree.Walk(func(key []byte, v string) bool {
		gotKeys = append(gotKeys, string(key))
		gotVals = append(gotVals, v)
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, gotKeys)
	assert.Equal(t, []string{"1-again", "2", "3"}, gotVals)
}

func TestRadixTreeWalkOrder(t *testing.T) {
	tree := New[int]()
	order := rand.Perm(500)
	for _, i := range order {
		tree.Insert(utils.GetTestKey(i), i)
	}
	var prev []byte
	tree.Walk(func(key []byte, _ int) bool {
		if prev != nil {
			require.Negative(t, bytes.Compare(prev, key))
		}
		prev = append(prev[:0], key...)
		return true
	})
}

func TestRadixTreeMinMax(t *testing.T) {
	tree := New[int]()
	for i := 10; i < 90; i++ {
		tree.Insert(utils.GetTestKey(i), i)
	}
	k, v, ok := tree.Min()
	require.True(t, ok)
	assert.Equal(t, utils.GetTestKey(10), k)
	assert.Equal(t, 10, v)

	k, v, ok = tree.Max()
	require.True(t, ok)
	assert.Equal(t, utils.GetTestKey(89), k)
	assert.Equal(t, 89, v)
}

func TestRadixTreeCloneIsolation(t *testing.T) {
	t1 := New[int]()
	for i := 0; i < 200; i++ {
		t1.Insert(utils.GetTestKey(i), i)
	}
	before := t1.String()

	t2 := t1.Clone()
	t2.Insert([]byte("clone-only"), -1)
	t2.Delete(utils.GetTestKey(3))

	assert.Equal(t, before, t1.String())
	_, ok := t1.Get([]byte("clone-only"))
	assert.False(t, ok)
	v, ok := t1.Get(utils.GetTestKey(3))
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestRadixTreeLookupCache(t *testing.T) {
	tree := NewWithOptions[string](Options{CacheSize: 8})
	tree.Insert([]byte("k1"), "v1")
	tree.Insert([]byte("k2"), "v2")

	// Warm the cache, then make sure mutations are never served stale.
	for i := 0; i < 3; i++ {
		v, ok := tree.Get([]byte("k1"))
		require.True(t, ok)
		assert.Equal(t, "v1", v)
	}

	tree.Insert([]byte("k1"), "v1-new")
	v, ok := tree.Get([]byte("k1"))
	require.True(t, ok)
	assert.Equal(t, "v1-new", v)

	tree.Delete([]byte("k2"))
	_, ok = tree.Get([]byte("k2"))
	assert.False(t, ok)
}

func TestRadixTreeLookupCacheEviction(t *testing.T) {
	tree := NewWithOptions[int](Options{CacheSize: 4})
	for i := 0; i < 64; i++ {
		tree.Insert(utils.GetTestKey(i), i)
	}
	// Touch far more keys than the cache holds; results must stay exact.
	for pass := 0; pass < 2; pass++ {
		for i := 0; i < 64; i++ {
			v, ok := tree.Get(utils.GetTestKey(i))
			require.True(t, ok)
			assert.Equal(t, i, v)
		}
	}
}

func TestRadixTreeClonedCacheNotShared(t *testing.T) {
	t1 := NewWithOptions[string](Options{CacheSize: 8})
	t1.Insert([]byte("k"), "old")
	v, _ := t1.Get([]byte("k")) // cached in t1
	assert.Equal(t, "old", v)

	t2 := t1.Clone()
	t2.Insert([]byte("k"), "new")

	v, _ = t2.Get([]byte("k"))
	assert.Equal(t, "new", v)
	v, _ = t1.Get([]byte("k"))
	assert.Equal(t, "old", v)
}
