// Package artree provides an ordered map over byte-sequence keys backed by
// an adaptive radix tree. Tree values share node storage copy-on-write, so
// cloning is O(1) and clones mutate independently.
package artree

import (
	"github.com/hashicorp/golang-lru/v2/simplelru"

	"artree/lib/art"
)

// Pair is one (key, value) entry, used for literal-style construction.
type Pair[V any] struct {
	Key   []byte
	Value V
}

// RadixTree is a key-ordered associative container. Keys compare in
// lexicographic byte order; iteration yields them ascending.
//
// A RadixTree must only be mutated by one goroutine at a time. Clones may be
// used concurrently with each other.
type RadixTree[V any] struct {
	tree      *art.Tree[V]
	cache     *simplelru.LRU[string, V]
	cacheSize int
}

// New returns an empty tree with DefaultOptions.
func New[V any]() *RadixTree[V] {
	return NewWithOptions[V](DefaultOptions)
}

// NewWithOptions returns an empty tree configured by opts.
func NewWithOptions[V any](opts Options) *RadixTree[V] {
	t := &RadixTree[V]{
		tree:      art.New[V](),
		cacheSize: opts.CacheSize,
	}
	if opts.CacheSize > 0 {
		cache, err := simplelru.NewLRU[string, V](opts.CacheSize, nil)
		if err != nil {
			panic(err)
		}
		t.cache = cache
	}
	return t
}

// From builds a tree holding the given pairs. Later pairs win on duplicate
// keys.
func From[V any](pairs []Pair[V]) *RadixTree[V] {
	t := New[V]()
	for _, p := range pairs {
		t.Insert(p.Key, p.Value)
	}
	return t
}

// Get returns the value stored under key.
func (t *RadixTree[V]) Get(key []byte) (V, bool) {
	if t.cache != nil {
		if v, ok := t.cache.Get(string(key)); ok {
			return v, true
		}
	}
	v, ok := t.tree.Get(key)
	if ok && t.cache != nil {
		t.cache.Add(string(key), v)
	}
	return v, ok
}

// Insert stores value under key and returns the replaced value, if any.
func (t *RadixTree[V]) Insert(key []byte, value V) (V, bool) {
	if t.cache != nil {
		t.cache.Remove(string(key))
	}
	return t.tree.Insert(key, value)
}

// Delete removes key and returns the value it held, if any.
func (t *RadixTree[V]) Delete(key []byte) (V, bool) {
	if t.cache != nil {
		t.cache.Remove(string(key))
	}
	return t.tree.Delete(key)
}

// Len returns the number of entries.
func (t *RadixTree[V]) Len() int {
	return t.tree.Len()
}

// Min returns the entry with the smallest key.
func (t *RadixTree[V]) Min() ([]byte, V, bool) {
	return t.tree.Minimum()
}

// Max returns the entry with the largest key.
func (t *RadixTree[V]) Max() ([]byte, V, bool) {
	return t.tree.Maximum()
}

// Walk visits entries in ascending key order until fn returns false. The key
// slice is owned by the tree and must not be modified or retained.
func (t *RadixTree[V]) Walk(fn func(key []byte, value V) bool) {
	t.tree.Walk(fn)
}

// Clone returns an O(1) copy-on-write copy. The clone starts with a cold
// lookup cache.
func (t *RadixTree[V]) Clone() *RadixTree[V] {
	c := &RadixTree[V]{
		tree:      t.tree.Clone(),
		cacheSize: t.cacheSize,
	}
	if t.cacheSize > 0 {
		cache, err := simplelru.NewLRU[string, V](t.cacheSize, nil)
		if err != nil {
			panic(err)
		}
		c.cache = cache
	}
	return c
}

// String renders the underlying tree structure for debugging.
func (t *RadixTree[V]) String() string {
	return t.tree.String()
}
