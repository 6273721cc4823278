// Package art implements an adaptive radix tree: a compact trie over byte
// keys whose internal nodes adapt their fanout (4/16/48/256) to occupancy,
// with path compression and reference-counted copy-on-write sharing.
package art

// Tree is an adaptive radix tree over byte-sequence keys. Tree values share
// node storage through reference counting: Clone is O(1) and every mutator
// copies a shared node before writing to it, so clones stay independent.
//
// A Tree must only be mutated by one goroutine at a time; independent clones
// may be used from different goroutines.
type Tree[V any] struct {
	root node[V]
	size int
}

// New returns an empty tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{}
}

// Len returns the number of keys in the tree.
func (t *Tree[V]) Len() int {
	return t.size
}

// Clone returns a tree sharing all node storage with t. Either tree may be
// mutated afterwards without affecting the other.
func (t *Tree[V]) Clone() *Tree[V] {
	if t.root != nil {
		retain(t.root)
	}
	return &Tree[V]{root: t.root, size: t.size}
}

// Get returns the value stored under key.
func (t *Tree[V]) Get(key []byte) (V, bool) {
	n := t.root
	depth := 0
	for n != nil {
		if l, ok := n.(*leaf[V]); ok {
			if l.matches(key) {
				return l.value, true
			}
			break
		}
		in := n.(inner[V])
		m := in.meta()
		if m.prefixLen > 0 {
			if checkPrefix(m, key, depth) != min(int(m.prefixLen), maxPrefixLen) {
				break
			}
			depth += int(m.prefixLen)
		}
		if depth >= len(key) {
			if zl := m.zeroLeaf; zl != nil && zl.matches(key) {
				return zl.value, true
			}
			break
		}
		n = in.child(key[depth])
		depth++
	}
	var zero V
	return zero, false
}

// Insert stores value under key, returning the previous value when the key
// was already present.
func (t *Tree[V]) Insert(key []byte, value V) (V, bool) {
	root, old, replaced := insertNode(t.root, key, 0, value)
	t.root = root
	if !replaced {
		t.size++
	}
	return old, replaced
}

// insertNode descends with copy-on-write: every node on the path is made
// uniquely owned before it is touched, and the returned node replaces the
// parent's child slot (or the root).
func insertNode[V any](n node[V], key []byte, depth int, value V) (node[V], V, bool) {
	var zero V
	if n == nil {
		return newLeaf[V](key, value), zero, false
	}
	n = mutable(n)

	if l, ok := n.(*leaf[V]); ok {
		if l.matches(key) {
			old := l.value
			l.value = value
			return l, old, true
		}
		// Two diverging keys: split into a node4 holding the shared prefix.
		nl := newLeaf[V](key, value)
		lcp := l.longestCommonPrefix(nl, depth)
		n4 := newNode4[V]()
		n4.setPrefix(key[depth:], lcp)
		var split inner[V] = n4
		split = addChild(split, l.key, depth+lcp, l)
		split = addChild(split, key, depth+lcp, nl)
		return split, zero, false
	}

	in := n.(inner[V])
	m := in.meta()
	if m.prefixLen > 0 {
		diff := prefixMismatch(in, key, depth)
		if diff < int(m.prefixLen) {
			// The compressed prefix diverges from the key: split it, keeping
			// the matched part in a new node4 above the existing subtree.
			n4 := newNode4[V]()
			n4.prefixLen = uint32(diff)
			copy(n4.prefix[:], m.prefix[:min(diff, maxPrefixLen)])

			newLen := m.prefixLen - uint32(diff) - 1
			if int(m.prefixLen) <= maxPrefixLen {
				b := m.prefix[diff]
				m.prefixLen = newLen
				copy(m.prefix[:], m.prefix[diff+1:])
				n4.insertChild(b, in)
			} else {
				ml := minimum[V](in)
				b := ml.key[depth+diff]
				m.prefixLen = newLen
				copy(m.prefix[:], ml.key[depth+diff+1:depth+diff+1+min(int(newLen), maxPrefixLen)])
				n4.insertChild(b, in)
			}
			var split inner[V] = n4
			split = addChild(split, key, depth+diff, newLeaf[V](key, value))
			return split, zero, false
		}
		depth += int(m.prefixLen)
	}

	if depth >= len(key) {
		// The key ends exactly at this node.
		if zl := m.zeroLeaf; zl != nil {
			nz := mutable[V](zl).(*leaf[V])
			m.zeroLeaf = nz
			old := nz.value
			nz.value = value
			return n, old, true
		}
		m.zeroLeaf = newLeaf[V](key, value)
		return n, zero, false
	}

	c := key[depth]
	if child := in.child(c); child != nil {
		nc, old, replaced := insertNode(child, key, depth+1, value)
		if nc != child {
			in.setChild(c, nc)
		}
		return n, old, replaced
	}
	return in.insertChild(c, newLeaf[V](key, value)), zero, false
}

// addChild hangs child below in under the key byte at depth, or in the zero
// slot when the key is exhausted. The result replaces in when the shape grew.
func addChild[V any](in inner[V], key []byte, depth int, child node[V]) inner[V] {
	if depth < len(key) {
		return in.insertChild(key[depth], child).(inner[V])
	}
	in.meta().zeroLeaf = child.(*leaf[V])
	return in
}

// Delete removes key from the tree, returning the value it held. Deleting an
// absent key leaves the tree untouched.
func (t *Tree[V]) Delete(key []byte) (V, bool) {
	var zero V
	if t.root == nil {
		return zero, false
	}
	// Verify presence first so absent keys never trigger copy-on-write.
	if _, ok := t.Get(key); !ok {
		return zero, false
	}
	root, l := deleteNode(t.root, key, 0)
	t.root = root
	t.size--
	return l.value, true
}

// deleteNode removes the leaf for key, which the caller has verified to be
// present. Shrink and collapse results propagate up through the returned
// replacement node.
func deleteNode[V any](n node[V], key []byte, depth int) (node[V], *leaf[V]) {
	if l, ok := n.(*leaf[V]); ok {
		// Key stored directly at the root.
		release[V](l)
		return nil, l
	}
	n = mutable(n)
	in := n.(inner[V])
	m := in.meta()
	depth += int(m.prefixLen)

	if depth >= len(key) {
		zl := m.zeroLeaf
		repl := removeZeroLeaf(in)
		release[V](zl)
		return repl, zl
	}

	c := key[depth]
	child := in.child(c)
	if cl, ok := child.(*leaf[V]); ok {
		repl := in.deleteChild(c)
		release[V](cl)
		return repl, cl
	}

	nc, l := deleteNode(child, key, depth+1)
	if nc != child {
		in.setChild(c, nc)
	}
	return n, l
}

// removeZeroLeaf clears the zero slot and collapses a node4 that is left
// with a single child.
func removeZeroLeaf[V any](in inner[V]) node[V] {
	in.meta().zeroLeaf = nil
	if n4, ok := in.(*node4[V]); ok {
		switch n4.numChildren {
		case 0:
			return nil
		case 1:
			return n4.collapse()
		}
	}
	return in
}

// Minimum returns the entry with the smallest key in byte order.
func (t *Tree[V]) Minimum() ([]byte, V, bool) {
	if t.root == nil {
		var zero V
		return nil, zero, false
	}
	l := minimum(t.root)
	return l.key, l.value, true
}

// Maximum returns the entry with the largest key in byte order.
func (t *Tree[V]) Maximum() ([]byte, V, bool) {
	if t.root == nil {
		var zero V
		return nil, zero, false
	}
	l := maximum(t.root)
	return l.key, l.value, true
}

// Walk visits every entry in ascending lexicographic key order until fn
// returns false. The key slice is owned by the tree and must not be
// modified or retained.
func (t *Tree[V]) Walk(fn func(key []byte, value V) bool) {
	if t.root == nil {
		return
	}
	walkNode(t.root, func(l *leaf[V]) bool {
		return fn(l.key, l.value)
	})
}
