package art

import (
	"sync/atomic"
)

// maxPrefixLen is the number of compressed-prefix bytes a node stores inline.
// Logical prefixes may be longer; the overflow is compared against the
// subtree's minimum leaf when it matters.
const maxPrefixLen = 10

type kind int8

const (
	kindLeaf kind = iota
	kindNode4
	kindNode16
	kindNode48
	kindNode256
)

func (k kind) String() string {
	return [...]string{"Leaf", "Node4", "Node16", "Node48", "Node256"}[k]
}

// header sits at the start of every node allocation. The reference count
// tracks how many parents (or tree roots) point at the node; a count above
// one means the node is shared between tree values and must be cloned before
// any in-place write.
type header struct {
	refs atomic.Int32
	kind kind
}

func (h *header) head() *header { return h }

// base carries the fields common to the four internal shapes: the child
// count, the compressed key prefix shared by every key below the node, and
// the slot for a key that is exhausted exactly at this node.
type base[V any] struct {
	header
	numChildren uint16
	prefixLen   uint32
	prefix      [maxPrefixLen]byte
	zeroLeaf    *leaf[V]
}

func (b *base[V]) meta() *base[V] { return b }

// setPrefix records a logical prefix of length bytes taken from key, keeping
// at most maxPrefixLen of them inline.
func (b *base[V]) setPrefix(key []byte, length int) {
	b.prefixLen = uint32(length)
	copy(b.prefix[:], key[:min(length, maxPrefixLen)])
}

// node is the type-erased handle over any node shape.
type node[V any] interface {
	head() *header
	clone() node[V]
}

// inner is the capability set shared by the four internal shapes. Structural
// mutators return the node the caller must install in the parent slot: the
// receiver when the change was in place, a replacement after a grow, shrink
// or collapse, or nil when the node vanished entirely.
type inner[V any] interface {
	node[V]
	meta() *base[V]

	// child returns the child stored under the key byte c, or nil.
	child(c byte) node[V]
	// setChild replaces the child stored under c. The byte must be present.
	setChild(c byte, child node[V])
	// insertChild adds a child under a byte that must not be present yet.
	insertChild(c byte, child node[V]) node[V]
	// deleteChild removes the child stored under c. The byte must be present.
	deleteChild(c byte) node[V]
	// eachChild visits the byte-keyed children in ascending key order until
	// fn returns false, reporting whether the visit ran to completion.
	eachChild(fn func(c byte, child node[V]) bool) bool
}

func retain[V any](n node[V]) {
	n.head().refs.Add(1)
}

// release drops one reference. When the last reference goes away the node's
// children are released as well, so sharedness accounting stays exact across
// tree values.
func release[V any](n node[V]) {
	if n == nil {
		return
	}
	if n.head().refs.Add(-1) > 0 {
		return
	}
	if in, ok := n.(inner[V]); ok {
		m := in.meta()
		if m.zeroLeaf != nil {
			release[V](m.zeroLeaf)
		}
		in.eachChild(func(_ byte, c node[V]) bool {
			release(c)
			return true
		})
	}
}

// mutable returns a node that may be modified in place. A shared node is
// cloned to gain unique ownership and the original is released; the caller
// must install the returned node in the parent slot.
func mutable[V any](n node[V]) node[V] {
	if n.head().refs.Load() == 1 {
		return n
	}
	c := n.clone()
	release(n)
	return c
}

// cloneMeta copies the header fields of src into dst for a clone: the zero
// leaf gains a reference because it is now held by two parents.
func cloneMeta[V any](dst, src *base[V]) {
	dst.numChildren = src.numChildren
	dst.prefixLen = src.prefixLen
	dst.prefix = src.prefix
	dst.zeroLeaf = src.zeroLeaf
	if dst.zeroLeaf != nil {
		dst.zeroLeaf.refs.Add(1)
	}
}

// moveMeta transfers the header fields of src into dst during a grow or
// shrink. The source node is discarded afterwards, so no reference counts
// change hands.
func moveMeta[V any](dst, src *base[V]) {
	dst.numChildren = src.numChildren
	dst.prefixLen = src.prefixLen
	dst.prefix = src.prefix
	dst.zeroLeaf = src.zeroLeaf
}

// mergePrefix folds a dying parent's prefix and branch byte into child, the
// single node left below it. The logical length always grows by the full
// amount even when the inline bytes are truncated.
func mergePrefix[V any](parent *base[V], c byte, child *base[V]) {
	merged := parent.prefix
	n := min(int(parent.prefixLen), maxPrefixLen)
	if n < maxPrefixLen {
		merged[n] = c
		n++
	}
	if n < maxPrefixLen {
		m := min(int(child.prefixLen), maxPrefixLen-n)
		copy(merged[n:], child.prefix[:m])
	}
	child.prefix = merged
	child.prefixLen += parent.prefixLen + 1
}

// checkPrefix compares the inline prefix bytes against key at depth and
// returns the matched count. Bytes beyond maxPrefixLen are not verified
// here; the final leaf comparison defends against false positives.
func checkPrefix[V any](m *base[V], key []byte, depth int) int {
	limit := min(min(int(m.prefixLen), maxPrefixLen), len(key)-depth)
	idx := 0
	for ; idx < limit; idx++ {
		if m.prefix[idx] != key[depth+idx] {
			return idx
		}
	}
	return idx
}

// prefixMismatch returns the exact number of prefix bytes key matches at
// depth. When the logical prefix overflows the inline storage the remainder
// is compared against the subtree's minimum leaf.
func prefixMismatch[V any](in inner[V], key []byte, depth int) int {
	m := in.meta()
	idx := checkPrefix(m, key, depth)
	if int(m.prefixLen) > maxPrefixLen && idx == maxPrefixLen {
		l := minimum[V](in)
		limit := min(min(len(l.key), len(key))-depth, int(m.prefixLen))
		for ; idx < limit; idx++ {
			if l.key[depth+idx] != key[depth+idx] {
				return idx
			}
		}
	}
	return idx
}

// minimum finds the leftmost leaf below n. A zero leaf sorts before every
// byte-keyed child because its key is a strict prefix of theirs.
func minimum[V any](n node[V]) *leaf[V] {
	for {
		if l, ok := n.(*leaf[V]); ok {
			return l
		}
		in := n.(inner[V])
		if zl := in.meta().zeroLeaf; zl != nil {
			return zl
		}
		var next node[V]
		in.eachChild(func(_ byte, c node[V]) bool {
			next = c
			return false
		})
		if next == nil {
			return nil
		}
		n = next
	}
}

// maximum finds the rightmost leaf below n.
func maximum[V any](n node[V]) *leaf[V] {
	for {
		if l, ok := n.(*leaf[V]); ok {
			return l
		}
		in := n.(inner[V])
		var last node[V]
		in.eachChild(func(_ byte, c node[V]) bool {
			last = c
			return true
		})
		if last == nil {
			if zl := in.meta().zeroLeaf; zl != nil {
				return zl
			}
			return nil
		}
		n = last
	}
}

// walkNode visits every leaf below n in ascending key order until fn returns
// false.
func walkNode[V any](n node[V], fn func(*leaf[V]) bool) bool {
	if l, ok := n.(*leaf[V]); ok {
		return fn(l)
	}
	in := n.(inner[V])
	if zl := in.meta().zeroLeaf; zl != nil && !fn(zl) {
		return false
	}
	done := true
	in.eachChild(func(_ byte, c node[V]) bool {
		done = walkNode(c, fn)
		return done
	})
	return done
}
