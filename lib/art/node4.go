package art

// node4 holds up to four children in a sorted (key byte, child) pair array;
// lookup is a linear scan.
type node4[V any] struct {
	base[V]
	keys     [4]byte
	children [4]node[V]
}

func newNode4[V any]() *node4[V] {
	n := &node4[V]{}
	n.kind = kindNode4
	n.refs.Store(1)
	return n
}

func (n *node4[V]) clone() node[V] {
	c := newNode4[V]()
	cloneMeta(&c.base, &n.base)
	c.keys = n.keys
	c.children = n.children
	for i := 0; i < int(n.numChildren); i++ {
		retain(c.children[i])
	}
	return c
}

func (n *node4[V]) index(c byte) int {
	for i := 0; i < int(n.numChildren); i++ {
		if n.keys[i] == c {
			return i
		}
	}
	return -1
}

func (n *node4[V]) child(c byte) node[V] {
	if i := n.index(c); i >= 0 {
		return n.children[i]
	}
	return nil
}

func (n *node4[V]) setChild(c byte, child node[V]) {
	i := n.index(c)
	if i < 0 {
		panic("art: node4 setChild on absent key byte")
	}
	n.children[i] = child
}

func (n *node4[V]) insertChild(c byte, child node[V]) node[V] {
	if n.index(c) >= 0 {
		panic("art: node4 insertChild on duplicate key byte")
	}
	if n.numChildren == 4 {
		return n.grow().insertChild(c, child)
	}
	i := 0
	for ; i < int(n.numChildren); i++ {
		if c < n.keys[i] {
			break
		}
	}
	copy(n.keys[i+1:], n.keys[i:n.numChildren])
	copy(n.children[i+1:], n.children[i:n.numChildren])
	n.keys[i] = c
	n.children[i] = child
	n.numChildren++
	return n
}

func (n *node4[V]) deleteChild(c byte) node[V] {
	i := n.index(c)
	if i < 0 {
		panic("art: node4 deleteChild on absent key byte")
	}
	copy(n.keys[i:], n.keys[i+1:n.numChildren])
	copy(n.children[i:], n.children[i+1:n.numChildren])
	n.numChildren--
	n.keys[n.numChildren] = 0
	n.children[n.numChildren] = nil

	switch {
	case n.numChildren == 0 && n.zeroLeaf == nil:
		return nil
	case n.numChildren == 0:
		// Only the zero leaf remains; it already owns its full key, so the
		// node's prefix can be dropped with it.
		zl := n.zeroLeaf
		n.zeroLeaf = nil
		return zl
	case n.numChildren == 1 && n.zeroLeaf == nil:
		return n.collapse()
	}
	return n
}

// collapse replaces a node4 left with a single child by that child, folding
// the node's prefix and branch byte into it for path compression.
func (n *node4[V]) collapse() node[V] {
	child := n.children[0]
	if l, ok := child.(*leaf[V]); ok {
		return l
	}
	child = mutable(child)
	mergePrefix(&n.base, n.keys[0], child.(inner[V]).meta())
	return child
}

func (n *node4[V]) grow() inner[V] {
	g := newNode16[V]()
	moveMeta(&g.base, &n.base)
	copy(g.keys[:], n.keys[:n.numChildren])
	copy(g.children[:], n.children[:n.numChildren])
	return g
}

func (n *node4[V]) eachChild(fn func(byte, node[V]) bool) bool {
	for i := 0; i < int(n.numChildren); i++ {
		if !fn(n.keys[i], n.children[i]) {
			return false
		}
	}
	return true
}
