package art

// node256 keeps one slot per possible key byte; lookup is direct indexing.
type node256[V any] struct {
	base[V]
	children [256]node[V]
}

func newNode256[V any]() *node256[V] {
	n := &node256[V]{}
	n.kind = kindNode256
	n.refs.Store(1)
	return n
}

func (n *node256[V]) clone() node[V] {
	c := newNode256[V]()
	cloneMeta(&c.base, &n.base)
	c.children = n.children
	for i := range c.children {
		if c.children[i] != nil {
			retain(c.children[i])
		}
	}
	return c
}

func (n *node256[V]) child(c byte) node[V] {
	return n.children[c]
}

func (n *node256[V]) setChild(c byte, child node[V]) {
	if n.children[c] == nil {
		panic("art: node256 setChild on absent key byte")
	}
	n.children[c] = child
}

func (n *node256[V]) insertChild(c byte, child node[V]) node[V] {
	if n.children[c] != nil {
		panic("art: node256 insertChild on duplicate key byte")
	}
	n.children[c] = child
	n.numChildren++
	return n
}

func (n *node256[V]) deleteChild(c byte) node[V] {
	if n.children[c] == nil {
		panic("art: node256 deleteChild on absent key byte")
	}
	n.children[c] = nil
	n.numChildren--

	// Shrink well below capacity of the smaller shape to avoid thrashing on
	// the 48/49 boundary.
	if n.numChildren == 40 {
		return n.shrink()
	}
	return n
}

func (n *node256[V]) shrink() node[V] {
	s := newNode48[V]()
	moveMeta(&s.base, &n.base)
	s.numChildren = 0
	for i := 0; i < 256; i++ {
		if n.children[i] != nil {
			s.children[s.numChildren] = n.children[i]
			s.index[i] = byte(s.numChildren + 1)
			s.numChildren++
		}
	}
	return s
}

func (n *node256[V]) eachChild(fn func(byte, node[V]) bool) bool {
	for i := 0; i < 256; i++ {
		if n.children[i] != nil {
			if !fn(byte(i), n.children[i]) {
				return false
			}
		}
	}
	return true
}
