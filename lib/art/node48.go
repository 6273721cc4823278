package art

// node48 holds up to 48 children behind a 256-entry byte-to-slot index. Slot
// packing does not follow byte order, so ordered iteration walks the index
// table instead of the slot array.
type node48[V any] struct {
	base[V]
	// index maps a key byte to slot+1; zero marks an absent byte.
	index    [256]byte
	children [48]node[V]
}

func newNode48[V any]() *node48[V] {
	n := &node48[V]{}
	n.kind = kindNode48
	n.refs.Store(1)
	return n
}

func (n *node48[V]) clone() node[V] {
	c := newNode48[V]()
	cloneMeta(&c.base, &n.base)
	c.index = n.index
	c.children = n.children
	for i := range c.children {
		if c.children[i] != nil {
			retain(c.children[i])
		}
	}
	return c
}

func (n *node48[V]) child(c byte) node[V] {
	if slot := n.index[c]; slot != 0 {
		return n.children[slot-1]
	}
	return nil
}

func (n *node48[V]) setChild(c byte, child node[V]) {
	slot := n.index[c]
	if slot == 0 {
		panic("art: node48 setChild on absent key byte")
	}
	n.children[slot-1] = child
}

func (n *node48[V]) insertChild(c byte, child node[V]) node[V] {
	if n.index[c] != 0 {
		panic("art: node48 insertChild on duplicate key byte")
	}
	if n.numChildren == 48 {
		return n.grow().insertChild(c, child)
	}
	slot := 0
	for n.children[slot] != nil {
		slot++
	}
	n.children[slot] = child
	n.index[c] = byte(slot + 1)
	n.numChildren++
	return n
}

func (n *node48[V]) deleteChild(c byte) node[V] {
	slot := n.index[c]
	if slot == 0 {
		panic("art: node48 deleteChild on absent key byte")
	}
	n.children[slot-1] = nil
	n.index[c] = 0
	n.numChildren--

	if n.numChildren == 13 {
		return n.shrink()
	}
	return n
}

func (n *node48[V]) shrink() node[V] {
	s := newNode16[V]()
	moveMeta(&s.base, &n.base)
	s.numChildren = 0
	for i := 0; i < 256; i++ {
		if slot := n.index[i]; slot != 0 {
			s.keys[s.numChildren] = byte(i)
			s.children[s.numChildren] = n.children[slot-1]
			s.numChildren++
		}
	}
	return s
}

func (n *node48[V]) grow() inner[V] {
	g := newNode256[V]()
	moveMeta(&g.base, &n.base)
	for i := 0; i < 256; i++ {
		if slot := n.index[i]; slot != 0 {
			g.children[i] = n.children[slot-1]
		}
	}
	return g
}

func (n *node48[V]) eachChild(fn func(byte, node[V]) bool) bool {
	for i := 0; i < 256; i++ {
		if slot := n.index[i]; slot != 0 {
			if !fn(byte(i), n.children[slot-1]) {
				return false
			}
		}
	}
	return true
}
