package art

// node16 holds up to sixteen children in a sorted pair array, the wider
// sibling of node4. Lookup stays a scan over the sorted keys.
type node16[V any] struct {
	base[V]
	keys     [16]byte
	children [16]node[V]
}

func newNode16[V any]() *node16[V] {
	n := &node16[V]{}
	n.kind = kindNode16
	n.refs.Store(1)
	return n
}

func (n *node16[V]) clone() node[V] {
	c := newNode16[V]()
	cloneMeta(&c.base, &n.base)
	c.keys = n.keys
	c.children = n.children
	for i := 0; i < int(n.numChildren); i++ {
		retain(c.children[i])
	}
	return c
}

func (n *node16[V]) index(c byte) int {
	for i := 0; i < int(n.numChildren); i++ {
		if n.keys[i] == c {
			return i
		}
		if n.keys[i] > c {
			break
		}
	}
	return -1
}

func (n *node16[V]) child(c byte) node[V] {
	if i := n.index(c); i >= 0 {
		return n.children[i]
	}
	return nil
}

func (n *node16[V]) setChild(c byte, child node[V]) {
	i := n.index(c)
	if i < 0 {
		panic("art: node16 setChild on absent key byte")
	}
	n.children[i] = child
}

func (n *node16[V]) insertChild(c byte, child node[V]) node[V] {
	if n.index(c) >= 0 {
		panic("art: node16 insertChild on duplicate key byte")
	}
	if n.numChildren == 16 {
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

func (n *node16[V]) deleteChild(c byte) node[V] {
	i := n.index(c)
	if i < 0 {
		panic("art: node16 deleteChild on absent key byte")
	}
	copy(n.keys[i:], n.keys[i+1:n.numChildren])
	copy(n.children[i:], n.children[i+1:n.numChildren])
	n.numChildren--
	n.keys[n.numChildren] = 0
	n.children[n.numChildren] = nil

	if n.numChildren == 3 {
		return n.shrink()
	}
	return n
}

func (n *node16[V]) shrink() node[V] {
	s := newNode4[V]()
	moveMeta(&s.base, &n.base)
	copy(s.keys[:], n.keys[:n.numChildren])
	copy(s.children[:], n.children[:n.numChildren])
	return s
}

func (n *node16[V]) grow() inner[V] {
	g := newNode48[V]()
	moveMeta(&g.base, &n.base)
	g.numChildren = 0
	for i := 0; i < int(n.numChildren); i++ {
		g.index[n.keys[i]] = byte(i + 1)
		g.children[i] = n.children[i]
		g.numChildren++
	}
	return g
}

func (n *node16[V]) eachChild(fn func(byte, node[V]) bool) bool {
	for i := 0; i < int(n.numChildren); i++ {
		if !fn(n.keys[i], n.children[i]) {
			return false
		}
	}
	return true
}
