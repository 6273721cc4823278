package art

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the tree as a deterministic ASCII dump, one node per line:
//
//	○ Node4 {childs=2, partial=[2,3]}
//	├──○ 5[1,2,3,4,5] -> v1
//	└──○ 5[1,2,3,9,9] -> v2
//
// Children print in ascending key-byte order. The empty tree prints "<>".
// Tests compare this output byte for byte.
func (t *Tree[V]) String() string {
	if t.root == nil {
		return "<>"
	}
	var b strings.Builder
	dumpNode(&b, t.root, "")
	return b.String()
}

func dumpNode[V any](b *strings.Builder, n node[V], pad string) {
	if l, ok := n.(*leaf[V]); ok {
		fmt.Fprintf(b, "○ %d%s -> %v\n", len(l.key), byteList(l.key), l.value)
		return
	}
	in := n.(inner[V])
	m := in.meta()
	fmt.Fprintf(b, "○ %s {childs=%d, partial=%s}\n",
		m.kind, m.numChildren, byteList(m.prefix[:min(int(m.prefixLen), maxPrefixLen)]))

	kids := make([]node[V], 0, int(m.numChildren)+1)
	if m.zeroLeaf != nil {
		kids = append(kids, m.zeroLeaf)
	}
	in.eachChild(func(_ byte, c node[V]) bool {
		kids = append(kids, c)
		return true
	})
	for i, k := range kids {
		conn, cont := "├──", "│  "
		if i == len(kids)-1 {
			conn, cont = "└──", "   "
		}
		b.WriteString(pad)
		b.WriteString(conn)
		dumpNode(b, k, pad+cont)
	}
}

func byteList(b []byte) string {
	var s strings.Builder
	s.WriteByte('[')
	for i, c := range b {
		if i > 0 {
			s.WriteByte(',')
		}
		s.WriteString(strconv.Itoa(int(c)))
	}
	s.WriteByte(']')
	return s.String()
}
