package art

import (
	"bytes"

	"artree/utils"
)

// leaf owns a copy of its full key and the associated value. The key never
// changes after allocation; the value is replaced in place only while the
// leaf is uniquely referenced.
type leaf[V any] struct {
	header
	key   []byte
	value V
}

func newLeaf[V any](key []byte, value V) *leaf[V] {
	l := &leaf[V]{
		key:   append([]byte(nil), key...),
		value: value,
	}
	l.kind = kindLeaf
	l.refs.Store(1)
	return l
}

func (l *leaf[V]) clone() node[V] {
	return newLeaf[V](l.key, l.value)
}

// matches reports whether the leaf key equals key byte for byte. Lookups end
// with this check to defend against false positives from compressed
// prefixes.
func (l *leaf[V]) matches(key []byte) bool {
	return bytes.Equal(l.key, key)
}

// longestCommonPrefix returns the count of matching bytes in both keys
// starting at depth. Calling it with depth beyond either key is a contract
// violation by the mutation engine.
func (l *leaf[V]) longestCommonPrefix(other *leaf[V], depth int) int {
	if depth > len(l.key) || depth > len(other.key) {
		panic("art: longestCommonPrefix depth beyond key bounds")
	}
	return utils.LongestPrefix(l.key[depth:], other.key[depth:])
}
