package art

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpEmpty(t *testing.T) {
	assert.Equal(t, "<>", New[int]().String())
}

func TestDumpSingleLeaf(t *testing.T) {
	tree := New[string]()
	tree.Insert([]byte{10, 20}, "v")
	assert.Equal(t, "○ 2[10,20] -> v\n", tree.String())
}

func TestDumpPrefixKey(t *testing.T) {
	tree := New[string]()
	tree.Insert([]byte{1, 2, 3}, "long")
	tree.Insert([]byte{1, 2}, "short")

	// The exhausted key prints first: it sorts before every byte child.
	expected := strings.Join([]string{
		"○ Node4 {childs=1, partial=[1,2]}",
		"├──○ 2[1,2] -> short",
		"└──○ 3[1,2,3] -> long",
	}, "\n") + "\n"
	assert.Equal(t, expected, tree.String())
}

func TestDumpSharedPrefixTree(t *testing.T) {
	tree := New[int]()
	inserts := []struct {
		key []byte
		val int
	}{
		{[]byte{1, 2, 3, 4, 5}, 10},
		{[]byte{2, 3, 4, 5, 6}, 20},
		{[]byte{3, 4, 5, 6, 7}, 30},
		{[]byte{4, 5, 6, 7, 8}, 40},
		{[]byte{8, 9, 10, 12, 12}, 50},
		{[]byte{1, 2, 2, 5, 6}, 60},
		{[]byte{2, 3, 4, 6, 6}, 70},
		{[]byte{4, 5, 6, 8, 9}, 80},
		{[]byte{8, 9, 10, 13, 13}, 90},
	}
	for _, in := range inserts {
		tree.Insert(in.key, in.val)
	}

	expected := strings.Join([]string{
		"○ Node16 {childs=5, partial=[]}",
		"├──○ Node4 {childs=2, partial=[2]}",
		"│  ├──○ 5[1,2,2,5,6] -> 60",
		"│  └──○ 5[1,2,3,4,5] -> 10",
		"├──○ Node4 {childs=2, partial=[3,4]}",
		"│  ├──○ 5[2,3,4,5,6] -> 20",
		"│  └──○ 5[2,3,4,6,6] -> 70",
		"├──○ 5[3,4,5,6,7] -> 30",
		"├──○ Node4 {childs=2, partial=[5,6]}",
		"│  ├──○ 5[4,5,6,7,8] -> 40",
		"│  └──○ 5[4,5,6,8,9] -> 80",
		"└──○ Node4 {childs=2, partial=[9,10]}",
		"   ├──○ 5[8,9,10,12,12] -> 50",
		"   └──○ 5[8,9,10,13,13] -> 90",
	}, "\n") + "\n"
	assert.Equal(t, expected, tree.String())
}

func TestDumpStableAcrossInsertOrder(t *testing.T) {
	ks := [][]byte{
		{1, 2, 3, 4, 5}, {2, 3, 4, 5, 6}, {1, 2, 2, 5, 6}, {2, 3, 4, 6, 6},
	}
	a := New[int]()
	b := New[int]()
	for i, k := range ks {
		a.Insert(k, i)
	}
	for i := len(ks) - 1; i >= 0; i-- {
		b.Insert(ks[i], i)
	}
	assert.Equal(t, a.String(), b.String())
}
