package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLongestPrefix(t *testing.T) {
	assert.Equal(t, 0, LongestPrefix(nil, nil))
	assert.Equal(t, 0, LongestPrefix([]byte{1}, []byte{2}))
	assert.Equal(t, 2, LongestPrefix([]byte{1, 2, 3}, []byte{1, 2, 9}))
	assert.Equal(t, 2, LongestPrefix([]byte{1, 2}, []byte{1, 2, 3, 4}))
	assert.Equal(t, 3, LongestPrefix([]byte{1, 2, 3}, []byte{1, 2, 3}))
}

func TestConcat(t *testing.T) {
	a := []byte{1, 2}
	b := []byte{3}
	c := Concat(a, b)
	assert.Equal(t, []byte{1, 2, 3}, c)

	// The result is detached from both inputs.
	a[0] = 9
	b[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, c)
}
