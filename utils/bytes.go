package utils

import (
	"fmt"
	"math/rand"
)

// LongestPrefix returns the length of the common prefix of k1 and k2.
func LongestPrefix(k1, k2 []byte) int {
	num := min(len(k1), len(k2))
	var i int
	for i = 0; i < num; i++ {
		if k1[i] != k2[i] {
			break
		}
	}
	return i
}

// Concat returns a new slice holding a followed by b.
func Concat(a, b []byte) []byte {
	c := make([]byte, len(a)+len(b))
	copy(c, a)
	copy(c[len(a):], b)
	return c
}

var letters = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GetTestKey returns a formatted key for tests.
func GetTestKey(i int) []byte {
	return []byte(fmt.Sprintf("artree-test-key-%09d", i))
}

// RandomValue returns a random ASCII value of length n for tests.
func RandomValue(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return b
}
