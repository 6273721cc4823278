package keys

import (
	"bytes"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var int64Samples = []int64{
	math.MinInt64, math.MinInt64 + 1, -1 << 32, -65536, -256, -2, -1,
	0, 1, 2, 255, 256, 65535, 1 << 32, math.MaxInt64 - 1, math.MaxInt64,
}

func TestInt64OrderPreserved(t *testing.T) {
	encoded := make([][]byte, len(int64Samples))
	for i, v := range int64Samples {
		encoded[i] = AppendInt64(nil, v)
	}
	require.True(t, sort.SliceIsSorted(encoded, func(i, j int) bool {
		return bytes.Compare(encoded[i], encoded[j]) < 0
	}), "byte order must match numeric order")
}

func TestInt64RoundTrip(t *testing.T) {
	for _, v := range int64Samples {
		assert.Equal(t, v, Int64(AppendInt64(nil, v)))
	}
}

func TestUint64OrderPreservedAndRoundTrip(t *testing.T) {
	samples := []uint64{0, 1, 255, 256, 1 << 16, 1 << 32, math.MaxUint64 - 1, math.MaxUint64}
	var prev []byte
	for _, v := range samples {
		b := AppendUint64(nil, v)
		assert.Equal(t, v, Uint64(b))
		if prev != nil {
			assert.Negative(t, bytes.Compare(prev, b))
		}
		prev = b
	}
}

func TestNarrowWidths(t *testing.T) {
	assert.Equal(t, int16(math.MinInt16), Int16(AppendInt16(nil, math.MinInt16)))
	assert.Equal(t, int16(math.MaxInt16), Int16(AppendInt16(nil, math.MaxInt16)))
	assert.Equal(t, int32(-7), Int32(AppendInt32(nil, -7)))
	assert.Equal(t, uint16(0xbeef), Uint16(AppendUint16(nil, 0xbeef)))
	assert.Equal(t, uint32(0xdeadbeef), Uint32(AppendUint32(nil, 0xdeadbeef)))

	neg := AppendInt32(nil, -1)
	pos := AppendInt32(nil, 1)
	assert.Negative(t, bytes.Compare(neg, pos))
}

func TestAppendExtendsDst(t *testing.T) {
	b := AppendUint16([]byte{0xff}, 0x0102)
	assert.Equal(t, []byte{0xff, 0x01, 0x02}, b)
}
