// Package keys converts fixed-width integers to byte sequences whose
// lexicographic order matches the numeric order, so they can serve as
// radix-tree keys that iterate in ascending logical order.
//
// Unsigned values are encoded big-endian; signed values additionally have
// their sign bit flipped so negative numbers sort before positive ones.
package keys

import "encoding/binary"

const (
	signBit16 = 1 << 15
	signBit32 = 1 << 31
	signBit64 = 1 << 63
)

// AppendUint16 appends the order-preserving encoding of v to dst.
func AppendUint16(dst []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, v)
}

// AppendUint32 appends the order-preserving encoding of v to dst.
func AppendUint32(dst []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, v)
}

// AppendUint64 appends the order-preserving encoding of v to dst.
func AppendUint64(dst []byte, v uint64) []byte {
	return binary.BigEndian.AppendUint64(dst, v)
}

// AppendInt16 appends the order-preserving encoding of v to dst.
func AppendInt16(dst []byte, v int16) []byte {
	return AppendUint16(dst, uint16(v)^signBit16)
}

// AppendInt32 appends the order-preserving encoding of v to dst.
func AppendInt32(dst []byte, v int32) []byte {
	return AppendUint32(dst, uint32(v)^signBit32)
}

// AppendInt64 appends the order-preserving encoding of v to dst.
func AppendInt64(dst []byte, v int64) []byte {
	return AppendUint64(dst, uint64(v)^signBit64)
}

// Uint16 decodes a key produced by AppendUint16.
func Uint16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }

// Uint32 decodes a key produced by AppendUint32.
func Uint32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

// Uint64 decodes a key produced by AppendUint64.
func Uint64(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

// Int16 decodes a key produced by AppendInt16.
func Int16(b []byte) int16 { return int16(Uint16(b) ^ signBit16) }

// Int32 decodes a key produced by AppendInt32.
func Int32(b []byte) int32 { return int32(Uint32(b) ^ signBit32) }

// Int64 decodes a key produced by AppendInt64.
func Int64(b []byte) int64 { return int64(Uint64(b) ^ signBit64) }
