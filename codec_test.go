package intcodec

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertCodecRoundTrip round-trips values through EncodeInt32/DecodeInt32
// and returns the encoded buffer.
func assertCodecRoundTrip(t *testing.T, values []int32) []byte {
	t.Helper()
	buf := make([]byte, EncodedBufferSize(len(values)))
	n := EncodeInt32(buf, values)
	require.LessOrEqual(t, n, len(buf))
	buf = buf[:n]

	out := make([]int32, len(values))
	DecodeInt32(out, buf, len(values))
	assert.Equal(t, values, out)
	return buf
}

func genSequential(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(i)
	}
	return out
}

func genMonotonic(n int) []int32 {
	out := make([]int32, n)
	var v int32
	rng := rand.New(rand.NewSource(7))
	for i := range out {
		v += int32(rng.Intn(5))
		out[i] = v
	}
	return out
}

func genMixed(n int) []int32 {
	out := make([]int32, n)
	rng := rand.New(rand.NewSource(11))
	for i := range out {
		out[i] = int32(rng.Intn(2_000_000) - 1_000_000)
	}
	return out
}

func TestEncodeDecodeEmpty(t *testing.T) {
	buf := assertCodecRoundTrip(t, []int32{})
	assert.Empty(t, buf)
	assert.Equal(t, 0, EncodedBufferSize(0))
}

func TestEncodeDecodeSingleValue(t *testing.T) {
	buf := assertCodecRoundTrip(t, []int32{0x7FFFFFFF})
	assert.Len(t, buf, 5)
}

func TestEncodeDecodeMonotoneSmallSteps(t *testing.T) {
	// Deltas [123, 1, 1, 100000, 0, 1, 0]; the common value is 1, so the
	// modes are [One, Common, Common, Four, One, Common, One] and the
	// encoded size is 4 + 2 + (1+4+1+1) = 13 bytes.
	buf := assertCodecRoundTrip(t, []int32{123, 124, 125, 100125, 100125, 100126, 100126})
	assert.Len(t, buf, 13)
}

func TestEncodeDecodeAllCommon(t *testing.T) {
	// Every delta past the first is 5: one code byte pair region plus a
	// single payload byte for the leading zero.
	buf := assertCodecRoundTrip(t, []int32{0, 5, 10, 15, 20})
	assert.Len(t, buf, 7)
}

func TestEncodeDecodeFullWidthDeltas(t *testing.T) {
	// All deltas are 0x40000000 in signed space even though the values
	// cross the int32 sign boundary, so everything encodes as Common.
	values := []uint32{0x40000000, 0x80000000, 0xC0000000, 0}
	buf := make([]byte, EncodedBufferSize(len(values)))
	n := EncodeUint32(buf, values)
	assert.Len(t, buf[:n], 5)

	out := make([]uint32, len(values))
	DecodeUint32(out, buf[:n], len(values))
	assert.Equal(t, values, out)
}

func TestEncodeDecodeTailLengths(t *testing.T) {
	// One full block of 4 plus tails of 1 and 3; both need exactly 2 code bytes.
	for _, n := range []int{5, 7} {
		values := genMixed(n)
		buf := assertCodecRoundTrip(t, values)
		assert.Equal(t, numCodeBytes(n), len(buf)-headerBytes-payloadLen(values))
	}
}

// payloadLen recomputes the exact payload byte count for a value slice,
// independent of the encoder, to cross-check the tail-length assertions.
func payloadLen(values []int32) int {
	common := mostCommonDelta(values)
	var prev int32
	total := 0
	for _, v := range values {
		switch classify(v-prev, common) {
		case CodeOne:
			total += 1
		case CodeTwo:
			total += 2
		case CodeFour:
			total += 4
		}
		prev = v
	}
	return total
}

func TestEncodeDecodeRandom(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 8, 17, 128, 500} {
		t.Run("", func(t *testing.T) {
			assertCodecRoundTrip(t, genMixed(n))
		})
	}
}

func TestEncodeDecodeBitWidthBoundaries(t *testing.T) {
	values := []int32{
		0, math.MaxInt8, math.MinInt8, math.MaxInt8 + 1, math.MinInt8 - 1,
		math.MaxInt16, math.MinInt16, math.MaxInt16 + 1, math.MinInt16 - 1,
		math.MaxInt32, math.MinInt32,
	}
	assertCodecRoundTrip(t, values)
}

func TestSignedUnsignedEquivalence(t *testing.T) {
	// The same bit pattern encodes and decodes identically whether
	// interpreted as int32 or uint32.
	pattern := []uint32{0, 1, math.MaxInt32, math.MaxInt32 + 1, math.MaxUint32}
	signed := make([]int32, len(pattern))
	for i, v := range pattern {
		signed[i] = int32(v)
	}

	bufInt := make([]byte, EncodedBufferSize(len(signed)))
	nInt := EncodeInt32(bufInt, signed)

	bufUint := make([]byte, EncodedBufferSize(len(pattern)))
	nUint := EncodeUint32(bufUint, pattern)

	assert.Equal(t, bufInt[:nInt], bufUint[:nUint])

	outUint := make([]uint32, len(pattern))
	DecodeUint32(outUint, bufInt[:nInt], len(pattern))
	assert.Equal(t, pattern, outUint)
}

func TestEncodeBufferSizeBound(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 5, 100, 257} {
		values := genMixed(n)
		bound := EncodedBufferSize(n)
		buf := make([]byte, bound)
		used := EncodeInt32(buf, values)
		assert.LessOrEqual(t, used, bound)
	}
}

func TestDeterministicEncoding(t *testing.T) {
	values := genMixed(64)
	a := make([]byte, EncodedBufferSize(len(values)))
	b := make([]byte, EncodedBufferSize(len(values)))
	na := EncodeInt32(a, values)
	nb := EncodeInt32(b, values)
	assert.Equal(t, a[:na], b[:nb])
}

func TestIsMonotonic(t *testing.T) {
	assert.True(t, IsMonotonic(genSequential(10)))
	assert.True(t, IsMonotonic(nil))
	assert.False(t, IsMonotonic([]int32{5, 4, 3}))
}
