package intcodec

import "math"

// signed32 reinterprets the bit pattern of u as a two's-complement int32.
//
// Values up to math.MaxInt32 carry over directly; larger values wrap
// through the negative range. Go's integer conversions already guarantee
// this identity on every target platform, so unlike C there is no
// implementation-defined branch to guard against. The explicit formula is
// kept instead of a bare int32(u) conversion so the wraparound contract is
// visible and testable on its own.
func signed32(u uint32) int32 {
	if u <= uint32(math.MaxInt32) {
		return int32(u)
	}
	return int32(u-(uint32(math.MaxInt32)+1)) + math.MinInt32
}

// unsigned32 is the decode-side inverse of signed32: a plain bit-pattern
// reinterpretation back to uint32, well defined for every value of i.
func unsigned32(i int32) uint32 {
	return uint32(i)
}
