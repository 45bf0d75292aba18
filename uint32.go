package intcodec

// EncodeUint32 writes the delta+mode encoding of values into dst, which
// must be at least EncodedBufferSize(len(values)) bytes, and returns the
// number of bytes written.
//
// The signed and unsigned paths share one byte-level codec; the only
// difference is the bit-pattern reinterpretation applied before encoding,
// so a uint32 slice and an int32 slice with the same bit patterns encode
// to identical bytes.
func EncodeUint32(dst []byte, values []uint32) int {
	signed := make([]int32, len(values))
	for i, v := range values {
		signed[i] = signed32(v)
	}
	return EncodeInt32(dst, signed)
}

// DecodeUint32 reconstructs n uint32 values from the buffer data (as
// produced by EncodeUint32) into dst, which must have length n.
func DecodeUint32(dst []uint32, data []byte, n int) {
	signed := make([]int32, n)
	DecodeInt32(signed, data, n)
	for i, v := range signed {
		dst[i] = unsigned32(v)
	}
}

// IsMonotonic reports whether the sequence is non-decreasing, i.e. whether
// every element is at least the one before it; the first element is not
// compared with zero. Index lists built from parent
// pointers or child spans are usually sorted; callers that need to know
// can ask here once at encode time instead of tracking it themselves.
func IsMonotonic(values []int32) bool {
	var prev int32
	for i, v := range values {
		if i > 0 && v < prev {
			return false
		}
		prev = v
	}
	return true
}
