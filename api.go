package intcodec

import "fmt"

// DefaultCompressor is the ByteStreamCompressor used by the package-level
// Compress*/Decompress* functions below. It is a package variable rather
// than a hidden constant so callers can swap in any ByteStreamCompressor
// (ZstdCompressor, or their own) for the whole package. Both sides of a
// stream must agree on the compressor; it is not recorded in the output.
var DefaultCompressor ByteStreamCompressor = LZ4Compressor{}

// GetCompressedBufferSize returns the number of bytes a caller must
// allocate to hold the compressed output of a sequence of n elements:
// DefaultCompressor.BoundFor(EncodedBufferSize(n)).
func GetCompressedBufferSize(n int) int {
	return DefaultCompressor.BoundFor(EncodedBufferSize(n))
}

// GetDecompressionWorkingSpaceSize returns the number of bytes needed for
// the scratch buffer DecompressInt32FromBuffer/DecompressUint32FromBuffer
// use to hold the decompressed bytes before the delta decoder runs. It is
// identical to EncodedBufferSize(n).
func GetDecompressionWorkingSpaceSize(n int) int {
	return EncodedBufferSize(n)
}

// CompressInt32ToBuffer encodes values and compresses the result into
// compressed, which must have length at least GetCompressedBufferSize(n).
// It returns the number of compressed bytes written.
func CompressInt32ToBuffer(values []int32, compressed []byte) (int, error) {
	return compressValues(values, compressed, EncodeInt32)
}

// CompressUint32ToBuffer encodes values and compresses the result into
// compressed, which must have length at least GetCompressedBufferSize(n).
// It returns the number of compressed bytes written.
func CompressUint32ToBuffer(values []uint32, compressed []byte) (int, error) {
	return compressValues(values, compressed, EncodeUint32)
}

// compressValues holds the shared allocate-scratch, encode, compress
// sequence, parameterized over the encode step so the int32 and uint32
// entry points above stay thin wrappers over one implementation.
func compressValues[T any](values []T, compressed []byte, encode func([]byte, []T) int) (int, error) {
	n := len(values)
	if n == 0 {
		return 0, nil
	}
	scratch := make([]byte, EncodedBufferSize(n))
	encoded := encode(scratch, values)
	return DefaultCompressor.CompressToBuffer(scratch[:encoded], compressed)
}

// DecompressInt32FromBuffer decompresses compressed into ints, which must
// have length n (the element count agreed out of band with the encoder).
// workingSpace, if non-nil, is used as decompression scratch instead of an
// internally allocated buffer; it must have length at least
// GetDecompressionWorkingSpaceSize(n) and must not be shared with a
// concurrent call. Returns n on success, or (0, err) if decompression
// failed (the stream is corrupt or truncated).
func DecompressInt32FromBuffer(compressed []byte, ints []int32, workingSpace []byte) (int, error) {
	n := len(ints)
	if n == 0 {
		return 0, nil
	}
	scratch, err := decompressWorkingSpace(compressed, n, workingSpace)
	if err != nil {
		return 0, err
	}
	DecodeInt32(ints, scratch, n)
	return n, nil
}

// DecompressUint32FromBuffer decompresses compressed into ints, which must
// have length n. See DecompressInt32FromBuffer for the workingSpace
// contract.
func DecompressUint32FromBuffer(compressed []byte, ints []uint32, workingSpace []byte) (int, error) {
	n := len(ints)
	if n == 0 {
		return 0, nil
	}
	scratch, err := decompressWorkingSpace(compressed, n, workingSpace)
	if err != nil {
		return 0, err
	}
	DecodeUint32(ints, scratch, n)
	return n, nil
}

// decompressWorkingSpace runs the byte-stream decompressor into
// workingSpace (allocating one of the right size if the caller didn't
// supply it) and returns the slice trimmed to the decompressed length.
func decompressWorkingSpace(compressed []byte, n int, workingSpace []byte) ([]byte, error) {
	needed := GetDecompressionWorkingSpaceSize(n)
	if workingSpace == nil {
		workingSpace = make([]byte, needed)
	} else if len(workingSpace) < needed {
		return nil, fmt.Errorf("%w: workingSpace too small (need %d bytes, got %d)",
			ErrInvalidBuffer, needed, len(workingSpace))
	}
	decoded, err := DefaultCompressor.DecompressFromBuffer(compressed, workingSpace)
	if err != nil {
		return nil, err
	}
	// decoded is the actual encoded size the encoder produced, usually well
	// under the worst-case bound; zero means the decompressor produced no
	// data for a nonempty sequence, which only a corrupt or truncated
	// stream can cause.
	if decoded == 0 {
		return nil, fmt.Errorf("%w: decompression returned no data", ErrInvalidBuffer)
	}
	return workingSpace[:decoded], nil
}
