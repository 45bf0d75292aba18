package intcodec

import (
	"errors"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// ErrInvalidBuffer is returned when a caller-supplied buffer is too small
// or otherwise malformed for the operation requested.
var ErrInvalidBuffer = errors.New("intcodec: invalid buffer")

// ByteStreamCompressor is the pluggable stage-2 collaborator: a
// general-purpose byte-stream compressor applied to the delta+mode
// encoded buffer. Any implementation is a valid substitute for the
// default LZ4Compressor; the choice never affects the encoded format
// itself, only the outer bytes.
type ByteStreamCompressor interface {
	// BoundFor returns an upper bound on the compressed size of a source
	// buffer of srcSize bytes.
	BoundFor(srcSize int) int
	// CompressToBuffer compresses src into dst and returns the number of
	// bytes written. dst must have length at least BoundFor(len(src)).
	CompressToBuffer(src []byte, dst []byte) (int, error)
	// DecompressFromBuffer decompresses src into dst and returns the
	// number of bytes written, or (0, err) on failure (corrupt or
	// truncated input). dst must have length at least the original
	// uncompressed size.
	DecompressFromBuffer(src []byte, dst []byte) (int, error)
}

// Leading byte of every non-empty LZ4Compressor output.
const (
	lz4FrameStored byte = 0 // remaining bytes are the source, verbatim
	lz4FrameBlock  byte = 1 // remaining bytes are one LZ4 block
)

// LZ4Compressor is the default ByteStreamCompressor, wrapping the
// lz4 block API. Each output carries a one-byte frame marker: an input that
// lz4 does not shrink (short or high-entropy buffers) is stored verbatim,
// and the marker lets DecompressFromBuffer tell a stored source apart from
// a real block.
type LZ4Compressor struct{}

// BoundFor returns lz4.CompressBlockBound(srcSize) plus the frame marker.
func (LZ4Compressor) BoundFor(srcSize int) int {
	if srcSize <= 0 {
		return 0
	}
	return lz4.CompressBlockBound(srcSize) + 1
}

// CompressToBuffer runs lz4.CompressBlock into dst past the frame marker.
// When CompressBlock writes nothing or a block no smaller than the source,
// the input is stored verbatim instead; CompressBlockBound
// is always at least the source size, so the stored form fits any dst
// sized by BoundFor.
func (LZ4Compressor) CompressToBuffer(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	n, err := lz4.CompressBlock(src, dst[1:], nil)
	if err != nil {
		return 0, fmt.Errorf("intcodec: lz4 compress: %w", err)
	}
	if n == 0 || n >= len(src) {
		dst[0] = lz4FrameStored
		copy(dst[1:], src)
		return len(src) + 1, nil
	}
	dst[0] = lz4FrameBlock
	return n + 1, nil
}

// DecompressFromBuffer inverts CompressToBuffer: it copies a stored source
// out directly and runs lz4.UncompressBlock on a real block.
func (LZ4Compressor) DecompressFromBuffer(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	switch src[0] {
	case lz4FrameStored:
		if len(src)-1 > len(dst) {
			return 0, fmt.Errorf("%w: stored data larger than destination", ErrInvalidBuffer)
		}
		return copy(dst, src[1:]), nil
	case lz4FrameBlock:
		n, err := lz4.UncompressBlock(src[1:], dst)
		if err != nil {
			return 0, fmt.Errorf("intcodec: lz4 decompress: %w", err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: unknown frame marker 0x%02x", ErrInvalidBuffer, src[0])
	}
}
