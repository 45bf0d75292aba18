package intcodec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor is an alternate ByteStreamCompressor, showing that any
// compressor behind the three-function interface can replace the default
// LZ4Compressor without touching the encoded format.
//
// zstd exposes no equivalent of lz4.CompressBlockBound, so BoundFor uses a
// conservative estimate covering the frame header plus the per-block
// overhead an incompressible input can hit.
type ZstdCompressor struct {
	encOnce sync.Once
	enc     *zstd.Encoder
	decOnce sync.Once
	dec     *zstd.Decoder
}

func (z *ZstdCompressor) encoder() *zstd.Encoder {
	z.encOnce.Do(func() {
		z.enc, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	})
	return z.enc
}

func (z *ZstdCompressor) decoder() *zstd.Decoder {
	z.decOnce.Do(func() {
		z.dec, _ = zstd.NewReader(nil)
	})
	return z.dec
}

// BoundFor returns a conservative upper bound for a zstd frame: the
// source size plus ~0.4% and a small fixed frame overhead.
func (z *ZstdCompressor) BoundFor(srcSize int) int {
	if srcSize <= 0 {
		return 0
	}
	return srcSize + srcSize/256 + 64
}

// CompressToBuffer runs the zstd encoder's EncodeAll into dst[:0].
// EncodeAll appends, so if the frame outgrows cap(dst) the result lands
// in a freshly allocated array instead of the caller's buffer; the guard
// rejects frames larger than dst and the copy moves any relocated bytes
// back into it.
func (z *ZstdCompressor) CompressToBuffer(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	out := z.encoder().EncodeAll(src, dst[:0])
	if len(out) > len(dst) {
		return 0, fmt.Errorf("%w: compressed frame is %d bytes, destination holds %d",
			ErrInvalidBuffer, len(out), len(dst))
	}
	copy(dst, out)
	return len(out), nil
}

// DecompressFromBuffer runs the zstd decoder's DecodeAll into dst[:0],
// with the same guard-and-copy discipline as CompressToBuffer.
func (z *ZstdCompressor) DecompressFromBuffer(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	out, err := z.decoder().DecodeAll(src, dst[:0])
	if err != nil {
		return 0, fmt.Errorf("intcodec: zstd decompress: %w", err)
	}
	if len(out) > len(dst) {
		return 0, fmt.Errorf("%w: decompressed size is %d bytes, destination holds %d",
			ErrInvalidBuffer, len(out), len(dst))
	}
	copy(dst, out)
	return len(out), nil
}
