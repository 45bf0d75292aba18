// Package intcodec implements a delta + mode-code integer-list codec for
// the structural sections of a binary scene-description container format.
//
// These sections are dominated by lists of 32-bit indices into parallel
// tables: parent pointers, child spans, field indices, path references.
// Such lists are typically monotonic, piecewise-constant, or dominated by a
// small set of step sizes, and are therefore highly amenable to delta
// coding.
//
// We encode a list of integers as follows. First we transform the input to
// produce a new list of integers where each element is the difference
// between it and the previous integer in the input sequence (or the
// integer itself for the first element, which can be considered a
// difference from 0). Next we find the most common value in that sequence
// and write it to the output as a single header value. Then we write one
// 2-bit code per integer classifying it, followed by a variable-length
// section of payload bytes that the decoder uses the codes to interpret.
//
// Given:
//
//	input = [123, 124, 125, 100125, 100125, 100126, 100126]
//
// the list of differences to the previous integer is:
//
//	deltas = [123, 1, 1, 100000, 0, 1, 0]
//
// The most commonly occurring delta is 1, so the header holds int32(1).
// Each delta is then classified by a 2-bit code:
//
//	00 Common: equals the header value, no payload
//	01 One:    fits a signed 8-bit integer
//	10 Two:    fits a signed 16-bit integer (not 8)
//	11 Four:   needs the full signed 32 bits
//
// In the best case the encoded size is asymptotically 2 bits per integer;
// in the worst case it is asymptotically 34 bits per integer. The encoded
// buffer is small but still redundant enough that a general-purpose
// byte-stream compressor (LZ4-family, by default) shrinks it further —
// runs of the all-zero Common code compress particularly well.
//
// The codec has no internal state: every exported function is a pure
// transform of its arguments, safe to call concurrently on disjoint
// buffers. It is not a general-purpose entropy coder, is not self
// describing (the element count N must be tracked by the caller), and does
// not support streaming or partial decode.
package intcodec
