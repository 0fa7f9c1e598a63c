// Package jodyhash implements jodyhash, a fast non-cryptographic
// fingerprint over byte streams, used for file deduplication and
// change detection.
//
// Two mixing laws share one calling convention. The block law is the
// primary fingerprint; the rolling law is a distinct, linearly
// composable variant for streaming and partial comparison. Both come
// in 16-, 32- and 64-bit accumulator widths and both may be chained:
// calling the same entry point repeatedly with one accumulator over
// sequential chunks of a stream yields the same result as a single
// call over the concatenation, provided every chunk before the last
// is a multiple of the word size (the width in bytes). The trailing
// partial word of the final chunk is zero-padded, tagged with its
// byte count and mixed as one last word.
//
// Hashing an empty input is a no-op: the zero accumulator stays 0 at
// every width. That value is the documented zero-length hash.
//
// Vectorized mixing kernels are selected once per process from the
// CPU's capabilities and are bit-identical to the scalar reference at
// every width and length. jodyhash is not a cryptographic hash and
// must not be used where collision resistance matters.
package jodyhash

import (
	"errors"

	"github.com/jbruchon/go-jodyhash/internal/simd"
)

// ErrNilAccumulator is returned when the accumulator pointer of a
// hashing call is nil.
var ErrNilAccumulator = errors.New("jodyhash: nil accumulator")

// BlockHash64 folds p into the 64-bit accumulator at *acc using the
// block mixing law. Callers start a logical stream with *acc == 0 and
// may chain calls across word-aligned chunks of it.
func BlockHash64(acc *uint64, p []byte) error {
	if acc == nil {
		return ErrNilAccumulator
	}
	*acc = simd.Block64(*acc, p)
	return nil
}

// BlockHash32 is BlockHash64 at 32-bit width (4-byte words).
func BlockHash32(acc *uint32, p []byte) error {
	if acc == nil {
		return ErrNilAccumulator
	}
	*acc = simd.Block32(*acc, p)
	return nil
}

// BlockHash16 is BlockHash64 at 16-bit width (2-byte words).
func BlockHash16(acc *uint16, p []byte) error {
	if acc == nil {
		return ErrNilAccumulator
	}
	*acc = simd.Block16(*acc, p)
	return nil
}

// RollingHash64 folds p into the 64-bit accumulator at *acc using the
// rolling mixing law. Same chaining and tail rules as BlockHash64; the
// two laws are deliberately distinct and never produce the same
// fingerprint family.
func RollingHash64(acc *uint64, p []byte) error {
	if acc == nil {
		return ErrNilAccumulator
	}
	*acc = simd.Roll64(*acc, p)
	return nil
}

// RollingHash32 is RollingHash64 at 32-bit width.
func RollingHash32(acc *uint32, p []byte) error {
	if acc == nil {
		return ErrNilAccumulator
	}
	*acc = simd.Roll32(*acc, p)
	return nil
}

// RollingHash16 is RollingHash64 at 16-bit width.
func RollingHash16(acc *uint16, p []byte) error {
	if acc == nil {
		return ErrNilAccumulator
	}
	*acc = simd.Roll16(*acc, p)
	return nil
}

// Sum64 returns the 64-bit block hash of p.
func Sum64(p []byte) uint64 { return simd.Block64(0, p) }

// Sum32 returns the 32-bit block hash of p.
func Sum32(p []byte) uint32 { return simd.Block32(0, p) }

// Sum16 returns the 16-bit block hash of p.
func Sum16(p []byte) uint16 { return simd.Block16(0, p) }

// RollingSum64 returns the 64-bit rolling hash of p.
func RollingSum64(p []byte) uint64 { return simd.Roll64(0, p) }

// RollingSum32 returns the 32-bit rolling hash of p.
func RollingSum32(p []byte) uint32 { return simd.Roll32(0, p) }

// RollingSum16 returns the 16-bit rolling hash of p.
func RollingSum16(p []byte) uint16 { return simd.Roll16(0, p) }

// Accelerator reports the mixing tier selected for this process
// (generic, neon, sve2, avx2 or avx512). Diagnostic only; the tier
// never changes observable output.
func Accelerator() string { return simd.ActiveISA().String() }
